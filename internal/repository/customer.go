package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/crmtrack/internal/model"
)

// CustomerRepository gives access to customer records. Every read and write is
// scoped by owner id, a row owned by another user behaves as an absent row.
type CustomerRepository interface {
	FindAllByOwner(context.Context, string) ([]*model.Customer, error)
	FindByID(ctx context.Context, ownerID string, id string) (*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, *model.Customer) (bool, error)
	DeleteByID(ctx context.Context, ownerID string, id string) (bool, error)
}

type postgresCustomerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCustomerRepository builds customer repository over postgresql
func NewPostgresCustomerRepository(p *pgxpool.Pool) CustomerRepository {
	return &postgresCustomerRepository{pool: p}
}

func (r *postgresCustomerRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]*model.Customer, error) {
	q := `SELECT id, owner_id, name, email, phone, status, created_at FROM customers
          WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, ownerID string, id string) (*model.Customer, error) {
	q := `SELECT id, owner_id, name, email, phone, status, created_at FROM customers
          WHERE owner_id = $1 AND id = $2`

	var c model.Customer
	row := r.pool.QueryRow(ctx, q, ownerID, id)
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Status, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(id, owner_id, name, email, phone, status, created_at)
          VALUES($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.pool.Exec(ctx, q, c.ID, c.OwnerID, c.Name, c.Email, c.Phone, c.Status, c.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := `UPDATE customers SET name = $1, email = $2, phone = $3, status = $4
          WHERE owner_id = $5 AND id = $6`
	comm, err := r.pool.Exec(ctx, q, c.Name, c.Email, c.Phone, c.Status, c.OwnerID, c.ID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

// DeleteByID removes customer row, interactions go down with it via
// ON DELETE CASCADE on interactions.customer_id
func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, ownerID string, id string) (bool, error) {
	q := "DELETE FROM customers WHERE owner_id = $1 AND id = $2"
	comm, err := r.pool.Exec(ctx, q, ownerID, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}
