package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/umalmyha/crmtrack/internal/model"
)

// InteractionRepository gives access to the append-only interaction ledger.
// Same ownership rule as for customers: foreign rows behave as absent ones.
type InteractionRepository interface {
	FindAllByCustomer(ctx context.Context, ownerID string, customerID string) ([]*model.Interaction, error)
	Create(context.Context, *model.Interaction) error
	DeleteByID(ctx context.Context, ownerID string, id string) (bool, error)
	FindUpcomingByOwner(ctx context.Context, ownerID string, from time.Time, limit int) ([]*model.FollowUp, error)
}

type postgresInteractionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInteractionRepository builds interaction repository over postgresql
func NewPostgresInteractionRepository(p *pgxpool.Pool) InteractionRepository {
	return &postgresInteractionRepository{pool: p}
}

func (r *postgresInteractionRepository) FindAllByCustomer(ctx context.Context, ownerID string, customerID string) ([]*model.Interaction, error) {
	q := `SELECT id, customer_id, owner_id, type, notes, interaction_date, follow_up_date FROM interactions
          WHERE owner_id = $1 AND customer_id = $2 ORDER BY interaction_date DESC`

	rows, err := r.pool.Query(ctx, q, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := make([]*model.Interaction, 0)
	for rows.Next() {
		var i model.Interaction
		if err := rows.Scan(&i.ID, &i.CustomerID, &i.OwnerID, &i.Type, &i.Notes, &i.InteractionDate, &i.FollowUpDate); err != nil {
			return nil, err
		}
		interactions = append(interactions, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *postgresInteractionRepository) Create(ctx context.Context, i *model.Interaction) error {
	q := `INSERT INTO interactions(id, customer_id, owner_id, type, notes, interaction_date, follow_up_date)
          VALUES($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, q, i.ID, i.CustomerID, i.OwnerID, i.Type, i.Notes, i.InteractionDate, i.FollowUpDate)
	if err != nil {
		return err
	}
	return nil
}

func (r *postgresInteractionRepository) DeleteByID(ctx context.Context, ownerID string, id string) (bool, error) {
	q := "DELETE FROM interactions WHERE owner_id = $1 AND id = $2"
	comm, err := r.pool.Exec(ctx, q, ownerID, id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

// FindUpcomingByOwner returns pending reminders at or after the given moment,
// earliest first. Inner join drops reminders whose customer is gone.
func (r *postgresInteractionRepository) FindUpcomingByOwner(ctx context.Context, ownerID string, from time.Time, limit int) ([]*model.FollowUp, error) {
	q := `SELECT i.id, c.id, c.name, i.type, i.follow_up_date
          FROM interactions i
          JOIN customers c ON c.id = i.customer_id
          WHERE i.owner_id = $1 AND i.follow_up_date IS NOT NULL AND i.follow_up_date >= $2
          ORDER BY i.follow_up_date LIMIT $3`

	rows, err := r.pool.Query(ctx, q, ownerID, from, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	followUps := make([]*model.FollowUp, 0)
	for rows.Next() {
		var f model.FollowUp
		if err := rows.Scan(&f.InteractionID, &f.CustomerID, &f.CustomerName, &f.Type, &f.FollowUpDate); err != nil {
			return nil, err
		}
		followUps = append(followUps, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return followUps, nil
}
