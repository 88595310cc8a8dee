package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/crmtrack/internal/model"
	"github.com/umalmyha/crmtrack/pkg/db/transactor"
)

// UserRepository gives access to user accounts
type UserRepository interface {
	Create(context.Context, *model.User) error
	FindByEmail(context.Context, string) (*model.User, error)
	FindByID(context.Context, string) (*model.User, error)
}

type postgresUserRepository struct {
	e transactor.PgxWithinTransactionExecutor
}

// NewPostgresUserRepository builds user repository over postgresql
func NewPostgresUserRepository(e transactor.PgxWithinTransactionExecutor) UserRepository {
	return &postgresUserRepository{e: e}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	q := "INSERT INTO users(id, email, password_hash, display_name) VALUES($1, $2, $3, $4)"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, u.ID, u.Email, u.PasswordHash, u.DisplayName); err != nil {
		return err
	}
	return nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := "SELECT id, email, password_hash, display_name FROM users WHERE email = $1"
	row := r.e.Executor(ctx).QueryRow(ctx, q, email)
	return r.scanRow(row)
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := "SELECT id, email, password_hash, display_name FROM users WHERE id = $1"
	row := r.e.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
