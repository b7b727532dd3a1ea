package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-board/internal/domain"
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	GetByID(ctx context.Context, employeeID string) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	Deactivate(ctx context.Context, employeeID string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, employeeID string) (*domain.User, error) {
	const query = `
        SELECT employee_id, pin_hash, role, full_name, active, created_at
        FROM users WHERE employee_id=$1`

	var user domain.User
	if err := r.db.QueryRow(ctx, query, employeeID).Scan(
		&user.EmployeeID,
		&user.PinHash,
		&user.Role,
		&user.FullName,
		&user.Active,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates the account or replaces its mutable fields in place, keyed
// by employee_id. Accounts are never deleted here; disabling is a field
// update like any other.
func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (employee_id, pin_hash, role, full_name, active)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (employee_id)
        DO UPDATE SET pin_hash = excluded.pin_hash,
                      role = excluded.role,
                      full_name = excluded.full_name,
                      active = excluded.active
        RETURNING created_at`

	return r.db.QueryRow(ctx, query,
		user.EmployeeID,
		user.PinHash,
		user.Role,
		user.FullName,
		user.Active,
	).Scan(&user.CreatedAt)
}

func (r *userRepository) Deactivate(ctx context.Context, employeeID string) error {
	const query = `UPDATE users SET active=false WHERE employee_id=$1`

	cmd, err := r.db.Exec(ctx, query, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
