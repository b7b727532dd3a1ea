package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-board/internal/domain"
)

func newUserMock(t *testing.T) (pgxmock.PgxPoolIface, UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestUserRepository_GetByID(t *testing.T) {
	mock, repo := newUserMock(t)

	createdAt := time.Now()
	name := "Dana Ortiz"

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE employee_id=$1")).
		WithArgs("1234567").
		WillReturnRows(pgxmock.
			NewRows([]string{"employee_id", "pin_hash", "role", "full_name", "active", "created_at"}).
			AddRow("1234567", "$2a$10$hash", domain.RoleEmployee, &name, true, createdAt))

	user, err := repo.GetByID(context.Background(), "1234567")
	require.NoError(t, err)
	assert.Equal(t, "1234567", user.EmployeeID)
	assert.Equal(t, domain.RoleEmployee, user.Role)
	require.NotNil(t, user.FullName)
	assert.Equal(t, "Dana Ortiz", *user.FullName)
	assert.True(t, user.Active)
}

func TestUserRepository_GetByIDUnknown(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE employee_id=$1")).
		WithArgs("0000000").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "0000000")
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestUserRepository_UpsertKeyedByEmployeeID(t *testing.T) {
	mock, repo := newUserMock(t)

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("1234567", "$2a$10$hash", domain.RoleEmployee, (*string)(nil), true).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	user := &domain.User{
		EmployeeID: "1234567",
		PinHash:    "$2a$10$hash",
		Role:       domain.RoleEmployee,
		Active:     true,
	}
	require.NoError(t, repo.Upsert(context.Background(), user))
	assert.Equal(t, createdAt, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Deactivate(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET active=false")).
		WithArgs("1234567").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Deactivate(context.Background(), "1234567"))
}

func TestUserRepository_DeactivateUnknown(t *testing.T) {
	mock, repo := newUserMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET active=false")).
		WithArgs("0000000").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Deactivate(context.Background(), "0000000")
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}
