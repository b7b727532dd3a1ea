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

func newAnnouncementMock(t *testing.T) (pgxmock.PgxPoolIface, AnnouncementRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewAnnouncementRepository(mock)
}

func TestAnnouncementRepository_InsertAppends(t *testing.T) {
	mock, repo := newAnnouncementMock(t)

	updatedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO announcements")).
		WithArgs("Sort begins at 5:30am", "7654321").
		WillReturnRows(pgxmock.NewRows([]string{"id", "updated_at"}).AddRow(int64(7), updatedAt))

	announcement := &domain.Announcement{
		Message:   "Sort begins at 5:30am",
		UpdatedBy: "7654321",
	}
	require.NoError(t, repo.Insert(context.Background(), announcement))
	assert.Equal(t, int64(7), announcement.ID)
	assert.Equal(t, updatedAt, announcement.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepository_LatestWins(t *testing.T) {
	mock, repo := newAnnouncementMock(t)

	updatedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "message", "updated_by", "updated_at"}).
			AddRow(int64(9), "Start pushed to 5:45am", "7654321", updatedAt))

	latest, err := repo.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Start pushed to 5:45am", latest.Message)
}

func TestAnnouncementRepository_LatestEmptyLog(t *testing.T) {
	mock, repo := newAnnouncementMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY updated_at DESC")).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Latest(context.Background())
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}
