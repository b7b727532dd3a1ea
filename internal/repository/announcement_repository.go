package repository

import (
	"context"

	"github.com/spec-kit/shift-board/internal/domain"
)

// AnnouncementRepository defines persistence access for the broadcast log.
type AnnouncementRepository interface {
	Insert(ctx context.Context, announcement *domain.Announcement) error
	Latest(ctx context.Context) (*domain.Announcement, error)
}

type announcementRepository struct {
	db DB
}

// NewAnnouncementRepository returns a Postgres-backed implementation.
func NewAnnouncementRepository(db DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Insert appends a new announcement. There is no update path: the current
// announcement is whichever row is newest at read time.
func (r *announcementRepository) Insert(ctx context.Context, announcement *domain.Announcement) error {
	const query = `
        INSERT INTO announcements (message, updated_by)
        VALUES ($1, $2)
        RETURNING id, updated_at`

	return r.db.QueryRow(ctx, query,
		announcement.Message,
		announcement.UpdatedBy,
	).Scan(&announcement.ID, &announcement.UpdatedAt)
}

func (r *announcementRepository) Latest(ctx context.Context) (*domain.Announcement, error) {
	const query = `
        SELECT id, message, updated_by, updated_at
        FROM announcements
        ORDER BY updated_at DESC
        LIMIT 1`

	var announcement domain.Announcement
	if err := r.db.QueryRow(ctx, query).Scan(
		&announcement.ID,
		&announcement.Message,
		&announcement.UpdatedBy,
		&announcement.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &announcement, nil
}
