package repository

import (
	"context"
	"time"

	"github.com/spec-kit/shift-board/internal/domain"
)

// ScheduleRepository defines persistence access for per-day area start times.
type ScheduleRepository interface {
	Upsert(ctx context.Context, entry *domain.AreaStartTime) error
	GetForDay(ctx context.Context, area string, workDate time.Time) (*domain.AreaStartTime, error)
	ListRecent(ctx context.Context, area string, limit int) ([]domain.ScheduleChange, error)
}

type scheduleRepository struct {
	db DB
}

// NewScheduleRepository returns a Postgres-backed implementation.
func NewScheduleRepository(db DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Upsert writes the start time for (area, work_date) in a single statement.
// The ON CONFLICT clause makes the database the arbiter of concurrent writes:
// there is no read-then-write window, so two supervisors editing the same key
// resolve to whichever transaction commits last, never a duplicated row.
func (r *scheduleRepository) Upsert(ctx context.Context, entry *domain.AreaStartTime) error {
	const query = `
        INSERT INTO area_start_times (area, work_date, start_time, notes, updated_by)
        VALUES ($1, $2::date, $3::time, $4, $5)
        ON CONFLICT (area, work_date)
        DO UPDATE SET start_time = excluded.start_time,
                      notes = excluded.notes,
                      updated_by = excluded.updated_by,
                      updated_at = now()
        RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		entry.Area,
		entry.WorkDate.Format("2006-01-02"),
		entry.StartTime,
		entry.Notes,
		entry.UpdatedBy,
	).Scan(&entry.UpdatedAt)
}

func (r *scheduleRepository) GetForDay(ctx context.Context, area string, workDate time.Time) (*domain.AreaStartTime, error) {
	const query = `
        SELECT area, work_date, to_char(start_time, 'HH24:MI'), coalesce(notes, ''), updated_by, updated_at
        FROM area_start_times
        WHERE area=$1 AND work_date=$2::date`

	var entry domain.AreaStartTime
	if err := r.db.QueryRow(ctx, query, area, workDate.Format("2006-01-02")).Scan(
		&entry.Area,
		&entry.WorkDate,
		&entry.StartTime,
		&entry.Notes,
		&entry.UpdatedBy,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListRecent returns the latest changes for an area, newest first, with the
// editor's name resolved via a left join. A missing users row leaves the name
// nil rather than dropping the change from the listing.
func (r *scheduleRepository) ListRecent(ctx context.Context, area string, limit int) ([]domain.ScheduleChange, error) {
	const query = `
        SELECT st.area, st.work_date, to_char(st.start_time, 'HH24:MI'), coalesce(st.notes, ''),
               st.updated_by, st.updated_at, u.full_name
        FROM area_start_times st
        LEFT JOIN users u ON u.employee_id = st.updated_by
        WHERE st.area=$1
        ORDER BY st.updated_at DESC
        LIMIT $2`

	rows, err := r.db.Query(ctx, query, area, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	changes := make([]domain.ScheduleChange, 0, limit)
	for rows.Next() {
		var change domain.ScheduleChange
		if err := rows.Scan(
			&change.Area,
			&change.WorkDate,
			&change.StartTime,
			&change.Notes,
			&change.UpdatedBy,
			&change.UpdatedAt,
			&change.UpdatedByName,
		); err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, rows.Err()
}
