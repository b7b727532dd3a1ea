package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/repository"
	apperrors "github.com/spec-kit/shift-board/pkg/util/errorutil"
)

// UpsertStartTimeInput carries the raw form values for a start-time write.
type UpsertStartTimeInput struct {
	Area      string
	WorkDate  string // YYYY-MM-DD
	StartTime string // 24-hour HH:MM
	Notes     string
}

// ScheduleService validates and writes per-day start times.
type ScheduleService struct {
	schedules repository.ScheduleRepository
}

// NewScheduleService builds the service.
func NewScheduleService(schedules repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{schedules: schedules}
}

// UpsertStartTime writes the start time for (area, work date). The start
// time is area-wide rather than per-employee, so every write requires the
// supervisor role; the gate already checks this, and it is re-checked here.
// Validation rejects before anything is written, so there are no partial
// writes to roll back.
func (s *ScheduleService) UpsertStartTime(ctx context.Context, input UpsertStartTimeInput, actor *domain.User) (*domain.AreaStartTime, error) {
	if actor == nil || actor.Role != domain.RoleSupervisor {
		return nil, apperrors.NewForbidden("supervisor role required")
	}

	area := strings.TrimSpace(input.Area)
	if area == "" {
		return nil, apperrors.NewFieldError("area", "Area is required.")
	}

	workDate, err := time.Parse("2006-01-02", strings.TrimSpace(input.WorkDate))
	if err != nil {
		return nil, apperrors.NewFieldError("workDate", "Date must be YYYY-MM-DD.")
	}

	startTime := strings.TrimSpace(input.StartTime)
	if _, err := time.Parse("15:04", startTime); err != nil {
		return nil, apperrors.NewFieldError("startTime", "Time must be 24-hour HH:MM.")
	}

	entry := &domain.AreaStartTime{
		Area:      area,
		WorkDate:  workDate,
		StartTime: startTime,
		Notes:     strings.TrimSpace(input.Notes),
		UpdatedBy: actor.EmployeeID,
	}
	if err := s.schedules.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ForDay returns the posted start time for an area and day, or nil when
// nothing has been posted yet.
func (s *ScheduleService) ForDay(ctx context.Context, area string, workDate time.Time) (*domain.AreaStartTime, error) {
	entry, err := s.schedules.GetForDay(ctx, area, workDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

// RecentChanges lists the latest writes for the supervisor panel.
func (s *ScheduleService) RecentChanges(ctx context.Context, area string, limit int) ([]domain.ScheduleChange, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.schedules.ListRecent(ctx, area, limit)
}
