package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/persistence"
	"github.com/spec-kit/shift-board/internal/repository"
	apperrors "github.com/spec-kit/shift-board/pkg/util/errorutil"
)

const (
	currentAnnouncementKey = "announcements:current"
	announcementCacheTTL   = time.Minute
)

// AnnouncementService appends to and reads the broadcast log. Reads go
// through the optional redis cache; a cache miss or an unavailable cache
// falls back to Postgres.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	cache         *persistence.Redis
}

// NewAnnouncementService builds the service.
func NewAnnouncementService(announcements repository.AnnouncementRepository, cache *persistence.Redis) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, cache: cache}
}

// Post appends a new announcement. The log is append-only: superseding the
// current announcement means inserting a newer row, never updating one.
func (s *AnnouncementService) Post(ctx context.Context, message string, actor *domain.User) (*domain.Announcement, error) {
	if actor == nil || actor.Role != domain.RoleSupervisor {
		return nil, apperrors.NewForbidden("supervisor role required")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewFieldError("message", "Message required.")
	}

	announcement := &domain.Announcement{
		Message:   message,
		UpdatedBy: actor.EmployeeID,
	}
	if err := s.announcements.Insert(ctx, announcement); err != nil {
		return nil, err
	}

	if s.cache.Available() {
		_ = s.cache.Client.Del(ctx, currentAnnouncementKey).Err()
	}
	return announcement, nil
}

// Current returns the most recent announcement, or nil when none has been
// posted yet.
func (s *AnnouncementService) Current(ctx context.Context) (*domain.Announcement, error) {
	if s.cache.Available() {
		if raw, err := s.cache.Client.Get(ctx, currentAnnouncementKey).Bytes(); err == nil {
			var cached domain.Announcement
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	announcement, err := s.announcements.Latest(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if s.cache.Available() {
		if raw, err := json.Marshal(announcement); err == nil {
			_ = s.cache.Client.Set(ctx, currentAnnouncementKey, raw, announcementCacheTTL).Err()
		}
	}
	return announcement, nil
}
