package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-board/internal/api/dto"
	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/service"
	apperrors "github.com/spec-kit/shift-board/pkg/util/errorutil"
)

// DashboardHandler renders the employee landing page view model: today's
// start time for the area plus the current announcement.
type DashboardHandler struct {
	schedule      *service.ScheduleService
	announcements *service.AnnouncementService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(schedule *service.ScheduleService, announcements *service.AnnouncementService) *DashboardHandler {
	return &DashboardHandler{schedule: schedule, announcements: announcements}
}

// View handles GET /dashboard.
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	today := time.Now()

	entry, err := h.schedule.ForDay(c.Context(), domain.DefaultArea, today)
	if err != nil {
		return apperrors.MapError(err)
	}

	announcement, err := h.announcements.Current(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}

	return c.JSON(dto.DashboardResponse{
		User:         dto.NewUserSummary(user),
		WorkDate:     today.Format("2006-01-02"),
		StartTime:    dto.NewStartTimeView(entry),
		Announcement: announcement,
	})
}
