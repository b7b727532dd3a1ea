package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-board/internal/api/dto"
	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/service"
	apperrors "github.com/spec-kit/shift-board/pkg/util/errorutil"
)

const recentChangesLimit = 20

// SupervisorHandler exposes the supervisor panel and its mutations. All
// routes sit behind the access gate plus the supervisor check; the services
// re-check the role anyway.
type SupervisorHandler struct {
	schedule      *service.ScheduleService
	announcements *service.AnnouncementService
	users         *service.UserService
}

// NewSupervisorHandler constructs the handler.
func NewSupervisorHandler(schedule *service.ScheduleService, announcements *service.AnnouncementService, users *service.UserService) *SupervisorHandler {
	return &SupervisorHandler{schedule: schedule, announcements: announcements, users: users}
}

// View handles GET /supervisor: the recent start-time changes listing.
func (h *SupervisorHandler) View(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	recent, err := h.schedule.RecentChanges(c.Context(), domain.DefaultArea, recentChangesLimit)
	if err != nil {
		return apperrors.MapError(err)
	}

	views := make([]dto.ScheduleChangeView, 0, len(recent))
	for _, change := range recent {
		views = append(views, dto.NewScheduleChangeView(change))
	}

	return c.JSON(dto.SupervisorResponse{
		Supervisor: dto.NewUserSummary(user),
		Recent:     views,
	})
}

// PostAnnouncement handles POST /supervisor/announcement.
func (h *SupervisorHandler) PostAnnouncement(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.PostAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if _, err := h.announcements.Post(c.Context(), req.Message, user); err != nil {
		return err
	}
	return c.Redirect("/supervisor", fiber.StatusSeeOther)
}

// UpsertStartTime handles POST /supervisor/start-time. The area defaults to
// the preload area when the form leaves it blank.
func (h *SupervisorHandler) UpsertStartTime(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.UpsertStartTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Area == "" {
		req.Area = domain.DefaultArea
	}

	input := service.UpsertStartTimeInput{
		Area:      req.Area,
		WorkDate:  req.WorkDate,
		StartTime: req.StartTime,
		Notes:     req.Notes,
	}
	if _, err := h.schedule.UpsertStartTime(c.Context(), input, user); err != nil {
		return err
	}
	return c.Redirect("/supervisor", fiber.StatusSeeOther)
}

// UpsertUser handles POST /supervisor/users: create-or-update an account.
func (h *SupervisorHandler) UpsertUser(c *fiber.Ctx) error {
	user, _ := auth.UserFromContext(c)

	var req dto.UpsertUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	input := service.UpsertUserInput{
		EmployeeID: req.EmployeeID,
		Pin:        req.Pin,
		Role:       req.Role,
		FullName:   req.FullName,
		Active:     req.Active,
	}
	if _, err := h.users.Upsert(c.Context(), input, user); err != nil {
		return err
	}
	return c.Redirect("/supervisor", fiber.StatusSeeOther)
}
