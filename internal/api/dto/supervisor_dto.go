package dto

import (
	"time"

	"github.com/spec-kit/shift-board/internal/domain"
)

// UpsertStartTimeRequest carries the start-time form fields.
type UpsertStartTimeRequest struct {
	Area      string `form:"area" json:"area"`
	WorkDate  string `form:"workDate" json:"workDate"`
	StartTime string `form:"startTime" json:"startTime"`
	Notes     string `form:"notes" json:"notes"`
}

// PostAnnouncementRequest carries the announcement form field.
type PostAnnouncementRequest struct {
	Message string `form:"message" json:"message"`
}

// UpsertUserRequest carries the account form fields. A blank pin keeps the
// stored hash; a blank role defaults to employee.
type UpsertUserRequest struct {
	EmployeeID string `form:"employeeId" json:"employeeId"`
	Pin        string `form:"pin" json:"pin"`
	Role       string `form:"role" json:"role"`
	FullName   string `form:"fullName" json:"fullName"`
	Active     *bool  `form:"active" json:"active"`
}

// ScheduleChangeView is one row of the supervisor panel's recent listing.
// UpdatedByName falls back to the raw id when the account no longer resolves.
type ScheduleChangeView struct {
	Area          string    `json:"area"`
	WorkDate      string    `json:"work_date"`
	StartTime     string    `json:"start_time"`
	Notes         string    `json:"notes,omitempty"`
	UpdatedBy     string    `json:"updated_by"`
	UpdatedByName string    `json:"updated_by_name"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewScheduleChangeView maps a listing row.
func NewScheduleChangeView(change domain.ScheduleChange) ScheduleChangeView {
	view := ScheduleChangeView{
		Area:          change.Area,
		WorkDate:      change.WorkDate.Format("2006-01-02"),
		StartTime:     change.StartTime,
		Notes:         change.Notes,
		UpdatedBy:     change.UpdatedBy,
		UpdatedByName: change.UpdatedBy,
		UpdatedAt:     change.UpdatedAt,
	}
	if change.UpdatedByName != nil && *change.UpdatedByName != "" {
		view.UpdatedByName = *change.UpdatedByName
	}
	return view
}

// SupervisorResponse is the supervisor panel view model.
type SupervisorResponse struct {
	Supervisor UserSummary          `json:"supervisor"`
	Recent     []ScheduleChangeView `json:"recent"`
}
