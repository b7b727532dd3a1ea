package dto

import (
	"time"

	"github.com/spec-kit/shift-board/internal/domain"
)

// UserSummary is the signed-in account as shown on pages.
type UserSummary struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name,omitempty"`
	Role       string `json:"role"`
}

// NewUserSummary maps a domain user.
func NewUserSummary(user *domain.User) UserSummary {
	summary := UserSummary{EmployeeID: user.EmployeeID, Role: string(user.Role)}
	if user.FullName != nil {
		summary.FullName = *user.FullName
	}
	return summary
}

// StartTimeView is one posted start time.
type StartTimeView struct {
	Area      string    `json:"area"`
	WorkDate  string    `json:"work_date"`
	StartTime string    `json:"start_time"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStartTimeView maps a domain entry.
func NewStartTimeView(entry *domain.AreaStartTime) *StartTimeView {
	if entry == nil {
		return nil
	}
	return &StartTimeView{
		Area:      entry.Area,
		WorkDate:  entry.WorkDate.Format("2006-01-02"),
		StartTime: entry.StartTime,
		Notes:     entry.Notes,
		UpdatedAt: entry.UpdatedAt,
	}
}

// DashboardResponse is the employee landing page view model. StartTime is
// null when nothing has been posted for the day yet.
type DashboardResponse struct {
	User         UserSummary          `json:"user"`
	WorkDate     string               `json:"work_date"`
	StartTime    *StartTimeView       `json:"start_time"`
	Announcement *domain.Announcement `json:"announcement"`
}
