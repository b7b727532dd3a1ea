package domain

import "time"

// DefaultArea is the work area start times are posted for when a form leaves
// the area blank.
const DefaultArea = "preload"

// AreaStartTime is the posted start time for one area on one calendar day.
// The (Area, WorkDate) pair is the natural key; writes replace the remaining
// fields in place, last write wins.
type AreaStartTime struct {
	Area      string
	WorkDate  time.Time
	StartTime string // 24-hour HH:MM
	Notes     string
	UpdatedBy string
	UpdatedAt time.Time
}

// ScheduleChange is a listing row for the supervisor panel. UpdatedByName is
// resolved via a left join; it stays nil when the referenced account no
// longer resolves, and callers fall back to the raw id.
type ScheduleChange struct {
	AreaStartTime
	UpdatedByName *string
}
