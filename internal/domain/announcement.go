package domain

import "time"

// Announcement is one entry in the append-only broadcast log. The current
// announcement is derived at read time as the most recent row; superseding is
// done by inserting, never by updating.
type Announcement struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}
