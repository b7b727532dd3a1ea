package domain

import "time"

// Role enumerates the two access levels in the system.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleSupervisor Role = "supervisor"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleSupervisor
}

// User is an account identified by a 7-digit employee id. Accounts are never
// hard-deleted; they are disabled via the active flag, which is re-checked on
// every authenticated request.
type User struct {
	EmployeeID string
	PinHash    string
	Role       Role
	FullName   *string
	Active     bool
	CreatedAt  time.Time
}

// DisplayName returns the full name when present, falling back to the id.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.EmployeeID
}
