package dto

// LoginRequest carries the sign-in form fields.
type LoginRequest struct {
	EmployeeID string `form:"employeeId" json:"employeeId"`
	Pin        string `form:"pin" json:"pin"`
}

// LoginPageResponse echoes a prior failure back to the login form renderer.
// Field names which input to focus: employeeId or pin.
type LoginPageResponse struct {
	Error string `json:"error,omitempty"`
	Field string `json:"field,omitempty"`
}
