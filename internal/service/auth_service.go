package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/config"
	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/repository"
)

var employeeIDPattern = regexp.MustCompile(`^\d{7}$`)

// AuthError is a login failure tagged with the form field to focus. The
// messages are deliberately generic: unknown-id and disabled-account share
// one message, and a bad PIN never says more than "invalid credentials".
type AuthError struct {
	Field   string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// AuthService coordinates the login flow.
type AuthService struct {
	users repository.UserRepository
	codec *auth.SessionCodec
}

// NewAuthService builds the service.
func NewAuthService(cfg config.SessionConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users: users,
		codec: auth.NewSessionCodec(cfg.Secret, cfg.TTL()),
	}
}

// Login authenticates an employee id + PIN pair and returns the account with
// a freshly issued session token. Input checks run before any store access:
// they are cheap, the bcrypt comparison is deliberately not.
func (s *AuthService) Login(ctx context.Context, employeeID, pin string) (*domain.User, string, error) {
	employeeID = strings.TrimSpace(employeeID)
	pin = strings.TrimSpace(pin)

	if !employeeIDPattern.MatchString(employeeID) {
		return nil, "", &AuthError{Field: "employeeId", Message: "Employee ID must be 7 digits."}
	}
	if len(pin) < 4 {
		return nil, "", &AuthError{Field: "pin", Message: "PIN must be at least 4 digits."}
	}

	user, err := s.users.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", &AuthError{Field: "employeeId", Message: "Account not found or inactive."}
		}
		return nil, "", err
	}
	if !user.Active {
		return nil, "", &AuthError{Field: "employeeId", Message: "Account not found or inactive."}
	}

	if err := auth.ComparePin(user.PinHash, pin); err != nil {
		return nil, "", &AuthError{Field: "pin", Message: "Invalid credentials."}
	}

	return user, s.codec.Issue(user.EmployeeID), nil
}

// SessionCodec exposes the codec for the access gate.
func (s *AuthService) SessionCodec() *auth.SessionCodec {
	return s.codec
}
