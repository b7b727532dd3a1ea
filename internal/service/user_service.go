package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/config"
	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/repository"
	apperrors "github.com/spec-kit/shift-board/pkg/util/errorutil"
)

// UpsertUserInput carries the raw form values for the supervisor's
// create-or-update account action.
type UpsertUserInput struct {
	EmployeeID string
	Pin        string // blank on update keeps the stored hash
	Role       string // defaults to employee
	FullName   string
	Active     *bool // nil keeps the stored flag (true on create)
}

// UserService handles supervisor-driven account management. Accounts are
// soft-disabled via the active flag, never deleted.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.AuthConfig, users repository.UserRepository) *UserService {
	return &UserService{users: users, bcryptCost: cfg.BcryptCost}
}

// Upsert creates or updates an account keyed by employee id.
func (s *UserService) Upsert(ctx context.Context, input UpsertUserInput, actor *domain.User) (*domain.User, error) {
	if actor == nil || actor.Role != domain.RoleSupervisor {
		return nil, apperrors.NewForbidden("supervisor role required")
	}

	employeeID := strings.TrimSpace(input.EmployeeID)
	if !employeeIDPattern.MatchString(employeeID) {
		return nil, apperrors.NewFieldError("employeeId", "Employee ID must be 7 digits.")
	}

	role := domain.Role(strings.TrimSpace(input.Role))
	if role != "" && !role.Valid() {
		return nil, apperrors.NewFieldError("role", "Role must be employee or supervisor.")
	}

	pin := strings.TrimSpace(input.Pin)
	if pin != "" && len(pin) < 4 {
		return nil, apperrors.NewFieldError("pin", "PIN must be at least 4 digits.")
	}

	existing, err := s.users.GetByID(ctx, employeeID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	creating := existing == nil

	if creating && pin == "" {
		return nil, apperrors.NewFieldError("pin", "PIN is required for new accounts.")
	}

	// A blank role keeps the stored one on update and defaults on create.
	if role == "" {
		if creating {
			role = domain.RoleEmployee
		} else {
			role = existing.Role
		}
	}

	user := &domain.User{
		EmployeeID: employeeID,
		Role:       role,
		Active:     true,
	}
	if fullName := strings.TrimSpace(input.FullName); fullName != "" {
		user.FullName = &fullName
	}

	if pin == "" {
		user.PinHash = existing.PinHash
	} else {
		hash, err := auth.HashPin(pin, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PinHash = hash
	}

	if input.Active != nil {
		user.Active = *input.Active
	} else if !creating {
		user.Active = existing.Active
	}

	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
