package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/shift-board/internal/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) GetByID(_ context.Context, employeeID string) (*domain.User, error) {
	user, ok := r.users[employeeID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) Upsert(_ context.Context, user *domain.User) error {
	clone := *user
	r.users[user.EmployeeID] = &clone
	return nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, employeeID string) error {
	user, ok := r.users[employeeID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Active = false
	return nil
}

func newGateApp(t *testing.T) (*fiber.App, *SessionCodec, *stubUserRepo) {
	t.Helper()

	codec := NewSessionCodec("gate-secret", 7*24*time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"1234567": {EmployeeID: "1234567", Role: domain.RoleEmployee, Active: true},
		"7654321": {EmployeeID: "7654321", Role: domain.RoleSupervisor, Active: true},
	}}
	gate := NewAccessGate(codec, repo)

	app := fiber.New()
	app.Get("/dashboard", gate.Handle, func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		require.True(t, ok)
		return c.SendString(user.EmployeeID)
	})
	app.Get("/supervisor", gate.Handle, gate.RequireSupervisor, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, codec, repo
}

func sessionRequest(target, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	return req
}

func TestAccessGate_MissingCookieRedirectsToLogin(t *testing.T) {
	app, _, _ := newGateApp(t)

	resp, err := app.Test(sessionRequest("/dashboard", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAccessGate_InvalidTokenRedirectsToLogin(t *testing.T) {
	app, _, _ := newGateApp(t)

	resp, err := app.Test(sessionRequest("/dashboard", "1234567.notamillis.deadbeef"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAccessGate_UnknownSubjectRedirectsToLogin(t *testing.T) {
	app, codec, _ := newGateApp(t)

	resp, err := app.Test(sessionRequest("/dashboard", codec.Issue("0000000")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAccessGate_ValidSessionPasses(t *testing.T) {
	app, codec, _ := newGateApp(t)

	resp, err := app.Test(sessionRequest("/dashboard", codec.Issue("1234567")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAccessGate_DisablingUserInvalidatesExistingTokens(t *testing.T) {
	app, codec, repo := newGateApp(t)

	token := codec.Issue("1234567")

	resp, err := app.Test(sessionRequest("/dashboard", token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, repo.Deactivate(context.Background(), "1234567"))

	resp, err = app.Test(sessionRequest("/dashboard", token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAccessGate_EmployeeBouncedFromSupervisorRoutes(t *testing.T) {
	app, codec, _ := newGateApp(t)

	resp, err := app.Test(sessionRequest("/supervisor", codec.Issue("1234567")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestAccessGate_SupervisorAllowed(t *testing.T) {
	app, codec, _ := newGateApp(t)

	resp, err := app.Test(sessionRequest("/supervisor", codec.Issue("7654321")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
