package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/config"
	"github.com/spec-kit/shift-board/internal/domain"
	"github.com/spec-kit/shift-board/internal/service"
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

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("4242"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]*domain.User{
		"1234567": {EmployeeID: "1234567", PinHash: string(hash), Role: domain.RoleEmployee, Active: true},
	}}
	authService := service.NewAuthService(config.SessionConfig{Secret: "test-secret", TTLHours: 168}, repo)
	handler := NewAuthHandler(authService)

	app := fiber.New()
	app.Get("/login", handler.LoginPage)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.Logout)
	return app
}

func loginForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.CookieName {
			return cookie
		}
	}
	return nil
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	app := newLoginApp(t)

	resp, err := app.Test(loginForm(url.Values{"employeeId": {"1234567"}, "pin": {"4242"}}))
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3, strings.Count(cookie.Value, ".")+1, "token is subject.millis.signature")
}

func TestLogin_FailureRedirectsWithFieldTag(t *testing.T) {
	app := newLoginApp(t)

	cases := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"malformed id", url.Values{"employeeId": {"123"}, "pin": {"4242"}}, "employeeId"},
		{"unknown id", url.Values{"employeeId": {"0000000"}, "pin": {"4242"}}, "employeeId"},
		{"wrong pin", url.Values{"employeeId": {"1234567"}, "pin": {"9999"}}, "pin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(loginForm(tc.values))
			require.NoError(t, err)

			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			location, err := url.Parse(resp.Header.Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "/login", location.Path)
			assert.Equal(t, tc.field, location.Query().Get("field"))
			assert.NotEmpty(t, location.Query().Get("error"))
			assert.Nil(t, sessionCookie(resp), "no cookie on failed login")
		})
	}
}

func TestLogout_ClearsCookieAndRedirects(t *testing.T) {
	app := newLoginApp(t)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()), "cookie must be expired")
}
