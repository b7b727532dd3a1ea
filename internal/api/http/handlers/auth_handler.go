package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-board/internal/api/dto"
	"github.com/spec-kit/shift-board/internal/auth"
	"github.com/spec-kit/shift-board/internal/service"
)

// AuthHandler exposes the sign-in and sign-out flow.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// LoginPage handles GET /login. It echoes the error and field-to-focus query
// params a failed POST redirected here with; the form renderer uses the
// field to place focus.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(dto.LoginPageResponse{
		Error: c.Query("error"),
		Field: c.Query("field"),
	})
}

// Login handles POST /login. Success sets the session cookie and redirects
// to the dashboard; a failed attempt redirects back to the login page with
// the error in the query string, matching the form flow.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	_, token, err := h.auth.Login(c.Context(), req.EmployeeID, req.Pin)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			return redirectToLogin(c, authErr)
		}
		return err
	}

	setSessionCookie(c, token)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout handles POST /logout: clears the cookie and returns to the login
// page. The token itself stays valid until it expires; there is nothing
// server-side to revoke.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func redirectToLogin(c *fiber.Ctx, authErr *service.AuthError) error {
	query := url.Values{}
	query.Set("error", authErr.Message)
	query.Set("field", authErr.Field)
	return c.Redirect("/login?"+query.Encode(), fiber.StatusSeeOther)
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
	})
}
