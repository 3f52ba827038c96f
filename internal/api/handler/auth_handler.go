package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demostore/catalog-api/internal/api/metrics"
	"github.com/demostore/catalog-api/internal/api/session"
	"github.com/demostore/catalog-api/internal/core/domain"
	"github.com/demostore/catalog-api/internal/core/ports"
)

// AuthHandler serves login, logout, and the identity echo. Sessions are a
// signed cookie; the server keeps no session state.
type AuthHandler struct {
	authService ports.AuthService
	cookies     *session.CookieManager
}

func NewAuthHandler(authService ports.AuthService, cookies *session.CookieManager) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// Login validates credentials and issues the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  identityResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, claims, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	h.cookies.Attach(c, token)
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, identityResponse{Email: claims.Email})
}

// Logout clears the session cookie. Unconditional: it succeeds whether or
// not a valid session existed, so calling it twice is fine.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Me echoes the authenticated identity. The route sits behind the same auth
// gate as the catalog, so verification happens exactly once, in one place.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := ClaimsFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identityResponse{Email: claims.Email})
}
