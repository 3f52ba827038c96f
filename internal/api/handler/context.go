package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demostore/catalog-api/internal/api/middleware"
	"github.com/demostore/catalog-api/internal/core/domain"
)

// ClaimsFrom extracts the identity injected by the auth gate. An empty
// result means the middleware did not run on this route, which is a wiring
// bug, so handlers fail closed with 401 rather than proceed anonymous.
func ClaimsFrom(c echo.Context) (domain.Claims, error) {
	claims, ok := c.Get(middleware.ClaimsContextKey).(domain.Claims)
	if !ok || claims.Email == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return claims, nil
}
