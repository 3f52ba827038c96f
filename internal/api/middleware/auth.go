package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demostore/catalog-api/internal/api/metrics"
	"github.com/demostore/catalog-api/internal/api/session"
	"github.com/demostore/catalog-api/internal/core/ports"
)

// ClaimsContextKey is where the auth gate stores the verified claims in the
// echo context. Handlers read it through handler.ClaimsFrom.
const ClaimsContextKey = "auth.claims"

// Auth is the session auth gate: it extracts the session cookie, verifies
// the credential, and injects the claims into the request context. It runs
// before any store access; there is no retry and no fallback identity.
func Auth(cookies *session.CookieManager, codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential, ok := cookies.Read(c)
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_cookie").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			claims, err := codec.Verify(credential)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}
