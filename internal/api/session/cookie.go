// Package session maps the signed credential to and from the HTTP session
// cookie. The attribute set used when attaching and when clearing must be
// identical: browsers ignore a clearing Set-Cookie whose path, secure flag,
// or SameSite policy differs from the original.
package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieManager issues and clears the session cookie. Production gets
// Secure + SameSite=None so cross-site frontends can send the cookie over
// HTTPS; everything else gets SameSite=Lax without Secure so local HTTP
// development works.
type CookieManager struct {
	name       string
	maxAge     time.Duration
	production bool
}

func NewCookieManager(name string, maxAge time.Duration, production bool) *CookieManager {
	if name == "" {
		name = "token"
	}
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}
	return &CookieManager{name: name, maxAge: maxAge, production: production}
}

// Name returns the configured cookie name.
func (m *CookieManager) Name() string {
	return m.name
}

// Attach sets the session cookie carrying the credential.
func (m *CookieManager) Attach(c echo.Context, credential string) {
	cookie := m.base()
	cookie.Value = credential
	cookie.MaxAge = int(m.maxAge.Seconds())
	c.SetCookie(cookie)
}

// Clear expires the session cookie using the same attribute set as Attach.
func (m *CookieManager) Clear(c echo.Context) {
	cookie := m.base()
	cookie.Value = ""
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}

// Read extracts the credential from the request. A missing cookie is the
// normal unauthenticated case, not an error.
func (m *CookieManager) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (m *CookieManager) base() *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if m.production {
		// SameSite=None requires Secure or browsers drop the cookie.
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     m.name,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.production,
		SameSite: sameSite,
	}
}
