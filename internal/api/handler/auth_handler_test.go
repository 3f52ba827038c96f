package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/demostore/catalog-api/internal/api/middleware"
	"github.com/demostore/catalog-api/internal/api/session"
	"github.com/demostore/catalog-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, email, password string) (string, domain.Claims, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, domain.Claims, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthTestEnv() (*echo.Echo, *session.CookieManager) {
	e := echo.New()
	e.Validator = NewValidator()
	return e, session.NewCookieManager("token", time.Hour, false)
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, cookies := newAuthTestEnv()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, domain.Claims, error) {
			if email != "demo@example.com" || password != "password123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "signed-token", domain.Claims{Email: email}, nil
		},
	}
	h := NewAuthHandler(stub, cookies)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"demo@example.com","password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "demo@example.com" {
		t.Fatalf("expected email echo, got %+v", resp)
	}

	cookie := responseCookie(rec, "token")
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("cookie carries wrong credential: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie must be http-only")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, cookies := newAuthTestEnv()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, domain.Claims, error) {
			return "", domain.Claims{}, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, cookies)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"demo@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if responseCookie(rec, "token") != nil {
		t.Fatalf("no cookie may be set on failed login")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e, cookies := newAuthTestEnv()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, domain.Claims, error) {
			t.Fatalf("should not be called")
			return "", domain.Claims{}, nil
		},
	}
	h := NewAuthHandler(stub, cookies)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"demo@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	e, cookies := newAuthTestEnv()
	h := NewAuthHandler(&stubAuthService{}, cookies)

	// Logout never consults the session; two calls in a row both succeed.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.Logout(c); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("logout %d: expected 200, got %d", i, rec.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if resp["success"] != true {
			t.Fatalf("logout %d: expected success:true, got %+v", i, resp)
		}

		cookie := responseCookie(rec, "token")
		if cookie == nil || cookie.MaxAge != -1 {
			t.Fatalf("logout %d: expected expiring cookie, got %+v", i, cookie)
		}
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e, cookies := newAuthTestEnv()
	h := NewAuthHandler(&stubAuthService{}, cookies)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ClaimsContextKey, domain.Claims{Email: "demo@example.com"})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "demo@example.com" {
		t.Fatalf("expected identity echo, got %+v", resp)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	e, cookies := newAuthTestEnv()
	h := NewAuthHandler(&stubAuthService{}, cookies)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Me(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
