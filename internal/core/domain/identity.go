package domain

import (
	"errors"
	"time"
)

var (
	// ErrNotAuthenticated means no credential accompanied the request.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidToken covers every credential failure: bad signature,
	// malformed encoding, wrong secret, or expiry. Callers must not be able
	// to tell these apart.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidCredentials is the single login failure; it does not reveal
	// which of email or password mismatched.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Claims is the authenticated identity carried inside a session token and
// injected into the request context by the auth gate.
type Claims struct {
	Email string `json:"email"`
}

// User is an account in the persistent user store. Only used when the
// service is configured with the mongo credential backend.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
