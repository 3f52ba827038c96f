package ports

import (
	"context"

	"github.com/demostore/catalog-api/internal/core/domain"
)

// CredentialVerifier checks a login attempt against some credential source.
// Implementations exist for the fixed demo principal and for a persistent
// user store; swapping one for the other must not touch the token codec or
// the auth gate.
type CredentialVerifier interface {
	// Verify returns nil when email and password match a known principal,
	// domain.ErrInvalidCredentials otherwise.
	Verify(ctx context.Context, email, password string) error
}

// TokenCodec issues and verifies the signed session credential.
type TokenCodec interface {
	Issue(claims domain.Claims) (string, error)
	// Verify returns the embedded claims, or domain.ErrInvalidToken on any
	// signature, format, or expiry failure.
	Verify(token string) (domain.Claims, error)
}

// AuthService implements the login use-case: validate credentials, mint a
// session token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, claims domain.Claims, err error)
}

// UserRepository is the persistence port behind the user-store verifier.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
