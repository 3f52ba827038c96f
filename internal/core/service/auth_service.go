package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/demostore/catalog-api/internal/core/domain"
	"github.com/demostore/catalog-api/internal/core/ports"
)

// AuthService validates credentials and mints session tokens.
type AuthService struct {
	verifier ports.CredentialVerifier
	codec    ports.TokenCodec
	logger   zerolog.Logger
}

func NewAuthService(verifier ports.CredentialVerifier, codec ports.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{verifier: verifier, codec: codec, logger: logger}
}

// Login checks the credentials and, on success, returns a signed session
// token carrying the email claim. Any mismatch yields the generic
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Claims, error) {
	if email == "" || password == "" {
		return "", domain.Claims{}, domain.ErrInvalidCredentials
	}

	if err := s.verifier.Verify(ctx, email, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", domain.Claims{}, domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("credential verification failed")
		return "", domain.Claims{}, err
	}

	claims := domain.Claims{Email: email}
	token, err := s.codec.Issue(claims)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign session token")
		return "", domain.Claims{}, err
	}

	s.logger.Info().Str("email", email).Msg("login succeeded")
	return token, claims, nil
}

// DemoVerifier matches a single fixed principal. It stands in for a real
// user store during demos; comparison is constant-time on both fields and
// the failure never reveals which one mismatched.
type DemoVerifier struct {
	email    string
	password string
}

func NewDemoVerifier(email, password string) *DemoVerifier {
	return &DemoVerifier{email: email, password: password}
}

func (v *DemoVerifier) Verify(_ context.Context, email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password))
	if emailOK&passOK != 1 {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// UserStoreVerifier checks credentials against a persistent user store with
// bcrypt password hashes. A missing user and a wrong password fail the same
// way.
type UserStoreVerifier struct {
	repo ports.UserRepository
}

func NewUserStoreVerifier(repo ports.UserRepository) *UserStoreVerifier {
	return &UserStoreVerifier{repo: repo}
}

func (v *UserStoreVerifier) Verify(ctx context.Context, email, password string) error {
	user, err := v.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
