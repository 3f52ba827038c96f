package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/demostore/catalog-api/internal/core/domain"
)

// TokenCodec signs and verifies session tokens. It is stateless: a token is
// a pure function of the secret, the claims, and the clock.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL returns the configured token lifetime. The session cookie max-age is
// derived from the same value so the two cannot drift.
func (t *TokenCodec) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token carrying the claims plus issue and expiry times.
func (t *TokenCodec) Issue(claims domain.Claims) (string, error) {
	now := t.now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(t.ttl).Unix(),
	})
	return tok.SignedString(t.secret)
}

// Verify parses and validates a token. Every failure mode — bad signature,
// malformed encoding, wrong secret, expiry — collapses into the single
// domain.ErrInvalidToken so callers cannot distinguish them.
func (t *TokenCodec) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	return domain.Claims{Email: email}, nil
}
