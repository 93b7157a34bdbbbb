// Package token issues and verifies the stateless session tokens. Tokens
// are HS256 JWTs carrying the user id; nothing is persisted server-side,
// so a token stays valid until its expiry with no revocation path.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"photocards-backend/pkg/apperror"
	"photocards-backend/pkg/config"
)

// devSecret signs tokens outside production. The environment split is
// deliberate: production uses the configured secret, everything else this
// fixed development key.
const devSecret = "some-secret-key"

// TTL is the token lifetime. It is longer than the login cookie max-age on
// purpose; the two lifetimes are independent.
const TTL = 7 * 24 * time.Hour

// Service signs and verifies session tokens with a single HMAC key.
type Service struct {
	secret []byte
}

// NewService selects the signing key from the runtime environment.
func NewService(cfg *config.Config) *Service {
	if cfg.IsProduction() {
		return &Service{secret: []byte(cfg.JWTSecret)}
	}
	return &Service{secret: []byte(devSecret)}
}

// Issue creates a token for userID expiring TTL from now.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"_id": userID,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a token and returns the user
// id it was issued for. Any failure is Unauthorized.
func (s *Service) Verify(tokenString string) (string, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.Unauthorized("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return "", apperror.Unauthorized("invalid or expired token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.Unauthorized("invalid token claims")
	}

	userID, ok := claims["_id"].(string)
	if !ok || userID == "" {
		return "", apperror.Unauthorized("invalid token claims")
	}
	return userID, nil
}
