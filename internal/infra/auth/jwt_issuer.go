// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

const defaultTokenTTL = 2 * time.Hour

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
// It signs the credentials the storefront API stub hands out at login.
type jwtIssuer struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTIssuer is the constructor for jwtIssuer.
// It takes configuration values to create a new token issuer instance.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtIssuer{
		secret: cfg.SecretKey.Access,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed HS256 token carrying the subject email and role.
func (s *jwtIssuer) Issue(email string, role entity.Role) (string, error) {
	claims := jwt.MapClaims{
		"email": email,                          // Subject email (who the token is for)
		"role":  role.String(),                  // Derived role for display-side gating
		"exp":   time.Now().Add(s.ttl).Unix(),   // Expiration Time
		"iat":   time.Now().Unix(),              // Issued At
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
