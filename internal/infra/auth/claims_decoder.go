// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// claimsDecoder derives a Session by reading the claims segment of the raw
// credential. It intentionally skips signature and expiry verification: the
// result drives navigation and display only, and the remote API re-checks
// authorization on every protected call.
type claimsDecoder struct {
	parser *jwt.Parser
	logger *slog.Logger
}

// NewClaimsDecoder is the constructor for claimsDecoder.
func NewClaimsDecoder(logger *slog.Logger) service.SessionDecoder {
	return &claimsDecoder{
		parser: jwt.NewParser(),
		logger: logger,
	}
}

// Decode returns the Session carried by raw, or nil when raw is empty,
// structurally malformed, or its claims segment cannot be decoded. Decode
// never returns an error: every failure degrades to anonymous.
func (d *claimsDecoder) Decode(raw string) *entity.Session {
	if raw == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(raw, claims); err != nil {
		d.logger.Debug("Credential not decodable, treating as anonymous", "error", err)

		return nil
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return &entity.Session{
		Email: email,
		Role:  entity.RoleFromString(role),
	}
}
