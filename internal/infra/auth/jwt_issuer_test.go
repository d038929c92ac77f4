package auth

import (
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_IssueSignsVerifiableToken(t *testing.T) {
	cfg := testConfig()
	issuer, err := NewJWTIssuer(cfg)
	require.NoError(t, err)

	token, err := issuer.Issue("user@example.com", entity.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The stub signs with HS256; verify with the same secret.
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(cfg.SecretKey.Access), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user@example.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
	assert.Contains(t, claims, "exp")
}

func TestJWTIssuer_RequiresSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(&config.Config{})

	assert.Error(t, err)
	assert.Nil(t, issuer)
}
