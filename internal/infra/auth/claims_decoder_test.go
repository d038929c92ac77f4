package auth

import (
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClaimsDecoder_DecodesIssuedToken(t *testing.T) {
	issuer, err := NewJWTIssuer(testConfig())
	require.NoError(t, err)

	token, err := issuer.Issue("admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)

	decoder := NewClaimsDecoder(testLogger())
	session := decoder.Decode(token)

	require.NotNil(t, session)
	assert.Equal(t, "admin@example.com", session.Email)
	assert.Equal(t, entity.RoleAdmin, session.Role)
	assert.True(t, session.IsAdmin())
}

func TestClaimsDecoder_EmptyCredentialIsAnonymous(t *testing.T) {
	decoder := NewClaimsDecoder(testLogger())

	assert.Nil(t, decoder.Decode(""))
}

func TestClaimsDecoder_MalformedCredentialIsAnonymous(t *testing.T) {
	decoder := NewClaimsDecoder(testLogger())

	// No claims segment at all.
	assert.Nil(t, decoder.Decode("abc"))
	// Segments present but not decodable as claims.
	assert.Nil(t, decoder.Decode("aa.bb.cc"))
	// Decodable base64 that is not a JSON mapping.
	garbage := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	assert.Nil(t, decoder.Decode("header."+garbage+".sig"))
}

func TestClaimsDecoder_MissingClaimsDefault(t *testing.T) {
	// Hand-built token with an empty claims object: email defaults to "",
	// role defaults to user.
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{}`))

	decoder := NewClaimsDecoder(testLogger())
	session := decoder.Decode(header + "." + payload + ".sig")

	require.NotNil(t, session)
	assert.Empty(t, session.Email)
	assert.Equal(t, entity.RoleUser, session.Role)
}

func TestClaimsDecoder_UnknownRoleFallsBackToUser(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"email":"a@b.c","role":"superuser"}`))

	decoder := NewClaimsDecoder(testLogger())
	session := decoder.Decode(header + "." + payload + ".sig")

	require.NotNil(t, session)
	assert.Equal(t, entity.RoleUser, session.Role)
}
