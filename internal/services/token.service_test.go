package services

import (
	"testing"
	"time"

	"studytrack/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()

	service, err := NewTokenService(config.Config{JWTSecret: secret})
	require.NoError(t, err)

	return service
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService(config.Config{})
	assert.Error(t, err)
}

func TestTokenRoundtrip(t *testing.T) {
	service := newTestTokenService(t, "test-secret")
	userID := uuid.Must(uuid.NewV7())

	token, err := service.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := service.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one")
	verifier := newTestTokenService(t, "secret-two")

	token, err := issuer.Generate(uuid.Must(uuid.NewV7()))
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	service := newTestTokenService(t, "test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   uuid.Must(uuid.NewV7()).String(),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * TokenExpiry)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-TokenExpiry)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.Validate(expired)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	service := newTestTokenService(t, "test-secret")

	_, err := service.Validate("not.a.token")
	assert.Error(t, err)
}

func TestValidateRejectsNonUUIDSubject(t *testing.T) {
	service := newTestTokenService(t, "test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.Validate(token)
	assert.Error(t, err)
}
