package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret", Issuer: "test-issuer"}

	generator, err := NewJWTGenerator(cfg, time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "user@example.com")
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestJWTValidator_WrongSecret(t *testing.T) {
	generator, err := NewJWTGenerator(JWTConfig{SecretKey: "secret-a"}, time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(JWTConfig{SecretKey: "secret-b"})
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "")
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_ExpiredToken(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret"}
	generator, err := NewJWTGenerator(cfg, -time.Minute)
	require.NoError(t, err)
	validator, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "")
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTValidator_WrongIssuer(t *testing.T) {
	generator, err := NewJWTGenerator(JWTConfig{SecretKey: "test-secret", Issuer: "other"}, time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(JWTConfig{SecretKey: "test-secret", Issuer: "expected"})
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "")
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_MissingToken(t *testing.T) {
	validator, err := NewJWTValidator(JWTConfig{SecretKey: "test-secret"})
	require.NoError(t, err)

	_, err = validator.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestJWTValidator_BearerPrefixStripped(t *testing.T) {
	cfg := JWTConfig{SecretKey: "test-secret"}
	generator, err := NewJWTGenerator(cfg, time.Hour)
	require.NoError(t, err)
	validator, err := NewJWTValidator(cfg)
	require.NoError(t, err)

	token, err := generator.GenerateToken("user123", "")
	require.NoError(t, err)

	claims, err := validator.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user123", claims.UserID)
}

func TestNewJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}

func TestUserContextRoundTrip(t *testing.T) {
	ctx := SetUserInContext(context.Background(), &UserContext{UserID: "user123", Email: "u@example.com"})

	user, err := GetUserFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user123", user.UserID)

	_, err = GetUserFromContext(context.Background())
	assert.Error(t, err)
}
