package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)

	// The token must be valid for the full configured window.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, TokenExpiry-time.Minute)
	assert.LessOrEqual(t, remaining, TokenExpiry)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	// Sign an already-expired token with the same secret.
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.ErrorIs(t, err, errors.ErrExpiredToken)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"tampered payload", token[:len(token)-3] + "xxx"},
		{"wrong secret", mustSign(t, "other-secret", userID)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, errors.ErrInvalidToken)
		})
	}
}

func mustSign(t *testing.T, secret string, userID uuid.UUID) string {
	t.Helper()
	other := NewJWTService(secret)
	token, err := other.GenerateToken(userID)
	require.NoError(t, err)
	return token
}
