package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)

	token, err := service.Issue("user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	email, err := service.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenService_Expiry(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)

	token, _ := service.Issue("user@example.com")

	// Issued tokens carry an expiry 24h out
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &jwt.RegisteredClaims{})
	assert.NoError(t, err)
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	t.Run("Expired token rejected", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.Issue("user@example.com")
		assert.NoError(t, err)

		_, err = expired.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Just inside expiry accepted", func(t *testing.T) {
		short := NewTokenService("test-secret", time.Minute)
		token, _ := short.Issue("user@example.com")

		_, err := short.Validate(token)
		assert.NoError(t, err)
	})
}

func TestTokenService_Invalid(t *testing.T) {
	service := NewTokenService("test-secret", 24*time.Hour)

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", 24*time.Hour)
		token, _ := other.Issue("user@example.com")

		_, err := service.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Malformed token", func(t *testing.T) {
		_, err := service.Validate("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Missing subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))

		_, err := service.Validate(token)
		assert.Error(t, err)
	})

	t.Run("Unexpected signing method", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "user@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)

		_, err := service.Validate(token)
		assert.Error(t, err)
	})
}
