package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tests := []struct {
		name         string
		secret       string
		accessExpiry time.Duration
	}{
		{
			name:         "standard initialization",
			secret:       "test-secret-key",
			accessExpiry: 24 * time.Hour,
		},
		{
			name:         "short expiry",
			secret:       "short-secret",
			accessExpiry: 1 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := NewTokenGenerator(tt.secret, tt.accessExpiry)

			assert.NotNil(t, tg)
			assert.Equal(t, tt.secret, tg.secret)
			assert.Equal(t, tt.accessExpiry, tg.accessTokenExpiry)
		})
	}
}

func TestTokenGenerator_Generate(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, 24*time.Hour)

	t.Run("success", func(t *testing.T) {
		token, err := tg.Generate("bob")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		// JWT tokens should have 3 parts separated by dots
		parts := strings.Split(token, ".")
		assert.Len(t, parts, 3)
	})

	t.Run("round trip preserves subject", func(t *testing.T) {
		token, err := tg.Generate("alice")
		require.NoError(t, err)

		username, err := tg.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("token uniqueness", func(t *testing.T) {
		token1, err := tg.Generate("bob")
		require.NoError(t, err)

		// Wait to ensure different iat timestamp
		time.Sleep(1 * time.Second)

		token2, err := tg.Generate("bob")
		require.NoError(t, err)

		// Tokens should be different even for the same subject (due to iat timestamp)
		assert.NotEqual(t, token1, token2)
	})
}

func TestTokenGenerator_Validate(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, 24*time.Hour)

	t.Run("expired token", func(t *testing.T) {
		expiredGen := NewTokenGenerator(secret, -1*time.Hour)
		token, err := expiredGen.Generate("bob")
		require.NoError(t, err)

		_, err = tg.Validate(token)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		otherGen := NewTokenGenerator("another-secret", 24*time.Hour)
		token, err := otherGen.Generate("bob")
		require.NoError(t, err)

		_, err = tg.Validate(token)
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := tg.Validate("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := tg.Validate("")
		assert.Error(t, err)
	})

	t.Run("missing subject claim", func(t *testing.T) {
		claims := jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
			"iat": time.Now().Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = tg.Validate(token)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "subject")
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg "none" must be rejected
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "bob",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tg.Validate(token)
		assert.Error(t, err)
	})

	t.Run("subject resolves within validity window", func(t *testing.T) {
		shortGen := NewTokenGenerator(secret, 2*time.Second)
		token, err := shortGen.Generate("carol")
		require.NoError(t, err)

		username, err := tg.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "carol", username)

		time.Sleep(3 * time.Second)

		_, err = tg.Validate(token)
		assert.Error(t, err)
	})
}
