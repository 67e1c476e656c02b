package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kortex/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedDefaultAdmin(t *testing.T) {
	t.Run("creates admin when missing", func(t *testing.T) {
		userRepo := &mockUserRepository{existsResult: false}

		err := SeedDefaultAdmin(context.Background(), userRepo, "admin", "admin123", zap.NewNop())
		require.NoError(t, err)

		require.Len(t, userRepo.created, 1)
		admin := userRepo.created[0]
		assert.Equal(t, "admin", admin.Username)
		assert.True(t, admin.IsAdmin)
		assert.True(t, admin.IsApproved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
	})

	t.Run("no-op when admin exists", func(t *testing.T) {
		userRepo := &mockUserRepository{existsResult: true}

		err := SeedDefaultAdmin(context.Background(), userRepo, "admin", "admin123", zap.NewNop())
		require.NoError(t, err)
		assert.Empty(t, userRepo.created)
	})

	t.Run("losing the seed race is not an error", func(t *testing.T) {
		userRepo := &mockUserRepository{existsResult: false, createErr: models.ErrUsernameTaken}

		err := SeedDefaultAdmin(context.Background(), userRepo, "admin", "admin123", zap.NewNop())
		assert.NoError(t, err)
	})

	t.Run("existence check error", func(t *testing.T) {
		userRepo := &mockUserRepository{existsErr: errors.New("database error")}

		err := SeedDefaultAdmin(context.Background(), userRepo, "admin", "admin123", zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("create error", func(t *testing.T) {
		userRepo := &mockUserRepository{existsResult: false, createErr: errors.New("database error")}

		err := SeedDefaultAdmin(context.Background(), userRepo, "admin", "admin123", zap.NewNop())
		assert.Error(t, err)
	})
}
