package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaultAdmin ensures the bootstrap administrator account exists.
// It runs once at process start, guarded by an existence check, so restarting
// the server never duplicates or resets the account. The seeded admin is
// created approved so it can log in immediately after first startup.
func SeedDefaultAdmin(ctx context.Context, userRepo UserRepository, username, password string, logger *zap.Logger) error {
	exists, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check admin existence: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		IsAdmin:      true,
		IsApproved:   true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// Another instance won the seed race; the account exists either way
		if errors.Is(err, models.ErrUsernameTaken) {
			return nil
		}
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("seeded default admin account", zap.String("username", username))
	return nil
}
