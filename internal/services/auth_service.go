package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kortex/backend/internal/auth"
	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" parameter is used to create a new user.
	//
	// If the username is already taken, models.ErrUsernameTaken will be returned.
	// If some other error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username (case-sensitive exact match).
	//
	// "username" parameter is used to retrieve a user by username.
	//
	// If user with such username does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	//
	// "username" parameter is used to check if a user with such username exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// authService implements AuthService
type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo UserRepository,
	tokenGenerator *auth.TokenGenerator,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Register creates a new user account waiting for administrator approval.
// The username is stored verbatim and matched case-sensitively. Registration
// never logs the user in.
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return models.ErrUsernameTaken
	}

	// Hash password with a fresh salt
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		IsAdmin:      false,
		IsApproved:   false, // waiting for administrator approval
	}

	// A concurrent registration with the same username loses at the unique
	// index and is reported by the repository as models.ErrUsernameTaken.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	return nil
}

// Login authenticates a user and issues an access token.
// Unknown username and wrong password produce the same error. A correct
// password on an unapproved account is reported as pending approval.
func (s *authService) Login(ctx context.Context, username, password string) (string, bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", false, models.ErrInvalidCredentials
		}
		return "", false, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", false, models.ErrInvalidCredentials
	}

	// Approval gate: correct credentials are not enough until an admin approves
	if !user.IsApproved {
		return "", false, models.ErrPendingApproval
	}

	token, err := s.tokenGenerator.Generate(user.Username)
	if err != nil {
		return "", false, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user.IsAdmin, nil
}
