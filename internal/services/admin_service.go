package services

import (
	"context"

	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// AdminUserRepository is the interface that wraps methods for User table data access used by the admin service
type AdminUserRepository interface {
	// Method GetByID retrieves a user by ID.
	//
	// "userID" parameter is used to retrieve a user by ID.
	//
	// If user with such ID does not exist, models.ErrUserNotFound will be returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method ListPending retrieves all users waiting for administrator approval.
	//
	// If some error occurs, the error will be returned together with "nil" value.
	ListPending(ctx context.Context) ([]models.PendingUser, error)
	// Method SetApproved marks a user as approved.
	//
	// "userID" parameter is used to identify the user to approve.
	//
	// If some error occurs, the error will be returned.
	SetApproved(ctx context.Context, userID int) error
}

// adminService implements AdminService
type adminService struct {
	userRepo AdminUserRepository
	logger   *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo AdminUserRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListPending retrieves the approval queue
func (s *adminService) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	return s.userRepo.ListPending(ctx)
}

// Approve marks the user with the given id as approved and returns its username.
// Approval is terminal: there is no path back to pending. Approving an already
// approved user re-sets the flag and succeeds.
func (s *adminService) Approve(ctx context.Context, userID int) (string, error) {
	// Existence check first: an UPDATE on an already-true flag reports zero
	// changed rows on MySQL, which must not be mistaken for a missing user.
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.SetApproved(ctx, user.ID); err != nil {
		return "", err
	}

	s.logger.Info("user approved", zap.Int("userID", user.ID), zap.String("username", user.Username))
	return user.Username, nil
}
