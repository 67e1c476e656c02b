package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kortex/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockAdminUserRepository is a mock implementation of AdminUserRepository
type mockAdminUserRepository struct {
	user           *models.User
	getErr         error
	pending        []models.PendingUser
	pendingErr     error
	setApprovedErr error
	approvedIDs    []int
}

func (m *mockAdminUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.user, nil
}

func (m *mockAdminUserRepository) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	if m.pendingErr != nil {
		return nil, m.pendingErr
	}
	return m.pending, nil
}

func (m *mockAdminUserRepository) SetApproved(ctx context.Context, userID int) error {
	if m.setApprovedErr != nil {
		return m.setApprovedErr
	}
	m.approvedIDs = append(m.approvedIDs, userID)
	return nil
}

func TestAdminService_ListPending(t *testing.T) {
	tests := []struct {
		name            string
		userRepo        *mockAdminUserRepository
		expectedPending []models.PendingUser
		expectAnError   bool
	}{
		{
			name: "pending users",
			userRepo: &mockAdminUserRepository{pending: []models.PendingUser{
				{ID: 2, Username: "bob"},
				{ID: 3, Username: "carol"},
			}},
			expectedPending: []models.PendingUser{
				{ID: 2, Username: "bob"},
				{ID: 3, Username: "carol"},
			},
		},
		{
			name:            "empty queue",
			userRepo:        &mockAdminUserRepository{pending: []models.PendingUser{}},
			expectedPending: []models.PendingUser{},
		},
		{
			name:          "repository error",
			userRepo:      &mockAdminUserRepository{pendingErr: errors.New("database error")},
			expectAnError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdminService(tt.userRepo, zap.NewNop())

			pending, err := svc.ListPending(context.Background())

			if tt.expectAnError {
				assert.Error(t, err)
				assert.Nil(t, pending)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPending, pending)
			}
		})
	}
}

func TestAdminService_Approve(t *testing.T) {
	tests := []struct {
		name             string
		userID           int
		userRepo         *mockAdminUserRepository
		expectedError    error
		expectAnError    bool
		expectedUsername string
	}{
		{
			name:             "approve pending user",
			userID:           2,
			userRepo:         &mockAdminUserRepository{user: &models.User{ID: 2, Username: "bob", IsApproved: false}},
			expectedUsername: "bob",
		},
		{
			name:             "re-approving an approved user succeeds",
			userID:           2,
			userRepo:         &mockAdminUserRepository{user: &models.User{ID: 2, Username: "bob", IsApproved: true}},
			expectedUsername: "bob",
		},
		{
			name:          "nonexistent user id",
			userID:        9999,
			userRepo:      &mockAdminUserRepository{getErr: models.ErrUserNotFound},
			expectedError: models.ErrUserNotFound,
			expectAnError: true,
		},
		{
			name:          "lookup error",
			userID:        2,
			userRepo:      &mockAdminUserRepository{getErr: errors.New("database error")},
			expectAnError: true,
		},
		{
			name:          "update error",
			userID:        2,
			userRepo:      &mockAdminUserRepository{user: &models.User{ID: 2, Username: "bob"}, setApprovedErr: errors.New("database error")},
			expectAnError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdminService(tt.userRepo, zap.NewNop())

			username, err := svc.Approve(context.Background(), tt.userID)

			if tt.expectAnError {
				assert.Error(t, err)
				assert.Empty(t, username)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedUsername, username)
			assert.Equal(t, []int{tt.userID}, tt.userRepo.approvedIDs)
		})
	}
}
