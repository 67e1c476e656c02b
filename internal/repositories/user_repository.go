package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/kortex/backend/internal/models"
	"go.uber.org/zap"
)

// mysqlErrDuplicateEntry is the MySQL error number for unique constraint violations
const mysqlErrDuplicateEntry = 1062

// userRepository implements the user repository interfaces declared in services
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database.
// A duplicate username, including one lost to a concurrent registration at the
// unique index, is reported as models.ErrUsernameTaken.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash, is_admin, is_approved)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash, user.IsAdmin, user.IsApproved)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return models.ErrUsernameTaken
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByUsername retrieves a user by username (case-sensitive exact match)
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, is_admin, is_approved
		FROM users
		WHERE username = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.IsApproved,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, is_admin, is_approved
		FROM users
		WHERE id = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.IsApproved,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by id", zap.Error(err), zap.Int("userID", userID))
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ExistsByUsername checks if a user exists with the given username
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE username = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check username existence", zap.Error(err), zap.String("username", username))
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}

// ListPending retrieves all users waiting for administrator approval
func (r *userRepository) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	query := `
		SELECT id, username
		FROM users
		WHERE is_approved = FALSE
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list pending users", zap.Error(err))
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	defer rows.Close()

	pending := []models.PendingUser{}
	for rows.Next() {
		var user models.PendingUser
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			r.logger.Error("failed to scan pending user", zap.Error(err))
			return nil, fmt.Errorf("failed to scan pending user: %w", err)
		}
		pending = append(pending, user)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate pending users", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate pending users: %w", err)
	}

	return pending, nil
}

// SetApproved marks a user as approved.
// Re-approving an already approved user re-sets the flag and succeeds.
func (r *userRepository) SetApproved(ctx context.Context, userID int) error {
	query := `UPDATE users SET is_approved = TRUE WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to approve user", zap.Error(err), zap.Int("userID", userID))
		return fmt.Errorf("failed to approve user: %w", err)
	}

	return nil
}
