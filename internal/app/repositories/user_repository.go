package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learnsmart/learnsmart/internal/app/models"
	"github.com/learnsmart/learnsmart/internal/pkg/apperrors"
	"github.com/learnsmart/learnsmart/internal/pkg/dberrors"
	"github.com/learnsmart/learnsmart/internal/pkg/logger"
)

const userColumns = `id, email, password, full_name, role_type, spanish_level,
	subscription_tier, lessons_this_month, is_active, created_at, updated_at, last_login_at`

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	var level *string
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FullName, &user.RoleType,
		&level, &user.Subscription, &user.LessonsThisMonth, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt)
	if err != nil {
		return nil, err
	}
	if level != nil {
		user.SpanishLevel = models.Level(*level)
	}
	return user, nil
}

// CreateUser creates a new user and returns the assigned id
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, full_name, role_type, subscription_tier, lessons_this_month, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		user.Email, user.Password, user.FullName, user.RoleType,
		user.Subscription, user.LessonsThisMonth, user.IsActive).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $1 WHERE id = $2`, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// UpdateSpanishLevel persists the level assigned by the placement test
func (r *UserRepository) UpdateSpanishLevel(ctx context.Context, userID int64, level models.Level) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET spanish_level = $1, updated_at = NOW() WHERE id = $2`,
		string(level), userID)
	if err != nil {
		return fmt.Errorf("error updating spanish level: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateSubscription changes a user's subscription tier
func (r *UserRepository) UpdateSubscription(ctx context.Context, userID int64, tier models.SubscriptionTier) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET subscription_tier = $1, updated_at = NOW() WHERE id = $2`,
		tier, userID)
	if err != nil {
		return fmt.Errorf("error updating subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, userID int64, role models.RoleType) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET role_type = $1, updated_at = NOW() WHERE id = $2`,
		role, userID)
	if err != nil {
		return fmt.Errorf("error updating role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// IncrementLessonsThisMonth bumps the monthly usage counter inside a
// transaction and returns the new value.
func (r *UserRepository) IncrementLessonsThisMonth(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		UPDATE users SET lessons_this_month = lessons_this_month + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING lessons_this_month`, userID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, fmt.Errorf("error incrementing monthly usage: %w", err)
	}
	return count, nil
}

// ResetMonthlyUsage zeroes every user's lessons_this_month counter.
// Called by the scheduler on the first day of each month.
func (r *UserRepository) ResetMonthlyUsage(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET lessons_this_month = 0, updated_at = NOW()
		WHERE lessons_this_month > 0`)
	if err != nil {
		return 0, fmt.Errorf("error resetting monthly usage: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// CountByRole counts users with the given role
func (r *UserRepository) CountByRole(ctx context.Context, role models.RoleType) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role_type = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return count, nil
}

// CountPaidSubscribers counts users on a paid tier
func (r *UserRepository) CountPaidSubscribers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE subscription_tier IN ($1, $2)`,
		models.TierPro, models.TierLifetime).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting paid subscribers: %w", err)
	}
	return count, nil
}

// CountUsers counts all registered users
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// ListUsers returns a page of users, most recently created first
func (r *UserRepository) ListUsers(ctx context.Context, offset uint64, limit int) ([]*models.User, error) {
	sql, args, err := r.sb.Select(
		"id", "email", "full_name", "role_type", "subscription_tier", "created_at").
		From("users").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list recent users query")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.FullName, &user.RoleType,
			&user.Subscription, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
