package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"admin-service/app/domain"
	"admin-service/app/port"
	apperrors "admin-service/app/utils/errors"
)

// AccountRepository implements port.AccountRepository for PostgreSQL
type AccountRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db DatabaseIface, logger *slog.Logger) port.AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger.With("component", "account_repository"),
	}
}

// GetProfileByID loads a user profile by its identity id
func (r *AccountRepository) GetProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT
			id, email, name, phone, role, position, bio,
			business_name, business_type, permissions, created_at, updated_at
		FROM users
		WHERE id = $1`

	profile := &domain.UserProfile{}
	var permissions []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Name,
		&profile.Phone,
		&profile.Role,
		&profile.Position,
		&profile.Bio,
		&profile.BusinessName,
		&profile.BusinessType,
		&permissions,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user profile").WithContext("user_id", userID)
		}
		r.logger.Error("failed to get user profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	if len(permissions) > 0 {
		if err := json.Unmarshal(permissions, &profile.Permissions); err != nil {
			return nil, fmt.Errorf("failed to decode permissions: %w", err)
		}
	}

	return profile, nil
}

// InsertProfile stores a new user profile record
func (r *AccountRepository) InsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO users (
			id, email, name, phone, role, position, bio,
			business_name, business_type, permissions, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`

	var permissions []byte
	if len(profile.Permissions) > 0 {
		encoded, err := json.Marshal(profile.Permissions)
		if err != nil {
			return fmt.Errorf("failed to encode permissions: %w", err)
		}
		permissions = encoded
	}

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.Name,
		profile.Phone,
		profile.Role,
		profile.Position,
		profile.Bio,
		profile.BusinessName,
		profile.BusinessType,
		permissions,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.logger.Error("failed to insert user profile",
			"user_id", profile.ID,
			"email", profile.Email,
			"error", err)
		return fmt.Errorf("failed to insert user profile: %w", err)
	}

	r.logger.Info("user profile created",
		"user_id", profile.ID,
		"role", profile.Role)
	return nil
}

// UpdateRole sets the profile's role and a server-assigned update timestamp
func (r *AccountRepository) UpdateRole(ctx context.Context, userID, role string) error {
	query := `UPDATE users SET role = $2, updated_at = CURRENT_TIMESTAMP WHERE id = $1`

	result, err := r.db.Exec(ctx, query, userID, role)
	if err != nil {
		r.logger.Error("failed to update user role", "user_id", userID, "error", err)
		return fmt.Errorf("failed to update user role: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user profile %s does not exist", userID)
	}

	r.logger.Info("user role updated", "user_id", userID, "role", role)
	return nil
}

// DeleteAccountRecords removes every store record belonging to an account
// in one transaction: the profile row by id, all partner requests matching
// the email, and the pending-seller row keyed by the email. Absent rows
// are no-ops, so repeated deletion of the same account succeeds.
func (r *AccountRepository) DeleteAccountRecords(ctx context.Context, userID, email string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		r.logger.Error("failed to delete user profile", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete user profile: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM partner_requests WHERE email = $1`, email); err != nil {
		r.logger.Error("failed to delete partner requests", "email", email, "error", err)
		return fmt.Errorf("failed to delete partner requests: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM pending_sellers WHERE email = $1`, email); err != nil {
		r.logger.Error("failed to delete pending seller", "email", email, "error", err)
		return fmt.Errorf("failed to delete pending seller: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}

	r.logger.Info("account records deleted", "user_id", userID, "email", email)
	return nil
}
