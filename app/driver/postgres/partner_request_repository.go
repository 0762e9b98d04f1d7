package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"admin-service/app/domain"
	"admin-service/app/port"
	apperrors "admin-service/app/utils/errors"
)

// PartnerRequestRepository implements port.PartnerRequestRepository for PostgreSQL
type PartnerRequestRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewPartnerRequestRepository creates a new PostgreSQL partner request repository
func NewPartnerRequestRepository(db DatabaseIface, logger *slog.Logger) port.PartnerRequestRepository {
	return &PartnerRequestRepository{
		db:     db,
		logger: logger.With("component", "partner_request_repository"),
	}
}

// GetByID loads a partner request by its id
func (r *PartnerRequestRepository) GetByID(ctx context.Context, requestID uuid.UUID) (*domain.PartnerRequest, error) {
	query := `
		SELECT
			id, email, password, name, phone, role,
			business_name, business_type, status, created_at, approved_at, approved_by
		FROM partner_requests
		WHERE id = $1`

	request := &domain.PartnerRequest{}

	err := r.db.QueryRow(ctx, query, requestID).Scan(
		&request.ID,
		&request.Email,
		&request.Password,
		&request.Name,
		&request.Phone,
		&request.Role,
		&request.BusinessName,
		&request.BusinessType,
		&request.Status,
		&request.CreatedAt,
		&request.ApprovedAt,
		&request.ApprovedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("partner request").WithContext("request_id", requestID.String())
		}
		r.logger.Error("failed to get partner request", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("failed to get partner request: %w", err)
	}

	return request, nil
}

// MarkApproved transitions the request from pending to approved, recording
// the approval timestamp and the approving admin. The status guard in the
// WHERE clause means exactly one of two concurrent approvals can win; the
// loser sees false.
func (r *PartnerRequestRepository) MarkApproved(ctx context.Context, requestID uuid.UUID, approvedBy string) (bool, error) {
	query := `
		UPDATE partner_requests
		SET status = $2, approved_at = CURRENT_TIMESTAMP, approved_by = $3
		WHERE id = $1 AND status = $4`

	result, err := r.db.Exec(ctx, query,
		requestID,
		string(domain.PartnerRequestApproved),
		approvedBy,
		string(domain.PartnerRequestPending),
	)

	if err != nil {
		r.logger.Error("failed to mark partner request approved", "request_id", requestID, "error", err)
		return false, fmt.Errorf("failed to mark partner request approved: %w", err)
	}

	approved := result.RowsAffected() > 0
	if approved {
		r.logger.Info("partner request approved",
			"request_id", requestID,
			"approved_by", approvedBy)
	} else {
		r.logger.Warn("partner request no longer pending", "request_id", requestID)
	}

	return approved, nil
}
