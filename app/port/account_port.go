package port

//go:generate mockgen -source=account_port.go -destination=../mocks/mock_account_port.go -package=mocks

import (
	"context"

	"admin-service/app/domain"

	"github.com/google/uuid"
)

// AccountRepository defines profile record data access
type AccountRepository interface {
	GetProfileByID(ctx context.Context, userID string) (*domain.UserProfile, error)
	InsertProfile(ctx context.Context, profile *domain.UserProfile) error
	UpdateRole(ctx context.Context, userID, role string) error

	// DeleteAccountRecords removes the profile row, every partner request
	// matching the email and the pending-seller row in one transaction.
	DeleteAccountRecords(ctx context.Context, userID, email string) error
}

// PartnerRequestRepository defines partner request data access
type PartnerRequestRepository interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (*domain.PartnerRequest, error)

	// MarkApproved transitions the request from pending to approved and
	// records the approving admin. It returns false when the request was
	// no longer pending, so concurrent approvals cannot both win.
	MarkApproved(ctx context.Context, requestID uuid.UUID, approvedBy string) (bool, error)
}
