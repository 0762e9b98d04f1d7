package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartnerRequestStatus represents the lifecycle state of a partner request
type PartnerRequestStatus string

const (
	PartnerRequestPending  PartnerRequestStatus = "pending"
	PartnerRequestApproved PartnerRequestStatus = "approved"
)

// PartnerRequest is an applicant record awaiting admin approval to become
// a seller/partner account. Created by the storefront, out of scope here;
// this service only reads it and transitions pending -> approved.
//
// The password is stored in plaintext by the upstream application flow and
// read exactly once at approval time to seed the identity account.
type PartnerRequest struct {
	ID           uuid.UUID            `json:"id"`
	Email        string               `json:"email"`
	Password     string               `json:"-"`
	Name         string               `json:"name"`
	Phone        string               `json:"phone"`
	Role         string               `json:"role"`
	BusinessName *string              `json:"business_name,omitempty"`
	BusinessType *string              `json:"business_type,omitempty"`
	Status       PartnerRequestStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
	ApprovedAt   *time.Time           `json:"approved_at,omitempty"`
	ApprovedBy   *string              `json:"approved_by,omitempty"`
}

// IsPending reports whether the request is still awaiting approval.
// Any status other than "pending" blocks approval, including values set
// externally that this service never writes.
func (r *PartnerRequest) IsPending() bool {
	return r.Status == PartnerRequestPending
}

// NormalizedRole returns the requested role lowercased for storage
func (r *PartnerRequest) NormalizedRole() string {
	return NormalizeRole(r.Role)
}

// PendingSeller is the secondary applicant record keyed by email,
// cleaned up when the account is deleted.
type PendingSeller struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
