package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Well-known profile roles. The role column is free text; these are the
// values the admin operations assign or check for.
const (
	RoleAdmin         = "admin"
	RoleAdministrator = "administrator"
	RoleCoreStaff     = "core_staff"
	RoleSeller        = "seller"
)

// IsAdminRole reports whether a profile role grants admin privilege
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleAdministrator
}

// NormalizeRole lowercases a caller-supplied role value
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// Permissions holds per-profile permission flags
type Permissions map[string]bool

// PermCanViewDashboard is granted to every staff account on creation
const PermCanViewDashboard = "can_view_dashboard"

// UserProfile represents a user profile record in the store.
// It is keyed by the identity-service account id.
type UserProfile struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Role         string      `json:"role"`
	Position     string      `json:"position,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	BusinessName *string     `json:"business_name,omitempty"`
	BusinessType *string     `json:"business_type,omitempty"`
	Permissions  Permissions `json:"permissions,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// NewStaffProfile builds the profile record for a freshly created staff
// account. Optional fields default to the empty string.
func NewStaffProfile(identityID string, req *CreateStaffRequest) *UserProfile {
	now := time.Now()
	return &UserProfile{
		ID:       identityID,
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     RoleCoreStaff,
		Position: req.Position,
		Bio:      req.Bio,
		Permissions: Permissions{
			PermCanViewDashboard: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewPartnerProfile builds the profile record for an approved partner
// request, copying the applicant's contact and business metadata.
func NewPartnerProfile(identityID string, req *PartnerRequest) *UserProfile {
	now := time.Now()
	return &UserProfile{
		ID:           identityID,
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.NormalizedRole(),
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the profile's role grants admin privilege
func (p *UserProfile) IsAdmin() bool {
	return IsAdminRole(p.Role)
}

// ValidateEmail checks that an email address is well formed
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}
