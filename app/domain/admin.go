package domain

// Requests and results for the four administrative operations. Field
// presence is enforced by the usecase before any external call is made.

// DeleteAccountRequest asks for a full account deletion. userId and email
// are assumed consistent; no cross-check is performed.
type DeleteAccountRequest struct {
	UserID string `json:"userId" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

// UpdateRoleRequest changes a profile's role. The new role is a free-text
// category, not validated against an enum.
type UpdateRoleRequest struct {
	UserID  string `json:"userId" validate:"required"`
	NewRole string `json:"newRole" validate:"required"`
}

// ApprovePartnerRequest approves a pending partner application by id
type ApprovePartnerRequest struct {
	RequestID string `json:"requestId" validate:"required"`
}

// CreateStaffRequest provisions a staff account. phone, position and bio
// are optional and default to the empty string.
type CreateStaffRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
}

// OperationResult is the success payload shared by all four operations.
// UserID is set by the operations that provision a new identity.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}
