package domain

// Identity represents an account in the external identity service,
// keyed by a service-assigned identifier.
type Identity struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	AdminClaim bool   `json:"admin_claim"`
}

// Caller is the authenticated principal attached to an incoming request.
// AdminClaim mirrors the admin flag embedded in the caller's credential by
// the identity service; it is checked independently of the profile role.
type Caller struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	SessionID  string `json:"session_id"`
	AdminClaim bool   `json:"admin_claim"`
}

// CreateIdentityRequest carries the credentials for a new identity account
type CreateIdentityRequest struct {
	Email    string
	Password string
	Name     string
}
