package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"admin-service/app/domain"
)

// IdentityClient defines the low-level identity-service driver interface
// (implemented by the Kratos adapter).
type IdentityClient interface {
	CreateIdentity(ctx context.Context, req *domain.CreateIdentityRequest) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, identityID string) error
	SetAdminClaim(ctx context.Context, identityID string, admin bool) error
	ResolveSession(ctx context.Context, sessionToken string) (*domain.Caller, error)
	Health(ctx context.Context) error
}

// IdentityGateway defines the identity-service interface the usecases
// depend on. It speaks the application's error vocabulary: conflicting
// accounts surface as AlreadyExists, missing identities as NotFound.
type IdentityGateway interface {
	CreateIdentity(ctx context.Context, req *domain.CreateIdentityRequest) (*domain.Identity, error)
	DeleteIdentity(ctx context.Context, identityID string) error
	SetAdminClaim(ctx context.Context, identityID string, admin bool) error
	ResolveSession(ctx context.Context, sessionToken string) (*domain.Caller, error)
}
