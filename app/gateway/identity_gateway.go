package gateway

import (
	"context"
	"log/slog"

	"admin-service/app/domain"
	"admin-service/app/port"
	apperrors "admin-service/app/utils/errors"
)

// IdentityGateway implements port.IdentityGateway.
// It acts as an anti-corruption layer between the usecases and the
// identity-service driver: every failure leaving this gateway carries a
// code from the application's error vocabulary.
type IdentityGateway struct {
	client port.IdentityClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.IdentityClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// CreateIdentity provisions a new identity account
func (g *IdentityGateway) CreateIdentity(ctx context.Context, req *domain.CreateIdentityRequest) (*domain.Identity, error) {
	g.logger.Info("creating identity", "email", req.Email)

	identity, err := g.client.CreateIdentity(ctx, req)
	if err != nil {
		g.logger.Error("failed to create identity", "email", req.Email, "error", err)
		return nil, coerce(err)
	}

	g.logger.Info("identity created", "identity_id", identity.ID)
	return identity, nil
}

// DeleteIdentity removes an identity account
func (g *IdentityGateway) DeleteIdentity(ctx context.Context, identityID string) error {
	g.logger.Info("deleting identity", "identity_id", identityID)

	if err := g.client.DeleteIdentity(ctx, identityID); err != nil {
		g.logger.Error("failed to delete identity", "identity_id", identityID, "error", err)
		return coerce(err)
	}

	return nil
}

// SetAdminClaim sets or clears the admin privilege claim on an identity
func (g *IdentityGateway) SetAdminClaim(ctx context.Context, identityID string, admin bool) error {
	g.logger.Info("setting admin claim", "identity_id", identityID, "admin", admin)

	if err := g.client.SetAdminClaim(ctx, identityID, admin); err != nil {
		g.logger.Error("failed to set admin claim", "identity_id", identityID, "error", err)
		return coerce(err)
	}

	return nil
}

// ResolveSession resolves a session token into the caller identity
func (g *IdentityGateway) ResolveSession(ctx context.Context, sessionToken string) (*domain.Caller, error) {
	caller, err := g.client.ResolveSession(ctx, sessionToken)
	if err != nil {
		g.logger.Debug("failed to resolve session", "error", err)
		return nil, coerce(err)
	}

	return caller, nil
}

// coerce guarantees the error is an AppError; anything the driver did not
// classify becomes Internal.
func coerce(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.NewInternalError(err)
}
