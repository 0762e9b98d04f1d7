package kratos

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"admin-service/app/domain"
	"admin-service/app/port"
)

// adminClaimKey is the admin metadata field carrying the privilege claim
const adminClaimKey = "admin"

// IdentityAdapter adapts the Kratos client to implement port.IdentityClient
type IdentityAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityAdapter creates a new adapter
func NewIdentityAdapter(client *Client, logger *slog.Logger) port.IdentityClient {
	return &IdentityAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// CreateIdentity provisions a new identity with email/password credentials
func (a *IdentityAdapter) CreateIdentity(ctx context.Context, req *domain.CreateIdentityRequest) (*domain.Identity, error) {
	a.logger.Info("creating identity in Kratos", "email", req.Email)

	body := kratosclient.CreateIdentityBody{
		SchemaId: a.client.SchemaID(),
		Traits: map[string]interface{}{
			"email": req.Email,
			"name":  req.Name,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &req.Password,
				},
			},
		},
	}

	resp, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"email", req.Email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "create_identity")
	}

	a.logger.Info("identity created successfully", "identity_id", resp.Id)

	return &domain.Identity{
		ID:    resp.Id,
		Email: req.Email,
		Name:  req.Name,
	}, nil
}

// DeleteIdentity removes an identity account by its service-assigned id
func (a *IdentityAdapter) DeleteIdentity(ctx context.Context, identityID string) error {
	a.logger.Info("deleting identity in Kratos", "identity_id", identityID)

	httpResp, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, identityID).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity deletion failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return transformKratosError(err, httpResp, "delete_identity")
	}

	a.logger.Info("identity deleted successfully", "identity_id", identityID)
	return nil
}

// SetAdminClaim sets or clears the admin privilege claim on an identity.
// The claim lives in the identity's admin metadata so it is embedded into
// sessions issued for that identity.
func (a *IdentityAdapter) SetAdminClaim(ctx context.Context, identityID string, admin bool) error {
	a.logger.Info("setting admin claim in Kratos",
		"identity_id", identityID,
		"admin", admin)

	patch := []kratosclient.JsonPatch{
		{
			Op:    "replace",
			Path:  "/metadata_admin",
			Value: map[string]interface{}{adminClaimKey: admin},
		},
	}

	_, httpResp, err := a.client.AdminAPI().IdentityAPI.
		PatchIdentity(ctx, identityID).
		JsonPatch(patch).
		Execute()

	if err != nil {
		a.logger.Error("kratos admin claim update failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return transformKratosError(err, httpResp, "set_admin_claim")
	}

	a.logger.Info("admin claim updated successfully",
		"identity_id", identityID,
		"admin", admin)
	return nil
}

// ResolveSession resolves a session token or cookie header into the caller
// identity attached to it.
func (a *IdentityAdapter) ResolveSession(ctx context.Context, sessionToken string) (*domain.Caller, error) {
	req := a.client.PublicAPI().FrontendAPI.ToSession(ctx)
	if strings.Contains(sessionToken, "ory_kratos_session") {
		// Browser flow: the whole Cookie header was forwarded
		req = req.Cookie(sessionToken)
	} else {
		req = req.XSessionToken(sessionToken)
	}

	resp, httpResp, err := req.Execute()
	if err != nil {
		a.logger.Error("kratos session resolution failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return nil, transformKratosError(err, httpResp, "resolve_session")
	}

	if resp.Identity == nil {
		return nil, transformKratosError(errSessionWithoutIdentity, httpResp, "resolve_session")
	}

	caller := &domain.Caller{
		ID:         resp.Identity.Id,
		Email:      getTraitString(resp.Identity.Traits, "email"),
		SessionID:  resp.Id,
		AdminClaim: getAdminClaim(resp.Identity.MetadataAdmin),
	}

	a.logger.Info("session resolved",
		"caller_id", caller.ID,
		"admin_claim", caller.AdminClaim)

	return caller, nil
}

// Health checks Kratos connectivity
func (a *IdentityAdapter) Health(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

// Helper functions

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func getTraitString(traits interface{}, key string) string {
	traitMap, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}
	value, ok := traitMap[key].(string)
	if !ok {
		return ""
	}
	return value
}

func getAdminClaim(metadata interface{}) bool {
	metadataMap, ok := metadata.(map[string]interface{})
	if !ok {
		return false
	}
	claim, ok := metadataMap[adminClaimKey].(bool)
	return ok && claim
}
