package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"admin-service/app/domain"
	"admin-service/app/port"
	apperrors "admin-service/app/utils/errors"
	"admin-service/app/utils/validator"
)

// AdminUsecase implements the four privileged administrative operations.
// Each operation runs the same sequence: authorize the caller against the
// stored profile role or the session admin claim, validate the request
// shape, then perform the external writes.
type AdminUsecase struct {
	accounts  port.AccountRepository
	requests  port.PartnerRequestRepository
	identity  port.IdentityGateway
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAdminUsecase creates a new AdminUsecase instance
func NewAdminUsecase(
	accounts port.AccountRepository,
	requests port.PartnerRequestRepository,
	identity port.IdentityGateway,
	logger *slog.Logger,
) *AdminUsecase {
	return &AdminUsecase{
		accounts:  accounts,
		requests:  requests,
		identity:  identity,
		validator: validator.New(),
		logger:    logger.With("component", "admin_usecase"),
	}
}

// authorize is the shared authorization gate. The caller is authorized
// when the stored profile role is an admin role or the session carries the
// admin claim. The profile lookup is repeated on every invocation; there
// is no caching.
func (uc *AdminUsecase) authorize(ctx context.Context, caller *domain.Caller) error {
	if caller == nil || caller.ID == "" {
		return apperrors.ErrUnauthenticated
	}

	profileIsAdmin := false
	profile, err := uc.accounts.GetProfileByID(ctx, caller.ID)
	switch {
	case err == nil:
		profileIsAdmin = profile.IsAdmin()
	case apperrors.HasCode(err, apperrors.ErrCodeNotFound):
		// A caller without a profile can still be authorized through the
		// admin claim on its credential.
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to load caller profile", err)
	}

	if !profileIsAdmin && !caller.AdminClaim {
		uc.logger.Warn("permission denied", "caller_id", caller.ID)
		return apperrors.NewPermissionDenied("only admins can perform this operation")
	}

	return nil
}

// validate checks required request fields before any further external call
func (uc *AdminUsecase) validate(req interface{}) error {
	if err := uc.validator.Validate(req); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			fields := strings.Join(verr.Fields(), ", ")
			return apperrors.NewInvalidArgument(fmt.Sprintf("missing or invalid fields: %s", fields)).
				WithCause(err)
		}
		return apperrors.NewInvalidArgument(err.Error())
	}
	return nil
}

// DeleteUserAccount removes an account completely: the profile row, every
// partner request matching the email and the pending-seller row in one
// grouped write, then the identity account as a separate step. The two
// steps are not atomic with each other; a failure in between leaves the
// store records gone and the identity alive, surfaced as Internal with no
// compensation.
func (uc *AdminUsecase) DeleteUserAccount(ctx context.Context, caller *domain.Caller, req *domain.DeleteAccountRequest) (*domain.OperationResult, error) {
	if err := uc.authorize(ctx, caller); err != nil {
		return nil, err
	}
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	uc.logger.Info("deleting user account",
		"caller_id", caller.ID,
		"user_id", req.UserID,
		"email", req.Email)

	if err := uc.accounts.DeleteAccountRecords(ctx, req.UserID, req.Email); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrCodeInternal, err, "failed to delete user %s", req.Email)
	}

	if err := uc.identity.DeleteIdentity(ctx, req.UserID); err != nil {
		// Deleting an already-deleted identity is a no-op, so the whole
		// operation is idempotent.
		if !apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.Wrapf(apperrors.ErrCodeInternal, err, "failed to delete user %s", req.Email)
		}
		uc.logger.Info("identity already absent", "user_id", req.UserID)
	}

	return &domain.OperationResult{
		Success: true,
		Message: fmt.Sprintf("User %s deleted successfully from identity service and store", req.Email),
	}, nil
}

// UpdateUserRole changes a profile's role and aligns the identity admin
// claim with it: the claim is granted for admin roles and explicitly
// revoked for everything else. The two writes are sequential and not
// transactional.
func (uc *AdminUsecase) UpdateUserRole(ctx context.Context, caller *domain.Caller, req *domain.UpdateRoleRequest) (*domain.OperationResult, error) {
	if err := uc.authorize(ctx, caller); err != nil {
		return nil, err
	}
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	uc.logger.Info("updating user role",
		"caller_id", caller.ID,
		"user_id", req.UserID,
		"new_role", req.NewRole)

	if err := uc.accounts.UpdateRole(ctx, req.UserID, req.NewRole); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrCodeInternal, err, "failed to update role for user %s", req.UserID)
	}

	if err := uc.identity.SetAdminClaim(ctx, req.UserID, domain.IsAdminRole(req.NewRole)); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrCodeInternal, err, "failed to update admin claim for user %s", req.UserID)
	}

	return &domain.OperationResult{
		Success: true,
		Message: fmt.Sprintf("User role updated to %s", req.NewRole),
	}, nil
}

// ApprovePartnerRequest approves a pending partner application: it
// provisions an identity from the stored credentials, creates the profile
// record, grants the admin claim when the requested role warrants it, and
// finally marks the request approved. The account is created before the
// status flips so a request is only ever marked approved once the account
// genuinely exists.
func (uc *AdminUsecase) ApprovePartnerRequest(ctx context.Context, caller *domain.Caller, req *domain.ApprovePartnerRequest) (*domain.OperationResult, error) {
	if err := uc.authorize(ctx, caller); err != nil {
		return nil, err
	}
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return nil, apperrors.NewInvalidArgument("requestId must be a valid UUID")
	}

	request, err := uc.requests.GetByID(ctx, requestID)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeNotFound) {
			return nil, err
		}
		return nil, uc.internal("failed to load partner request", err)
	}

	if !request.IsPending() {
		return nil, apperrors.NewFailedPrecondition(
			fmt.Sprintf("partner request already processed (status: %s)", request.Status))
	}

	role := request.NormalizedRole()

	uc.logger.Info("approving partner request",
		"caller_id", caller.ID,
		"request_id", requestID,
		"email", request.Email,
		"role", role)

	identity, err := uc.identity.CreateIdentity(ctx, &domain.CreateIdentityRequest{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeAlreadyExists) {
			return nil, err
		}
		return nil, uc.internal("failed to create partner identity", err)
	}

	profile := domain.NewPartnerProfile(identity.ID, request)
	if err := uc.accounts.InsertProfile(ctx, profile); err != nil {
		return nil, uc.internal("failed to create partner profile", err)
	}

	if domain.IsAdminRole(role) {
		if err := uc.identity.SetAdminClaim(ctx, identity.ID, true); err != nil {
			return nil, uc.internal("failed to grant admin claim", err)
		}
	}

	approved, err := uc.requests.MarkApproved(ctx, requestID, caller.ID)
	if err != nil {
		return nil, uc.internal("failed to mark partner request approved", err)
	}
	if !approved {
		// A concurrent approval won the status guard after our pending
		// check. The account it created stands; this invocation reports
		// the precondition failure.
		return nil, apperrors.NewFailedPrecondition("partner request already processed (status: approved)")
	}

	return &domain.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Partner request approved for %s", request.Email),
		UserID:  identity.ID,
	}, nil
}

// CreateStaffAccount provisions a staff member: an identity account plus a
// profile record with the core_staff role and the default dashboard
// permission.
func (uc *AdminUsecase) CreateStaffAccount(ctx context.Context, caller *domain.Caller, req *domain.CreateStaffRequest) (*domain.OperationResult, error) {
	if err := uc.authorize(ctx, caller); err != nil {
		return nil, err
	}
	if err := uc.validate(req); err != nil {
		return nil, err
	}

	uc.logger.Info("creating staff account",
		"caller_id", caller.ID,
		"email", req.Email)

	identity, err := uc.identity.CreateIdentity(ctx, &domain.CreateIdentityRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeAlreadyExists) {
			return nil, err
		}
		return nil, uc.internal("failed to create staff identity", err)
	}

	profile := domain.NewStaffProfile(identity.ID, req)
	if err := uc.accounts.InsertProfile(ctx, profile); err != nil {
		return nil, uc.internal("failed to create staff profile", err)
	}

	return &domain.OperationResult{
		Success: true,
		Message: fmt.Sprintf("Staff account created for %s", req.Email),
		UserID:  identity.ID,
	}, nil
}

// internal logs the underlying failure and returns a generic Internal
// error; the detail stays in the logs, not in the response.
func (uc *AdminUsecase) internal(message string, err error) error {
	uc.logger.Error(message, "error", err)
	return apperrors.New(apperrors.ErrCodeInternal, message)
}
