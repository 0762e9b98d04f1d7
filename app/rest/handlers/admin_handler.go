package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"admin-service/app/domain"
	"admin-service/app/port"
	apperrors "admin-service/app/utils/errors"
)

// AdminHandler handles the privileged administrative operations
type AdminHandler struct {
	adminUsecase port.AdminUsecase
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase port.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		logger:       logger,
	}
}

// DeleteUserAccount deletes a user account completely
// @Summary Delete user account
// @Description Delete the profile record, related applicant records and the identity account
// @Tags admin
// @Accept json
// @Produce json
// @Param body body domain.DeleteAccountRequest true "Deletion request"
// @Success 200 {object} domain.OperationResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/admin/accounts/delete [post]
func (h *AdminHandler) DeleteUserAccount(c echo.Context) error {
	ctx := c.Request().Context()
	caller := callerFromContext(c)

	var req domain.DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return h.writeError(c, apperrors.NewInvalidArgument("invalid request body"))
	}

	result, err := h.adminUsecase.DeleteUserAccount(ctx, caller, &req)
	if err != nil {
		h.logger.Error("delete user account failed", "email", req.Email, "error", err)
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateUserRole changes a user's role
// @Summary Update user role
// @Description Change the profile role and align the identity admin claim
// @Tags admin
// @Accept json
// @Produce json
// @Param body body domain.UpdateRoleRequest true "Role update request"
// @Success 200 {object} domain.OperationResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/admin/accounts/role [post]
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	ctx := c.Request().Context()
	caller := callerFromContext(c)

	var req domain.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return h.writeError(c, apperrors.NewInvalidArgument("invalid request body"))
	}

	result, err := h.adminUsecase.UpdateUserRole(ctx, caller, &req)
	if err != nil {
		h.logger.Error("update user role failed", "user_id", req.UserID, "error", err)
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// ApprovePartnerRequest approves a pending partner application
// @Summary Approve partner request
// @Description Provision an account from a pending partner application
// @Tags admin
// @Accept json
// @Produce json
// @Param body body domain.ApprovePartnerRequest true "Approval request"
// @Success 200 {object} domain.OperationResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 412 {object} ErrorResponse
// @Router /v1/admin/partner-requests/approve [post]
func (h *AdminHandler) ApprovePartnerRequest(c echo.Context) error {
	ctx := c.Request().Context()
	caller := callerFromContext(c)

	var req domain.ApprovePartnerRequest
	if err := c.Bind(&req); err != nil {
		return h.writeError(c, apperrors.NewInvalidArgument("invalid request body"))
	}

	result, err := h.adminUsecase.ApprovePartnerRequest(ctx, caller, &req)
	if err != nil {
		h.logger.Error("approve partner request failed", "request_id", req.RequestID, "error", err)
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// CreateStaffAccount provisions a new staff account
// @Summary Create staff account
// @Description Create an identity and a core_staff profile record
// @Tags admin
// @Accept json
// @Produce json
// @Param body body domain.CreateStaffRequest true "Staff creation request"
// @Success 201 {object} domain.OperationResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/admin/staff [post]
func (h *AdminHandler) CreateStaffAccount(c echo.Context) error {
	ctx := c.Request().Context()
	caller := callerFromContext(c)

	var req domain.CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return h.writeError(c, apperrors.NewInvalidArgument("invalid request body"))
	}

	result, err := h.adminUsecase.CreateStaffAccount(ctx, caller, &req)
	if err != nil {
		h.logger.Error("create staff account failed", "email", req.Email, "error", err)
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// writeError renders an error using the application error vocabulary
func (h *AdminHandler) writeError(c echo.Context, err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError(err)
	}

	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// callerFromContext reads the caller identity set by the auth middleware
func callerFromContext(c echo.Context) *domain.Caller {
	caller, ok := c.Get("caller").(*domain.Caller)
	if !ok {
		return nil
	}
	return caller
}

// ErrorResponse is the error payload shared by all handlers
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
