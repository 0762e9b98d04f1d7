package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin-service/app/domain"
	mock_port "admin-service/app/mocks"
	apperrors "admin-service/app/utils/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, body string, caller *domain.Caller) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if caller != nil {
		c.Set("caller", caller)
	}
	return c, rec
}

func TestAdminHandler_DeleteUserAccount(t *testing.T) {
	caller := &domain.Caller{ID: "admin-1", AdminClaim: true}

	tests := []struct {
		name           string
		body           string
		caller         *domain.Caller
		setupMocks     func(*mock_port.MockAdminUsecase)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "successful deletion",
			body:   `{"userId":"target-1","email":"target@example.com"}`,
			caller: caller,
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().DeleteUserAccount(gomock.Any(), caller, gomock.Any()).Return(&domain.OperationResult{
					Success: true,
					Message: "User target@example.com deleted successfully from identity service and store",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "missing caller is unauthenticated",
			body:   `{"userId":"target-1","email":"target@example.com"}`,
			caller: nil,
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().DeleteUserAccount(gomock.Any(), nil, gomock.Any()).Return(nil, apperrors.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHENTICATED",
		},
		{
			name:   "non-admin caller is denied",
			body:   `{"userId":"target-1","email":"target@example.com"}`,
			caller: caller,
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().DeleteUserAccount(gomock.Any(), caller, gomock.Any()).Return(nil, apperrors.NewPermissionDenied("only admins can perform this operation"))
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "PERMISSION_DENIED",
		},
		{
			name:   "validation failure",
			body:   `{"email":"target@example.com"}`,
			caller: caller,
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().DeleteUserAccount(gomock.Any(), caller, gomock.Any()).Return(nil, apperrors.NewInvalidArgument("missing or invalid fields: userId"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ARGUMENT",
		},
		{
			name:           "malformed body",
			body:           `{"userId":`,
			caller:         caller,
			setupMocks:     func(uc *mock_port.MockAdminUsecase) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ARGUMENT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockAdminUsecase(ctrl)
			tt.setupMocks(mockUsecase)

			handler := NewAdminHandler(mockUsecase, testLogger())

			c, rec := newTestContext(t, tt.body, tt.caller)

			require.NoError(t, handler.DeleteUserAccount(c))
			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				var errResp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Code)
				assert.NotEmpty(t, errResp.Error)
			} else {
				var result domain.OperationResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				assert.True(t, result.Success)
			}
		})
	}
}

func TestAdminHandler_UpdateUserRole(t *testing.T) {
	caller := &domain.Caller{ID: "admin-1", AdminClaim: true}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsecase := mock_port.NewMockAdminUsecase(ctrl)
	mockUsecase.EXPECT().UpdateUserRole(gomock.Any(), caller, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ *domain.Caller, req *domain.UpdateRoleRequest) (*domain.OperationResult, error) {
			assert.Equal(t, "target-1", req.UserID)
			assert.Equal(t, "admin", req.NewRole)
			return &domain.OperationResult{Success: true, Message: "User role updated to admin"}, nil
		})

	handler := NewAdminHandler(mockUsecase, testLogger())

	c, rec := newTestContext(t, `{"userId":"target-1","newRole":"admin"}`, caller)

	require.NoError(t, handler.UpdateUserRole(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_ApprovePartnerRequest(t *testing.T) {
	caller := &domain.Caller{ID: "admin-1", AdminClaim: true}

	tests := []struct {
		name           string
		setupMocks     func(*mock_port.MockAdminUsecase)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "successful approval",
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().ApprovePartnerRequest(gomock.Any(), caller, gomock.Any()).Return(&domain.OperationResult{
					Success: true,
					Message: "Partner request approved for partner@example.com",
					UserID:  "new-identity-1",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "already processed request",
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().ApprovePartnerRequest(gomock.Any(), caller, gomock.Any()).Return(nil,
					apperrors.NewFailedPrecondition("partner request already processed (status: approved)"))
			},
			expectedStatus: http.StatusPreconditionFailed,
			expectedCode:   "FAILED_PRECONDITION",
		},
		{
			name: "duplicate identity",
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().ApprovePartnerRequest(gomock.Any(), caller, gomock.Any()).Return(nil,
					apperrors.NewAlreadyExists("an account with this email already exists", assert.AnError))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_EXISTS",
		},
		{
			name: "unknown request",
			setupMocks: func(uc *mock_port.MockAdminUsecase) {
				uc.EXPECT().ApprovePartnerRequest(gomock.Any(), caller, gomock.Any()).Return(nil,
					apperrors.NewNotFound("partner request"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsecase := mock_port.NewMockAdminUsecase(ctrl)
			tt.setupMocks(mockUsecase)

			handler := NewAdminHandler(mockUsecase, testLogger())

			c, rec := newTestContext(t, `{"requestId":"5f0b2a4e-8c1d-4f3a-9b6e-2d7c8a9f0b1c"}`, caller)

			require.NoError(t, handler.ApprovePartnerRequest(c))
			require.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				var errResp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Code)
			}
		})
	}
}

func TestAdminHandler_CreateStaffAccount(t *testing.T) {
	caller := &domain.Caller{ID: "admin-1", AdminClaim: true}

	t.Run("created status on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUsecase := mock_port.NewMockAdminUsecase(ctrl)
		mockUsecase.EXPECT().CreateStaffAccount(gomock.Any(), caller, gomock.Any()).Return(&domain.OperationResult{
			Success: true,
			Message: "Staff account created for staff@example.com",
			UserID:  "staff-identity-1",
		}, nil)

		handler := NewAdminHandler(mockUsecase, testLogger())

		c, rec := newTestContext(t, `{"email":"staff@example.com","password":"secret","name":"Staff One"}`, caller)

		require.NoError(t, handler.CreateStaffAccount(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		var result domain.OperationResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "staff-identity-1", result.UserID)
	})

	t.Run("internal error hides detail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUsecase := mock_port.NewMockAdminUsecase(ctrl)
		mockUsecase.EXPECT().CreateStaffAccount(gomock.Any(), caller, gomock.Any()).Return(nil,
			apperrors.New(apperrors.ErrCodeInternal, "failed to create staff profile"))

		handler := NewAdminHandler(mockUsecase, testLogger())

		c, rec := newTestContext(t, `{"email":"staff@example.com","password":"secret","name":"Staff One"}`, caller)

		require.NoError(t, handler.CreateStaffAccount(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var errResp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "INTERNAL", errResp.Code)
		assert.Equal(t, "failed to create staff profile", errResp.Error)
	})
}
