package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"admin-service/app/domain"
	mock_port "admin-service/app/mocks"
	apperrors "admin-service/app/utils/errors"
)

func pendingRequest(id uuid.UUID, role string) *domain.PartnerRequest {
	return &domain.PartnerRequest{
		ID:        id,
		Email:     "partner@example.com",
		Password:  "secret-password",
		Name:      "Partner One",
		Phone:     "+1-555-0100",
		Role:      role,
		Status:    domain.PartnerRequestPending,
		CreatedAt: time.Now(),
	}
}

func TestAdminUsecase_ApprovePartnerRequest(t *testing.T) {
	caller := &domain.Caller{ID: "admin-1"}
	requestID := uuid.New()

	tests := []struct {
		name       string
		req        *domain.ApprovePartnerRequest
		setupMocks func(*mock_port.MockAccountRepository, *mock_port.MockPartnerRequestRepository, *mock_port.MockIdentityGateway)
		expectErr  bool
		expectCode apperrors.ErrorCode
	}{
		{
			name: "successful approval",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(pendingRequest(requestID, "seller"), nil)
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: "new-identity-1", Email: "partner@example.com"}, nil)
				accounts.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, profile *domain.UserProfile) error {
						assert.Equal(t, "new-identity-1", profile.ID)
						assert.Equal(t, "partner@example.com", profile.Email)
						assert.Equal(t, "seller", profile.Role)
						return nil
					})
				requests.EXPECT().MarkApproved(gomock.Any(), requestID, "admin-1").Return(true, nil)
			},
		},
		{
			name: "admin role request also grants the claim",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(pendingRequest(requestID, "Admin"), nil)
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: "new-identity-2"}, nil)
				accounts.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).Return(nil)
				identity.EXPECT().SetAdminClaim(gomock.Any(), "new-identity-2", true).Return(nil)
				requests.EXPECT().MarkApproved(gomock.Any(), requestID, "admin-1").Return(true, nil)
			},
		},
		{
			name: "malformed request id",
			req:  &domain.ApprovePartnerRequest{RequestID: "not-a-uuid"},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeInvalidArgument,
		},
		{
			name: "unknown request",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(nil, apperrors.NewNotFound("partner request"))
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeNotFound,
		},
		{
			name: "already approved request",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				request := pendingRequest(requestID, "seller")
				request.Status = domain.PartnerRequestApproved
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(request, nil)
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeFailedPrecondition,
		},
		{
			name: "identity conflict surfaces as already exists",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(pendingRequest(requestID, "seller"), nil)
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewAlreadyExists("an account with this email already exists", assert.AnError))
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeAlreadyExists,
		},
		{
			name: "concurrent approval loses the status guard",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(pendingRequest(requestID, "seller"), nil)
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: "new-identity-3"}, nil)
				accounts.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).Return(nil)
				requests.EXPECT().MarkApproved(gomock.Any(), requestID, "admin-1").Return(false, nil)
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeFailedPrecondition,
		},
		{
			name: "profile insert failure is a generic internal error",
			req:  &domain.ApprovePartnerRequest{RequestID: requestID.String()},
			setupMocks: func(accounts *mock_port.MockAccountRepository, requests *mock_port.MockPartnerRequestRepository, identity *mock_port.MockIdentityGateway) {
				requests.EXPECT().GetByID(gomock.Any(), requestID).Return(pendingRequest(requestID, "seller"), nil)
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: "new-identity-4"}, nil)
				accounts.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccounts := mock_port.NewMockAccountRepository(ctrl)
			mockRequests := mock_port.NewMockPartnerRequestRepository(ctrl)
			mockIdentity := mock_port.NewMockIdentityGateway(ctrl)

			mockAccounts.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(adminProfile("admin-1"), nil)
			tt.setupMocks(mockAccounts, mockRequests, mockIdentity)

			useCase := NewAdminUsecase(mockAccounts, mockRequests, mockIdentity, testLogger())

			result, err := useCase.ApprovePartnerRequest(context.Background(), caller, tt.req)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.expectCode, apperrors.GetErrorCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.NotEmpty(t, result.UserID)
				assert.Contains(t, result.Message, "partner@example.com")
			}
		})
	}
}

func TestAdminUsecase_ApprovePartnerRequest_InternalDetailStaysInLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccounts := mock_port.NewMockAccountRepository(ctrl)
	mockRequests := mock_port.NewMockPartnerRequestRepository(ctrl)
	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)

	requestID := uuid.New()

	mockAccounts.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(adminProfile("admin-1"), nil)
	mockRequests.EXPECT().GetByID(gomock.Any(), requestID).Return(pendingRequest(requestID, "seller"), nil)
	mockIdentity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewInternalError(assert.AnError))

	useCase := NewAdminUsecase(mockAccounts, mockRequests, mockIdentity, testLogger())

	_, err := useCase.ApprovePartnerRequest(context.Background(),
		&domain.Caller{ID: "admin-1"},
		&domain.ApprovePartnerRequest{RequestID: requestID.String()})

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetErrorCode(err))
	// The response carries the generic message only.
	assert.NotContains(t, err.Error(), assert.AnError.Error())
}
