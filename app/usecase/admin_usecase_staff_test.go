package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"admin-service/app/domain"
	mock_port "admin-service/app/mocks"
	apperrors "admin-service/app/utils/errors"
)

func TestAdminUsecase_CreateStaffAccount(t *testing.T) {
	caller := &domain.Caller{ID: "admin-1"}

	tests := []struct {
		name       string
		req        *domain.CreateStaffRequest
		setupMocks func(*mock_port.MockAccountRepository, *mock_port.MockIdentityGateway)
		expectErr  bool
		expectCode apperrors.ErrorCode
	}{
		{
			name: "successful staff creation",
			req: &domain.CreateStaffRequest{
				Email:    "staff@example.com",
				Password: "staff-password",
				Name:     "Staff One",
				Position: "support",
			},
			setupMocks: func(accounts *mock_port.MockAccountRepository, identity *mock_port.MockIdentityGateway) {
				identity.EXPECT().CreateIdentity(gomock.Any(), &domain.CreateIdentityRequest{
					Email:    "staff@example.com",
					Password: "staff-password",
					Name:     "Staff One",
				}).Return(&domain.Identity{ID: "staff-identity-1", Email: "staff@example.com"}, nil)
				accounts.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, profile *domain.UserProfile) error {
						assert.Equal(t, "staff-identity-1", profile.ID)
						assert.Equal(t, domain.RoleCoreStaff, profile.Role)
						assert.True(t, profile.Permissions[domain.PermCanViewDashboard])
						return nil
					})
			},
		},
		{
			name: "short password is accepted, policy lives in the identity service",
			req: &domain.CreateStaffRequest{
				Email:    "s@x.io",
				Password: "pw1",
				Name:     "S",
			},
			setupMocks: func(accounts *mock_port.MockAccountRepository, identity *mock_port.MockIdentityGateway) {
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: "staff-identity-2"}, nil)
				accounts.EXPECT().InsertProfile(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "malformed email fails validation",
			req: &domain.CreateStaffRequest{
				Email:    "not-an-email",
				Password: "staff-password",
				Name:     "Staff One",
			},
			setupMocks: func(accounts *mock_port.MockAccountRepository, identity *mock_port.MockIdentityGateway) {
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeInvalidArgument,
		},
		{
			name: "missing name fails validation",
			req: &domain.CreateStaffRequest{
				Email:    "staff@example.com",
				Password: "staff-password",
			},
			setupMocks: func(accounts *mock_port.MockAccountRepository, identity *mock_port.MockIdentityGateway) {
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeInvalidArgument,
		},
		{
			name: "duplicate email surfaces as already exists",
			req: &domain.CreateStaffRequest{
				Email:    "staff@example.com",
				Password: "staff-password",
				Name:     "Staff One",
			},
			setupMocks: func(accounts *mock_port.MockAccountRepository, identity *mock_port.MockIdentityGateway) {
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(nil, apperrors.NewAlreadyExists("an account with this email already exists", assert.AnError))
			},
			expectErr:  true,
			expectCode: apperrors.ErrCodeAlreadyExists,
		},
		{
			name: "profile insert failure is a generic internal error",
			req: &domain.CreateStaffRequest{
				Email:    "staff@example.com",
				Password: "staff-password",
				Name:     "Staff One",
			},
			setupMocks: func(accounts *mock_port.MockAccountRepository, identity *mock_port.MockIdentityGateway) {
				identity.EXPECT().CreateIdentity(gomock.Any(), gomock.Any()).Return(&domain.Identity{ID: "staff-identity-3"}, nil)
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
			tt.setupMocks(mockAccounts, mockIdentity)

			useCase := NewAdminUsecase(mockAccounts, mockRequests, mockIdentity, testLogger())

			result, err := useCase.CreateStaffAccount(context.Background(), caller, tt.req)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.expectCode, apperrors.GetErrorCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.NotEmpty(t, result.UserID)
				assert.Contains(t, result.Message, tt.req.Email)
			}
		})
	}
}
