package port

//go:generate mockgen -source=admin_port.go -destination=../mocks/mock_admin_port.go -package=mocks

import (
	"context"

	"admin-service/app/domain"
)

// AdminUsecase defines the four privileged administrative operations.
// Every operation authenticates and authorizes the caller before touching
// external state.
type AdminUsecase interface {
	DeleteUserAccount(ctx context.Context, caller *domain.Caller, req *domain.DeleteAccountRequest) (*domain.OperationResult, error)
	UpdateUserRole(ctx context.Context, caller *domain.Caller, req *domain.UpdateRoleRequest) (*domain.OperationResult, error)
	ApprovePartnerRequest(ctx context.Context, caller *domain.Caller, req *domain.ApprovePartnerRequest) (*domain.OperationResult, error)
	CreateStaffAccount(ctx context.Context, caller *domain.Caller, req *domain.CreateStaffRequest) (*domain.OperationResult, error)
}
