package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-service/app/domain"
)

func TestPartnerRequest_IsPending(t *testing.T) {
	request := &domain.PartnerRequest{Status: domain.PartnerRequestPending}
	assert.True(t, request.IsPending())

	request.Status = domain.PartnerRequestApproved
	assert.False(t, request.IsPending())

	// Unknown statuses written by other systems also block approval.
	request.Status = "rejected"
	assert.False(t, request.IsPending())
}

func TestPartnerRequest_NormalizedRole(t *testing.T) {
	request := &domain.PartnerRequest{Role: " Admin "}
	assert.Equal(t, "admin", request.NormalizedRole())
}

func TestPartnerRequest_PasswordNeverSerialized(t *testing.T) {
	request := &domain.PartnerRequest{
		ID:       uuid.New(),
		Email:    "partner@example.com",
		Password: "plaintext-secret",
		Status:   domain.PartnerRequestPending,
	}

	encoded, err := json.Marshal(request)
	require.NoError(t, err)

	assert.NotContains(t, string(encoded), "plaintext-secret")
}
