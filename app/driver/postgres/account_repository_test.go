package postgres

import (
	"context"
	"testing"
	"time"

	"admin-service/app/domain"
	apperrors "admin-service/app/utils/errors"
	"admin-service/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test account repository with mocked database
func createTestAccountRepository(t *testing.T) (*AccountRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewAccountRepository(mockDB, testLogger).(*AccountRepository)

	return repo, mockDB
}

func profileColumns() []string {
	return []string{
		"id", "email", "name", "phone", "role", "position", "bio",
		"business_name", "business_type", "permissions", "created_at", "updated_at",
	}
}

func TestAccountRepository_GetProfileByID(t *testing.T) {
	t.Run("existing profile", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		now := time.Now()
		mockDB.ExpectQuery("SELECT(.+)FROM users").
			WithArgs("user-1").
			WillReturnRows(pgxmock.NewRows(profileColumns()).
				AddRow("user-1", "admin@example.com", "Admin", "", "admin", "", "",
					nil, nil, []byte(`{"can_view_dashboard":true}`), now, now))

		profile, err := repo.GetProfileByID(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", profile.ID)
		assert.Equal(t, "admin", profile.Role)
		assert.True(t, profile.IsAdmin())
		assert.True(t, profile.Permissions["can_view_dashboard"])
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing profile maps to not found", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM users").
			WithArgs("unknown").
			WillReturnError(pgx.ErrNoRows)

		profile, err := repo.GetProfileByID(context.Background(), "unknown")

		assert.Error(t, err)
		assert.Nil(t, profile)
		assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.GetErrorCode(err))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("null permissions column", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		now := time.Now()
		mockDB.ExpectQuery("SELECT(.+)FROM users").
			WithArgs("user-2").
			WillReturnRows(pgxmock.NewRows(profileColumns()).
				AddRow("user-2", "seller@example.com", "Seller", "", "seller", "", "",
					nil, nil, nil, now, now))

		profile, err := repo.GetProfileByID(context.Background(), "user-2")

		assert.NoError(t, err)
		assert.Empty(t, profile.Permissions)
		assert.False(t, profile.IsAdmin())
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestAccountRepository_InsertProfile(t *testing.T) {
	t.Run("staff profile with permissions", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		profile := domain.NewStaffProfile("staff-1", &domain.CreateStaffRequest{
			Email:    "staff@example.com",
			Password: "secret",
			Name:     "Staff One",
			Position: "support",
		})

		mockDB.ExpectExec("INSERT INTO users").
			WithArgs(
				profile.ID,
				profile.Email,
				profile.Name,
				profile.Phone,
				profile.Role,
				profile.Position,
				profile.Bio,
				profile.BusinessName,
				profile.BusinessType,
				pgxmock.AnyArg(), // encoded permissions
				profile.CreatedAt,
				profile.UpdatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.InsertProfile(context.Background(), profile)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		profile := domain.NewStaffProfile("staff-2", &domain.CreateStaffRequest{
			Email:    "staff2@example.com",
			Password: "secret",
			Name:     "Staff Two",
		})

		mockDB.ExpectExec("INSERT INTO users").
			WithArgs(
				profile.ID, profile.Email, profile.Name, profile.Phone,
				profile.Role, profile.Position, profile.Bio,
				profile.BusinessName, profile.BusinessType,
				pgxmock.AnyArg(), profile.CreatedAt, profile.UpdatedAt,
			).
			WillReturnError(assert.AnError)

		err := repo.InsertProfile(context.Background(), profile)

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestAccountRepository_UpdateRole(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE users SET role").
			WithArgs("user-1", "admin").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateRole(context.Background(), "user-1", "admin")

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("UPDATE users SET role").
			WithArgs("unknown", "admin").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateRole(context.Background(), "unknown", "admin")

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestAccountRepository_DeleteAccountRecords(t *testing.T) {
	t.Run("deletes all records in one transaction", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM users").
			WithArgs("user-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mockDB.ExpectExec("DELETE FROM partner_requests").
			WithArgs("target@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		mockDB.ExpectExec("DELETE FROM pending_sellers").
			WithArgs("target@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mockDB.ExpectCommit()

		err := repo.DeleteAccountRecords(context.Background(), "user-1", "target@example.com")

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("absent rows still succeed", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM users").
			WithArgs("ghost").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockDB.ExpectExec("DELETE FROM partner_requests").
			WithArgs("ghost@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockDB.ExpectExec("DELETE FROM pending_sellers").
			WithArgs("ghost@example.com").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mockDB.ExpectCommit()

		err := repo.DeleteAccountRecords(context.Background(), "ghost", "ghost@example.com")

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("failure rolls the transaction back", func(t *testing.T) {
		repo, mockDB := createTestAccountRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("DELETE FROM users").
			WithArgs("user-1").
			WillReturnError(assert.AnError)
		mockDB.ExpectRollback()

		err := repo.DeleteAccountRecords(context.Background(), "user-1", "target@example.com")

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
