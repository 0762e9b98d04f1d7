package kratos

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-service/app/config"
)

func testClientConfig() *config.Config {
	return &config.Config{
		KratosPublicURL:  "http://kratos-public:4433",
		KratosAdminURL:   "http://kratos-admin:4434",
		IdentitySchemaID: "default",
	}
}

func TestNewClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("valid configuration", func(t *testing.T) {
		client, err := NewClient(testClientConfig(), logger)

		require.NoError(t, err)
		assert.NotNil(t, client.PublicAPI())
		assert.NotNil(t, client.AdminAPI())
		assert.Equal(t, "default", client.SchemaID())
		assert.Equal(t, "http://kratos-public:4433", client.GetPublicURL())
		assert.Equal(t, "http://kratos-admin:4434", client.GetAdminURL())
	})

	t.Run("invalid public URL", func(t *testing.T) {
		cfg := testClientConfig()
		cfg.KratosPublicURL = "not a url"

		client, err := NewClient(cfg, logger)

		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("missing admin URL", func(t *testing.T) {
		cfg := testClientConfig()
		cfg.KratosAdminURL = ""

		client, err := NewClient(cfg, logger)

		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
