package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIVersion:   "v1",
		TenantID:     "tenant",
		NamespaceID:  "ns",
		ClientID:     "client",
		ClientSecret: "secret",
		Resource:     "https://uswe.datahub.connect.aveva.com",
	}
}

func TestValidateComplete(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateReportsAllMissing(t *testing.T) {
	cfg := validConfig()
	cfg.ClientID = ""
	cfg.ClientSecret = ""
	cfg.NamespaceID = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLIENT_ID")
	assert.Contains(t, err.Error(), "CLIENT_SECRET")
	assert.Contains(t, err.Error(), "NAMESPACE_ID")
	assert.NotContains(t, err.Error(), "TENANT_ID")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_VERSION", "v1")
	t.Setenv("TENANT_ID", "tenant")
	t.Setenv("NAMESPACE_ID", "ns")
	t.Setenv("CLIENT_ID", "client")
	t.Setenv("CLIENT_SECRET", "secret")
	t.Setenv("RESOURCE", "https://example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, 30, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
}
