package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "juno-core", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "juno_db", cfg.Database.Name)
	assert.Equal(t, "JUNO", cfg.Assistant.AgentBrand)
	assert.Equal(t, 50, cfg.Assistant.UpdateLogCap)
	assert.Equal(t, 20, cfg.Assistant.SuggestionLimit)
	assert.NotEmpty(t, cfg.Database.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AGENT_BRAND", "ACME")
	t.Setenv("CLUSTER_UPDATE_LOG_CAP", "10")
	t.Setenv("SYNC_INTERVAL_SECONDS", "45")
	t.Setenv("DATABASE_URL", "postgres://custom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.Equal(t, "ACME", cfg.Assistant.AgentBrand)
	assert.Equal(t, 10, cfg.Assistant.UpdateLogCap)
	assert.Equal(t, 45*time.Second, cfg.Buffer.SyncInterval)
	assert.Equal(t, "postgres://custom", cfg.Database.URL)
}

func TestGetDurationAcceptsBareSeconds(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "7")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.Context.RequestTimeout)
}
