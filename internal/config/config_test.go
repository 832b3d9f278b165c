package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "catalog.yaml", cfg.Content.CatalogPath)
	assert.Equal(t, 30, cfg.Session.IdleTTLMinutes)
}

func TestLoadUsesEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("CATALOG_PATH", "/etc/casefolio/catalog.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "/etc/casefolio/catalog.yaml", cfg.Content.CatalogPath)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, 50, cfg.RateLimit.RequestsPerSecond)
}
