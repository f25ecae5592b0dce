package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "admin@portfolio.com", cfg.Admin.Email)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, "data", cfg.Store.DataDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("DATA_DIR", "/tmp/portfolio-data")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.Admin.Email)
	assert.Equal(t, 2, cfg.JWT.ExpiryHours)
	assert.Equal(t, "/tmp/portfolio-data", cfg.Store.DataDir)
}

func TestProductionRejectsDefaultSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
}

func TestProductionWithSecretsSet(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("ADMIN_PASSWORD", "real-password")

	_, err := Load()
	assert.NoError(t, err)
}

func TestValidateRejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "0")

	_, err := Load()
	require.Error(t, err)
}
