package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/centavo")
	t.Setenv("AUTH0_DOMAIN", "centavo.auth0.com")
	t.Setenv("AUTH0_AUDIENCE", "https://api.centavo.app")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://app.centavo.app,https://staging.centavo.app")
	t.Setenv("S3_BUCKET", "centavo-receipts")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://app.centavo.app", "https://staging.centavo.app"}, cfg.CORSOrigins)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
