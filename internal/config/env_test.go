package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_ACCESS_TOKEN_TTL", "5m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env-host/habits")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("WORKERS_REMINDER_INTERVAL", "45s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 5*time.Minute, cfg.App.AccessTokenTTL)
	assert.Equal(t, "postgres://env-host/habits", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Workers.ReminderInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_ACCESS_TOKEN_TTL", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestParseEnv_EmptyEnvironmentYieldsZeroConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Zero(t, cfg.App.AccessTokenTTL)
}
