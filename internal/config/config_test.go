package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(3000), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.StorageFile, cfg.Storage.NormalizedDriver())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Builder.ScheduleStep)
	assert.Equal(t, "draft", cfg.Builder.InitialStatus)
	assert.Equal(t, time.Second, cfg.Content.PollInterval)
	assert.Equal(t, 60, cfg.Content.MaxAttempts)
	assert.False(t, cfg.Content.Configured())
	assert.Equal(t, "active", cfg.MCP.CampaignStatus)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("HTTP_CORS_ORIGINS", "http://localhost:5173,https://app.example.com")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("REDIS_LOCK_TTL", "5s")
	t.Setenv("BUILDER_SCHEDULE_ENABLED", "true")
	t.Setenv("CONTENT_KEY_ID", "id")
	t.Setenv("CONTENT_KEY_SECRET", "secret")
	t.Setenv("CONTENT_POLL_INTERVAL", "250ms")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8081), cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, configs.StoragePostgres, cfg.Storage.NormalizedDriver())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Redis.LockTTL)
	assert.True(t, cfg.Builder.ScheduleStep)
	assert.True(t, cfg.Content.Configured())
	assert.Equal(t, 250*time.Millisecond, cfg.Content.PollInterval)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}
