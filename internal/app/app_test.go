package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/config"
	"adcraft/internal/config/configs"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Storage: configs.Storage{
			Driver:   configs.StorageFile,
			FilePath: filepath.Join(t.TempDir(), "campaigns.json"),
			Seed:     true,
		},
		Redis:   configs.Redis{SessionTTL: time.Hour, LockTTL: time.Second},
		Builder: configs.Builder{InitialStatus: "draft", SimulateMetrics: true},
	}
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_FileStorageWithSeed(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t), discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	campaigns, err := a.Campaigns.List(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, campaigns, 5)

	o, err := a.Campaigns.Overview(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 5, o.TotalCampaigns)
	require.NotNil(t, o.TopCampaign)

	img, err := a.Content.Generate(ctx, domain.ContentRequest{Kind: domain.ContentImage, Prompt: "demo"})
	require.NoError(t, err)
	assert.Contains(t, img.URL, "via.placeholder.com")
}

func TestNew_BuilderPersistsCampaign(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Storage.Seed = false
	a, err := New(ctx, cfg, discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	var resp *port.BuilderResponse
	for _, msg := range []string{"more leads", "linkedin", "$6,000", "ages 30-50 in uk", "B2B Push", "yes"} {
		resp, err = a.Builder.Converse(ctx, "conv-1", msg)
		require.NoError(t, err)
	}
	require.Equal(t, domain.PhaseReady, resp.Phase)
	require.NotNil(t, resp.Campaign)

	stored, err := a.Campaigns.Get(ctx, resp.Campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformLinkedIn, stored.Platform)
	assert.Equal(t, domain.StatusDraft, stored.Status)
	assert.NotNil(t, stored.Metrics)
}

func TestNew_RedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Storage.Seed = false
	cfg.Redis.Addr = mr.Addr()

	a, err := New(context.Background(), cfg, discard())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	_, err = a.Builder.Converse(context.Background(), "conv-1", "I want to increase sales")
	require.NoError(t, err)
	assert.True(t, mr.Exists("builder:session:conv-1"))
}

func TestNew_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := testConfig(t)
	cfg.Redis.Addr = addr
	_, err := New(context.Background(), cfg, discard())
	assert.ErrorContains(t, err, "redis connection")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(configs.Logger{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":"v"`)
}
