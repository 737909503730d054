// Package app wires configuration into the adapters and use cases shared by
// the HTTP server and the MCP server.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adcraft/internal/adapter/copywriter"
	"adcraft/internal/adapter/filestore"
	"adcraft/internal/adapter/higgsfield"
	"adcraft/internal/adapter/memory"
	"adcraft/internal/adapter/postgres"
	"adcraft/internal/adapter/redis"
	"adcraft/internal/adapter/usecase"
	"adcraft/internal/config"
	"adcraft/internal/config/configs"
	"adcraft/internal/core/builder"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/metrics"
	"adcraft/internal/core/port"
	"adcraft/internal/db"
)

// App holds the wired use cases and the resources they depend on.
type App struct {
	Campaigns *usecase.CampaignUseCase
	Builder   *usecase.BuilderUseCase
	Content   *usecase.ContentUseCase

	closers []func()
}

// NewLogger builds the structured logger described by cfg, writing to w.
func NewLogger(cfg configs.Logger, w io.Writer) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// New opens the configured stores and builds the use cases. The caller
// must Close the returned App.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *App, err error) {
	a := &App{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	repo, err := a.campaignRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Seed {
		if err = db.Seed(ctx, repo, metrics.NewSynthesizer(nil), time.Now()); err != nil {
			return nil, fmt.Errorf("seed campaigns: %w", err)
		}
		logger.Info("demo campaigns seeded")
	}

	sessions, err := a.sessionStore(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	var synth *metrics.Synthesizer
	if cfg.Builder.SimulateMetrics {
		synth = metrics.NewSynthesizer(nil)
	}

	var gen port.ContentGenerator
	if cfg.Content.Configured() {
		gen = higgsfield.NewClient(cfg.Content, nil, logger)
	} else {
		logger.Info("content provider credentials not set, media requests use placeholders")
	}

	status := domain.Status(cfg.Builder.InitialStatus)
	machine := builder.NewMachine(builder.Config{
		ScheduleStep: cfg.Builder.ScheduleStep,
		Status:       status,
	})

	a.Campaigns = usecase.NewCampaignUseCase(repo, synth, status, logger)
	a.Builder = usecase.NewBuilderUseCase(machine, repo, sessions, synth, logger)
	a.Content = usecase.NewContentUseCase(gen, copywriter.New(), logger)
	return a, nil
}

// Close releases every resource opened by New, in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) campaignRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, error) {
	if cfg.Storage.NormalizedDriver() == configs.StorageFile {
		logger.Info("campaigns stored in file", slog.String("path", cfg.Storage.FilePath))
		return filestore.NewCampaignRepository(cfg.Storage.FilePath), nil
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	logger.Info("campaigns stored in postgres")
	return postgres.NewCampaignRepository(pool), nil
}

func (a *App) sessionStore(ctx context.Context, cfg configs.Redis, logger *slog.Logger) (port.SessionStore, error) {
	if !cfg.Enabled() {
		return memory.NewSessionStore(cfg.SessionTTL), nil
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	a.closers = append(a.closers, func() { _ = client.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection: %w", err)
	}
	logger.Info("builder sessions stored in redis", slog.String("addr", cfg.Addr))
	return redis.NewSessionStore(client, cfg.SessionTTL, cfg.LockTTL), nil
}
