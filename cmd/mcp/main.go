package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpadapter "adcraft/internal/adapter/mcp"
	"adcraft/internal/app"
	"adcraft/internal/config"
	"adcraft/internal/core/domain"
)

var version = "dev"

// main serves the MCP tools over stdio. Logs go to stderr because stdout
// carries the protocol.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		os.Exit(1)
	}
	defer a.Close()

	srv := mcpadapter.NewServer(a.Campaigns, a.Content, domain.Status(cfg.MCP.CampaignStatus), version, logger)
	if err = srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("mcp server error", slog.Any("error", err))
		a.Close()
		os.Exit(1)
	}
}
