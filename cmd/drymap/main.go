// Command drymap renders the US county alcohol-sales choropleth as a
// single self-contained HTML document.
//
// Usage:
//
//	drymap [--update]
//
// With --update the registry is first refreshed from the public reference
// page; refresh failures are warnings and the run continues with the
// checked-in dataset. All other settings come from environment variables,
// see internal/config.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/dry-county-map/internal/adapter/wikipedia"
	"github.com/couchcryptid/dry-county-map/internal/config"
	"github.com/couchcryptid/dry-county-map/internal/domain"
	"github.com/couchcryptid/dry-county-map/internal/geo"
	"github.com/couchcryptid/dry-county-map/internal/observability"
	"github.com/couchcryptid/dry-county-map/internal/pipeline"
	"github.com/couchcryptid/dry-county-map/internal/publish"
	"github.com/couchcryptid/dry-county-map/internal/registry"
	"github.com/couchcryptid/dry-county-map/internal/render"
)

func main() {
	update := flag.Bool("update", false, "refresh county statuses from Wikipedia before building")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reg, err := registry.Load(cfg.RegistryPath)
	if err != nil {
		logger.Error("failed to load registry", "error", err)
		os.Exit(1)
	}
	logger.Info("registry loaded", "entries", reg.Len())

	shapes, err := geo.Load(cfg.GeometryPath, cfg.SimplifyTolerance)
	if err != nil {
		logger.Error("failed to load geometry source", "error", err)
		os.Exit(1)
	}
	logger.Info("geometry loaded", "counties", len(shapes), "path", cfg.GeometryPath)

	var updater domain.Updater
	if *update {
		updater = wikipedia.NewClient(cfg.WikipediaURL, cfg.FetchTimeout, logger)
	}

	var publisher pipeline.Publisher
	if cfg.PublishEnabled {
		publisher = publish.NewGit(cfg.PublishDir, logger)
	}

	p := pipeline.New(pipeline.Params{
		Registry:    reg,
		Shapes:      shapes,
		Builder:     render.New(logger, cfg.MismatchThreshold),
		Updater:     updater,
		Publisher:   publisher,
		Logger:      logger,
		Metrics:     metrics,
		OutputPath:  cfg.OutputPath,
		MetricsPath: cfg.MetricsTextfile,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
