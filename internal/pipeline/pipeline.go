// Package pipeline runs one map generation: optional remote refresh, the
// registry-geometry join and render, an atomic write of the artifact, and
// change-driven publishing. The run is single-threaded and linear; each
// stage fails fast except the refresh, which is best-effort by contract.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/renameio/v2"

	"github.com/couchcryptid/dry-county-map/internal/domain"
	"github.com/couchcryptid/dry-county-map/internal/geo"
	"github.com/couchcryptid/dry-county-map/internal/observability"
	"github.com/couchcryptid/dry-county-map/internal/publish"
	"github.com/couchcryptid/dry-county-map/internal/registry"
)

// Builder joins the registry with county geometry and renders the document.
type Builder interface {
	Build(reg *registry.Registry, shapes []geo.CountyShape) (*domain.MapDocument, error)
}

// Publisher pushes a changed document to the remote repository.
type Publisher interface {
	Publish(ctx context.Context, path string) error
}

// Params wires a Pipeline. Updater and Publisher may be nil to disable the
// refresh and publish stages.
type Params struct {
	Registry  *registry.Registry
	Shapes    []geo.CountyShape
	Builder   Builder
	Updater   domain.Updater
	Publisher Publisher
	Logger    *slog.Logger
	Metrics   *observability.Metrics

	OutputPath  string
	MetricsPath string // empty disables the textfile export
}

// Pipeline executes one generation run.
type Pipeline struct {
	p Params
}

// New creates a Pipeline from its wired dependencies.
func New(p Params) *Pipeline {
	return &Pipeline{p: p}
}

// Run executes refresh → build → write → publish. A refresh failure is a
// warning and the run continues with the registry as loaded; every other
// stage error is fatal.
func (pl *Pipeline) Run(ctx context.Context) error {
	p := pl.p

	if p.Updater != nil {
		updates, err := p.Updater.Refresh(ctx)
		if err != nil {
			var fetchErr *domain.FetchError
			if !errors.As(err, &fetchErr) {
				return fmt.Errorf("refresh registry: %w", err)
			}
			p.Logger.Warn("remote update failed, keeping loaded registry", "error", err)
		} else {
			applied := p.Registry.Merge(updates)
			p.Metrics.UpdaterApplied.Set(float64(applied))
			p.Logger.Info("merged remote updates", "received", len(updates), "applied", applied)
		}
	}

	start := time.Now()
	doc, err := p.Builder.Build(p.Registry, p.Shapes)
	if err != nil {
		return fmt.Errorf("build map: %w", err)
	}
	p.Metrics.BuildDuration.Observe(time.Since(start).Seconds())

	p.Metrics.CountiesTotal.Set(float64(doc.Total))
	for status, count := range doc.Counts {
		p.Metrics.CountiesByStatus.WithLabelValues(string(status)).Set(float64(count))
	}
	p.Metrics.GeometryMismatches.Set(float64(doc.Unresolved))
	p.Metrics.MapBytes.Set(float64(len(doc.HTML)))

	p.Logger.Info("map built",
		"total", doc.Total,
		"dry", doc.Counts[domain.StatusDry],
		"moist", doc.Counts[domain.StatusMoist],
		"wet", doc.Counts[domain.StatusWet],
		"unresolved", doc.Unresolved,
	)

	changed, err := publish.Changed(p.OutputPath, doc.HTML)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(p.OutputPath, doc.HTML, 0o644); err != nil {
		return fmt.Errorf("write map document: %w", err)
	}
	p.Logger.Info("map document written", "path", p.OutputPath, "bytes", len(doc.HTML))

	if !changed {
		p.Logger.Info("map document unchanged, skipping publish")
	} else if p.Publisher != nil {
		if err := p.Publisher.Publish(ctx, p.OutputPath); err != nil {
			return fmt.Errorf("publish map document: %w", err)
		}
	}

	if p.MetricsPath != "" {
		// Metrics are operational telemetry, not part of the artifact; a
		// write failure downgrades to a warning.
		if err := p.Metrics.WriteTextfile(p.MetricsPath); err != nil {
			p.Logger.Warn("metrics textfile write failed", "error", err)
		}
	}

	return nil
}
