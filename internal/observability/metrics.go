package observability

import (
	"bytes"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the Prometheus gauges and histograms for one map
// generation run. The process is a batch job, so instead of a scrape
// endpoint the metrics are written to a node-exporter textfile after the
// run; a private registry keeps repeated construction in tests safe.
type Metrics struct {
	registry *prometheus.Registry

	CountiesTotal      prometheus.Gauge
	CountiesByStatus   *prometheus.GaugeVec // label: status={Dry,Moist,Wet,Unknown}
	GeometryMismatches prometheus.Gauge
	MapBytes           prometheus.Gauge
	UpdaterApplied     prometheus.Gauge // entries merged from the remote updater
	BuildDuration      prometheus.Histogram
}

// NewMetrics creates and registers all run metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CountiesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "drymap",
			Name:      "counties_total",
			Help:      "Counties rendered in the map document.",
		}),
		CountiesByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "drymap",
			Name:      "counties",
			Help:      "Counties rendered per classification.",
		}, []string{"status"}),
		GeometryMismatches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "drymap",
			Name:      "geometry_mismatches",
			Help:      "Geometry features that resolved to no known county.",
		}),
		MapBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "drymap",
			Name:      "map_bytes",
			Help:      "Size of the rendered map document in bytes.",
		}),
		UpdaterApplied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "drymap",
			Name:      "updater_entries_applied",
			Help:      "Registry entries merged from the remote updater this run.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "drymap",
			Name:      "build_duration_seconds",
			Help:      "Duration of the join-and-render step.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}

	m.registry.MustRegister(
		m.CountiesTotal,
		m.CountiesByStatus,
		m.GeometryMismatches,
		m.MapBytes,
		m.UpdaterApplied,
		m.BuildDuration,
	)

	return m
}

// WriteTextfile exports the registry in the Prometheus text format,
// replacing the target atomically so the node-exporter textfile collector
// never reads a half-written file.
func (m *Metrics) WriteTextfile(path string) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}

	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
