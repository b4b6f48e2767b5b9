package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.RegistryPath)
	assert.Equal(t, "data/us-counties.geojson", cfg.GeometryPath)
	assert.Equal(t, "dry_counties_map.html", cfg.OutputPath)
	assert.Empty(t, cfg.WikipediaURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.InEpsilon(t, 0.2, cfg.MismatchThreshold, 1e-9)
	assert.InEpsilon(t, 0.005, cfg.SimplifyTolerance, 1e-9)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.False(t, cfg.PublishEnabled)
	assert.Equal(t, ".", cfg.PublishDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("REGISTRY_PATH", "data/custom.yaml")
	t.Setenv("GEOMETRY_PATH", "geo/counties.geojson")
	t.Setenv("OUTPUT_PATH", "out/map.html")
	t.Setenv("WIKIPEDIA_URL", "https://example.org/dry")
	t.Setenv("FETCH_TIMEOUT", "10s")
	t.Setenv("MISMATCH_THRESHOLD", "0.5")
	t.Setenv("SIMPLIFY_TOLERANCE", "0")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/drymap.prom")
	t.Setenv("PUBLISH_ENABLED", "true")
	t.Setenv("PUBLISH_DIR", "/srv/drymap")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/custom.yaml", cfg.RegistryPath)
	assert.Equal(t, "geo/counties.geojson", cfg.GeometryPath)
	assert.Equal(t, "out/map.html", cfg.OutputPath)
	assert.Equal(t, "https://example.org/dry", cfg.WikipediaURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.InEpsilon(t, 0.5, cfg.MismatchThreshold, 1e-9)
	assert.Zero(t, cfg.SimplifyTolerance)
	assert.Equal(t, "/var/lib/node_exporter/drymap.prom", cfg.MetricsTextfile)
	assert.True(t, cfg.PublishEnabled)
	assert.Equal(t, "/srv/drymap", cfg.PublishDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad timeout":        {"FETCH_TIMEOUT", "soon"},
		"zero timeout":       {"FETCH_TIMEOUT", "0s"},
		"bad threshold":      {"MISMATCH_THRESHOLD", "two"},
		"threshold too big":  {"MISMATCH_THRESHOLD", "1.5"},
		"threshold zero":     {"MISMATCH_THRESHOLD", "0"},
		"negative tolerance": {"SIMPLIFY_TOLERANCE", "-0.1"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
