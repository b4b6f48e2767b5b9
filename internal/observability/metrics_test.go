package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.CountiesTotal.Set(3221)
	m.CountiesByStatus.WithLabelValues("Dry").Set(38)
	m.CountiesByStatus.WithLabelValues("Wet").Set(2992)
	m.GeometryMismatches.Set(0)
	m.MapBytes.Set(123456)
	m.BuildDuration.Observe(0.42)

	path := filepath.Join(t.TempDir(), "drymap.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "drymap_counties_total 3221")
	assert.Contains(t, out, `drymap_counties{status="Dry"} 38`)
	assert.Contains(t, out, "drymap_build_duration_seconds_count 1")
}

func TestNewMetrics_Reregisters(t *testing.T) {
	// Private registries keep repeated construction panic-free.
	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}
