package registry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/dry-county-map/internal/domain"
	"github.com/couchcryptid/dry-county-map/internal/registry"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)
	require.Positive(t, reg.Len())

	// Hot Spring County, AR voted wet in 2022; the FIPS override must win
	// over any stale name entry.
	assert.Equal(t, domain.StatusWet, reg.Lookup("05059"))

	status, note := reg.Classify("05059", "05", "Hot Spring")
	assert.Equal(t, domain.StatusWet, status)
	assert.Contains(t, note, "2022")

	// Name entries resolve through Classify.
	status, _ = reg.Classify("05003", "05", "Ashley")
	assert.Equal(t, domain.StatusDry, status)

	status, _ = reg.Classify("01043", "01", "Cullman")
	assert.Equal(t, domain.StatusMoist, status)

	// Virginia has no entries at all, so every county defaults Wet.
	status, _ = reg.Classify("51059", "51", "Fairfax")
	assert.Equal(t, domain.StatusWet, status)
}

func TestLookup_UnknownFIPSDefaultsWet(t *testing.T) {
	reg, err := registry.Parse([]byte(`
states:
  - state: Texas
    status: Dry
    counties: [Borden]
`))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusWet, reg.Lookup("99999"))
	assert.Equal(t, domain.StatusWet, reg.Lookup(""))
}

func TestParse_LastWriteWins(t *testing.T) {
	reg, err := registry.Parse([]byte(`
states:
  - state: Texas
    status: Dry
    counties: [Borden]
  - state: Texas
    status: Moist
    note: "later block"
    counties: [Borden]
overrides:
  - fips: "48033"
    name: Borden
    state: Texas
    status: Wet
    note: "override wins"
`))
	require.NoError(t, err)

	// The override removed the name entry and owns the county.
	assert.Equal(t, domain.StatusWet, reg.Lookup("48033"))
	status, note := reg.Classify("48033", "48", "Borden")
	assert.Equal(t, domain.StatusWet, status)
	assert.Equal(t, "override wins", note)

	// Without the override, the later state block would have won.
	reg, err = registry.Parse([]byte(`
states:
  - state: Texas
    status: Dry
    counties: [Borden]
  - state: Texas
    status: Moist
    counties: [Borden]
`))
	require.NoError(t, err)
	status, _ = reg.Classify("", "48", "Borden")
	assert.Equal(t, domain.StatusMoist, status)
	assert.Equal(t, 1, reg.Len(), "same county listed twice is one entry")
}

func TestParse_Rejections(t *testing.T) {
	cases := map[string]string{
		"unknown state": `
states:
  - state: Atlantis
    status: Dry
    counties: [Lost]
`,
		"invalid status": `
states:
  - state: Texas
    status: Damp
    counties: [Borden]
`,
		"override without fips": `
overrides:
  - name: Borden
    state: Texas
    status: Wet
`,
		"short fips": `
overrides:
  - fips: "480"
    name: Borden
    state: Texas
    status: Wet
`,
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := registry.Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestMerge_LastWriteWins(t *testing.T) {
	reg, err := registry.Parse([]byte(`
states:
  - state: Texas
    status: Dry
    counties: [Borden, Kent]
`))
	require.NoError(t, err)

	applied := reg.Merge([]domain.CountyStatus{
		{Name: "Borden", State: "Texas", Status: domain.StatusWet, Note: "remote"},
		{FIPS: "48263", Name: "Kent", State: "Texas", Status: domain.StatusMoist},
		{Name: "Lost", State: "Atlantis", Status: domain.StatusDry}, // skipped
	})
	assert.Equal(t, 2, applied)

	status, note := reg.Classify("", "48", "Borden")
	assert.Equal(t, domain.StatusWet, status)
	assert.Equal(t, "remote", note)

	// The FIPS entry shadows the original name entry on join.
	status, _ = reg.Classify("48263", "48", "Kent")
	assert.Equal(t, domain.StatusMoist, status)
}

func TestAll_Deterministic(t *testing.T) {
	reg, err := registry.Load("")
	require.NoError(t, err)

	first := reg.All()
	second := reg.All()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("All() order unstable (-first +second):\n%s", diff)
	}

	seen := make(map[string]bool, len(first))
	for _, e := range first {
		key := e.FIPS
		if key == "" {
			key = e.State + "|" + e.Name
		}
		assert.False(t, seen[key], "duplicate entry %q", key)
		seen[key] = true
	}
	assert.Len(t, first, reg.Len())
}
