// Package registry holds the county status dataset and answers
// classification lookups for the map builder.
package registry

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/dry-county-map/internal/domain"
)

//go:embed data/counties.yaml
var defaultData []byte

// nameKey identifies a county by state FIPS and lowercased name, the way
// state ABC boards publish their lists.
type nameKey struct {
	stateFIPS string
	name      string
}

// Registry maps counties to their alcohol-sales classification. Entries
// keyed by 5-digit FIPS take precedence over entries keyed by name; any
// county matching neither is Wet. Construction happens once at startup and
// the registry is read-only during rendering.
type Registry struct {
	byFIPS map[string]domain.CountyStatus
	byName map[nameKey]domain.CountyStatus
}

// file is the YAML schema of the registry data file: per-state blocks of
// county names sharing one status, plus explicit per-FIPS overrides that
// are applied after every state block.
type file struct {
	States    []stateBlock          `yaml:"states"`
	Overrides []domain.CountyStatus `yaml:"overrides"`
}

type stateBlock struct {
	State    string        `yaml:"state"`
	Status   domain.Status `yaml:"status"`
	Note     string        `yaml:"note,omitempty"`
	Counties []string      `yaml:"counties"`
}

// Load reads a registry data file. An empty path loads the embedded
// dataset (compiled February 2026).
func Load(path string) (*Registry, error) {
	data := defaultData
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read registry: %w", err)
		}
	}
	reg, err := Parse(data)
	if err != nil {
		if path == "" {
			path = "embedded dataset"
		}
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes registry YAML. State blocks apply in file order, then
// overrides; a later entry for the same county replaces an earlier one.
func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	reg := &Registry{
		byFIPS: make(map[string]domain.CountyStatus),
		byName: make(map[nameKey]domain.CountyStatus),
	}

	for _, block := range f.States {
		stateFIPS, ok := domain.StateFIPS(block.State)
		if !ok {
			return nil, fmt.Errorf("unknown state %q", block.State)
		}
		for _, county := range block.Counties {
			reg.byName[nameKey{stateFIPS, strings.ToLower(county)}] = domain.CountyStatus{
				Name:   county,
				State:  block.State,
				Status: block.Status,
				Note:   block.Note,
			}
		}
	}

	for _, e := range f.Overrides {
		if e.FIPS == "" {
			return nil, fmt.Errorf("override for %s County, %s has no fips", e.Name, e.State)
		}
		if len(e.FIPS) != 5 {
			return nil, fmt.Errorf("override fips %q is not a 5-digit county code", e.FIPS)
		}
		reg.byFIPS[e.FIPS] = e
		// A FIPS override supersedes any name entry for the same county.
		if stateFIPS, ok := domain.StateFIPS(e.State); ok && e.Name != "" {
			delete(reg.byName, nameKey{stateFIPS, strings.ToLower(e.Name)})
		}
	}

	return reg, nil
}

// Lookup returns the classification for a 5-digit FIPS code, defaulting to
// Wet for counties the registry does not list.
func (r *Registry) Lookup(fips string) domain.Status {
	if e, ok := r.byFIPS[fips]; ok {
		return e.Status
	}
	return domain.StatusWet
}

// Classify resolves a geometry feature against the registry: an explicit
// FIPS entry wins, then a state+name entry, then the Wet default. The note
// accompanies the classification in hover text.
func (r *Registry) Classify(fips, stateFIPS, name string) (domain.Status, string) {
	if e, ok := r.byFIPS[fips]; ok {
		return e.Status, e.Note
	}
	if e, ok := r.byName[nameKey{stateFIPS, strings.ToLower(name)}]; ok {
		return e.Status, e.Note
	}
	return domain.StatusWet, ""
}

// Merge applies remote-update entries, last write wins per county. Entries
// naming a state the registry does not know are skipped. Returns the number
// of entries applied.
func (r *Registry) Merge(updates []domain.CountyStatus) int {
	applied := 0
	for _, e := range updates {
		if e.FIPS != "" {
			r.byFIPS[e.FIPS] = e
			applied++
			continue
		}
		stateFIPS, ok := domain.StateFIPS(e.State)
		if !ok || e.Name == "" {
			continue
		}
		r.byName[nameKey{stateFIPS, strings.ToLower(e.Name)}] = e
		applied++
	}
	return applied
}

// All returns every entry in deterministic order: FIPS entries ascending,
// then name entries by state FIPS and county name.
func (r *Registry) All() []domain.CountyStatus {
	out := make([]domain.CountyStatus, 0, len(r.byFIPS)+len(r.byName))

	fipsKeys := make([]string, 0, len(r.byFIPS))
	for k := range r.byFIPS {
		fipsKeys = append(fipsKeys, k)
	}
	sort.Strings(fipsKeys)
	for _, k := range fipsKeys {
		out = append(out, r.byFIPS[k])
	}

	nameKeys := make([]nameKey, 0, len(r.byName))
	for k := range r.byName {
		nameKeys = append(nameKeys, k)
	}
	sort.Slice(nameKeys, func(i, j int) bool {
		if nameKeys[i].stateFIPS != nameKeys[j].stateFIPS {
			return nameKeys[i].stateFIPS < nameKeys[j].stateFIPS
		}
		return nameKeys[i].name < nameKeys[j].name
	})
	for _, k := range nameKeys {
		out = append(out, r.byName[k])
	}

	return out
}

// Len reports the number of listed counties (everything else is Wet).
func (r *Registry) Len() int {
	return len(r.byFIPS) + len(r.byName)
}
