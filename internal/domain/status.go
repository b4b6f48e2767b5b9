package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Status classifies the legality of retail alcohol sales in a county.
type Status string

const (
	StatusDry   Status = "Dry"
	StatusMoist Status = "Moist"
	StatusWet   Status = "Wet"

	// StatusUnknown marks geometry features that resolve to no known
	// county. It never appears in the registry; the map builder assigns it
	// so bad joins are visible instead of defaulting to Wet.
	StatusUnknown Status = "Unknown"
)

// ParseStatus converts a string from a data file into a Status.
// Only the three registry classifications are accepted.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDry, StatusMoist, StatusWet:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q (want Dry, Moist, or Wet)", s)
}

// UnmarshalYAML validates statuses as they are decoded from the registry
// data file, so a typo fails the load rather than classifying silently.
func (s *Status) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CountyStatus is one registry entry. FIPS may be empty for entries
// authored by state and county name.
type CountyStatus struct {
	FIPS   string `json:"fips,omitempty" yaml:"fips,omitempty"`
	Name   string `json:"name" yaml:"name"`
	State  string `json:"state" yaml:"state"`
	Status Status `json:"status" yaml:"status"`
	Note   string `json:"note,omitempty" yaml:"note,omitempty"`
}

// MapDocument is the rendered artifact: a self-contained HTML choropleth
// plus the per-status tallies used for logging and metrics. It carries no
// timestamps so identical inputs produce identical bytes.
type MapDocument struct {
	HTML       []byte
	Counts     map[Status]int
	Total      int
	Unresolved int
}
