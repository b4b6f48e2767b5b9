// Package render joins the status registry with county geometry and emits
// the map document: a single self-contained HTML file with an inline SVG
// choropleth. Output is byte-for-byte deterministic for identical inputs,
// which the diff-based publisher relies on to avoid spurious commits.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/couchcryptid/dry-county-map/internal/domain"
	"github.com/couchcryptid/dry-county-map/internal/geo"
	"github.com/couchcryptid/dry-county-map/internal/registry"
)

//go:embed map.html.tmpl
var mapTemplate string

var tmpl = template.Must(template.New("map").Parse(mapTemplate))

// statusColors is the fixed color scale. Stable across runs so the legend
// and the artifact diff cleanly between regenerations.
var statusColors = map[domain.Status]string{
	domain.StatusWet:     "#c7e9c0",
	domain.StatusMoist:   "#fdae6b",
	domain.StatusDry:     "#e31a1c",
	domain.StatusUnknown: "#bdbdbd",
}

// legendOrder matches the original map's legend: most-permissive first,
// with the Unknown bucket shown only when it is non-empty.
var legendOrder = []domain.Status{domain.StatusWet, domain.StatusMoist, domain.StatusDry, domain.StatusUnknown}

// Builder renders map documents.
type Builder struct {
	logger            *slog.Logger
	mismatchThreshold float64
}

// New creates a Builder. mismatchThreshold is the fraction of geometry
// features allowed to resolve to no known county before the build aborts.
func New(logger *slog.Logger, mismatchThreshold float64) *Builder {
	return &Builder{logger: logger, mismatchThreshold: mismatchThreshold}
}

type county struct {
	FIPS    string
	Name    string
	State   string
	Status  domain.Status
	Color   string
	Path    string
	Tooltip string
}

type legendEntry struct {
	Status domain.Status
	Color  string
	Count  int
}

type page struct {
	Counties []county
	Legend   []legendEntry
	Dry      int
	Moist    int
	Wet      int
	Unknown  int
	Total    int
}

// Build classifies every county shape against the registry and renders the
// document. Shapes whose state FIPS is unrecognized go to the Unknown
// bucket and are logged; if they exceed the mismatch threshold the build
// fails with *domain.MismatchError instead of publishing a broken map.
func (b *Builder) Build(reg *registry.Registry, shapes []geo.CountyShape) (*domain.MapDocument, error) {
	counts := make(map[domain.Status]int)
	counties := make([]county, 0, len(shapes))
	unresolved := 0

	for _, s := range shapes {
		var status domain.Status
		var note string

		stateName, known := domain.StateName(s.StateFIPS)
		if !known {
			status = domain.StatusUnknown
			stateName = "Unknown"
			unresolved++
			b.logger.Warn("county resolves to no known state, rendering as unknown",
				"fips", s.FIPS, "state_fips", s.StateFIPS, "name", s.Name)
		} else {
			status, note = reg.Classify(s.FIPS, s.StateFIPS, s.Name)
		}

		counts[status]++
		counties = append(counties, county{
			FIPS:    s.FIPS,
			Name:    s.Name,
			State:   stateName,
			Status:  status,
			Color:   statusColors[status],
			Path:    svgPath(s.StateFIPS, s.Geometry),
			Tooltip: tooltip(s.Name, stateName, status, note),
		})
	}

	if total := len(shapes); total > 0 && float64(unresolved)/float64(total) > b.mismatchThreshold {
		return nil, &domain.MismatchError{Unresolved: unresolved, Total: total, Threshold: b.mismatchThreshold}
	}

	legend := make([]legendEntry, 0, len(legendOrder))
	for _, status := range legendOrder {
		if status == domain.StatusUnknown && counts[status] == 0 {
			continue
		}
		legend = append(legend, legendEntry{Status: status, Color: statusColors[status], Count: counts[status]})
	}

	var buf bytes.Buffer
	err := tmpl.Execute(&buf, page{
		Counties: counties,
		Legend:   legend,
		Dry:      counts[domain.StatusDry],
		Moist:    counts[domain.StatusMoist],
		Wet:      counts[domain.StatusWet],
		Unknown:  counts[domain.StatusUnknown],
		Total:    len(shapes),
	})
	if err != nil {
		return nil, fmt.Errorf("render map document: %w", err)
	}

	return &domain.MapDocument{
		HTML:       buf.Bytes(),
		Counts:     counts,
		Total:      len(shapes),
		Unresolved: unresolved,
	}, nil
}

func tooltip(name, state string, status domain.Status, note string) string {
	text := fmt.Sprintf("%s County, %s\nStatus: %s", name, state, status)
	if note != "" {
		text += "\n" + note
	}
	return text
}
