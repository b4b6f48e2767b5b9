// Package geo loads US county boundary polygons from a Census GeoJSON
// export and prepares them for rendering.
package geo

import (
	"fmt"
	"os"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// CountyShape is one county boundary, keyed by its 5-digit FIPS code.
type CountyShape struct {
	FIPS      string
	Name      string
	StateFIPS string
	Geometry  orb.Geometry
}

// Load reads a county boundary FeatureCollection (Census cb_2016-style
// properties: GEOID, NAME, STATEFP) and returns shapes sorted by FIPS.
// Geometries are simplified with Douglas-Peucker at the given tolerance in
// degrees; zero disables simplification. A county appearing twice is a
// load error so the no-duplicates invariant holds from the source up.
func Load(path string, tolerance float64) ([]CountyShape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geometry source: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geometry source %s: %w", path, err)
	}

	var simplifier *simplify.DouglasPeuckerSimplifier
	if tolerance > 0 {
		simplifier = simplify.DouglasPeucker(tolerance)
	}

	seen := make(map[string]bool, len(fc.Features))
	shapes := make([]CountyShape, 0, len(fc.Features))
	for _, f := range fc.Features {
		fips := featureFIPS(f)
		if fips == "" {
			return nil, fmt.Errorf("geometry source %s: feature without GEOID", path)
		}
		if seen[fips] {
			return nil, fmt.Errorf("geometry source %s: duplicate county %s", path, fips)
		}
		seen[fips] = true

		geom := f.Geometry
		if simplifier != nil {
			geom = simplifier.Simplify(geom)
		}

		shapes = append(shapes, CountyShape{
			FIPS:      fips,
			Name:      f.Properties.MustString("NAME", ""),
			StateFIPS: featureStateFIPS(f, fips),
			Geometry:  geom,
		})
	}

	sort.Slice(shapes, func(i, j int) bool { return shapes[i].FIPS < shapes[j].FIPS })
	return shapes, nil
}

// featureFIPS prefers the GEOID property and falls back to the feature ID,
// which is how plotly-style county GeoJSON exports carry the code.
func featureFIPS(f *geojson.Feature) string {
	if geoid := f.Properties.MustString("GEOID", ""); geoid != "" {
		return geoid
	}
	if id, ok := f.ID.(string); ok {
		return id
	}
	return ""
}

// featureStateFIPS prefers the STATEFP property, falling back to the first
// two digits of the county code.
func featureStateFIPS(f *geojson.Feature, fips string) string {
	if sf := f.Properties.MustString("STATEFP", ""); sf != "" {
		return sf
	}
	if len(fips) >= 2 {
		return fips[:2]
	}
	return ""
}
