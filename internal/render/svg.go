package render

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// The document viewport. Lower-48 counties fill most of it; Alaska,
// Hawaii, and Puerto Rico are placed as insets along the bottom edge, the
// usual US choropleth arrangement.
const (
	viewWidth  = 960
	viewHeight = 620
)

// project places a WGS-84 coordinate in the viewport. The lower 48 use a
// plain linear mapping of the contiguous-US bounding box; the three
// off-grid territories get their own scaled placements. Projection fidelity
// is deliberately modest: the charting concern ends at "recognizably the
// United States". The arithmetic is fixed, so output is reproducible.
func project(stateFIPS string, lon, lat float64) (x, y float64) {
	switch stateFIPS {
	case "02": // Alaska: crosses the antimeridian, shrunk into the southwest inset
		if lon > 0 {
			lon -= 360
		}
		return (lon+188)*2.4 + 10, (72-lat)*5.2 + 440
	case "15": // Hawaii
		return (lon+161)*11 + 300, (23-lat)*11 + 520
	case "72": // Puerto Rico
		return (lon+68)*13 + 660, (19-lat)*13 + 565
	default: // contiguous US: lon [-125, -66], lat [24, 50]
		return (lon + 125) * (viewWidth / 59.0), (50 - lat) * (560 / 26.0)
	}
}

// svgPath converts a county polygon into an SVG path description.
// Coordinates are formatted with one decimal place so identical geometry
// always serializes to identical bytes.
func svgPath(stateFIPS string, geom orb.Geometry) string {
	var sb strings.Builder
	switch g := geom.(type) {
	case orb.Polygon:
		writePolygon(&sb, stateFIPS, g)
	case orb.MultiPolygon:
		for _, p := range g {
			writePolygon(&sb, stateFIPS, p)
		}
	}
	return sb.String()
}

func writePolygon(sb *strings.Builder, stateFIPS string, p orb.Polygon) {
	for _, ring := range p {
		for i, pt := range ring {
			x, y := project(stateFIPS, pt[0], pt[1])
			if i == 0 {
				sb.WriteByte('M')
			} else {
				sb.WriteByte('L')
			}
			sb.WriteString(coord(x))
			sb.WriteByte(',')
			sb.WriteString(coord(y))
		}
		sb.WriteByte('Z')
	}
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
