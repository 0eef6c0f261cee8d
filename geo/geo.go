// Package geo contains the small amount of geometry logic this tool needs.
// All coordinates coming from the catalog are Web Mercator (EPSG:3857)
// meters, so distances are plain planar distances. That is not geodesically
// correct over large separations, but fine for the few-kilometer ranges the
// matcher works with.
package geo

import (
	"encoding/json"

	"c2cq/doc"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"
)

// Distance returns the Euclidean distance between two mercator points in
// meters.
func Distance(a orb.Point, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// ExpandBbox grows the bound by pad meters on every side.
func ExpandBbox(bbox orb.Bound, pad float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{bbox.Min.X() - pad, bbox.Min.Y() - pad},
		Max: orb.Point{bbox.Max.X() + pad, bbox.Max.Y() + pad},
	}
}

// BboxAround returns a square bound of the given side length centered on the
// given mercator point.
func BboxAround(center orb.Point, side float64) orb.Bound {
	half := side / 2.0
	return orb.Bound{
		Min: orb.Point{center.X() - half, center.Y() - half},
		Max: orb.Point{center.X() + half, center.Y() + half},
	}
}

// LonLatToMercator projects WGS84 degrees to mercator meters.
func LonLatToMercator(lon float64, lat float64) orb.Point {
	return project.WGS84.ToMercator(orb.Point{lon, lat})
}

// MercatorToLonLat projects mercator meters back to WGS84 degrees.
func MercatorToLonLat(point orb.Point) orb.Point {
	return project.Mercator.ToWGS84(point)
}

// PointOf extracts a representative mercator point from a document. It tries
// the GeoJSON-like geometry field first (the catalog wraps it in a
// {"geom": "<json string>"} envelope) and falls back to the center of the
// document bbox. A document without any extractable coordinate returns
// ok=false, which is not an error: such documents are simply unlocatable and
// get skipped by callers.
func PointOf(document doc.Document) (orb.Point, bool) {
	if geometry, ok := document["geometry"].(map[string]any); ok {
		if point, ok := geometryPoint(geometry); ok {
			return point, true
		}
	}

	if bbox, ok := document["bbox"].([]any); ok && len(bbox) == 4 {
		minX, okMinX := asFloat(bbox[0])
		minY, okMinY := asFloat(bbox[1])
		maxX, okMaxX := asFloat(bbox[2])
		maxY, okMaxY := asFloat(bbox[3])
		if okMinX && okMinY && okMaxX && okMaxY {
			return orb.Point{(minX + maxX) / 2.0, (minY + maxY) / 2.0}, true
		}
	}

	return orb.Point{}, false
}

func geometryPoint(geometry map[string]any) (orb.Point, bool) {
	if geomString, ok := geometry["geom"].(string); ok {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(geomString), &parsed); err != nil {
			return orb.Point{}, false
		}
		return geometryPoint(parsed)
	}

	coordinates, ok := geometry["coordinates"]
	if !ok {
		return orb.Point{}, false
	}

	// A Point geometry holds one [x, y] pair, line and polygon geometries
	// nest such pairs. Drilling down to the first pair covers all of them.
	return firstCoordinate(coordinates)
}

func firstCoordinate(coordinates any) (orb.Point, bool) {
	values, ok := coordinates.([]any)
	if !ok || len(values) == 0 {
		return orb.Point{}, false
	}

	if x, ok := asFloat(values[0]); ok {
		if len(values) < 2 {
			return orb.Point{}, false
		}
		y, ok := asFloat(values[1])
		if !ok {
			return orb.Point{}, false
		}
		return orb.Point{x, y}, true
	}

	return firstCoordinate(values[0])
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}
