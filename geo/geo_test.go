package geo

import (
	"testing"

	"c2cq/doc"
	"c2cq/util"

	"github.com/paulmach/orb"
)

func TestDistance(t *testing.T) {
	util.AssertEqual(t, 5.0, Distance(orb.Point{0, 0}, orb.Point{3, 4}))
	util.AssertEqual(t, 0.0, Distance(orb.Point{1, 1}, orb.Point{1, 1}))
}

func TestExpandBbox(t *testing.T) {
	// Arrange
	bbox := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}

	// Act
	expanded := ExpandBbox(bbox, 2)

	// Assert
	util.AssertEqual(t, orb.Bound{Min: orb.Point{-2, -2}, Max: orb.Point{12, 12}}, expanded)
}

func TestBboxAround(t *testing.T) {
	// Arrange & Act
	bbox := BboxAround(orb.Point{10, 20}, 100)

	// Assert
	util.AssertEqual(t, orb.Bound{Min: orb.Point{-40, -30}, Max: orb.Point{60, 70}}, bbox)
	util.AssertTrue(t, bbox.Contains(orb.Point{10, 20}))
}

func TestMercatorProjection_roundTrip(t *testing.T) {
	// Arrange & Act
	point := LonLatToMercator(6.87, 45.92)
	lonLat := MercatorToLonLat(point)

	// Assert
	util.AssertApprox(t, 6.87, lonLat.X(), 0.000001)
	util.AssertApprox(t, 45.92, lonLat.Y(), 0.000001)

	origin := LonLatToMercator(0, 0)
	util.AssertApprox(t, 0.0, origin.X(), 0.000001)
	util.AssertApprox(t, 0.0, origin.Y(), 0.000001)
}

func TestPointOf_pointGeometry(t *testing.T) {
	document := doc.Document{
		"geometry": map[string]any{"type": "Point", "coordinates": []any{1.0, 2.0}},
	}

	point, ok := PointOf(document)

	util.AssertTrue(t, ok)
	util.AssertEqual(t, orb.Point{1, 2}, point)
}

func TestPointOf_firstVertexOfLinesAndPolygons(t *testing.T) {
	lineString := doc.Document{
		"geometry": map[string]any{"type": "LineString", "coordinates": []any{
			[]any{5.0, 6.0},
			[]any{7.0, 8.0},
		}},
	}
	polygon := doc.Document{
		"geometry": map[string]any{"type": "Polygon", "coordinates": []any{
			[]any{[]any{1.0, 2.0}, []any{3.0, 4.0}, []any{1.0, 2.0}},
		}},
	}

	point, ok := PointOf(lineString)
	util.AssertTrue(t, ok)
	util.AssertEqual(t, orb.Point{5, 6}, point)

	point, ok = PointOf(polygon)
	util.AssertTrue(t, ok)
	util.AssertEqual(t, orb.Point{1, 2}, point)
}

func TestPointOf_geomStringEnvelope(t *testing.T) {
	// The catalog wraps geometries into a {"geom": "<json string>"} envelope.
	document := doc.Document{
		"geometry": map[string]any{
			"version": 1.0,
			"geom":    `{"type": "Point", "coordinates": [703332.906594, 5645975.4795]}`,
		},
	}

	point, ok := PointOf(document)

	util.AssertTrue(t, ok)
	util.AssertEqual(t, orb.Point{703332.906594, 5645975.4795}, point)
}

func TestPointOf_bboxFallback(t *testing.T) {
	document := doc.Document{
		"bbox": []any{0.0, 0.0, 10.0, 10.0},
	}

	point, ok := PointOf(document)

	util.AssertTrue(t, ok)
	util.AssertEqual(t, orb.Point{5, 5}, point)
}

func TestPointOf_unlocatableDocuments(t *testing.T) {
	unlocatable := []doc.Document{
		{},
		{"geometry": map[string]any{}},
		{"geometry": map[string]any{"type": "Point", "coordinates": []any{}}},
		{"geometry": map[string]any{"geom": "no json at all"}},
		{"geometry": "not a mapping"},
		{"bbox": []any{0.0, 0.0}},
	}

	for _, document := range unlocatable {
		_, ok := PointOf(document)
		util.AssertFalse(t, ok)
	}
}
