package search

import (
	"testing"

	"c2cq/doc"
	"c2cq/util"
)

func pointDocument(id int64, x float64, y float64) doc.Document {
	return doc.Document{
		"document_id": id,
		"geometry":    map[string]any{"type": "Point", "coordinates": []any{x, y}},
	}
}

func TestMatcher_filtersByDistance(t *testing.T) {
	// Arrange
	waypoints := []doc.Document{pointDocument(1, 0, 0)}
	routes := []doc.Document{
		pointDocument(10, 1000, 0),
		pointDocument(11, 3000, 0),
	}

	// Act
	matches := MatchRoutesToWaypoints(waypoints, routes, 2000)

	// Assert
	util.AssertEqual(t, 1, len(matches))
	util.AssertEqual(t, int64(10), matches[0].Route.Id())
	util.AssertEqual(t, int64(1), matches[0].Waypoint.Id())
	util.AssertEqual(t, 1000.0, matches[0].Distance)
}

func TestMatcher_sortsByAscendingDistance(t *testing.T) {
	// Arrange
	waypoints := []doc.Document{pointDocument(1, 0, 0)}
	routes := []doc.Document{
		pointDocument(10, 1500, 0),
		pointDocument(11, 500, 0),
		pointDocument(12, 1000, 0),
	}

	// Act
	matches := MatchRoutesToWaypoints(waypoints, routes, 2000)

	// Assert
	util.AssertEqual(t, 3, len(matches))
	util.AssertEqual(t, int64(11), matches[0].Route.Id())
	util.AssertEqual(t, int64(12), matches[1].Route.Id())
	util.AssertEqual(t, int64(10), matches[2].Route.Id())
}

func TestMatcher_equalDistancesKeepInputOrder(t *testing.T) {
	// Arrange: both routes are exactly 1000m away from the waypoint.
	waypoints := []doc.Document{pointDocument(1, 0, 0)}
	routes := []doc.Document{
		pointDocument(10, 1000, 0),
		pointDocument(11, -1000, 0),
	}

	// Act
	matches := MatchRoutesToWaypoints(waypoints, routes, 2000)

	// Assert
	util.AssertEqual(t, 2, len(matches))
	util.AssertEqual(t, int64(10), matches[0].Route.Id())
	util.AssertEqual(t, int64(11), matches[1].Route.Id())
}

func TestMatcher_routeCanMatchSeveralWaypoints(t *testing.T) {
	// Arrange: a route reachable from two takeoffs produces one match per
	// takeoff, it is not collapsed to the nearest one.
	waypoints := []doc.Document{
		pointDocument(1, 0, 0),
		pointDocument(2, 500, 0),
	}
	routes := []doc.Document{pointDocument(10, 250, 0)}

	// Act
	matches := MatchRoutesToWaypoints(waypoints, routes, 2000)

	// Assert
	util.AssertEqual(t, 2, len(matches))
	util.AssertEqual(t, 250.0, matches[0].Distance)
	util.AssertEqual(t, 250.0, matches[1].Distance)
}

func TestMatcher_skipsUnlocatableDocuments(t *testing.T) {
	// Arrange
	waypoints := []doc.Document{
		pointDocument(1, 0, 0),
		{"document_id": int64(2)}, // no geometry
	}
	routes := []doc.Document{
		pointDocument(10, 100, 0),
		{"document_id": int64(11), "geometry": map[string]any{}},
	}

	// Act
	matches := MatchRoutesToWaypoints(waypoints, routes, 2000)

	// Assert: unlocatable documents never appear in a match and never cause
	// an error.
	util.AssertEqual(t, 1, len(matches))
	util.AssertEqual(t, int64(10), matches[0].Route.Id())
	util.AssertEqual(t, int64(1), matches[0].Waypoint.Id())
}

func TestMatcher_emptyInputs(t *testing.T) {
	util.AssertEqual(t, 0, len(MatchRoutesToWaypoints(nil, nil, 2000)))
	util.AssertEqual(t, 0, len(MatchRoutesToWaypoints([]doc.Document{pointDocument(1, 0, 0)}, nil, 2000)))
	util.AssertEqual(t, 0, len(MatchRoutesToWaypoints(nil, []doc.Document{pointDocument(10, 0, 0)}, 2000)))
}

func TestWaypointsBbox(t *testing.T) {
	// Arrange
	waypoints := []doc.Document{
		pointDocument(1, 0, 10),
		pointDocument(2, 100, -20),
		{"document_id": int64(3)}, // unlocatable, ignored
	}

	// Act
	bbox, ok := waypointsBbox(waypoints)

	// Assert
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 0.0, bbox.Min.X())
	util.AssertEqual(t, -20.0, bbox.Min.Y())
	util.AssertEqual(t, 100.0, bbox.Max.X())
	util.AssertEqual(t, 10.0, bbox.Max.Y())

	_, ok = waypointsBbox([]doc.Document{{"document_id": int64(4)}})
	util.AssertFalse(t, ok)
}
