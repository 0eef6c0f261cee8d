package search

import (
	"context"
	"math"
	"sort"

	"c2cq/doc"
	"c2cq/geo"
	"c2cq/params"

	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
)

// Match is a route whose start lies within the distance threshold of a
// waypoint. Distance is in mercator meters.
type Match struct {
	Route    doc.Document
	Waypoint doc.Document
	Distance float64
}

// minRoutePadding is the minimum bbox padding around the waypoints when
// fetching route candidates.
const minRoutePadding = 1000.0

// MatchRoutesToWaypoints pairs every route with every waypoint within
// maxDistance. A route may match several waypoints, one match per qualifying
// waypoint: collapsing to the nearest waypoint only would hide takeoffs a
// route is equally reachable from. Documents without an extractable point are
// skipped silently. The result is sorted by ascending distance and stable for
// equal distances, so identical inputs produce identical output.
//
// The distance join is O(routes x waypoints), which is fine for the tens to
// low hundreds of documents a bbox search realistically yields.
func MatchRoutesToWaypoints(waypoints []doc.Document, routes []doc.Document, maxDistance float64) []Match {
	locatedWaypoints := locate(waypoints)
	locatedRoutes := locate(routes)

	var matches []Match
	for _, route := range locatedRoutes {
		for _, waypoint := range locatedWaypoints {
			distance := geo.Distance(route.point, waypoint.point)
			if distance <= maxDistance {
				matches = append(matches, Match{
					Route:    route.document,
					Waypoint: waypoint.document,
					Distance: distance,
				})
			}
		}
	}

	sort.SliceStable(matches, func(i int, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return matches
}

// RoutesNearWaypoints fetches route candidates around the given waypoints and
// returns the matches within maxDistance. The candidate bbox is the aggregate
// of all waypoint locations, padded by at least the distance threshold.
func (s *Search) RoutesNearWaypoints(ctx context.Context, waypoints []doc.Document, maxDistance float64, routeParams *params.RouteParams, pageSize int, maxItems int) ([]Match, error) {
	if len(waypoints) == 0 {
		return nil, nil
	}

	bbox, ok := waypointsBbox(waypoints)
	if !ok {
		// None of the waypoints is locatable, so nothing can match.
		return nil, nil
	}
	bbox = geo.ExpandBbox(bbox, math.Max(maxDistance, minRoutePadding))

	var p params.Params
	if routeParams != nil {
		p = routeParams
	}
	routes, err := s.RoutesInBboxAll(ctx, bbox, p, pageSize, maxItems)
	if err != nil {
		return nil, err
	}

	sigolo.Debugf("Matching %d routes against %d waypoints", len(routes), len(waypoints))
	return MatchRoutesToWaypoints(waypoints, routes, maxDistance), nil
}

type locatedDocument struct {
	document doc.Document
	point    orb.Point
}

// locate extracts each document's point once so the distance join does not
// recompute it per pair.
func locate(documents []doc.Document) []locatedDocument {
	located := make([]locatedDocument, 0, len(documents))
	for _, document := range documents {
		point, ok := geo.PointOf(document)
		if !ok {
			continue
		}
		located = append(located, locatedDocument{document: document, point: point})
	}
	return located
}

// waypointsBbox returns the bound enclosing all locatable waypoints.
func waypointsBbox(waypoints []doc.Document) (orb.Bound, bool) {
	var points []orb.Point
	for _, waypoint := range waypoints {
		if point, ok := geo.PointOf(waypoint); ok {
			points = append(points, point)
		}
	}

	if len(points) == 0 {
		return orb.Bound{}, false
	}

	bbox := orb.Bound{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		bbox = bbox.Extend(point)
	}
	return bbox, true
}
