// Package search composes the catalog client into higher-level operations:
// bbox-scoped listings with capped pagination and the route-to-waypoint
// proximity matching.
package search

import (
	"context"
	"strconv"

	"c2cq/client"
	"c2cq/doc"
	"c2cq/params"

	"github.com/paulmach/orb"
)

type Search struct {
	client *client.Client
}

func NewSearch(c *client.Client) *Search {
	return &Search{client: c}
}

// ListRoutes fetches a single page of routes matching the given params.
func (s *Search) ListRoutes(ctx context.Context, p params.Params) (*doc.Page, error) {
	return s.client.ListRoutes(ctx, queryOf(p))
}

// ListWaypoints fetches a single page of waypoints matching the given params.
func (s *Search) ListWaypoints(ctx context.Context, p params.Params) (*doc.Page, error) {
	return s.client.ListWaypoints(ctx, queryOf(p))
}

// RoutesInBbox fetches a single page of routes inside the bbox.
func (s *Search) RoutesInBbox(ctx context.Context, bbox orb.Bound, p params.Params) ([]doc.Document, error) {
	query := queryOf(p)
	query["bbox"] = params.BboxValue(bbox)

	page, err := s.client.ListRoutes(ctx, query)
	if err != nil {
		return nil, err
	}
	return page.Documents, nil
}

// WaypointsInBbox fetches a single page of waypoints inside the bbox.
func (s *Search) WaypointsInBbox(ctx context.Context, bbox orb.Bound, p params.Params) ([]doc.Document, error) {
	query := queryOf(p)
	query["bbox"] = params.BboxValue(bbox)

	page, err := s.client.ListWaypoints(ctx, query)
	if err != nil {
		return nil, err
	}
	return page.Documents, nil
}

// RoutesInBboxAll fetches all routes inside the bbox, paginating until the
// data is exhausted or maxItems is reached.
func (s *Search) RoutesInBboxAll(ctx context.Context, bbox orb.Bound, p params.Params, pageSize int, maxItems int) ([]doc.Document, error) {
	query := queryOf(p)
	query["bbox"] = params.BboxValue(bbox)
	return fetchAll(ctx, s.pageFetch("routes"), query, pageSize, maxItems)
}

// WaypointsInBboxAll fetches all waypoints inside the bbox, paginating until
// the data is exhausted or maxItems is reached.
func (s *Search) WaypointsInBboxAll(ctx context.Context, bbox orb.Bound, p params.Params, pageSize int, maxItems int) ([]doc.Document, error) {
	query := queryOf(p)
	query["bbox"] = params.BboxValue(bbox)
	return fetchAll(ctx, s.pageFetch("waypoints"), query, pageSize, maxItems)
}

func (s *Search) pageFetch(endpoint string) PageFetch {
	return func(ctx context.Context, query map[string]string, offset int, limit int) (*doc.Page, error) {
		pageQuery := make(map[string]string, len(query)+2)
		for key, value := range query {
			pageQuery[key] = value
		}
		pageQuery["limit"] = strconv.Itoa(limit)
		pageQuery["offset"] = strconv.Itoa(offset)

		return s.client.List(ctx, endpoint, pageQuery)
	}
}

func queryOf(p params.Params) map[string]string {
	if p == nil {
		return map[string]string{}
	}
	return p.ToQuery()
}
