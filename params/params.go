// Package params turns semantic search options into the flat query parameter
// map the camptocamp API expects. All functions are pure transforms: keys of
// absent options are omitted, values are passed through unvalidated and
// invalid ones are left for the remote API to reject.
package params

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Params is anything that can render itself into API query parameters.
type Params interface {
	ToQuery() map[string]string
}

// BaseParams are the options shared by all list endpoints.
type BaseParams struct {
	Query   string
	Lang    string
	Bbox    *orb.Bound
	Fields  []string
	OrderBy string
	Order   string // asc|desc
	Limit   *int
	Offset  *int

	// Extras are forwarded to the API as-is and merged last, so they win over
	// named options on key collisions. This keeps filters usable that this
	// package does not model yet.
	Extras map[string]string
}

// Set stores an extra raw query parameter.
func (p *BaseParams) Set(key string, value string) *BaseParams {
	if p.Extras == nil {
		p.Extras = map[string]string{}
	}
	p.Extras[key] = value
	return p
}

func (p *BaseParams) ToQuery() map[string]string {
	query := p.baseQuery()
	p.mergeExtras(query)
	return query
}

// baseQuery renders the shared options without the extras. Extras have to be
// merged after all named options so they win on key collisions, which is why
// RouteParams and WaypointParams append their own keys in between.
func (p *BaseParams) baseQuery() map[string]string {
	query := map[string]string{}
	if p.Query != "" {
		query["q"] = p.Query
	}
	if p.Lang != "" {
		query["lang"] = p.Lang
	}
	if p.Bbox != nil {
		query["bbox"] = BboxValue(*p.Bbox)
	}
	if p.Fields != nil {
		query["fields"] = strings.Join(p.Fields, ",")
	}
	if p.OrderBy != "" {
		query["orderby"] = p.OrderBy
	}
	if p.Order != "" {
		query["order"] = p.Order
	}
	if p.Limit != nil {
		query["limit"] = strconv.Itoa(*p.Limit)
	}
	if p.Offset != nil {
		query["offset"] = strconv.Itoa(*p.Offset)
	}
	return query
}

func (p *BaseParams) mergeExtras(query map[string]string) {
	for key, value := range p.Extras {
		query[key] = value
	}
}

// BboxValue renders a bound as the "minx,miny,maxx,maxy" bbox parameter.
func BboxValue(bbox orb.Bound) string {
	return formatNumber(bbox.Min.X()) + "," + formatNumber(bbox.Min.Y()) + "," +
		formatNumber(bbox.Max.X()) + "," + formatNumber(bbox.Max.Y())
}

func setList(query map[string]string, key string, values []string) {
	if values != nil {
		query[key] = strings.Join(values, ",")
	}
}

func setIdList(query map[string]string, key string, ids []int64) {
	if ids == nil {
		return
	}
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = strconv.FormatInt(id, 10)
	}
	query[key] = strings.Join(values, ",")
}

func setRange(query map[string]string, key string, value *Range) {
	if value != nil {
		query[key] = value.String()
	}
}

func setString(query map[string]string, key string, value string) {
	if value != "" {
		query[key] = value
	}
}

func setInt(query map[string]string, key string, value *int) {
	if value != nil {
		query[key] = strconv.Itoa(*value)
	}
}
