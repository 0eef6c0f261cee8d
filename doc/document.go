package doc

import (
	"fmt"
	"strings"
)

const DefaultWebBaseUrl = "https://www.camptocamp.org"

// Document is one record of the camptocamp catalog. The remote schema evolves
// independently of this tool, so documents stay schema-free maps and all
// fields are read defensively.
type Document map[string]any

// entityByTypeCode maps the one-letter "type" code of a document to the
// collection it belongs to.
var entityByTypeCode = map[string]string{
	"r": "routes",
	"w": "waypoints",
	"o": "outings",
	"a": "areas",
	"i": "images",
	"b": "books",
	"c": "articles",
	"x": "xreports",
	"u": "users",
}

// Id returns the document identifier or 0 if the document has none. The API
// uses "document_id", some endpoints plain "id".
func (d Document) Id() int64 {
	if id, ok := asInt64(d["document_id"]); ok {
		return id
	}
	if id, ok := asInt64(d["id"]); ok {
		return id
	}
	return 0
}

// Entity returns the collection name ("routes", "waypoints", ...) of the
// document. When the type code is missing, field heuristics are used.
func (d Document) Entity() string {
	if code, ok := d["type"].(string); ok {
		if entity, ok := entityByTypeCode[code]; ok {
			return entity
		}
	}

	if _, ok := d["waypoint_type"]; ok {
		return "waypoints"
	}
	if _, ok := d["activities"]; ok {
		return "routes"
	}
	return ""
}

// Url returns the website URL of the document or "" if entity or id cannot
// be determined.
func (d Document) Url(base string) string {
	entity := d.Entity()
	id := d.Id()
	if entity == "" || id == 0 {
		return ""
	}
	return fmt.Sprintf("%s/%s/%d", strings.TrimRight(base, "/"), entity, id)
}

// Title returns the first locale title, falling back to the "name" field and
// finally to the document id.
func (d Document) Title() string {
	if locales, ok := d["locales"].([]any); ok && len(locales) > 0 {
		if locale, ok := locales[0].(map[string]any); ok {
			if title, ok := locale["title"].(string); ok && title != "" {
				return title
			}
		}
	}
	if name, ok := d["name"].(string); ok && name != "" {
		return name
	}
	return fmt.Sprintf("%d", d.Id())
}

// String returns the string value of the given field or "" when the field is
// missing or not a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		// encoding/json decodes all numbers into float64.
		return int64(v), true
	}
	return 0, false
}
