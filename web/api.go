package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"c2cq/doc"
	"c2cq/geo"
	"c2cq/params"
	"c2cq/search"

	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
)

func StartServer(port string, searchService *search.Search) {
	r := initRouter(searchService)
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func initRouter(searchService *search.Search) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/app", func(writer http.ResponseWriter, request *http.Request) {
		sigolo.Infof("Serve index.html")
		http.ServeFile(writer, request, "./web/index.html")
	})
	r.HandleFunc("/api/search", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")
		handleSearch(writer, request, searchService)
	}).Methods(http.MethodGet)

	return r
}

func handleSearch(writer http.ResponseWriter, request *http.Request, searchService *search.Search) {
	lon, lonErr := floatArg(request, "lon", 0)
	lat, latErr := floatArg(request, "lat", 0)
	box, boxErr := floatArg(request, "box", 20000)
	maxDistance, distErr := floatArg(request, "max_distance", 2000)
	if lonErr != nil || latErr != nil || boxErr != nil || distErr != nil {
		writeError(writer, http.StatusBadRequest, "Invalid numeric parameter")
		return
	}

	activities := csvArg(request, "act", "rock_climbing")
	waypointTypes := csvArg(request, "wtyp", "paragliding_takeoff")
	orientations := csvArg(request, "wfac", "")
	lang := request.URL.Query().Get("lang")
	freeRatingMin := request.URL.Query().Get("fratmin")
	freeRatingMax := request.URL.Query().Get("fratmax")

	bbox := geo.BboxAround(geo.LonLatToMercator(lon, lat), box)

	waypointParams := &params.WaypointParams{
		BaseParams: params.BaseParams{
			Lang:   lang,
			Fields: []string{"document_id", "locales", "geometry", "bbox", "orientations"},
		},
		Activities:    activities,
		WaypointTypes: waypointTypes,
		Orientations:  orientations,
	}

	ctx := request.Context()
	waypoints, err := searchService.WaypointsInBboxAll(ctx, bbox, waypointParams, 200, 2000)
	if err != nil {
		sigolo.Errorf("Error fetching waypoints: %+v", err)
		writeError(writer, http.StatusBadGateway, "Error fetching waypoints")
		return
	}

	routeParams := &params.RouteParams{
		BaseParams: params.BaseParams{
			Lang: lang,
			Fields: []string{"document_id", "locales", "geometry", "bbox", "rock_free_rating",
				"rock_required_rating", "global_rating", "orientations"},
		},
		Activities: activities,
	}
	if freeRatingMin != "" || freeRatingMax != "" {
		routeParams.RockFreeRating = params.NewRange(freeRatingMin, freeRatingMax)
	}

	matches, err := searchService.RoutesNearWaypoints(ctx, waypoints, maxDistance, routeParams, 400, 4000)
	if err != nil {
		sigolo.Errorf("Error matching routes: %+v", err)
		writeError(writer, http.StatusBadGateway, "Error matching routes")
		return
	}

	takeoffFeatures := geojson.NewFeatureCollection()
	for _, waypoint := range waypoints {
		if feature := documentFeature(waypoint, "waypoint"); feature != nil {
			takeoffFeatures.Append(feature)
		}
	}

	routeFeatures := geojson.NewFeatureCollection()
	for _, match := range matches {
		if feature := documentFeature(match.Route, "route"); feature != nil {
			feature.Properties["distance_m"] = match.Distance
			routeFeatures.Append(feature)
		}
	}

	response := map[string]any{
		"takeoffs": takeoffFeatures,
		"routes":   routeFeatures,
		"counts": map[string]int{
			"takeoffs": len(takeoffFeatures.Features),
			"routes":   len(routeFeatures.Features),
		},
	}

	writer.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(writer).Encode(response)
	if err != nil {
		sigolo.Errorf("Error writing search response: %+v", err)
	}
}

// documentFeature builds a lon/lat GeoJSON feature for the map. Unlocatable
// documents yield nil and are left out of the response.
func documentFeature(document doc.Document, documentType string) *geojson.Feature {
	point, ok := geo.PointOf(document)
	if !ok {
		return nil
	}

	feature := geojson.NewFeature(geo.MercatorToLonLat(point))
	feature.Properties["id"] = document.Id()
	feature.Properties["type"] = documentType
	feature.Properties["title"] = document.Title()
	feature.Properties["url"] = document.Url(doc.DefaultWebBaseUrl)

	if documentType == "route" {
		free := document.String("rock_free_rating")
		if free == "" {
			free = document.String("global_rating")
		}
		feature.Properties["free"] = free
		feature.Properties["oblig"] = document.String("rock_required_rating")
		feature.Properties["global"] = document.String("global_rating")
	}
	if orientations, ok := document["orientations"]; ok {
		feature.Properties["orientations"] = orientations
	}

	return feature
}

func writeError(writer http.ResponseWriter, status int, message string) {
	writer.WriteHeader(status)
	_, err := writer.Write([]byte(message))
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}

func floatArg(request *http.Request, name string, defaultValue float64) (float64, error) {
	value := request.URL.Query().Get(name)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s", value, name)
	}
	return parsed, nil
}

func csvArg(request *http.Request, name string, defaultValue string) []string {
	value := request.URL.Query().Get(name)
	if value == "" {
		value = defaultValue
	}
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
