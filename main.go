package main

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"c2cq/client"
	"c2cq/doc"
	"c2cq/geo"
	"c2cq/osm"
	"c2cq/params"
	"c2cq/search"
	"c2cq/web"

	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
)

const VERSION = "v0.1.0"

type SearchFlags struct {
	Act           string   `help:"Activity filter for routes and waypoints (comma-separated for multiple)." default:"mountain_climbing"`
	Wtyp          string   `help:"Waypoint type to consider (comma-separated for multiple)." default:"paragliding_takeoff"`
	MaxDistance   float64  `help:"Max distance in meters to match routes to waypoints." default:"2000"`
	RoutePageSize int      `help:"Page size for route pagination." default:"200"`
	RouteMaxItems int      `help:"Cap on fetched routes." default:"5000"`
	WpPageSize    int      `help:"Page size for waypoint pagination." default:"200"`
	WpMaxItems    int      `help:"Cap on fetched waypoints." default:"2000"`
	Lang          string   `help:"Preferred language code for localized fields."`
	Fields        string   `help:"Comma-separated list of fields to return."`
	Orderby       string   `help:"Field to order by."`
	Order         string   `help:"asc or desc."`
	Extra         []string `help:"Additional key=value pairs passed directly to the API (repeatable)."`
}

var cli struct {
	Logging string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Near    struct {
		Lon float64 `help:"Longitude in degrees (EPSG:4326)." arg:""`
		Lat float64 `help:"Latitude in degrees (EPSG:4326)." arg:""`
		Box float64 `help:"Box size in meters (width=height)." arg:""`
		SearchFlags
	} `cmd:"" help:"Find routes near paragliding takeoffs around a GPS point."`
	OsmNear struct {
		Input string `help:"OSM extract (.osm or .osm.pbf) to read takeoffs from." placeholder:"<input-file>" arg:"" type:"existingfile"`
		SearchFlags
	} `cmd:"" name:"osm-near" help:"Find catalog routes near takeoffs from an OSM extract."`
	Waypoints struct {
		MinLon float64 `arg:""`
		MinLat float64 `arg:""`
		MaxLon float64 `arg:""`
		MaxLat float64 `arg:""`
		SearchFlags
	} `cmd:"" help:"List waypoints in a lon/lat bounding box."`
	Routes struct {
		MinLon float64 `arg:""`
		MinLat float64 `arg:""`
		MaxLon float64 `arg:""`
		MaxLat float64 `arg:""`
		SearchFlags
	} `cmd:"" help:"List routes in a lon/lat bounding box."`
	Server struct {
		Port string `help:"Port to listen on." default:"8080"`
	} `cmd:"" help:"Start the web UI."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("c2cq"),
		kong.Description("Find camptocamp routes near paragliding takeoffs or a GPS location."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	searchService := search.NewSearch(client.NewClient(client.DefaultConfig()))

	switch ctx.Command() {
	case "near <lon> <lat> <box>":
		bbox := geo.BboxAround(geo.LonLatToMercator(cli.Near.Lon, cli.Near.Lat), cli.Near.Box)
		waypoints, err := fetchWaypoints(searchService, bbox, cli.Near.SearchFlags)
		sigolo.FatalCheck(err)
		sigolo.Infof("Waypoints fetched: %d", len(waypoints))

		matches, err := nearMatches(searchService, waypoints, cli.Near.SearchFlags)
		sigolo.FatalCheck(err)
		printMatches(matches, cli.Near.MaxDistance)
	case "osm-near <input>":
		takeoffs, err := osm.ExtractTakeoffs(cli.OsmNear.Input)
		sigolo.FatalCheck(err)
		sigolo.Infof("Takeoffs read from extract: %d", len(takeoffs))

		matches, err := nearMatches(searchService, takeoffs, cli.OsmNear.SearchFlags)
		sigolo.FatalCheck(err)
		printMatches(matches, cli.OsmNear.MaxDistance)
	case "waypoints <min-lon> <min-lat> <max-lon> <max-lat>":
		bbox := lonLatBbox(cli.Waypoints.MinLon, cli.Waypoints.MinLat, cli.Waypoints.MaxLon, cli.Waypoints.MaxLat)
		waypoints, err := fetchWaypoints(searchService, bbox, cli.Waypoints.SearchFlags)
		sigolo.FatalCheck(err)
		printDocuments(waypoints)
	case "routes <min-lon> <min-lat> <max-lon> <max-lat>":
		bbox := lonLatBbox(cli.Routes.MinLon, cli.Routes.MinLat, cli.Routes.MaxLon, cli.Routes.MaxLat)
		flags := cli.Routes.SearchFlags
		routeParams := routeParamsOf(flags)
		routes, err := searchService.RoutesInBboxAll(context.Background(), bbox, routeParams, flags.RoutePageSize, flags.RouteMaxItems)
		sigolo.FatalCheck(err)
		printDocuments(routes)
	case "server":
		web.StartServer(cli.Server.Port, searchService)
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

// defaultFields are requested when the user did not pass --fields. They cover
// geometry plus the ratings the output table shows.
var defaultFields = []string{"document_id", "locales", "geometry", "rock_free_rating", "rock_required_rating", "global_rating"}

func lonLatBbox(minLon float64, minLat float64, maxLon float64, maxLat float64) orb.Bound {
	return orb.Bound{
		Min: geo.LonLatToMercator(minLon, minLat),
		Max: geo.LonLatToMercator(maxLon, maxLat),
	}
}

func fetchWaypoints(searchService *search.Search, bbox orb.Bound, flags SearchFlags) ([]doc.Document, error) {
	waypointParams := &params.WaypointParams{
		BaseParams:    baseParamsOf(flags),
		Activities:    parseCsv(flags.Act),
		WaypointTypes: parseCsv(flags.Wtyp),
	}
	return searchService.WaypointsInBboxAll(context.Background(), bbox, waypointParams, flags.WpPageSize, flags.WpMaxItems)
}

func nearMatches(searchService *search.Search, waypoints []doc.Document, flags SearchFlags) ([]search.Match, error) {
	return searchService.RoutesNearWaypoints(context.Background(), waypoints, flags.MaxDistance,
		routeParamsOf(flags), flags.RoutePageSize, flags.RouteMaxItems)
}

func routeParamsOf(flags SearchFlags) *params.RouteParams {
	return &params.RouteParams{
		BaseParams: baseParamsOf(flags),
		Activities: parseCsv(flags.Act),
	}
}

func baseParamsOf(flags SearchFlags) params.BaseParams {
	fields := parseCsv(flags.Fields)
	if fields == nil {
		fields = defaultFields
	}
	return params.BaseParams{
		Lang:    flags.Lang,
		Fields:  fields,
		OrderBy: flags.Orderby,
		Order:   flags.Order,
		Extras:  parseExtras(flags.Extra),
	}
}

func printMatches(matches []search.Match, maxDistance float64) {
	fmt.Printf("Matches found: %d (<= %.0f m)\n\n", len(matches), maxDistance)
	if len(matches) == 0 {
		return
	}

	// Group matches by takeoff. Takeoffs with the most routes come first.
	var groups []*matchGroup
	groupByWaypoint := map[int64]*matchGroup{}
	for _, match := range matches {
		id := match.Waypoint.Id()
		group, ok := groupByWaypoint[id]
		if !ok {
			group = &matchGroup{waypoint: match.Waypoint}
			groupByWaypoint[id] = group
			groups = append(groups, group)
		}
		group.matches = append(group.matches, match)
	}
	sort.SliceStable(groups, func(i int, j int) bool {
		if len(groups[i].matches) != len(groups[j].matches) {
			return len(groups[i].matches) > len(groups[j].matches)
		}
		return groups[i].waypoint.Title() < groups[j].waypoint.Title()
	})

	for _, group := range groups {
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Takeoff: %s\n", group.waypoint.Title())
		if url := group.waypoint.Url(doc.DefaultWebBaseUrl); url != "" {
			fmt.Printf("URL    : %s\n", url)
		}
		fmt.Printf("Routes : %d within %.0f m\n\n", len(group.matches), maxDistance)

		fmt.Printf("%9s | %-12s | %-50s | URL\n", "Dist (m)", "Diff", "Route")
		fmt.Println(strings.Repeat("-", 80))
		for _, match := range group.matches {
			fmt.Printf("%9d | %-12s | %-50s | %s\n",
				int(math.Round(match.Distance)),
				truncate(routeDifficulty(match.Route), 12),
				truncate(match.Route.Title(), 50),
				match.Route.Url(doc.DefaultWebBaseUrl))
		}
		fmt.Println()
	}
}

type matchGroup struct {
	waypoint doc.Document
	matches  []search.Match
}

func printDocuments(documents []doc.Document) {
	fmt.Printf("Documents found: %d\n", len(documents))
	for _, document := range documents {
		fmt.Printf("%-60s %s\n", truncate(document.Title(), 60), document.Url(doc.DefaultWebBaseUrl))
	}
}

func routeDifficulty(route doc.Document) string {
	free := route.String("rock_free_rating")
	if free == "" {
		free = route.String("global_rating")
	}
	obligatory := route.String("rock_required_rating")

	if free != "" && obligatory != "" {
		return fmt.Sprintf("%s (obl %s)", free, obligatory)
	}
	if free != "" {
		return free
	}
	return "-"
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}

func parseCsv(value string) []string {
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

func parseExtras(entries []string) map[string]string {
	if len(entries) == 0 {
		return nil
	}
	extras := map[string]string{}
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		extras[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return extras
}
