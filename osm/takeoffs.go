// Package osm reads paragliding takeoff sites from an OSM extract and shapes
// them like catalog waypoint documents, so the matcher can consume them
// interchangeably with waypoints fetched from the API.
package osm

import (
	"context"
	"os"
	"strings"
	"time"

	"c2cq/doc"
	"c2cq/geo"

	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// ExtractTakeoffs reads the given .osm or .osm.pbf file and returns all
// takeoff-tagged nodes as documents with mercator point geometry.
func ExtractTakeoffs(filename string) ([]doc.Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open OSM input file %s", filename)
	}
	defer file.Close()

	var scanner osm.Scanner
	if strings.HasSuffix(filename, ".osm.pbf") || strings.HasSuffix(filename, ".pbf") {
		scanner = osmpbf.New(context.Background(), file, 1)
	} else if strings.HasSuffix(filename, ".osm") {
		scanner = osmxml.New(context.Background(), file)
	} else {
		return nil, errors.Errorf("Unsupported OSM file format of file %s, expected .osm or .osm.pbf", filename)
	}
	defer scanner.Close()

	sigolo.Infof("Start scanning OSM data file %s", filename)
	scanStartTime := time.Now()

	var takeoffs []doc.Document
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if !isTakeoff(node.Tags) {
			continue
		}
		takeoffs = append(takeoffs, nodeDocument(node))
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Scanning OSM data file %s failed", filename)
	}

	sigolo.Infof("Found %d takeoffs in %s", len(takeoffs), time.Since(scanStartTime))
	return takeoffs, nil
}

// isTakeoff reports whether the tags mark a paraglider or hang glider launch
// site. The dedicated free_flying:site tag wins, plain sport=free_flying
// nodes count as well.
func isTakeoff(tags osm.Tags) bool {
	if site := tags.Find("free_flying:site"); site != "" {
		return strings.Contains(site, "takeoff")
	}
	return tags.Find("sport") == "free_flying"
}

// nodeDocument shapes an OSM node like a catalog waypoint document.
func nodeDocument(node *osm.Node) doc.Document {
	point := geo.LonLatToMercator(node.Lon, node.Lat)

	document := doc.Document{
		"document_id":   int64(node.ID),
		"type":          "w",
		"waypoint_type": "paragliding_takeoff",
		"geometry": map[string]any{
			"type":        "Point",
			"coordinates": []any{point.X(), point.Y()},
		},
	}
	if name := node.Tags.Find("name"); name != "" {
		document["name"] = name
	}
	return document
}
