package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-evacuation/analysis"
	"github.com/ttpr0/go-evacuation/cost"
	. "github.com/ttpr0/go-evacuation/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// cost decomposition
//**********************************************************

// DecompositionEntry is one decomposed evacuation path: how much of its
// cost stems from the slope dependent walking speed and how much from
// the land cover.
type DecompositionEntry struct {
	Source         string  `json:"source"`
	Threshold      float64 `json:"threshold"`
	Steps          int     `json:"steps"`
	SpeedShare     float64 `json:"walking_speed_share"`
	LandcoverShare float64 `json:"landcover_share"`
}

// _DecompositionFactors builds the directional factor layers of the combined
// cost surface. The land-cover layer is inverted before expansion so that a
// diagonal band holds (1/x)*sqrt(2) and the factor product reproduces the
// actual edge weight, cardinal and diagonal alike.
func _DecompositionFactors(surfaces CostSurfaces) []analysis.FactorSurface {
	return []analysis.FactorSurface{
		{Name: "walking_speed", Surface: surfaces.Datasets["walking_speed"]},
		{Name: "landcover", Surface: cost.ExpandSingleBand(cost.InvertGrid(surfaces.Landcover))},
	}
}

// RunDecompositionAnalysis reconstructs the fastest path from every
// source into every distance safe zone on the combined cost surface and
// splits its cost into the walking-speed and land-cover factors. Paths
// that cross a zero-cost overlay cell cannot be decomposed and are
// logged and skipped.
func RunDecompositionAnalysis(config Config, result EvacuationResult, distance_zones Dict[string, analysis.ZoneAnalysis]) {
	zones, ok := distance_zones["final"]
	if !ok {
		slog.Warn("no combined cost dataset available, skipping decomposition")
		return
	}
	trees := result.Trees["final"]
	cols := result.Surfaces.Cols
	factors := _DecompositionFactors(result.Surfaces)

	// the fastest zone-entry cell is the same for every speed category,
	// so one of them suffices
	var by_threshold Dict[float64, []analysis.ZoneResult]
	for _, zones_by_threshold := range zones {
		by_threshold = zones_by_threshold
		break
	}

	entries := NewList[DecompositionEntry](10)
	paths := geojson.NewFeatureCollection()
	for _, threshold := range config.Analysis.SafeZoneDistances {
		results := by_threshold[threshold]
		for i, zone := range results {
			source_name := result.SourceNames[i]
			if !zone.IsValid() {
				slog.Info(fmt.Sprintf("source %s cannot reach the %.0f m zone, skipping decomposition", source_name, threshold))
				continue
			}
			tree := trees[source_name]
			target := int32(int(zone.Row)*cols + int(zone.Col))
			path := analysis.ReconstructPath(tree.Preds, tree.Source, target)
			if path.Length() == 0 {
				slog.Warn(fmt.Sprintf("no path from source %s to zone cell %d", source_name, target))
				continue
			}

			decomposition, err := analysis.DecomposePath(path, cols, factors)
			if err != nil {
				panic(err)
			}
			if !decomposition.Valid {
				slog.Info(fmt.Sprintf("skipping path of source %s to the %.0f m zone: %s", source_name, threshold, decomposition.Reason))
				continue
			}
			entries.Add(DecompositionEntry{
				Source:         source_name,
				Threshold:      threshold,
				Steps:          path.Length() - 1,
				SpeedShare:     decomposition.Shares["walking_speed"],
				LandcoverShare: decomposition.Shares["landcover"],
			})

			line := make(orb.LineString, 0, path.Length())
			for _, coord := range analysis.PathCoords(path, cols) {
				line = append(line, result.Surfaces.Transform.CellToMap(coord.A, coord.B).Point())
			}
			feature := geojson.NewFeature(line)
			feature.Properties = geojson.Properties{
				"source":    source_name,
				"threshold": threshold,
			}
			paths.Append(feature)
		}
	}
	WriteJSONToFile(paths, config.Analysis.Output+"/evacuation_paths.geojson")

	csv_file := config.Analysis.Output + "/decomposition.csv"
	header := []string{"source", "threshold", "steps", "walking_speed_share", "landcover_share"}
	rows := NewList[[]any](entries.Length())
	for _, entry := range entries {
		rows.Add([]any{entry.Source, entry.Threshold, entry.Steps, entry.SpeedShare, entry.LandcoverShare})
	}
	if err := WriteCSVToFile(header, rows, csv_file, ';'); err != nil {
		slog.Error("failed to write decomposition report: " + err.Error())
		panic(err)
	}
	WriteJSONToFile([]DecompositionEntry(entries), config.Analysis.Output+"/decomposition.json")
}
