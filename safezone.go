package main

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-evacuation/analysis"
	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// safe-zone analysis
//**********************************************************

// ZoneReportEntry is one row of the flattened safe-zone report. Sources
// that cannot reach the zone carry time -1 and row/col -1.
type ZoneReportEntry struct {
	Dataset   string  `json:"dataset"`
	Speed     string  `json:"speed"`
	Threshold float64 `json:"threshold"`
	Source    string  `json:"source"`
	Time      float64 `json:"time"`
	Row       int     `json:"row"`
	Col       int     `json:"col"`
}

// RunSafeZoneAnalysis evaluates the distance based safe zones for every
// cost dataset and, if a hazard probability raster is configured, the
// probability based zones as well. Results are written as csv, json and
// geojson into the output directory. The distance zone analysis of every
// dataset is returned for the decomposition step.
func RunSafeZoneAnalysis(config Config, result EvacuationResult) Dict[string, analysis.ZoneAnalysis] {
	summit_row, summit_col := int(result.SourceNodes[0])/result.Surfaces.Cols, int(result.SourceNodes[0])%result.Surfaces.Cols
	distance_field := analysis.DistanceFromSummit(summit_row, summit_col, result.Surfaces.Rows, result.Surfaces.Cols, config.Analysis.CellSize, result.Surfaces.Transform)

	distance_zones := NewDict[string, analysis.ZoneAnalysis](len(result.TravelTimes))
	for dataset, by_source := range result.TravelTimes {
		slog.Info("Analyzing distance safe zones for dataset: " + dataset)
		by_speed := _PivotTravelTimes(by_source)
		zones := analysis.AnalyzeSafeZones(distance_field, by_speed, config.Analysis.SafeZoneDistances, result.SourceNames, analysis.ZONE_MIN_DISTANCE)
		distance_zones[dataset] = zones
		_EmitZoneReport(config, result, dataset, "safe_zones", zones, config.Analysis.SafeZoneDistances)
	}

	if config.Analysis.ProbabilityRaster != "" {
		slog.Info("Loading hazard probability raster: " + config.Analysis.ProbabilityRaster)
		probability, err := raster.ReadASC(config.Analysis.ProbabilityRaster)
		if err != nil {
			panic(err)
		}
		for dataset, by_source := range result.TravelTimes {
			slog.Info("Analyzing probability safe zones for dataset: " + dataset)
			by_speed := _PivotTravelTimes(by_source)
			zones := analysis.AnalyzeSafeZones(probability, by_speed, config.Analysis.ProbabilityThresholds, result.SourceNames, analysis.ZONE_MAX_PROBABILITY)
			_EmitZoneReport(config, result, dataset, "probability_zones", zones, config.Analysis.ProbabilityThresholds)
		}
	}

	return distance_zones
}

// _PivotTravelTimes turns source -> speed grids into speed -> source grids.
func _PivotTravelTimes(by_source Dict[string, Dict[string, *raster.Grid]]) Dict[string, Dict[string, *raster.Grid]] {
	by_speed := NewDict[string, Dict[string, *raster.Grid]](4)
	for source_name, speeds := range by_source {
		for speed_name, grid := range speeds {
			if _, ok := by_speed[speed_name]; !ok {
				by_speed[speed_name] = NewDict[string, *raster.Grid](len(by_source))
			}
			by_speed[speed_name][source_name] = grid
		}
	}
	return by_speed
}

func _EmitZoneReport(config Config, result EvacuationResult, dataset, kind string, zones analysis.ZoneAnalysis, thresholds []float64) {
	entries := _FlattenZones(dataset, zones, result.SourceNames, thresholds)

	csv_file := fmt.Sprintf("%s/%s_%s.csv", config.Analysis.Output, dataset, kind)
	header := []string{"dataset", "speed", "threshold", "source", "time_hours", "row", "col"}
	rows := NewList[[]any](len(entries))
	for _, entry := range entries {
		rows.Add([]any{entry.Dataset, entry.Speed, entry.Threshold, entry.Source, entry.Time, entry.Row, entry.Col})
	}
	if err := WriteCSVToFile(header, rows, csv_file, ';'); err != nil {
		slog.Error("failed to write zone report " + csv_file + ": " + err.Error())
		panic(err)
	}

	json_file := fmt.Sprintf("%s/%s_%s.json", config.Analysis.Output, dataset, kind)
	WriteJSONToFile(entries, json_file)

	geojson_file := fmt.Sprintf("%s/%s_%s.geojson", config.Analysis.Output, dataset, kind)
	_WriteZonePoints(entries, result, geojson_file)
}

// _FlattenZones orders the nested analysis into stable report rows:
// speeds alphabetically, thresholds in the configured series order, sources
// in mapping order. Invalid results are kept with the unreachable marker so
// that every source shows up for every threshold.
func _FlattenZones(dataset string, zones analysis.ZoneAnalysis, source_names []string, thresholds []float64) []ZoneReportEntry {
	speed_names := make([]string, 0, len(zones))
	for speed_name := range zones {
		speed_names = append(speed_names, speed_name)
	}
	sort.Strings(speed_names)

	entries := NewList[ZoneReportEntry](10)
	for _, speed_name := range speed_names {
		by_threshold := zones[speed_name]
		for _, threshold := range thresholds {
			results := by_threshold[threshold]
			for i, zone := range results {
				entry := ZoneReportEntry{
					Dataset:   dataset,
					Speed:     speed_name,
					Threshold: threshold,
					Source:    source_names[i],
					Time:      analysis.UNREACHABLE,
					Row:       -1,
					Col:       -1,
				}
				if zone.IsValid() {
					entry.Time = zone.Time
					entry.Row = int(zone.Row)
					entry.Col = int(zone.Col)
				}
				entries.Add(entry)
			}
		}
	}
	return entries
}

// _WriteZonePoints writes the fastest zone-entry cells as geojson points.
func _WriteZonePoints(entries []ZoneReportEntry, result EvacuationResult, file string) {
	collection := geojson.NewFeatureCollection()
	for _, entry := range entries {
		if entry.Time < 0 {
			continue
		}
		point := result.Surfaces.Transform.CellToMap(entry.Row, entry.Col)
		feature := geojson.NewFeature(point.Point())
		feature.Properties = geojson.Properties{
			"dataset":   entry.Dataset,
			"speed":     entry.Speed,
			"threshold": entry.Threshold,
			"source":    entry.Source,
			"time":      entry.Time,
		}
		collection.Append(feature)
	}
	WriteJSONToFile(collection, file)
}
