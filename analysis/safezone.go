package analysis

import (
	"math"

	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// threshold / safe-zone analysis
//*******************************************

// ZonePredicate selects which side of a threshold counts as "safe".
type ZonePredicate byte

const (
	// field >= threshold, e.g. far enough from the summit
	ZONE_MIN_DISTANCE ZonePredicate = 0
	// field <= threshold, e.g. low enough hazard probability
	ZONE_MAX_PROBABILITY ZonePredicate = 1
)

func (self ZonePredicate) String() string {
	switch self {
	case ZONE_MIN_DISTANCE:
		return "min-distance"
	case ZONE_MAX_PROBABILITY:
		return "max-probability"
	default:
		panic("unknown zone predicate")
	}
}

// ZoneResult is the minimum travel time into a zone and the cell where it
// is attained. All fields are NaN if no reachable cell satisfies the zone
// predicate, which is a valid terminal state, not an error.
type ZoneResult struct {
	Time float64 `json:"time"`
	Row  float64 `json:"row"`
	Col  float64 `json:"col"`
}

func (self ZoneResult) IsValid() bool {
	return !math.IsNaN(self.Time)
}

// ZoneAnalysis maps speed category -> threshold -> per-source results in
// caller-supplied source order.
type ZoneAnalysis Dict[string, Dict[float64, []ZoneResult]]

// AnalyzeZone finds the minimum travel time among cells satisfying the
// threshold predicate. Travel-time cells that are NaN or negative (the
// unreachable nodata marker) are ignored.
func AnalyzeZone(field *raster.Grid, travel_time *raster.Grid, threshold float64, predicate ZonePredicate) ZoneResult {
	min_time := math.NaN()
	min_r, min_c := math.NaN(), math.NaN()
	for r := 0; r < field.Rows(); r++ {
		for c := 0; c < field.Cols(); c++ {
			value := field.Get(r, c)
			if math.IsNaN(value) {
				continue
			}
			if predicate == ZONE_MIN_DISTANCE && value < threshold {
				continue
			}
			if predicate == ZONE_MAX_PROBABILITY && value > threshold {
				continue
			}
			time := travel_time.Get(r, c)
			if math.IsNaN(time) || time < 0 {
				continue
			}
			if math.IsNaN(min_time) || time < min_time {
				min_time = time
				min_r = float64(r)
				min_c = float64(c)
			}
		}
	}
	return ZoneResult{Time: min_time, Row: min_r, Col: min_c}
}

// AnalyzeSafeZones runs AnalyzeZone for every speed category, threshold and
// source. Source order within the result slices follows source_names.
//
// travel_times maps speed category -> source name -> travel-time grid.
func AnalyzeSafeZones(field *raster.Grid, travel_times Dict[string, Dict[string, *raster.Grid]], thresholds []float64, source_names []string, predicate ZonePredicate) ZoneAnalysis {
	analysis := ZoneAnalysis(NewDict[string, Dict[float64, []ZoneResult]](len(travel_times)))
	for speed_name, by_source := range travel_times {
		by_threshold := NewDict[float64, []ZoneResult](len(thresholds))
		for _, threshold := range thresholds {
			results := make([]ZoneResult, 0, len(source_names))
			for _, source_name := range source_names {
				travel_time := by_source[source_name]
				results = append(results, AnalyzeZone(field, travel_time, threshold, predicate))
			}
			by_threshold[threshold] = results
		}
		analysis[speed_name] = by_threshold
	}
	return analysis
}
