package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
)

func _zoneGrids() (*raster.Grid, *raster.Grid) {
	transform := geo.NewTransform(0, 300, 100)
	// distance increases from the top-left corner
	field := DistanceFromSummit(0, 0, 3, 3, 100, transform)
	// travel time increases with the column
	travel_time := raster.NewGrid(3, 3, transform)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			travel_time.Set(r, c, float64(r*3+c)*0.1)
		}
	}
	return field, travel_time
}

func TestAnalyzeZoneMinDistance(t *testing.T) {
	field, travel_time := _zoneGrids()

	zone := AnalyzeZone(field, travel_time, 200, ZONE_MIN_DISTANCE)
	require.True(t, zone.IsValid())
	// cell (0, 2) is the fastest cell at least 200 m out
	assert.Equal(t, 0.2, zone.Time)
	assert.Equal(t, 0.0, zone.Row)
	assert.Equal(t, 2.0, zone.Col)
}

func TestAnalyzeZoneMonotone(t *testing.T) {
	field, travel_time := _zoneGrids()

	// a stricter distance threshold can never yield a faster zone entry
	last := 0.0
	for _, threshold := range []float64{100, 200, 282} {
		zone := AnalyzeZone(field, travel_time, threshold, ZONE_MIN_DISTANCE)
		require.True(t, zone.IsValid())
		assert.GreaterOrEqual(t, zone.Time, last)
		last = zone.Time
	}
}

func TestAnalyzeZoneEmpty(t *testing.T) {
	field, travel_time := _zoneGrids()

	zone := AnalyzeZone(field, travel_time, 10000, ZONE_MIN_DISTANCE)
	assert.False(t, zone.IsValid())
	assert.True(t, math.IsNaN(zone.Time))
	assert.True(t, math.IsNaN(zone.Row))
	assert.True(t, math.IsNaN(zone.Col))
}

func TestAnalyzeZoneIgnoresUnreachable(t *testing.T) {
	field, travel_time := _zoneGrids()
	// nodata marker must never win the minimum
	travel_time.Set(0, 2, UNREACHABLE)
	travel_time.Set(2, 0, math.NaN())

	zone := AnalyzeZone(field, travel_time, 200, ZONE_MIN_DISTANCE)
	require.True(t, zone.IsValid())
	assert.Equal(t, 0.5, zone.Time)
}

func TestAnalyzeZoneMaxProbability(t *testing.T) {
	transform := geo.NewTransform(0, 100, 100)
	probability := raster.NewGrid(1, 3, transform)
	probability.Set(0, 0, 0.9)
	probability.Set(0, 1, 0.4)
	probability.Set(0, 2, 0.05)
	travel_time := raster.NewGrid(1, 3, transform)
	travel_time.Set(0, 0, 0.1)
	travel_time.Set(0, 1, 0.2)
	travel_time.Set(0, 2, 0.3)

	zone := AnalyzeZone(probability, travel_time, 0.5, ZONE_MAX_PROBABILITY)
	require.True(t, zone.IsValid())
	assert.Equal(t, 0.2, zone.Time)
	assert.Equal(t, 1.0, zone.Col)

	zone = AnalyzeZone(probability, travel_time, 0.1, ZONE_MAX_PROBABILITY)
	require.True(t, zone.IsValid())
	assert.Equal(t, 0.3, zone.Time)
}

func TestAnalyzeSafeZones(t *testing.T) {
	field, travel_time := _zoneGrids()
	travel_times := Dict[string, Dict[string, *raster.Grid]]{
		"medium": {"summit": travel_time},
	}

	analysis := AnalyzeSafeZones(field, travel_times, []float64{100, 200}, []string{"summit"}, ZONE_MIN_DISTANCE)

	require.Contains(t, analysis, "medium")
	require.Contains(t, analysis["medium"], 100.0)
	require.Contains(t, analysis["medium"], 200.0)
	require.Len(t, analysis["medium"][100.0], 1)
	assert.True(t, analysis["medium"][100.0][0].IsValid())
}
