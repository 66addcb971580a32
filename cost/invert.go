package cost

import (
	"math"

	"github.com/ttpr0/go-evacuation/raster"
)

//*******************************************
// cost inversion
//*******************************************

// IMPASSABLE_COST is the sentinel written for inverted zero values.
// It marks near-impassable cells and is deliberately finite, so the graph
// builder still creates (very expensive) edges for them. True missing data
// stays NaN and must never collapse into this sentinel.
const IMPASSABLE_COST = 1e6

func _invertValue(value float64) float64 {
	if math.IsNaN(value) {
		return math.NaN()
	}
	if value == 0 {
		// zero is undefined under inversion
		return IMPASSABLE_COST
	}
	return 1.0 / value
}

// InvertGrid converts a desirability grid into a cost-per-distance grid via
// 1/value. Zeros become the IMPASSABLE_COST sentinel, NaN stays NaN.
func InvertGrid(grid *raster.Grid) *raster.Grid {
	result := raster.NewGrid(grid.Rows(), grid.Cols(), grid.Transform())
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			result.Set(r, c, _invertValue(grid.Get(r, c)))
		}
	}
	return result
}

// InvertSurface applies InvertGrid band-wise to a directional surface.
func InvertSurface(surface *raster.Surface) *raster.Surface {
	result := raster.NewSurface(surface.Bands(), surface.Rows(), surface.Cols(), surface.Transform())
	for b := 0; b < surface.Bands(); b++ {
		for r := 0; r < surface.Rows(); r++ {
			for c := 0; c < surface.Cols(); c++ {
				result.Set(b, r, c, _invertValue(surface.Get(b, r, c)))
			}
		}
	}
	return result
}
