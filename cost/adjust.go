package cost

import (
	"math"

	"github.com/ttpr0/go-evacuation/graph"
	"github.com/ttpr0/go-evacuation/raster"
)

//*******************************************
// cost combination
//*******************************************

// AdjustGridByFactor multiplies two grids elementwise. NaN propagates.
func AdjustGridByFactor(factor, base *raster.Grid) *raster.Grid {
	result := raster.NewGrid(base.Rows(), base.Cols(), base.Transform())
	for r := 0; r < base.Rows(); r++ {
		for c := 0; c < base.Cols(); c++ {
			result.Set(r, c, factor.Get(r, c)*base.Get(r, c))
		}
	}
	return result
}

// AdjustSurfaceByFactor multiplies a directional factor surface with a
// single base grid, broadcasting the grid over all bands.
func AdjustSurfaceByFactor(factor *raster.Surface, base *raster.Grid) *raster.Surface {
	result := raster.NewSurface(factor.Bands(), factor.Rows(), factor.Cols(), factor.Transform())
	for b := 0; b < factor.Bands(); b++ {
		for r := 0; r < factor.Rows(); r++ {
			for c := 0; c < factor.Cols(); c++ {
				result.Set(b, r, c, factor.Get(b, r, c)*base.Get(r, c))
			}
		}
	}
	return result
}

// ExpandSingleBand duplicates a single cost layer into an 8-band
// directional surface, scaling the diagonal bands by sqrt(2).
func ExpandSingleBand(grid *raster.Grid) *raster.Surface {
	surface := raster.NewSurface(graph.DIRECTION_COUNT, grid.Rows(), grid.Cols(), grid.Transform())
	for _, dir := range graph.DIRECTIONS {
		factor := 1.0
		if dir.IsDiagonal() {
			factor = math.Sqrt2
		}
		for r := 0; r < grid.Rows(); r++ {
			for c := 0; c < grid.Cols(); c++ {
				surface.Set(int(dir), r, c, grid.Get(r, c)*factor)
			}
		}
	}
	return surface
}
