package cost

import (
	"math"

	"github.com/ttpr0/go-evacuation/graph"
	"github.com/ttpr0/go-evacuation/raster"
)

//*******************************************
// slope and walking speed
//*******************************************

// Tobler's hiking function: speed = VMAX * exp(-K * |slope + OFFSET|).
const (
	TOBLER_VMAX   = 6.0
	TOBLER_K      = 3.5
	TOBLER_OFFSET = 0.05
)

// CalcSlope8 derives the slope in the eight movement directions from a DEM.
//
// Band b holds rise/run towards the neighbor in direction graph.Direction(b).
// Border cells and cells without data stay NaN.
func CalcSlope8(dem *raster.Grid, nodata float64) *raster.Surface {
	rows := dem.Rows()
	cols := dem.Cols()
	slope := raster.NewSurfaceFilled(graph.DIRECTION_COUNT, rows, cols, dem.Transform(), math.NaN())

	d_h := dem.Transform().CellSizeX
	d_d := math.Sqrt(dem.Transform().CellSizeX*dem.Transform().CellSizeX + dem.Transform().CellSizeY*dem.Transform().CellSizeY)

	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			z := dem.Get(r, c)
			if z == nodata || math.IsNaN(z) {
				continue
			}
			for _, dir := range graph.DIRECTIONS {
				dr, dc := dir.Offset()
				nz := dem.Get(r+dr, c+dc)
				if nz == nodata || math.IsNaN(nz) {
					continue
				}
				run := d_h
				if dir.IsDiagonal() {
					run = d_d
				}
				slope.Set(int(dir), r, c, (nz-z)/run)
			}
		}
	}
	return slope
}

// CalcWalkingSpeed applies Tobler's hiking function to a slope surface.
// NaN slopes yield NaN speeds.
func CalcWalkingSpeed(slope *raster.Surface) *raster.Surface {
	speed := raster.NewSurface(slope.Bands(), slope.Rows(), slope.Cols(), slope.Transform())
	for b := 0; b < slope.Bands(); b++ {
		for r := 0; r < slope.Rows(); r++ {
			for c := 0; c < slope.Cols(); c++ {
				s := slope.Get(b, r, c)
				speed.Set(b, r, c, TOBLER_VMAX*math.Exp(-TOBLER_K*math.Abs(s+TOBLER_OFFSET)))
			}
		}
	}
	return speed
}

// MaxVelocity returns the walking speed on flat terrain.
func MaxVelocity() float64 {
	return TOBLER_VMAX * math.Exp(-TOBLER_K*TOBLER_OFFSET)
}

// NormalizeWalkingSpeed scales a speed surface by the flat-terrain speed,
// yielding 1 at slope zero. Slight downhill slopes exceed 1, which is the
// intended behavior of Tobler's function.
func NormalizeWalkingSpeed(speed *raster.Surface) *raster.Surface {
	max_velocity := MaxVelocity()
	result := raster.NewSurface(speed.Bands(), speed.Rows(), speed.Cols(), speed.Transform())
	for b := 0; b < speed.Bands(); b++ {
		for r := 0; r < speed.Rows(); r++ {
			for c := 0; c < speed.Cols(); c++ {
				result.Set(b, r, c, speed.Get(b, r, c)/max_velocity)
			}
		}
	}
	return result
}
