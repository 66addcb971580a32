package analysis

import (
	"math"

	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// travel-time conversion
//*******************************************

// UNREACHABLE is the nodata value written into cost-distance and
// travel-time rasters for cells no path reaches.
const UNREACHABLE = -1.0

// CostDistanceGrid shapes a flat solver distance array into a raster.
// Infinite (unreachable) distances become the UNREACHABLE marker.
func CostDistanceGrid(dists Array[float64], rows, cols int, transform geo.Transform) *raster.Grid {
	grid := raster.NewGrid(rows, cols, transform)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := dists[r*cols+c]
			if math.IsInf(d, 1) {
				d = UNREACHABLE
			}
			grid.Set(r, c, d)
		}
	}
	return grid
}

// TravelTimeGrid converts solver distances to travel time in hours:
// distance * cell_size / walking_speed / 3600.
// Unreachable cells become the UNREACHABLE marker.
func TravelTimeGrid(dists Array[float64], rows, cols int, transform geo.Transform, cell_size, walking_speed float64) *raster.Grid {
	grid := raster.NewGrid(rows, cols, transform)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			d := dists[r*cols+c]
			if math.IsInf(d, 1) {
				grid.Set(r, c, UNREACHABLE)
				continue
			}
			grid.Set(r, c, d*cell_size/walking_speed/3600)
		}
	}
	return grid
}

// DistanceFromSummit computes the euclidean distance (in map units) of
// every cell to the summit cell.
func DistanceFromSummit(summit_row, summit_col, rows, cols int, cell_size float64, transform geo.Transform) *raster.Grid {
	grid := raster.NewGrid(rows, cols, transform)
	for r := 0; r < rows; r++ {
		dr := float64(r - summit_row)
		for c := 0; c < cols; c++ {
			dc := float64(c - summit_col)
			grid.Set(r, c, math.Sqrt(dr*dr+dc*dc)*cell_size)
		}
	}
	return grid
}
