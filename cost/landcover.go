package cost

import (
	"math"

	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// land-cover costs
//*******************************************

// MapLandcoverToCost maps categorical land-cover classes onto cost values.
// Classes absent from the mapping get cost 0 and thus produce no graph
// edges. Nodata cells stay NaN.
func MapLandcoverToCost(landcover *raster.Grid, mapping Dict[int, float64]) *raster.Grid {
	result := raster.NewGrid(landcover.Rows(), landcover.Cols(), landcover.Transform())
	for r := 0; r < landcover.Rows(); r++ {
		for c := 0; c < landcover.Cols(); c++ {
			value := landcover.Get(r, c)
			if math.IsNaN(value) {
				result.Set(r, c, math.NaN())
				continue
			}
			result.Set(r, c, mapping[int(value)])
		}
	}
	return result
}

// MergeOverlays stamps stream and hiking-path masks onto a base cost grid.
//
// Cells covered by the stream mask become cost 0 (impassable), cells covered
// by the path mask become cost 1. Paths are applied after streams, so a path
// crossing a stream stays passable. Nodata cells of the base are left
// unchanged.
func MergeOverlays(base, streams, paths *raster.Grid) *raster.Grid {
	result := base.Clone()
	for r := 0; r < base.Rows(); r++ {
		for c := 0; c < base.Cols(); c++ {
			if math.IsNaN(base.Get(r, c)) {
				continue
			}
			if streams != nil && !math.IsNaN(streams.Get(r, c)) {
				result.Set(r, c, 0)
			}
			if paths != nil && !math.IsNaN(paths.Get(r, c)) {
				result.Set(r, c, 1)
			}
		}
	}
	return result
}
