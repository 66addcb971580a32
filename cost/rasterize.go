package cost

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/raster"
)

//*******************************************
// vector rasterization
//*******************************************

// RasterizeLayer burns vector geometries onto a raster-aligned grid.
//
// Every cell touched by a geometry receives the burn value, all other cells
// keep the fill value (typically NaN for "not covered"). Lines burn every
// cell they pass through, polygons additionally fill their interior.
func RasterizeLayer(geoms []orb.Geometry, rows, cols int, transform geo.Transform, burn, fill float64) *raster.Grid {
	grid := raster.NewGridFilled(rows, cols, transform, fill)
	for _, geom := range geoms {
		_burnGeometry(grid, geom, transform, burn)
	}
	return grid
}

func _burnGeometry(grid *raster.Grid, geom orb.Geometry, transform geo.Transform, burn float64) {
	switch g := geom.(type) {
	case orb.Point:
		_burnPoint(grid, g, transform, burn)
	case orb.MultiPoint:
		for _, p := range g {
			_burnPoint(grid, p, transform, burn)
		}
	case orb.LineString:
		_burnLineString(grid, g, transform, burn)
	case orb.MultiLineString:
		for _, ls := range g {
			_burnLineString(grid, ls, transform, burn)
		}
	case orb.Ring:
		_burnLineString(grid, orb.LineString(g), transform, burn)
	case orb.Polygon:
		_burnPolygon(grid, g, transform, burn)
	case orb.MultiPolygon:
		for _, p := range g {
			_burnPolygon(grid, p, transform, burn)
		}
	case orb.Collection:
		for _, sub := range g {
			_burnGeometry(grid, sub, transform, burn)
		}
	}
}

func _burnPoint(grid *raster.Grid, point orb.Point, transform geo.Transform, burn float64) {
	row, col := transform.MapToCell(geo.CoordFromPoint(point))
	if grid.IsCell(row, col) {
		grid.Set(row, col, burn)
	}
}

// _burnLineString burns every cell a segment passes through by sampling the
// segment at half-cell steps.
func _burnLineString(grid *raster.Grid, line orb.LineString, transform geo.Transform, burn float64) {
	if len(line) == 0 {
		return
	}
	step := math.Min(transform.CellSizeX, transform.CellSizeY) / 2
	_burnPoint(grid, line[0], transform, burn)
	for i := 0; i < len(line)-1; i++ {
		a := line[i]
		b := line[i+1]
		dx := b[0] - a[0]
		dy := b[1] - a[1]
		length := math.Hypot(dx, dy)
		steps := int(math.Ceil(length / step))
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			p := orb.Point{a[0] + t*dx, a[1] + t*dy}
			_burnPoint(grid, p, transform, burn)
		}
	}
}

// _burnPolygon fills the polygon interior row-wise (even-odd rule) and burns
// the ring boundaries.
func _burnPolygon(grid *raster.Grid, polygon orb.Polygon, transform geo.Transform, burn float64) {
	for _, ring := range polygon {
		_burnLineString(grid, orb.LineString(ring), transform, burn)
	}
	if len(polygon) == 0 {
		return
	}
	for r := 0; r < grid.Rows(); r++ {
		y := transform.CellToMap(r, 0)[1]
		crossings := _ringCrossings(polygon, y)
		if len(crossings) < 2 {
			continue
		}
		for i := 0; i+1 < len(crossings); i += 2 {
			_, start := transform.MapToCell(geo.Coord{crossings[i], y})
			_, end := transform.MapToCell(geo.Coord{crossings[i+1], y})
			for c := max(start, 0); c <= min(end, grid.Cols()-1); c++ {
				grid.Set(r, c, burn)
			}
		}
	}
}

// _ringCrossings returns the sorted x coordinates where the polygon rings
// cross the horizontal line at y.
func _ringCrossings(polygon orb.Polygon, y float64) []float64 {
	var crossings []float64
	for _, ring := range polygon {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if (a[1] <= y && b[1] > y) || (b[1] <= y && a[1] > y) {
				t := (y - a[1]) / (b[1] - a[1])
				crossings = append(crossings, a[0]+t*(b[0]-a[0]))
			}
		}
	}
	for i := 1; i < len(crossings); i++ {
		for j := i; j > 0 && crossings[j] < crossings[j-1]; j-- {
			crossings[j], crossings[j-1] = crossings[j-1], crossings[j]
		}
	}
	return crossings
}
