package geo

import (
	"github.com/paulmach/orb"
)

//*******************************************
// geometry basics
//*******************************************

// Coord is a projected map coordinate (x, y) in map units.
type Coord [2]float64

func CoordFromPoint(point orb.Point) Coord {
	return Coord{point[0], point[1]}
}

func (self Coord) Point() orb.Point {
	return orb.Point{self[0], self[1]}
}

//*******************************************
// raster transform
//*******************************************

// Transform maps between projected map coordinates and raster cells.
//
// The origin is the upper-left corner of cell (0, 0). Rows grow downwards
// (decreasing y), columns grow to the right (increasing x).
type Transform struct {
	OriginX   float64 `yaml:"origin-x" json:"origin_x"`
	OriginY   float64 `yaml:"origin-y" json:"origin_y"`
	CellSizeX float64 `yaml:"cell-size-x" json:"cell_size_x"`
	CellSizeY float64 `yaml:"cell-size-y" json:"cell_size_y"`
}

func NewTransform(origin_x, origin_y, cell_size float64) Transform {
	return Transform{
		OriginX:   origin_x,
		OriginY:   origin_y,
		CellSizeX: cell_size,
		CellSizeY: cell_size,
	}
}

// MapToCell converts a map coordinate to the containing (row, col).
// The returned indices may lie outside the raster, callers have to
// bounds-check against the raster shape.
func (self Transform) MapToCell(point Coord) (int, int) {
	col := int((point[0] - self.OriginX) / self.CellSizeX)
	row := int((self.OriginY - point[1]) / self.CellSizeY)
	return row, col
}

// CellToMap converts (row, col) to the map coordinate of the cell center.
func (self Transform) CellToMap(row, col int) Coord {
	x := self.OriginX + (float64(col)+0.5)*self.CellSizeX
	y := self.OriginY - (float64(row)+0.5)*self.CellSizeY
	return Coord{x, y}
}

// Bounds returns (left, bottom, right, top) for a raster of the given shape.
func (self Transform) Bounds(rows, cols int) (float64, float64, float64, float64) {
	left := self.OriginX
	top := self.OriginY
	right := self.OriginX + float64(cols)*self.CellSizeX
	bottom := self.OriginY - float64(rows)*self.CellSizeY
	return left, bottom, right, top
}

// Contains reports whether a map coordinate falls inside a raster of the
// given shape.
func (self Transform) Contains(point Coord, rows, cols int) bool {
	left, bottom, right, top := self.Bounds(rows, cols)
	return point[0] >= left && point[0] <= right && point[1] >= bottom && point[1] <= top
}
