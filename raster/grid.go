package raster

import (
	"math"

	"github.com/ttpr0/go-evacuation/geo"
)

//*******************************************
// 2d raster grid
//*******************************************

// Grid is a single-band float raster in row-major order.
// Missing cells are stored as NaN.
type Grid struct {
	rows      int
	cols      int
	data      []float64
	transform geo.Transform
}

func NewGrid(rows, cols int, transform geo.Transform) *Grid {
	data := make([]float64, rows*cols)
	return &Grid{
		rows:      rows,
		cols:      cols,
		data:      data,
		transform: transform,
	}
}

func NewGridFilled(rows, cols int, transform geo.Transform, value float64) *Grid {
	grid := NewGrid(rows, cols, transform)
	for i := range grid.data {
		grid.data[i] = value
	}
	return grid
}

func (self *Grid) Rows() int {
	return self.rows
}
func (self *Grid) Cols() int {
	return self.cols
}
func (self *Grid) Transform() geo.Transform {
	return self.transform
}
func (self *Grid) Get(row, col int) float64 {
	return self.data[row*self.cols+col]
}
func (self *Grid) Set(row, col int, value float64) {
	self.data[row*self.cols+col] = value
}
func (self *Grid) IsCell(row, col int) bool {
	return row >= 0 && row < self.rows && col >= 0 && col < self.cols
}

// Index maps (row, col) to the 1d node index used by the grid graph.
func (self *Grid) Index(row, col int) int32 {
	return int32(row*self.cols + col)
}

// RowCol is the inverse of Index.
func (self *Grid) RowCol(index int32) (int, int) {
	return int(index) / self.cols, int(index) % self.cols
}

// Values returns the flat row-major backing slice.
func (self *Grid) Values() []float64 {
	return self.data
}

func (self *Grid) Clone() *Grid {
	data := make([]float64, len(self.data))
	copy(data, self.data)
	return &Grid{
		rows:      self.rows,
		cols:      self.cols,
		data:      data,
		transform: self.transform,
	}
}

// ReplaceValue rewrites every occurence of a value (e.g. a nodata marker)
// with the given replacement. NaN markers are matched via IsNaN.
func (self *Grid) ReplaceValue(value, replacement float64) {
	for i, v := range self.data {
		if v == value || (math.IsNaN(value) && math.IsNaN(v)) {
			self.data[i] = replacement
		}
	}
}
