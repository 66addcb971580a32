package raster

import (
	"github.com/ttpr0/go-evacuation/geo"
)

//*******************************************
// multi-band surface
//*******************************************

// Surface is a band-major stack of equally shaped raster layers.
// Directional cost surfaces carry one band per movement direction.
type Surface struct {
	bands     int
	rows      int
	cols      int
	data      []float64
	transform geo.Transform
}

func NewSurface(bands, rows, cols int, transform geo.Transform) *Surface {
	data := make([]float64, bands*rows*cols)
	return &Surface{
		bands:     bands,
		rows:      rows,
		cols:      cols,
		data:      data,
		transform: transform,
	}
}

func NewSurfaceFilled(bands, rows, cols int, transform geo.Transform, value float64) *Surface {
	surface := NewSurface(bands, rows, cols, transform)
	for i := range surface.data {
		surface.data[i] = value
	}
	return surface
}

func (self *Surface) Bands() int {
	return self.bands
}
func (self *Surface) Rows() int {
	return self.rows
}
func (self *Surface) Cols() int {
	return self.cols
}
func (self *Surface) Transform() geo.Transform {
	return self.transform
}
func (self *Surface) Get(band, row, col int) float64 {
	return self.data[(band*self.rows+row)*self.cols+col]
}
func (self *Surface) Set(band, row, col int, value float64) {
	self.data[(band*self.rows+row)*self.cols+col] = value
}

// Band returns a Grid view onto a single band. The returned grid shares
// the backing storage with the surface.
func (self *Surface) Band(band int) *Grid {
	start := band * self.rows * self.cols
	return &Grid{
		rows:      self.rows,
		cols:      self.cols,
		data:      self.data[start : start+self.rows*self.cols],
		transform: self.transform,
	}
}

func (self *Surface) Clone() *Surface {
	data := make([]float64, len(self.data))
	copy(data, self.data)
	return &Surface{
		bands:     self.bands,
		rows:      self.rows,
		cols:      self.cols,
		data:      data,
		transform: self.transform,
	}
}
