package cost

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/raster"
)

func TestInvertGrid(t *testing.T) {
	transform := geo.NewTransform(0, 200, 100)
	grid := raster.NewGrid(2, 2, transform)
	grid.Set(0, 0, 2.0)
	grid.Set(0, 1, 0.0)
	grid.Set(1, 0, math.NaN())
	grid.Set(1, 1, 0.5)

	inverted := InvertGrid(grid)

	assert.Equal(t, 0.5, inverted.Get(0, 0))
	// impassable, not missing
	assert.Equal(t, float64(IMPASSABLE_COST), inverted.Get(0, 1))
	assert.True(t, math.IsNaN(inverted.Get(1, 0)), "nodata must stay NaN")
	assert.Equal(t, 2.0, inverted.Get(1, 1))
}

func TestInvertInvolution(t *testing.T) {
	transform := geo.NewTransform(0, 100, 100)
	grid := raster.NewGrid(1, 3, transform)
	grid.Set(0, 0, 4.0)
	grid.Set(0, 1, 0.25)
	grid.Set(0, 2, 1.0)

	twice := InvertGrid(InvertGrid(grid))
	for c := 0; c < 3; c++ {
		assert.InDelta(t, grid.Get(0, c), twice.Get(0, c), 1e-12)
	}
}

func TestInvertSurface(t *testing.T) {
	transform := geo.NewTransform(0, 100, 100)
	surface := raster.NewSurfaceFilled(8, 1, 1, transform, 2.0)
	surface.Set(3, 0, 0, 0.0)

	inverted := InvertSurface(surface)
	assert.Equal(t, 0.5, inverted.Get(0, 0, 0))
	assert.Equal(t, float64(IMPASSABLE_COST), inverted.Get(3, 0, 0))
}
