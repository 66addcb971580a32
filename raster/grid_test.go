package raster

import (
	"math"
	"testing"

	"github.com/ttpr0/go-evacuation/geo"
)

func TestGridIndexRoundtrip(t *testing.T) {
	transform := geo.NewTransform(0, 300, 100)
	grid := NewGrid(3, 4, transform)

	index := grid.Index(2, 3)
	if index != 11 {
		t.Errorf("grid.Index(2, 3) = %v; want 11", index)
	}
	row, col := grid.RowCol(index)
	if row != 2 || col != 3 {
		t.Errorf("grid.RowCol(11) = (%v, %v); want (2, 3)", row, col)
	}
}

func TestGridClone(t *testing.T) {
	transform := geo.NewTransform(0, 200, 100)
	grid := NewGridFilled(2, 2, transform, 1.0)

	clone := grid.Clone()
	clone.Set(0, 0, 5.0)
	if grid.Get(0, 0) != 1.0 {
		t.Errorf("grid.Get(0, 0) = %v after modifying clone; want 1", grid.Get(0, 0))
	}
}

func TestGridReplaceValue(t *testing.T) {
	transform := geo.NewTransform(0, 200, 100)
	grid := NewGridFilled(2, 2, transform, -9999)
	grid.Set(0, 1, 3.0)

	grid.ReplaceValue(-9999, math.NaN())
	if !math.IsNaN(grid.Get(0, 0)) {
		t.Errorf("grid.Get(0, 0) = %v; want NaN", grid.Get(0, 0))
	}
	if grid.Get(0, 1) != 3.0 {
		t.Errorf("grid.Get(0, 1) = %v; want 3", grid.Get(0, 1))
	}
}

func TestGridIsCell(t *testing.T) {
	transform := geo.NewTransform(0, 200, 100)
	grid := NewGrid(2, 3, transform)

	if !grid.IsCell(1, 2) {
		t.Errorf("grid.IsCell(1, 2) = false; want true")
	}
	if grid.IsCell(2, 0) || grid.IsCell(-1, 0) || grid.IsCell(0, 3) {
		t.Errorf("out-of-range cells reported as valid")
	}
}
