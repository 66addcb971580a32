package main

import (
	"math"
	"testing"

	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/raster"
)

func TestMapSourcesToCells(t *testing.T) {
	transform := geo.NewTransform(1000, 2000, 100)
	sources := []SourceOptions{
		{Name: "summit", X: 1050, Y: 1950},
		{Name: "flank", X: 1250, Y: 1750},
		{Name: "outside", X: 9999, Y: 9999},
	}

	nodes, names := MapSourcesToCells(sources, 3, 3, transform)

	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %v; want 2 (outside source skipped)", len(nodes))
	}
	if nodes[0] != 0 {
		t.Errorf("nodes[0] = %v; want 0", nodes[0])
	}
	// cell (2, 2) on a 3 column grid
	if nodes[1] != 8 {
		t.Errorf("nodes[1] = %v; want 8", nodes[1])
	}
	if names[0] != "summit" || names[1] != "flank" {
		t.Errorf("names = %v; want [summit flank]", names)
	}
}

func TestBroadcastBands(t *testing.T) {
	transform := geo.NewTransform(0, 100, 100)
	grid := raster.NewGridFilled(1, 2, transform, 0.5)
	grid.Set(0, 1, math.NaN())

	surface := _BroadcastBands(grid)

	if surface.Bands() != 8 {
		t.Fatalf("surface.Bands() = %v; want 8", surface.Bands())
	}
	for b := 0; b < 8; b++ {
		if surface.Get(b, 0, 0) != 0.5 {
			t.Errorf("surface.Get(%v, 0, 0) = %v; want 0.5 in every band", b, surface.Get(b, 0, 0))
		}
		if !math.IsNaN(surface.Get(b, 0, 1)) {
			t.Errorf("surface.Get(%v, 0, 1) = %v; want NaN", b, surface.Get(b, 0, 1))
		}
	}
}
