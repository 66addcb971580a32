package main

import (
	"math"
	"testing"

	"github.com/ttpr0/go-evacuation/cost"
	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/graph"
	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
)

func TestDecompositionFactorsMatchEdgeWeights(t *testing.T) {
	transform := geo.NewTransform(0, 300, 100)
	landcover := raster.NewGridFilled(3, 3, transform, 2.0)
	speed := raster.NewSurfaceFilled(graph.DIRECTION_COUNT, 3, 3, transform, 0.5)

	datasets := Dict[string, *raster.Surface]{
		"final":         cost.InvertSurface(cost.AdjustSurfaceByFactor(speed, landcover)),
		"walking_speed": cost.InvertSurface(speed),
	}
	surfaces := CostSurfaces{
		Datasets:  datasets,
		Landcover: landcover,
		Rows:      3,
		Cols:      3,
		Transform: transform,
	}

	g, err := graph.BuildGridGraph(datasets["final"])
	if err != nil {
		t.Fatalf("BuildGridGraph() error = %v; want nil", err)
	}
	factors := _DecompositionFactors(surfaces)

	// the factor product has to reproduce the edge weight exactly,
	// cardinal and diagonal alike
	for _, dir := range graph.DIRECTIONS {
		dr, dc := dir.Offset()
		from := g.Index(1, 1)
		to := g.Index(1+dr, 1+dc)
		weight, ok := g.GetEdgeWeight(from, to)
		if !ok {
			t.Fatalf("edge %v -> %v missing", from, to)
		}
		product := 1.0
		for _, factor := range factors {
			product *= factor.Surface.Get(int(dir), 1, 1)
		}
		if math.Abs(product-weight) > 1e-12 {
			t.Errorf("factor product for %v = %v; want edge weight %v", dir, product, weight)
		}
	}
}
