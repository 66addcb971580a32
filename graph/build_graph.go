package graph

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-evacuation/raster"
)

//*******************************************
// grid-graph builder
//*******************************************

// BuildGridGraph converts an 8-band directional cost surface into a directed
// weighted grid graph.
//
// Band b holds the cost of moving out of a cell in direction Direction(b).
// A cost that is NaN, infinite or <= 0 produces no edge. Diagonal moves are
// scaled by sqrt(2).
func BuildGridGraph(surface *raster.Surface) (*GridGraph, error) {
	return BuildGridGraphProgress(surface, nil)
}

// BuildGridGraphProgress is BuildGridGraph with an optional progress
// callback, invoked per finished row with (rows_done, rows_total).
func BuildGridGraphProgress(surface *raster.Surface, progress func(done, total int)) (*GridGraph, error) {
	if surface.Bands() != DIRECTION_COUNT {
		return nil, fmt.Errorf("cost surface has %d bands, expected %d", surface.Bands(), DIRECTION_COUNT)
	}
	rows := surface.Rows()
	cols := surface.Cols()
	node_count := rows * cols

	// first pass: count edges per node
	counts := make([]int32, node_count+1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			node := int32(r*cols + c)
			for _, dir := range DIRECTIONS {
				dr, dc := dir.Offset()
				nr := r + dr
				nc := c + dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				cost := surface.Get(int(dir), r, c)
				if !_isEdgeCost(cost) {
					continue
				}
				counts[node+1] += 1
			}
		}
	}

	node_ptr := make([]int32, node_count+1)
	for i := 0; i < node_count; i++ {
		node_ptr[i+1] = node_ptr[i] + counts[i+1]
	}
	edge_count := int(node_ptr[node_count])
	targets := make([]int32, edge_count)
	weights := make([]float64, edge_count)

	// second pass: fill the adjacency
	offsets := make([]int32, node_count)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			node := int32(r*cols + c)
			for _, dir := range DIRECTIONS {
				dr, dc := dir.Offset()
				nr := r + dr
				nc := c + dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				cost := surface.Get(int(dir), r, c)
				if !_isEdgeCost(cost) {
					continue
				}
				if dir.IsDiagonal() {
					cost *= math.Sqrt2
				}
				index := node_ptr[node] + offsets[node]
				targets[index] = int32(nr*cols + nc)
				weights[index] = cost
				offsets[node] += 1
			}
		}
		if progress != nil {
			progress(r+1, rows)
		}
	}

	return &GridGraph{
		rows:      rows,
		cols:      cols,
		node_ptr:  node_ptr,
		targets:   targets,
		weights:   weights,
		transform: surface.Transform(),
	}, nil
}

func _isEdgeCost(cost float64) bool {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return false
	}
	return cost > 0
}
