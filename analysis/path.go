package analysis

import (
	"github.com/ttpr0/go-evacuation/graph"
	"github.com/ttpr0/go-evacuation/routing"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// path reconstruction
//*******************************************

// ReconstructPath walks a predecessor array backwards from target and
// returns the node sequence from source to target inclusive.
//
// An empty list means no route exists. That is a valid result, not an
// error: the target was unreachable or carried the sentinel.
func ReconstructPath(preds Array[int32], source, target int32) List[int32] {
	path := NewList[int32](16)
	if target == routing.NO_PREDECESSOR || target < 0 || int(target) >= preds.Length() {
		return path
	}
	node := target
	for node != source && node != routing.NO_PREDECESSOR {
		path.Add(node)
		node = preds[node]
	}
	if node == routing.NO_PREDECESSOR {
		// target is not part of the shortest-path tree
		return NewList[int32](0)
	}
	path.Add(source)
	for i, j := 0, path.Length()-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathMetrics sums the forward edge weights along a path.
// Returns the pixel count, the per-step costs and the total cost.
// An empty path yields (0, empty, 0).
func PathMetrics(path List[int32], g *graph.GridGraph) (int, List[float64], float64) {
	step_costs := NewList[float64](path.Length())
	if path.Length() == 0 {
		return 0, step_costs, 0
	}
	total := 0.0
	for i := 0; i < path.Length()-1; i++ {
		weight, _ := g.GetEdgeWeight(path[i], path[i+1])
		step_costs.Add(weight)
		total += weight
	}
	return path.Length(), step_costs, total
}

// PathCoords converts a node path to (row, col) cell coordinates.
func PathCoords(path List[int32], cols int) List[Tuple[int, int]] {
	coords := NewList[Tuple[int, int]](path.Length())
	for _, node := range path {
		coords.Add(MakeTuple(int(node)/cols, int(node)%cols))
	}
	return coords
}
