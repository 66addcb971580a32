package routing

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-evacuation/graph"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// dijkstra
//*******************************************

// NO_PREDECESSOR marks unreached nodes and the root of the shortest-path
// tree in predecessor arrays.
const NO_PREDECESSOR int32 = -1

// ISPTConsumer observes nodes as they are settled by the solver.
// Nodes are consumed in non-decreasing distance order.
type ISPTConsumer interface {
	ConsumeNode(node int32, dist float64)
}

type _PQItem struct {
	node int32
	dist float64
}

// CalcDijkstra computes shortest-path distances and predecessors from a
// single source to every node of the graph.
//
// Unreachable nodes carry distance +Inf and predecessor NO_PREDECESSOR.
func CalcDijkstra(g graph.IGridGraph, source int32) (Array[float64], Array[int32], error) {
	return CalcDijkstraConsume(g, source, nil)
}

// CalcDijkstraConsume is CalcDijkstra with an optional settle observer.
func CalcDijkstraConsume(g graph.IGridGraph, source int32, consumer ISPTConsumer) (Array[float64], Array[int32], error) {
	if !g.IsNode(source) {
		return nil, nil, fmt.Errorf("source node %d outside graph range [0, %d)", source, g.NodeCount())
	}

	node_count := g.NodeCount()
	dists := NewArray[float64](node_count)
	preds := NewArray[int32](node_count)
	for i := 0; i < node_count; i++ {
		dists[i] = math.Inf(1)
		preds[i] = NO_PREDECESSOR
	}
	visited := NewFlags[bool](int32(node_count), false)

	heap := NewPriorityQueue[_PQItem, float64](100)
	dists[source] = 0
	heap.Enqueue(_PQItem{source, 0}, 0)

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.node
		if *visited.Get(curr_id) {
			continue
		}
		*visited.Get(curr_id) = true
		if consumer != nil {
			consumer.ConsumeNode(curr_id, curr_item.dist)
		}
		g.ForOutgoingEdges(curr_id, func(target int32, weight float64) {
			if *visited.Get(target) {
				return
			}
			new_length := dists[curr_id] + weight
			if new_length < dists[target] {
				dists[target] = new_length
				preds[target] = curr_id
				heap.Enqueue(_PQItem{target, new_length}, new_length)
			}
		})
	}

	return dists, preds, nil
}
