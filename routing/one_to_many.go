package routing

import (
	"fmt"
	"sync"

	"github.com/ttpr0/go-evacuation/graph"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// multi-source orchestration
//*******************************************

// SPTResult bundles the solver outputs of one source.
type SPTResult struct {
	Source int32
	Dists  Array[float64]
	Preds  Array[int32]
}

// CalcMultiSourceDijkstra runs one Dijkstra per source and returns the
// results in caller-supplied source order.
//
// All sources are validated before any computation starts, a source outside
// the node range fails the whole call.
func CalcMultiSourceDijkstra(g graph.IGridGraph, sources []int32) ([]SPTResult, error) {
	if err := _CheckSources(g, sources); err != nil {
		return nil, err
	}
	results := make([]SPTResult, len(sources))
	for i, source := range sources {
		dists, preds, err := CalcDijkstra(g, source)
		if err != nil {
			return nil, err
		}
		results[i] = SPTResult{Source: source, Dists: dists, Preds: preds}
	}
	return results, nil
}

// CalcMultiSourceDijkstraConcurrent runs the per-source solves in parallel.
// The graph is immutable, so all workers read it without locking.
func CalcMultiSourceDijkstraConcurrent(g graph.IGridGraph, sources []int32) ([]SPTResult, error) {
	if err := _CheckSources(g, sources); err != nil {
		return nil, err
	}
	results := make([]SPTResult, len(sources))
	var wg sync.WaitGroup
	wg.Add(len(sources))
	for i, source := range sources {
		go func(i int, source int32) {
			defer wg.Done()
			dists, preds, _ := CalcDijkstra(g, source)
			results[i] = SPTResult{Source: source, Dists: dists, Preds: preds}
		}(i, source)
	}
	wg.Wait()
	return results, nil
}

func _CheckSources(g graph.IGridGraph, sources []int32) error {
	for _, source := range sources {
		if !g.IsNode(source) {
			return fmt.Errorf("source node %d outside graph range [0, %d)", source, g.NodeCount())
		}
	}
	return nil
}
