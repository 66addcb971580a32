package analysis

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-evacuation/graph"
	"github.com/ttpr0/go-evacuation/raster"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// cost decomposition
//*******************************************

// FactorSurface is a named directional cost layer contributing to a
// combined cost surface.
//
// Precondition: factor surfaces must be directionally aligned with the
// surface the path was computed on (same band ordering, same shape). Band
// counts are validated, alignment itself cannot be checked here.
type FactorSurface struct {
	Name    string
	Surface *raster.Surface
}

// Decomposition attributes the cost of a path to its contributing factors.
// Costs combine multiplicatively, so log-sums are additive and the share of
// a factor is its log-sum over the total log-sum.
type Decomposition struct {
	LogSums Dict[string, float64]
	Shares  Dict[string, float64]
	Valid   bool
	Reason  string
}

// DecomposePath computes the per-factor percentage contribution along a
// path. A step with a non-positive factor value makes the logarithm
// undefined; the whole decomposition is then marked invalid (skipped), it
// is never silently zeroed.
func DecomposePath(path List[int32], cols int, factors []FactorSurface) (Decomposition, error) {
	if len(factors) == 0 {
		return Decomposition{}, fmt.Errorf("no factor surfaces given")
	}
	for _, factor := range factors {
		if factor.Surface.Bands() != graph.DIRECTION_COUNT {
			return Decomposition{}, fmt.Errorf("factor %s has %d bands, expected %d", factor.Name, factor.Surface.Bands(), graph.DIRECTION_COUNT)
		}
	}

	if path.Length() < 2 {
		return Decomposition{Valid: false, Reason: "path has no steps"}, nil
	}

	log_sums := NewDict[string, float64](len(factors))
	for i := 0; i < path.Length()-1; i++ {
		curr := int(path[i])
		next := int(path[i+1])
		r, c := curr/cols, curr%cols
		nr, nc := next/cols, next%cols
		dir, ok := graph.DirectionFromOffset(nr-r, nc-c)
		if !ok {
			return Decomposition{
				Valid:  false,
				Reason: fmt.Sprintf("non-adjacent step from node %d to %d", curr, next),
			}, nil
		}
		for _, factor := range factors {
			value := factor.Surface.Get(int(dir), r, c)
			if math.IsNaN(value) || value <= 0 {
				return Decomposition{
					Valid:  false,
					Reason: fmt.Sprintf("factor %s is %v at cell (%d, %d) direction %v", factor.Name, value, r, c, dir),
				}, nil
			}
			log_sums[factor.Name] += math.Log(value)
		}
	}

	total := 0.0
	for _, sum := range log_sums {
		total += sum
	}
	shares := NewDict[string, float64](len(factors))
	for _, factor := range factors {
		shares[factor.Name] = 100 * log_sums[factor.Name] / total
	}
	return Decomposition{
		LogSums: log_sums,
		Shares:  shares,
		Valid:   true,
	}, nil
}
