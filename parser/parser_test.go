package parser

import (
	"testing"

	"github.com/paulmach/orb"
	. "github.com/ttpr0/go-evacuation/util"
)

func TestAssembleLines(t *testing.T) {
	way_refs := List[[]int64]{
		{1, 2, 3},
		{4, 5},
	}
	way_nodes := Dict[int64, Optional[orb.Point]]{
		1: Some(orb.Point{0, 0}),
		2: Some(orb.Point{1, 0}),
		3: Some(orb.Point{2, 0}),
		4: Some(orb.Point{5, 5}),
		5: Some(orb.Point{6, 5}),
	}

	geoms := AssembleLines(way_refs, way_nodes)
	if len(geoms) != 2 {
		t.Fatalf("len(geoms) = %v; want 2", len(geoms))
	}
	line, ok := geoms[0].(orb.LineString)
	if !ok {
		t.Fatalf("geoms[0] is %T; want orb.LineString", geoms[0])
	}
	if len(line) != 3 {
		t.Errorf("len(line) = %v; want 3", len(line))
	}
}

func TestAssembleLinesUnresolvedNodes(t *testing.T) {
	way_refs := List[[]int64]{
		{1, 2, 3},
		{4, 5},
	}
	// node 2 lies outside the extract, nodes 4 and 5 entirely
	way_nodes := Dict[int64, Optional[orb.Point]]{
		1: Some(orb.Point{0, 0}),
		2: None[orb.Point](),
		3: Some(orb.Point{2, 0}),
		4: None[orb.Point](),
		5: None[orb.Point](),
	}

	geoms := AssembleLines(way_refs, way_nodes)
	if len(geoms) != 1 {
		t.Fatalf("len(geoms) = %v; want 1", len(geoms))
	}
	line := geoms[0].(orb.LineString)
	if len(line) != 2 {
		t.Errorf("len(line) = %v; want 2", len(line))
	}
}
