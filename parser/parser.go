package parser

import (
	"context"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// osm overlay extraction
//*******************************************

// ParseOverlayGeometries extracts the line geometries of all ways matched
// by the decoder from an OSM pbf extract.
//
// Two scanner passes are used: the first collects the node references of
// matching ways, the second resolves their coordinates. Nodes missing from
// the extract are dropped from their way.
func ParseOverlayGeometries(pbf_file string, decoder IOverlayDecoder) []orb.Geometry {
	way_refs := NewList[[]int64](100)
	way_nodes := NewDict[int64, Optional[orb.Point]](1000)

	file, err := os.Open(pbf_file)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_WayHandler(scanner, decoder, &way_refs, &way_nodes)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_NodeHandler(scanner, &way_nodes)
	scanner.Close()

	return AssembleLines(way_refs, way_nodes)
}

// AssembleLines builds line geometries from way node references and the
// resolved node locations.
func AssembleLines(way_refs List[[]int64], way_nodes Dict[int64, Optional[orb.Point]]) []orb.Geometry {
	geometries := make([]orb.Geometry, 0, way_refs.Length())
	for _, refs := range way_refs {
		line := make(orb.LineString, 0, len(refs))
		for _, ref := range refs {
			point := way_nodes[ref]
			if !point.HasValue() {
				continue
			}
			line = append(line, point.Value)
		}
		if len(line) >= 2 {
			geometries = append(geometries, line)
		}
	}
	return geometries
}

func _WayHandler(scanner *osmpbf.Scanner, decoder IOverlayDecoder, way_refs *List[[]int64], way_nodes *Dict[int64, Optional[orb.Point]]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidWay(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			refs := make([]int64, len(nodes))
			for i, node := range nodes {
				ref := node.FeatureID().Ref()
				refs[i] = ref
				if !way_nodes.ContainsKey(ref) {
					way_nodes.Set(ref, None[orb.Point]())
				}
			}
			way_refs.Add(refs)
		default:
			continue
		}
	}
}

func _NodeHandler(scanner *osmpbf.Scanner, way_nodes *Dict[int64, Optional[orb.Point]]) {
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !way_nodes.ContainsKey(id) {
				continue
			}
			way_nodes.Set(id, Some(orb.Point{object.Lon, object.Lat}))
		default:
			continue
		}
	}
}
