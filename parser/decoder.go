package parser

import (
	. "github.com/ttpr0/go-evacuation/util"
)

//*******************************************
// overlay decoders
//*******************************************

// IOverlayDecoder decides which OSM ways belong to an overlay layer.
type IOverlayDecoder interface {
	IsValidWay(tags Dict[string, string]) bool
}

// StreamDecoder matches waterways that evacuees cannot cross.
type StreamDecoder struct{}

var stream_types = Dict[string, bool]{"river": true, "stream": true, "canal": true, "tidal_channel": true}

func (self *StreamDecoder) IsValidWay(tags Dict[string, string]) bool {
	if !tags.ContainsKey("waterway") {
		return false
	}
	return stream_types.ContainsKey(tags.Get("waterway"))
}

// HikingPathDecoder matches established footpaths and trails.
type HikingPathDecoder struct{}

var hiking_types = Dict[string, bool]{"path": true, "footway": true, "track": true, "steps": true, "bridleway": true}

func (self *HikingPathDecoder) IsValidWay(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	return hiking_types.ContainsKey(tags.Get("highway"))
}
