package parser

import (
	"testing"

	. "github.com/ttpr0/go-evacuation/util"
)

func TestStreamDecoder(t *testing.T) {
	decoder := StreamDecoder{}

	valid := []Dict[string, string]{
		{"waterway": "river"},
		{"waterway": "stream"},
		{"waterway": "canal"},
		{"waterway": "tidal_channel"},
	}
	for _, tags := range valid {
		if !decoder.IsValidWay(tags) {
			t.Errorf("IsValidWay(%v) = false; want true", tags)
		}
	}

	invalid := []Dict[string, string]{
		{"waterway": "dam"},
		{"highway": "path"},
		{},
	}
	for _, tags := range invalid {
		if decoder.IsValidWay(tags) {
			t.Errorf("IsValidWay(%v) = true; want false", tags)
		}
	}
}

func TestHikingPathDecoder(t *testing.T) {
	decoder := HikingPathDecoder{}

	valid := []Dict[string, string]{
		{"highway": "path"},
		{"highway": "footway"},
		{"highway": "track"},
		{"highway": "steps"},
		{"highway": "bridleway"},
	}
	for _, tags := range valid {
		if !decoder.IsValidWay(tags) {
			t.Errorf("IsValidWay(%v) = false; want true", tags)
		}
	}

	invalid := []Dict[string, string]{
		{"highway": "motorway"},
		{"waterway": "stream"},
		{},
	}
	for _, tags := range invalid {
		if decoder.IsValidWay(tags) {
			t.Errorf("IsValidWay(%v) = true; want false", tags)
		}
	}
}
