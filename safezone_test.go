package main

import (
	"math"
	"testing"

	"github.com/ttpr0/go-evacuation/analysis"
	. "github.com/ttpr0/go-evacuation/util"
)

func TestFlattenZonesStableOrder(t *testing.T) {
	thresholds := []float64{500, 1000}
	source_names := []string{"summit", "flank"}
	zones := analysis.ZoneAnalysis{
		"slow": Dict[float64, []analysis.ZoneResult]{
			500:  {{Time: 0.1, Row: 0, Col: 1}, {Time: 0.2, Row: 1, Col: 1}},
			1000: {{Time: 0.3, Row: 0, Col: 2}, {Time: math.NaN(), Row: math.NaN(), Col: math.NaN()}},
		},
		"fast": Dict[float64, []analysis.ZoneResult]{
			500:  {{Time: 0.05, Row: 0, Col: 1}, {Time: 0.1, Row: 1, Col: 1}},
			1000: {{Time: 0.15, Row: 0, Col: 2}, {Time: math.NaN(), Row: math.NaN(), Col: math.NaN()}},
		},
	}

	entries := _FlattenZones("final", zones, source_names, thresholds)

	if len(entries) != 8 {
		t.Fatalf("len(entries) = %v; want 8", len(entries))
	}
	// speeds alphabetically, thresholds in series order, sources in
	// mapping order
	expected := []struct {
		speed     string
		threshold float64
		source    string
	}{
		{"fast", 500, "summit"},
		{"fast", 500, "flank"},
		{"fast", 1000, "summit"},
		{"fast", 1000, "flank"},
		{"slow", 500, "summit"},
		{"slow", 500, "flank"},
		{"slow", 1000, "summit"},
		{"slow", 1000, "flank"},
	}
	for i, want := range expected {
		entry := entries[i]
		if entry.Speed != want.speed || entry.Threshold != want.threshold || entry.Source != want.source {
			t.Errorf("entries[%v] = (%v, %v, %v); want (%v, %v, %v)",
				i, entry.Speed, entry.Threshold, entry.Source, want.speed, want.threshold, want.source)
		}
	}

	// the empty zone keeps its row with the unreachable marker
	last := entries[7]
	if last.Time != analysis.UNREACHABLE || last.Row != -1 || last.Col != -1 {
		t.Errorf("empty zone row = (%v, %v, %v); want (-1, -1, -1)", last.Time, last.Row, last.Col)
	}
}
