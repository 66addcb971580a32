package main

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-evacuation/analysis"
	"github.com/ttpr0/go-evacuation/cost"
	"github.com/ttpr0/go-evacuation/geo"
	"github.com/ttpr0/go-evacuation/graph"
	"github.com/ttpr0/go-evacuation/parser"
	"github.com/ttpr0/go-evacuation/raster"
	"github.com/ttpr0/go-evacuation/routing"
	. "github.com/ttpr0/go-evacuation/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// cost-surface build
//**********************************************************

// CostSurfaces bundles the directional cost datasets together with the
// land-cover layer kept for the decomposition step.
type CostSurfaces struct {
	Datasets  Dict[string, *raster.Surface]
	Landcover *raster.Grid
	Rows      int
	Cols      int
	Transform geo.Transform
}

// BuildCostSurfaces runs the full build chain from raw inputs to the
// inverted directional cost surfaces.
//
// Three datasets are produced: "final" (walking speed adjusted by
// land cover), "walking_speed" (slope only) and "base_cost" (land
// cover only). Every dataset is analysed separately so that the
// contribution of the individual layers can be compared.
func BuildCostSurfaces(config Config) CostSurfaces {
	slog.Info("Loading DEM: " + config.Build.DEM)
	dem, err := raster.ReadASC(config.Build.DEM)
	if err != nil {
		panic(err)
	}
	rows := dem.Rows()
	cols := dem.Cols()
	transform := dem.Transform()

	slog.Info("Computing directional slope and walking speed")
	slope := cost.CalcSlope8(dem, config.Build.DEMNodata)
	speed := cost.CalcWalkingSpeed(slope)
	speed_norm := cost.NormalizeWalkingSpeed(speed)

	slog.Info("Loading landcover: " + config.Build.Landcover)
	landcover, err := raster.ReadASC(config.Build.Landcover)
	if err != nil {
		panic(err)
	}
	if landcover.Rows() != rows || landcover.Cols() != cols {
		panic(fmt.Errorf("landcover extent %dx%d does not match dem extent %dx%d", landcover.Rows(), landcover.Cols(), rows, cols))
	}
	lc_cost := cost.MapLandcoverToCost(landcover, config.Build.LandcoverCosts)

	if config.Build.OSM != "" {
		slog.Info("Burning osm overlays: " + config.Build.OSM)
		streams := parser.ParseOverlayGeometries(config.Build.OSM, &parser.StreamDecoder{})
		paths := parser.ParseOverlayGeometries(config.Build.OSM, &parser.HikingPathDecoder{})
		stream_mask := cost.RasterizeLayer(streams, rows, cols, transform, 1, math.NaN())
		path_mask := cost.RasterizeLayer(paths, rows, cols, transform, 1, math.NaN())
		lc_cost = cost.MergeOverlays(lc_cost, stream_mask, path_mask)
	}

	datasets := NewDict[string, *raster.Surface](3)
	datasets["final"] = cost.InvertSurface(cost.AdjustSurfaceByFactor(speed_norm, lc_cost))
	datasets["walking_speed"] = cost.InvertSurface(speed_norm)
	datasets["base_cost"] = cost.InvertSurface(_BroadcastBands(lc_cost))

	// keep the intermediate and final surfaces around for inspection
	raster.StoreSurface(slope, config.Analysis.Output+"/slope.grid")
	raster.StoreSurface(speed_norm, config.Analysis.Output+"/walking_speed_normalized.grid")
	for dataset, surface := range datasets {
		raster.StoreSurface(surface, fmt.Sprintf("%s/%s_cost_surface.grid", config.Analysis.Output, dataset))
	}

	return CostSurfaces{
		Datasets:  datasets,
		Landcover: lc_cost,
		Rows:      rows,
		Cols:      cols,
		Transform: transform,
	}
}

// _BroadcastBands copies a single layer into all 8 directional bands
// without scaling. The diagonal distance factor is applied once by the
// graph builder.
func _BroadcastBands(grid *raster.Grid) *raster.Surface {
	surface := raster.NewSurface(graph.DIRECTION_COUNT, grid.Rows(), grid.Cols(), grid.Transform())
	for b := 0; b < graph.DIRECTION_COUNT; b++ {
		for r := 0; r < grid.Rows(); r++ {
			for c := 0; c < grid.Cols(); c++ {
				surface.Set(b, r, c, grid.Get(r, c))
			}
		}
	}
	return surface
}

//**********************************************************
// source mapping
//**********************************************************

// MapSourcesToCells converts the configured start points into grid node
// ids. Sources outside the raster extent are logged and skipped.
func MapSourcesToCells(sources []SourceOptions, rows, cols int, transform geo.Transform) ([]int32, []string) {
	nodes := NewList[int32](len(sources))
	names := NewList[string](len(sources))
	for _, source := range sources {
		point := geo.Coord{source.X, source.Y}
		row, col := transform.MapToCell(point)
		if !transform.Contains(point, rows, cols) || row < 0 || row >= rows || col < 0 || col >= cols {
			slog.Warn(fmt.Sprintf("source %s at (%f, %f) lies outside the raster extent, skipping", source.Name, source.X, source.Y))
			continue
		}
		nodes.Add(int32(row*cols + col))
		names.Add(source.Name)
	}
	return nodes, names
}

//**********************************************************
// evacuation analysis
//**********************************************************

// EvacuationResult holds the shortest-path trees and derived travel-time
// grids of one analysis run, keyed dataset -> source name.
type EvacuationResult struct {
	Trees       Dict[string, Dict[string, routing.SPTResult]]
	TravelTimes Dict[string, Dict[string, Dict[string, *raster.Grid]]]
	Surfaces    CostSurfaces
	SourceNames []string
	SourceNodes []int32
}

// RunEvacuationAnalysis builds a graph per cost dataset, solves the
// shortest-path trees from all sources concurrently and writes the
// cost-distance and travel-time rasters to the output directory.
func RunEvacuationAnalysis(config Config, surfaces CostSurfaces) EvacuationResult {
	source_nodes, source_names := MapSourcesToCells(config.Sources, surfaces.Rows, surfaces.Cols, surfaces.Transform)
	if len(source_nodes) == 0 {
		panic("no valid evacuation sources inside the raster extent")
	}

	trees := NewDict[string, Dict[string, routing.SPTResult]](len(surfaces.Datasets))
	travel_times := NewDict[string, Dict[string, Dict[string, *raster.Grid]]](len(surfaces.Datasets))

	for dataset, surface := range surfaces.Datasets {
		slog.Info("Building graph for dataset: " + dataset)
		g, err := graph.BuildGridGraphProgress(surface, func(done, total int) {
			if done%(total/10+1) == 0 {
				slog.Info(fmt.Sprintf("graph build: %d / %d rows", done, total))
			}
		})
		if err != nil {
			panic(err)
		}
		slog.Info(fmt.Sprintf("graph built with %d nodes and %d edges", g.NodeCount(), g.EdgeCount()))

		slog.Info(fmt.Sprintf("Solving shortest-path trees for %d sources", len(source_nodes)))
		results, err := routing.CalcMultiSourceDijkstraConcurrent(g, source_nodes)
		if err != nil {
			panic(err)
		}

		trees[dataset] = NewDict[string, routing.SPTResult](len(results))
		travel_times[dataset] = NewDict[string, Dict[string, *raster.Grid]](len(results))
		for i, result := range results {
			name := source_names[i]
			trees[dataset][name] = result

			distances := analysis.CostDistanceGrid(result.Dists, surfaces.Rows, surfaces.Cols, surfaces.Transform)
			_WriteRaster(distances, config.Analysis.Output, fmt.Sprintf("%s_%s_cost_distance", dataset, name))

			travel_times[dataset][name] = NewDict[string, *raster.Grid](len(config.Analysis.WalkingSpeeds))
			for speed_name, walking_speed := range config.Analysis.WalkingSpeeds {
				times := analysis.TravelTimeGrid(result.Dists, surfaces.Rows, surfaces.Cols, surfaces.Transform, config.Analysis.CellSize, walking_speed)
				travel_times[dataset][name][speed_name] = times
				_WriteRaster(times, config.Analysis.Output, fmt.Sprintf("%s_%s_%s_travel_time", dataset, name, speed_name))
			}
		}
	}

	return EvacuationResult{
		Trees:       trees,
		TravelTimes: travel_times,
		Surfaces:    surfaces,
		SourceNames: source_names,
		SourceNodes: source_nodes,
	}
}

func _WriteRaster(grid *raster.Grid, output_dir, name string) {
	file := fmt.Sprintf("%s/%s.asc", output_dir, name)
	if err := raster.WriteASC(grid, file, analysis.UNREACHABLE); err != nil {
		slog.Error("failed to write raster " + file + ": " + err.Error())
		panic(err)
	}
}
