package main

import (
	"os"

	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(NewLogHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config_file := "./config.yaml"
	if len(os.Args) > 1 {
		config_file = os.Args[1]
	}
	config := ReadConfig(config_file)
	if err := os.MkdirAll(config.Analysis.Output, 0755); err != nil {
		panic(err)
	}

	surfaces := BuildCostSurfaces(config)
	result := RunEvacuationAnalysis(config, surfaces)
	distance_zones := RunSafeZoneAnalysis(config, result)
	RunDecompositionAnalysis(config, result, distance_zones)

	slog.Info("evacuation analysis finished")
}
