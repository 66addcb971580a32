package main

import (
	"math"
	"os"

	. "github.com/ttpr0/go-evacuation/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	// without an explicit nodata value only NaN cells (ReadASC maps the
	// declared NODATA_value onto NaN) count as missing; a default of 0
	// would swallow genuine sea-level cells
	config.Build.DEMNodata = math.NaN()
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	config.applyDefaults()
	return config
}

type Config struct {
	Build    BuildOptions    `yaml:"build"`
	Analysis AnalysisOptions `yaml:"analysis"`
	Sources  []SourceOptions `yaml:"sources"`
}

// BuildOptions describes the raw inputs of the cost-surface build.
type BuildOptions struct {
	DEM            string             `yaml:"dem"`
	DEMNodata      float64            `yaml:"dem-nodata"`
	Landcover      string             `yaml:"landcover"`
	OSM            string             `yaml:"osm"`
	LandcoverCosts Dict[int, float64] `yaml:"landcover-costs"`
}

// AnalysisOptions carries the domain parameters of the evacuation
// analysis. None of them are hard-coded anywhere else.
type AnalysisOptions struct {
	Output                string                `yaml:"output"`
	CellSize              float64               `yaml:"cell-size"`
	WalkingSpeeds         Dict[string, float64] `yaml:"walking-speeds"`
	SafeZoneDistances     []float64             `yaml:"safe-zone-distances"`
	ProbabilityThresholds []float64             `yaml:"probability-thresholds"`
	ProbabilityRaster     string                `yaml:"probability-raster"`
}

// SourceOptions is a named evacuation start point in map coordinates.
type SourceOptions struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

func (self *Config) applyDefaults() {
	if self.Analysis.CellSize == 0 {
		self.Analysis.CellSize = 100
	}
	if self.Analysis.Output == "" {
		self.Analysis.Output = "./results"
	}
	if len(self.Analysis.WalkingSpeeds) == 0 {
		self.Analysis.WalkingSpeeds = Dict[string, float64]{
			"slow":   0.91,
			"medium": 1.22,
			"fast":   1.52,
		}
	}
	if len(self.Analysis.SafeZoneDistances) == 0 {
		for d := 500.0; d < 5000; d += 500 {
			self.Analysis.SafeZoneDistances = append(self.Analysis.SafeZoneDistances, d)
		}
	}
	if len(self.Analysis.ProbabilityThresholds) == 0 {
		self.Analysis.ProbabilityThresholds = []float64{0.05, 0.1, 0.25, 0.5, 0.75, 0.9}
	}
}
