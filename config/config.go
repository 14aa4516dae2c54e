// Package config loads map generation settings from YAML and maps
// them onto the pipeline configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ncuskey/FWG4/coastline"
	"github.com/ncuskey/FWG4/heightfield"
	"github.com/ncuskey/FWG4/mapgen"
)

// Defaults applied wherever the file leaves a value zero.
const (
	defaultMapWidth  = 800.0
	defaultMapHeight = 500.0
	defaultCols      = 80
	defaultRows      = 50
	defaultJitter    = 0.35
	defaultSeaLevel  = 0.2
)

// Config mirrors the YAML settings file. Zero or missing values fall
// back to the terrain preset named by terrain.continental, so a
// partial file only overrides what it spells out.
type Config struct {
	// Seed drives mesh jitter and terrain synthesis alike. Zero keeps
	// the libraries' fixed default streams.
	Seed int64 `yaml:"seed"`

	Map       MapConfig       `yaml:"map"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Water     WaterConfig     `yaml:"water"`
	Coastline CoastlineConfig `yaml:"coastline"`
}

// MapConfig sizes the generated mesh.
type MapConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Cols   int     `yaml:"cols"`
	Rows   int     `yaml:"rows"`
	Jitter float64 `yaml:"jitter"`
}

// TerrainConfig mirrors heightfield.Params.
type TerrainConfig struct {
	Blobs            int     `yaml:"blobs"`
	MainPeak         float64 `yaml:"main_peak"`
	SecondaryPeakMin float64 `yaml:"secondary_peak_min"`
	SecondaryPeakMax float64 `yaml:"secondary_peak_max"`
	Falloff          float64 `yaml:"falloff"`
	Sharpness        float64 `yaml:"sharpness"`
	Continental      bool    `yaml:"continental"`
	BaseRadius       float64 `yaml:"base_radius"`
}

// WaterConfig holds the sea level and border band settings.
type WaterConfig struct {
	SeaLevel        float64 `yaml:"sea_level"`
	Margin          float64 `yaml:"margin"`
	BorderTolerance float64 `yaml:"border_tolerance"`
}

// CoastlineConfig holds outline extraction settings.
type CoastlineConfig struct {
	Precision int     `yaml:"precision"`
	Simplify  float64 `yaml:"simplify"`
}

// Default returns the fully populated island-preset configuration.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads a YAML settings file and fills unset values with preset
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

// applyDefaults fills zero fields from the selected terrain preset.
// BaseRadius, BorderTolerance and Simplify stay zero: for those, zero
// already means "derive" or "off".
func (c *Config) applyDefaults() {
	if c.Map.Width == 0 {
		c.Map.Width = defaultMapWidth
	}
	if c.Map.Height == 0 {
		c.Map.Height = defaultMapHeight
	}
	if c.Map.Cols == 0 {
		c.Map.Cols = defaultCols
	}
	if c.Map.Rows == 0 {
		c.Map.Rows = defaultRows
	}
	if c.Map.Jitter == 0 {
		c.Map.Jitter = defaultJitter
	}

	preset := heightfield.DefaultParams()
	if c.Terrain.Continental {
		preset = heightfield.ContinentalParams()
	}
	if c.Terrain.Blobs == 0 {
		c.Terrain.Blobs = preset.BlobCount
	}
	if c.Terrain.MainPeak == 0 {
		c.Terrain.MainPeak = preset.MainPeakHeight
	}
	if c.Terrain.SecondaryPeakMin == 0 {
		c.Terrain.SecondaryPeakMin = preset.SecondaryPeakMin
	}
	if c.Terrain.SecondaryPeakMax == 0 {
		c.Terrain.SecondaryPeakMax = preset.SecondaryPeakMax
	}
	if c.Terrain.Falloff == 0 {
		c.Terrain.Falloff = preset.Falloff
	}
	if c.Terrain.Sharpness == 0 {
		c.Terrain.Sharpness = preset.Sharpness
	}

	if c.Water.SeaLevel == 0 {
		c.Water.SeaLevel = defaultSeaLevel
	}
	if c.Water.Margin == 0 {
		c.Water.Margin = preset.WaterMargin
	}
	if c.Coastline.Precision == 0 {
		c.Coastline.Precision = coastline.DefaultPrecision
	}
}

// Mapgen maps the loaded file onto a pipeline configuration.
func (c Config) Mapgen() mapgen.Config {
	return mapgen.Config{
		Terrain: heightfield.Params{
			BlobCount:        c.Terrain.Blobs,
			MainPeakHeight:   c.Terrain.MainPeak,
			SecondaryPeakMin: c.Terrain.SecondaryPeakMin,
			SecondaryPeakMax: c.Terrain.SecondaryPeakMax,
			Falloff:          c.Terrain.Falloff,
			Sharpness:        c.Terrain.Sharpness,
			Continental:      c.Terrain.Continental,
			WaterMargin:      c.Water.Margin,
			BaseRadius:       c.Terrain.BaseRadius,
			Seed:             c.Seed,
		},
		SeaLevel:          c.Water.SeaLevel,
		BorderTolerance:   c.Water.BorderTolerance,
		Precision:         c.Coastline.Precision,
		SimplifyTolerance: c.Coastline.Simplify,
	}
}
