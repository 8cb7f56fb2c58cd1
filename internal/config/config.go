// Package config loads and validates simulation settings from environment
// variables (PEDFLOW_* prefix) and an optional pedflow.yaml in the working
// directory.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every tunable of one simulation batch.
//
// Grids below 10×10 produce degenerate collision statistics, hence the
// lower bound.
type Config struct {
	GridRows int `validate:"gte=10"`
	GridCols int `validate:"gte=10"`

	Simulations    int `validate:"gte=1"`
	MinPedestrians int `validate:"gte=1"`
	MaxPedestrians int `validate:"gtefield=MinPedestrians"`

	// StrictPools restricts sampling to residence origins and business
	// destinations.
	StrictPools bool

	// Seed drives city generation and sampling; 0 selects a time-based seed.
	Seed int64

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string

	// GEXFPath, when non-empty, receives the connectivity graph in GEXF.
	GEXFPath string
}

// Load reads configuration, applies defaults, and validates.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PEDFLOW")
	v.AutomaticEnv()

	v.SetDefault("GRID_ROWS", 20)
	v.SetDefault("GRID_COLS", 20)
	v.SetDefault("SIMULATIONS", 5)
	v.SetDefault("MIN_PEDESTRIANS", 5)
	v.SetDefault("MAX_PEDESTRIANS", 15)
	v.SetDefault("STRICT_POOLS", false)
	v.SetDefault("SEED", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GEXF_PATH", "")

	// Optional file overrides; absence is not an error.
	v.SetConfigName("pedflow")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	cfg := &Config{
		GridRows:       v.GetInt("GRID_ROWS"),
		GridCols:       v.GetInt("GRID_COLS"),
		Simulations:    v.GetInt("SIMULATIONS"),
		MinPedestrians: v.GetInt("MIN_PEDESTRIANS"),
		MaxPedestrians: v.GetInt("MAX_PEDESTRIANS"),
		StrictPools:    v.GetBool("STRICT_POOLS"),
		Seed:           v.GetInt64("SEED"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		GEXFPath:       v.GetString("GEXF_PATH"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation: %w", err)
	}
	// Cross-field bound the tag language cannot express.
	if capacity := cfg.GridRows * cfg.GridCols; cfg.MaxPedestrians > capacity {
		return nil, fmt.Errorf("config: max pedestrians %d exceeds grid capacity %d",
			cfg.MaxPedestrians, capacity)
	}

	return cfg, nil
}
