// Package config holds the runtime options of a simulation
// Sources in increasing precedence: defaults, config file, .env file, process environment
package config

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the set of user-facing options
// Each option takes effect on the next regeneration of its tier
type Config struct {
	Seed            int64   `toml:"seed" yaml:"seed"`
	StarCount       int     `toml:"star_count" yaml:"star_count"`
	ClusterCount    int     `toml:"cluster_count" yaml:"cluster_count"`
	FilamentScatter float64 `toml:"filament_scatter" yaml:"filament_scatter"`
	TimeScale       float64 `toml:"time_scale" yaml:"time_scale"`
	GalaxyStarCount int     `toml:"galaxy_star_count" yaml:"galaxy_star_count"`
	Autopilot       bool    `toml:"autopilot" yaml:"autopilot"`
}

// Default returns the stock configuration
func Default() Config {
	def := generator.DefaultParams()
	return Config{
		Seed:            1337,
		StarCount:       def.Universe.Count,
		ClusterCount:    def.Universe.Clusters,
		FilamentScatter: def.Universe.FilamentScatter,
		TimeScale:       1,
		GalaxyStarCount: def.Galaxy.Count,
		Autopilot:       false,
	}
}

// Validate checks option constraints, errors wrap ErrInvalid
func (c Config) Validate() error {
	switch {
	case c.StarCount <= 0:
		return fmt.Errorf("star_count %d must be positive: %w", c.StarCount, ErrInvalid)
	case c.ClusterCount < parameter.MinClusterCount:
		return fmt.Errorf("cluster_count %d below %d: %w", c.ClusterCount, parameter.MinClusterCount, ErrInvalid)
	case c.FilamentScatter < 0 || c.FilamentScatter > 1:
		return fmt.Errorf("filament_scatter %g outside [0,1]: %w", c.FilamentScatter, ErrInvalid)
	case c.TimeScale < 0:
		return fmt.Errorf("time_scale %g must not be negative: %w", c.TimeScale, ErrInvalid)
	case c.GalaxyStarCount <= 0:
		return fmt.Errorf("galaxy_star_count %d must be positive: %w", c.GalaxyStarCount, ErrInvalid)
	}
	return nil
}

// SeedValue returns the seed as the internal unsigned value
func (c Config) SeedValue() uint64 {
	return uint64(c.Seed)
}

// GeneratorParams maps the options onto per-tier generator parameters
func (c Config) GeneratorParams() generator.Params {
	return generator.Params{
		Universe: generator.UniverseParams{
			Count:           c.StarCount,
			Clusters:        c.ClusterCount,
			FilamentScatter: c.FilamentScatter,
			Radius:          parameter.UniverseRadius,
		},
		Galaxy: generator.GalaxyParams{
			Count:  c.GalaxyStarCount,
			Radius: parameter.GalaxyRadius,
		},
		System: generator.SystemParams{
			MassScale: parameter.SystemMassScale,
		},
	}
}
