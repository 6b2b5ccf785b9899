package generator

import (
	"github.com/lixenwraith/vi-cosmos/parameter"
)

// Params bundles per-tier generator parameters
type Params struct {
	Universe UniverseParams
	Galaxy   GalaxyParams
	System   SystemParams
}

// DefaultParams returns the default tier parameters
func DefaultParams() Params {
	return Params{
		Universe: UniverseParams{
			Count:           100000,
			Clusters:        48,
			FilamentScatter: 0.35,
			Radius:          parameter.UniverseRadius,
		},
		Galaxy: GalaxyParams{
			Count:  20000,
			Radius: parameter.GalaxyRadius,
		},
		System: SystemParams{
			MassScale: parameter.SystemMassScale,
		},
	}
}

// Generate dispatches to the pass for tier, nil for an unknown tier
func Generate(tier Tier, seed uint64, params Params) *Population {
	switch tier {
	case TierUniverse:
		return Universe(seed, params.Universe)
	case TierGalaxy:
		return Galaxy(seed, params.Galaxy)
	case TierSystem:
		return System(seed, params.System)
	default:
		return nil
	}
}
