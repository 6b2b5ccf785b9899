// Package generator builds deterministic body populations for the three nested tiers
package generator

import "github.com/lixenwraith/vi-cosmos/parameter"

// Tier is one of the nested view scales
type Tier int

const (
	TierUniverse Tier = iota
	TierGalaxy
	TierSystem
)

const (
	TierMin = TierUniverse
	TierMax = TierSystem
)

func (t Tier) String() string {
	switch t {
	case TierUniverse:
		return "Universe"
	case TierGalaxy:
		return "Galaxy"
	case TierSystem:
		return "System"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is within [TierMin, TierMax]
func (t Tier) Valid() bool {
	return t >= TierMin && t <= TierMax
}

// Radius is the characteristic half-span of the tier, used for camera framing
func (t Tier) Radius() float64 {
	switch t {
	case TierUniverse:
		return parameter.UniverseRadius
	case TierGalaxy:
		return parameter.GalaxyRadius
	default:
		return parameter.SystemRadius
	}
}
