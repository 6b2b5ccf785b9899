package generator

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-cosmos/celestial"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Kind is the structural category of a body
type Kind uint8

const (
	KindStar Kind = iota
	KindNebula
	KindRocky
	KindGasGiant
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "Star"
	case KindNebula:
		return "Nebula"
	case KindRocky:
		return "Rocky Planet"
	case KindGasGiant:
		return "Gas Giant"
	default:
		return "Unknown"
	}
}

// Stellar reports whether the kind carries a spectral class and lifecycle
func (k Kind) Stellar() bool {
	return k == KindStar
}

// Orbit holds the galaxy-tier orbital elements, relative to the population origin
// Angle at time t is Angle + SpeedFactor*t
type Orbit struct {
	Radius      float64
	SpeedFactor float64
	Angle       float64
	Height      float64
}

// Body is one generated object
// Only Position, and Velocity for system bodies, change after generation
type Body struct {
	Index    int
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Color    colorful.Color
	Size     float64
	Mass     float64
	Kind     Kind
	Class    celestial.ClassID
	Age      float64 // Gyr at generation
	Orbit    *Orbit

	// Seed is the sub-seed of the finer tier nested in this body
	Seed uint64
}

// AgeAt returns body age after simTime seconds of simulation
func (b *Body) AgeAt(simTime float64) float64 {
	return b.Age + simTime*parameter.AgeGyrPerSimSecond
}

// Lifecycle derives phase and effective class at simTime, never stored
// The body seed keys the remnant coin
func (b *Body) Lifecycle(simTime float64) (celestial.Lifecycle, *celestial.Class) {
	if !b.Kind.Stellar() {
		return celestial.LifecycleNone, nil
	}
	return celestial.EvaluateLifecycle(celestial.Lookup(b.Class), b.AgeAt(simTime), b.Seed)
}
