package navigation

import (
	"github.com/lixenwraith/vi-cosmos/celestial"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Snapshot is a resolved read of one body, captured for inspection or travel
type Snapshot struct {
	Tier        generator.Tier
	Index       int
	Position    vmath.Vec3F
	Seed        uint64 // sub-seed of the nested finer tier
	ParentSeed  uint64 // seed of the population the body belongs to
	Designation string
	Kind        generator.Kind
	Class       *celestial.Class // effective class after lifecycle
	BaseClass   *celestial.Class
	Lifecycle   celestial.Lifecycle
	Age         float64
	Mass        float64
	Radius      float64
	Luminosity  float64
}

// Inspect resolves body index of pop at simTime without mutating anything
func Inspect(pop *generator.Population, index int, simTime float64) (Snapshot, bool) {
	if pop == nil {
		return Snapshot{}, false
	}
	b := pop.Body(index)
	if b == nil {
		return Snapshot{}, false
	}

	snap := Snapshot{
		Tier:        pop.Tier,
		Index:       index,
		Position:    b.Position,
		Seed:        b.Seed,
		ParentSeed:  pop.Seed,
		Designation: pop.Designation(index),
		Kind:        b.Kind,
		Age:         b.AgeAt(simTime),
		Mass:        b.Mass,
		Radius:      b.Size,
	}
	if b.Kind.Stellar() {
		snap.BaseClass = celestial.Lookup(b.Class)
		snap.Lifecycle, snap.Class = b.Lifecycle(simTime)
		snap.Mass = snap.Class.Mass
		snap.Radius = snap.Class.Radius
		snap.Luminosity = snap.Class.Luminosity
	}
	return snap, true
}
