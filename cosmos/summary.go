package cosmos

import (
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/navigation"
)

// Summary is the selected-target panel content
type Summary struct {
	Index       int
	Tier        generator.Tier
	Designation string
	Kind        string
	Class       string // effective class name, empty for non-stellar bodies
	Lifecycle   string
	Age         float64 // Gyr
	Mass        float64
	Radius      float64
	Luminosity  float64
}

func summarize(snap navigation.Snapshot) Summary {
	sum := Summary{
		Index:       snap.Index,
		Tier:        snap.Tier,
		Designation: snap.Designation,
		Kind:        snap.Kind.String(),
		Lifecycle:   snap.Lifecycle.String(),
		Age:         snap.Age,
		Mass:        snap.Mass,
		Radius:      snap.Radius,
		Luminosity:  snap.Luminosity,
	}
	if snap.Class != nil {
		sum.Class = snap.Class.Name
	}
	return sum
}
