package physics

import (
	"math"

	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// CircularSpeed returns v = sqrt(G*M/r) with r clamped to MinOrbitRadius
func CircularSpeed(G, mass, r float64) float64 {
	return vmath.CircularSpeed(G, mass, r, parameter.MinOrbitRadius)
}

// BinaryAngularSpeed returns omega = sqrt(G*M/a^3) for stars at separation a
func BinaryAngularSpeed(G, totalMass, a float64) float64 {
	return vmath.BinaryAngularSpeed(G, totalMass, a)
}

// AnimateGalaxy places each galaxy body on its orbit at simulation time t
// Positions are absolute in rendered coordinates, relative to pop.Origin
func AnimateGalaxy(pop *generator.Population, t float64) {
	if pop == nil || pop.Tier != generator.TierGalaxy {
		return
	}
	for i := range pop.Bodies {
		b := &pop.Bodies[i]
		o := b.Orbit
		if o == nil {
			continue
		}
		sin, cos := math.Sincos(o.Angle + o.SpeedFactor*t)
		b.Position = vmath.Vec3F{
			X: pop.Origin.X + o.Radius*cos,
			Y: pop.Origin.Y + o.Height,
			Z: pop.Origin.Z + o.Radius*sin,
		}
	}
}
