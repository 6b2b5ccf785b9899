package physics

import (
	"math"

	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Advance steps a system population by dt seconds of simulation time
// Stars rotate rigidly about the barycenter at pop.Origin, planets take
// IntegratorSubsteps kick-drift passes under inverse-square attraction
func Advance(pop *generator.Population, dt float64) {
	if pop == nil || pop.Tier != generator.TierSystem || dt <= 0 {
		return
	}
	center := pop.Origin

	var centralMass float64
	for i := range pop.Bodies {
		if pop.Bodies[i].Kind == generator.KindStar {
			centralMass += pop.Bodies[i].Mass
		}
	}

	for i := range pop.Bodies {
		b := &pop.Bodies[i]
		if b.Kind == generator.KindStar {
			advanceStar(b, center, dt)
		} else {
			advancePlanet(b, center, centralMass, dt)
		}
	}
}

// AdvanceBy splits dt into equal steps no longer than maxStep and advances each
// Returns the number of steps taken, zero when dt or maxStep is not positive
func AdvanceBy(pop *generator.Population, dt, maxStep float64) int {
	if dt <= 0 || maxStep <= 0 {
		return 0
	}
	n := int(math.Ceil(dt / maxStep))
	h := dt / float64(n)
	for i := 0; i < n; i++ {
		Advance(pop, h)
	}
	return n
}

// advanceStar equals position += velocity*dt taken along the circular path
// Rotating position and velocity together keeps star pairs from drifting apart
func advanceStar(b *generator.Body, center vmath.Vec3F, dt float64) {
	speed := vmath.V3FMag(b.Velocity)
	if speed == 0 {
		return
	}
	rel := vmath.V3FSub(b.Position, center)
	r := vmath.V3FMag(rel)
	if r == 0 {
		return
	}

	angle := speed / r * dt
	// Y of rel x vel is negative for the +Z-ward sense of V3FRotateY
	if rel.Z*b.Velocity.X-rel.X*b.Velocity.Z > 0 {
		angle = -angle
	}
	b.Position = vmath.V3FAdd(center, vmath.V3FRotateY(rel, angle))
	b.Velocity = vmath.V3FRotateY(b.Velocity, angle)
}

// advancePlanet applies semi-implicit Euler at dt/IntegratorSubsteps
func advancePlanet(b *generator.Body, center vmath.Vec3F, mass, dt float64) {
	h := dt / parameter.IntegratorSubsteps
	for s := 0; s < parameter.IntegratorSubsteps; s++ {
		accel := vmath.GravitationalAccel(b.Position, center, mass, parameter.GravitationalConstant, parameter.MinOrbitRadius)
		b.Velocity = vmath.V3FAdd(b.Velocity, vmath.V3FScale(accel, h))
		b.Position = vmath.V3FAdd(b.Position, vmath.V3FScale(b.Velocity, h))
	}
}
