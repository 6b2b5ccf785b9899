package generator

import (
	"math"

	"github.com/lixenwraith/vi-cosmos/celestial"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// SystemParams controls the system pass, zero values take defaults
type SystemParams struct {
	MassScale float64
}

var (
	rockyDark  = mustHex(parameter.PaletteRockyDark)
	rockyLight = mustHex(parameter.PaletteRockyLight)
	gasWarm    = mustHex(parameter.PaletteGasWarm)
	gasCool    = mustHex(parameter.PaletteGasCool)
)

// systemHeader is drawn from stream SubSeed(seed,-1)
// Draw order: multiplicity, primary class, companion 1, companion 2, phase, planet count, age
type systemHeader struct {
	stars   []*celestial.Class
	phase   float64
	planets int
	age     float64
}

func newSystemHeader(seed uint64) systemHeader {
	r := vmath.NewFastRand(vmath.SubSeed(seed, -1))
	multiplicity := r.Float64()
	primary := celestial.Classify(r.Float64())
	companions := [2]*celestial.Class{
		companionClass(r.Float64()),
		companionClass(r.Float64()),
	}

	h := systemHeader{
		phase:   r.Range(0, 2*math.Pi),
		planets: parameter.PlanetCountMin + r.Intn(parameter.PlanetCountMax-parameter.PlanetCountMin+1),
		age:     r.Float64() * parameter.UniverseAgeGyr,
	}

	n := 3
	switch {
	case multiplicity < parameter.SingleStarShare:
		n = 1
	case multiplicity < parameter.SingleStarShare+parameter.BinaryStarShare:
		n = 2
	}
	h.stars = append(h.stars, primary)
	h.stars = append(h.stars, companions[:n-1]...)
	return h
}

// companionClass re-biases large companions toward K/M
func companionClass(draw float64) *celestial.Class {
	c := celestial.Classify(draw)
	switch c.ID {
	case celestial.ClassO, celestial.ClassB, celestial.ClassA:
		return celestial.Classify(0.5 + 0.5*draw)
	}
	return c
}

// System generates the deepest tier
// Stars occupy the leading indices, planets follow in increasing orbital radius
func System(seed uint64, params SystemParams) *Population {
	if params.MassScale <= 0 {
		params.MassScale = parameter.SystemMassScale
	}
	h := newSystemHeader(seed)
	nStars := len(h.stars)

	pop := newPopulation(TierSystem, seed, nStars+h.planets)
	pop.Name = catalogName(vmath.NewFastRand(vmath.SubSeed(seed, -2)))

	// Stars on a ring, shifted so the mass-weighted barycenter is the origin
	var totalMass float64
	var weighted vmath.Vec3F
	sep := 0.0
	if nStars > 1 {
		sep = parameter.StarSeparation
	}
	for k, class := range h.stars {
		theta := h.phase + 2*math.Pi*float64(k)/float64(nStars)
		mass := class.Mass * params.MassScale
		pos := vmath.Vec3F{X: sep * math.Cos(theta), Z: sep * math.Sin(theta)}
		totalMass += mass
		weighted = vmath.V3FAdd(weighted, vmath.V3FScale(pos, mass))
		pop.Bodies[k] = Body{
			Index:    k,
			Position: pos,
			Color:    class.BaseColor,
			Size:     3 + 2*math.Log10(1+class.Radius),
			Mass:     mass,
			Kind:     KindStar,
			Class:    class.ID,
			Age:      h.age,
			Seed:     vmath.SubSeed(seed, k),
		}
	}
	barycenter := vmath.V3FScale(weighted, 1/totalMass)
	omega := 0.0
	if nStars > 1 {
		omega = vmath.BinaryAngularSpeed(parameter.GravitationalConstant, totalMass, parameter.StarSeparation)
	}
	for k := 0; k < nStars; k++ {
		b := &pop.Bodies[k]
		b.Position = vmath.V3FSub(b.Position, barycenter)
		b.Velocity = vmath.OrbitalInsert(b.Position, omega*vmath.V3FMag(b.Position))
	}

	for k := 0; k < h.planets; k++ {
		i := nStars + k
		pop.Bodies[i] = planetBody(seed, i, k, h, totalMass)
	}
	return pop
}

// planetBody draw order: radius jitter, category, size, angle, tint
func planetBody(seed uint64, i, k int, h systemHeader, centralMass float64) Body {
	sub := vmath.SubSeed(seed, i)
	r := vmath.NewFastRand(sub)

	jitter := r.Range(-parameter.PlanetRadiusJitter, parameter.PlanetRadiusJitter)
	categoryDraw := r.Float64()
	sizeDraw := r.Float64()
	angle := r.Range(0, 2*math.Pi)
	tint := r.Float64()

	radius := parameter.PlanetInnerRadius + float64(k)*parameter.PlanetSpacing + jitter

	gasChance := 0.0
	if h.planets > 1 {
		gasChance = float64(k) / float64(h.planets-1) * parameter.GasGiantBias
	}

	body := Body{
		Index: i,
		Age:   h.age,
		Seed:  sub,
		Position: vmath.Vec3F{
			X: radius * math.Cos(angle),
			Z: radius * math.Sin(angle),
		},
	}
	if categoryDraw < gasChance {
		body.Kind = KindGasGiant
		body.Size = 2.5 + 3*sizeDraw
		body.Color = gasWarm.BlendLab(gasCool, tint).Clamped()
	} else {
		body.Kind = KindRocky
		body.Size = 0.4 + 1.2*sizeDraw
		body.Color = rockyDark.BlendLab(rockyLight, tint).Clamped()
	}
	body.Mass = 0.01 * body.Size * body.Size * body.Size

	speed := vmath.CircularSpeed(parameter.GravitationalConstant, centralMass, radius, parameter.MinOrbitRadius)
	body.Velocity = vmath.OrbitalInsert(body.Position, speed)
	return body
}
