package generator

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-cosmos/celestial"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// UniverseParams controls the filament star field
type UniverseParams struct {
	Count           int
	Clusters        int
	FilamentScatter float64
	Radius          float64
}

var (
	paletteCool = mustHex(parameter.PaletteStarCool)
	paletteWarm = mustHex(parameter.PaletteStarWarm)
	paletteGas  = mustHex(parameter.PaletteGas)
	black       = colorful.Color{}
)

// Universe generates the top tier
// Anchors come from stream SubSeed(seed,-1), body i from stream SubSeed(seed,i)
func Universe(seed uint64, params UniverseParams) *Population {
	params = params.normalized()
	anchors := universeAnchors(seed, params)

	pop := newPopulation(TierUniverse, seed, params.Count)
	pop.Name = catalogName(vmath.NewFastRand(vmath.SubSeed(seed, -2)))
	for i := range pop.Bodies {
		pop.Bodies[i] = universeBody(seed, i, anchors, params)
	}
	return pop
}

// UniverseBodyAt regenerates body i alone, bit-identical to Universe(seed, params).Bodies[i]
func UniverseBodyAt(seed uint64, params UniverseParams, i int) Body {
	params = params.normalized()
	return universeBody(seed, i, universeAnchors(seed, params), params)
}

func (p UniverseParams) normalized() UniverseParams {
	if p.Count < 0 {
		p.Count = 0
	}
	if p.Clusters < parameter.MinClusterCount {
		p.Clusters = parameter.MinClusterCount
	}
	if p.Radius <= 0 {
		p.Radius = parameter.UniverseRadius
	}
	p.FilamentScatter = vmath.Clamp01(p.FilamentScatter)
	return p
}

// universeAnchors samples filament anchors with power-law radius R*u^p and isotropic direction
func universeAnchors(seed uint64, params UniverseParams) []vmath.Vec3F {
	r := vmath.NewFastRand(vmath.SubSeed(seed, -1))
	anchors := make([]vmath.Vec3F, params.Clusters)
	for k := range anchors {
		radius := params.Radius * math.Pow(r.Float64(), parameter.AnchorPowerLaw)
		anchors[k] = vmath.V3FScale(r.UnitVector(), radius)
	}
	return anchors
}

// universeBody draw order: anchor a, anchor b, blend, jitter (3 gaussians), palette, class, age, size
func universeBody(seed uint64, i int, anchors []vmath.Vec3F, params UniverseParams) Body {
	sub := vmath.SubSeed(seed, i)
	r := vmath.NewFastRand(sub)

	a := anchors[r.Intn(len(anchors))]
	b := anchors[r.Intn(len(anchors))]
	t := vmath.SmoothStep(r.Float64())
	jitter := vmath.Vec3F{X: r.Gaussian(), Y: r.Gaussian(), Z: r.Gaussian()}
	palette := r.Float64()
	class := celestial.Classify(r.Float64())
	age := r.Float64() * parameter.UniverseAgeGyr
	sizeDraw := r.Float64()

	sigma := math.Max(
		parameter.FilamentJitterFraction*vmath.V3FDist(a, b),
		parameter.FilamentJitterFloor*params.Radius,
	) * params.FilamentScatter
	pos := vmath.V3FAdd(vmath.V3FLerp(a, b, t), vmath.V3FScale(jitter, sigma))

	body := Body{
		Index:    i,
		Position: pos,
		Class:    class.ID,
		Age:      age,
		Seed:     sub,
		Mass:     class.Mass,
	}

	if palette >= parameter.GasThreshold {
		mix := (palette - parameter.GasThreshold) / (1 - parameter.GasThreshold)
		body.Kind = KindNebula
		body.Color = paletteWarm.BlendLab(paletteGas, 0.5+0.5*mix).BlendLab(black, 0.35).Clamped()
		body.Size = 2 + 3*sizeDraw
	} else {
		body.Kind = KindStar
		body.Color = paletteCool.BlendLab(paletteWarm, palette/parameter.GasThreshold).Clamped()
		body.Size = 0.5 + 1.5*sizeDraw
	}
	return body
}
