package generator

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/vi-cosmos/celestial"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// GalaxyParams controls the galaxy pass
// Morphology overrides the seeded type when not MorphologyNone
type GalaxyParams struct {
	Count      int
	Radius     float64
	Morphology Morphology
}

// Perlin setup, three octaves of smooth noise
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = int32(3)
)

var (
	bulgeTint  = mustHex(parameter.PaletteBulgeTint)
	quasarTint = mustHex(parameter.PaletteQuasarTint)
)

// galaxyShape is the per-galaxy header drawn from stream SubSeed(seed,-1)
type galaxyShape struct {
	morphology Morphology
	arms       int
	pitch      float64
	flattening float64
	phase      float64
	radius     float64
	noise      *perlin.Perlin
}

// Galaxy generates the middle tier
func Galaxy(seed uint64, params GalaxyParams) *Population {
	params = params.normalized()
	shape := newGalaxyShape(seed, params)

	pop := newPopulation(TierGalaxy, seed, params.Count)
	pop.Morphology = shape.morphology
	pop.Name = catalogName(vmath.NewFastRand(vmath.SubSeed(seed, -2)))
	for i := range pop.Bodies {
		pop.Bodies[i] = galaxyBody(seed, i, &shape)
	}
	return pop
}

// GalaxyBodyAt regenerates body i alone
func GalaxyBodyAt(seed uint64, params GalaxyParams, i int) Body {
	params = params.normalized()
	shape := newGalaxyShape(seed, params)
	return galaxyBody(seed, i, &shape)
}

func (p GalaxyParams) normalized() GalaxyParams {
	if p.Count < 0 {
		p.Count = 0
	}
	if p.Radius <= 0 {
		p.Radius = parameter.GalaxyRadius
	}
	return p
}

// newGalaxyShape header draw order: morphology, arms, pitch, flattening, irregular, phase
// All six are always drawn so an override does not shift later draws
func newGalaxyShape(seed uint64, params GalaxyParams) galaxyShape {
	r := vmath.NewFastRand(vmath.SubSeed(seed, -1))
	morphDraw := r.Float64()
	shape := galaxyShape{
		arms:       2 + r.Intn(4),
		pitch:      r.Range(0.2, 0.45),
		flattening: r.Range(0.3, 0.9),
		radius:     params.Radius,
	}
	irregular := r.Float64() < 0.5
	shape.phase = r.Range(0, 2*math.Pi)

	switch {
	case morphDraw < parameter.SpiralShare:
		shape.morphology = MorphologySpiral
	case morphDraw < parameter.SpiralShare+parameter.EllipticalShare:
		shape.morphology = MorphologyElliptical
		if irregular {
			shape.morphology = MorphologyIrregular
		}
	default:
		shape.morphology = MorphologyQuasar
	}
	if params.Morphology != MorphologyNone {
		shape.morphology = params.Morphology
	}
	if shape.morphology == MorphologyIrregular {
		shape.noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, int64(seed))
	}
	return shape
}

// galaxyBody draw order: component, u, v, w, gaussian scatter, class, age, tint
func galaxyBody(seed uint64, i int, shape *galaxyShape) Body {
	sub := vmath.SubSeed(seed, i)
	r := vmath.NewFastRand(sub)

	comp := r.Float64()
	u := r.Float64()
	v := r.Float64()
	w := r.Float64()
	g := r.Gaussian()
	class := celestial.Classify(r.Float64())
	ageDraw := r.Float64()
	tintDraw := r.Float64()

	R := shape.radius
	var pos vmath.Vec3F
	color := class.BaseColor
	age := ageDraw * parameter.UniverseAgeGyr

	switch shape.morphology {
	case MorphologySpiral:
		switch {
		case comp < parameter.SpiralBulgeShare:
			pos = sphere(R*parameter.BulgeRadiusFraction*math.Pow(u, 1.5), v, w)
			pos.Y *= 0.6
			color = color.BlendLab(bulgeTint, 0.3+0.3*tintDraw)
			age = parameter.UniverseAgeGyr * (0.6 + 0.4*ageDraw)
		case comp < parameter.SpiralBulgeShare+parameter.SpiralHaloShare:
			pos = sphere(R*(0.3+0.9*u), v, w)
			color = color.BlendLab(black, 0.4)
		default:
			r0 := R * parameter.ArmInnerRadiusFraction
			radius := r0 + (R-r0)*u
			arm := int(v * float64(shape.arms))
			theta := shape.phase + float64(arm)*2*math.Pi/float64(shape.arms) +
				math.Log(radius/r0)/math.Tan(shape.pitch) + g*parameter.ArmScatter
			pos = vmath.Vec3F{
				X: radius * math.Cos(theta),
				Y: exponentialHeight(w, R*parameter.GalaxyThickness),
				Z: radius * math.Sin(theta),
			}
		}

	case MorphologyElliptical, MorphologyIrregular:
		pos = sphere(R*math.Pow(u, parameter.EllipticalPowerLaw), v, w)
		pos.Y *= shape.flattening
		if shape.noise != nil {
			f := parameter.PerlinFrequency / R
			amp := parameter.PerlinAmplitude * R
			pos = vmath.V3FAdd(pos, vmath.Vec3F{
				X: amp * shape.noise.Noise3D(pos.X*f, pos.Y*f, pos.Z*f),
				Y: amp * shape.noise.Noise3D(pos.X*f+17.3, pos.Y*f+17.3, pos.Z*f+17.3),
				Z: amp * shape.noise.Noise3D(pos.X*f+31.7, pos.Y*f+31.7, pos.Z*f+31.7),
			})
		}
		color = color.BlendLab(bulgeTint, 0.2*tintDraw)

	default: // quasar
		if comp < parameter.QuasarJetShare {
			sign := 1.0
			if v < 0.5 {
				sign = -1
			}
			spread := g * 0.015 * R
			pos = vmath.Vec3F{
				X: spread * math.Cos(2*math.Pi*w),
				Y: sign * R * (0.1 + 0.9*u),
				Z: spread * math.Sin(2*math.Pi*w),
			}
		} else {
			pos = sphere(R*parameter.QuasarCoreFraction*u*u*u, v, w)
		}
		color = color.BlendLab(quasarTint, 0.5+0.3*tintDraw)
		age = ageDraw * parameter.QuasarMaxAgeGyr
	}

	cyl := math.Hypot(pos.X, pos.Z)
	return Body{
		Index:    i,
		Position: pos,
		Color:    color.Clamped(),
		Size:     0.6 + 0.2*math.Log10(1+class.Luminosity),
		Mass:     class.Mass,
		Kind:     KindStar,
		Class:    class.ID,
		Age:      age,
		Seed:     sub,
		Orbit: &Orbit{
			Radius:      cyl,
			SpeedFactor: parameter.GalaxyRotationSpeed / math.Max(cyl, parameter.GalaxyCoreRadius),
			Angle:       math.Atan2(pos.Z, pos.X),
			Height:      pos.Y,
		},
	}
}

// sphere places a point at radius from two uniform draws
func sphere(radius, v, w float64) vmath.Vec3F {
	z := 2*v - 1
	phi := 2 * math.Pi * w
	s := math.Sqrt(math.Max(0, 1-z*z))
	return vmath.Vec3F{
		X: radius * s * math.Cos(phi),
		Y: radius * z,
		Z: radius * s * math.Sin(phi),
	}
}

// exponentialHeight maps w in [0,1) to a signed exponentially distributed height
func exponentialHeight(w, scale float64) float64 {
	s := 2*w - 1
	mag := -math.Log(math.Max(1-math.Abs(s), 1e-9))
	return math.Copysign(mag*scale, s)
}
