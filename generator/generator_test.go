package generator

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-cosmos/celestial"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

func testParams() Params {
	p := DefaultParams()
	p.Universe.Count = 3000
	p.Galaxy.Count = 2000
	return p
}

// =============================================================================
// DETERMINISM
// =============================================================================

func TestGenerate_Deterministic(t *testing.T) {
	params := testParams()
	for tier := TierMin; tier <= TierMax; tier++ {
		t.Run(tier.String(), func(t *testing.T) {
			for _, seed := range []uint64{1, 1337, 0xdeadbeef} {
				a := Generate(tier, seed, params)
				b := Generate(tier, seed, params)
				require.Equal(t, a.ID, b.ID)
				require.Equal(t, a.Len(), b.Len())
				for i := range a.Bodies {
					require.Equal(t, a.Bodies[i].Position, b.Bodies[i].Position, "seed %d body %d", seed, i)
					require.Equal(t, a.Bodies[i].Color, b.Bodies[i].Color)
					require.Equal(t, a.Bodies[i].Class, b.Bodies[i].Class)
				}
			}
		})
	}
}

func TestGenerate_UnknownTier(t *testing.T) {
	assert.Nil(t, Generate(Tier(7), 1, testParams()))
}

func TestBodyAt_MatchesBulkPass(t *testing.T) {
	params := testParams()
	uni := Universe(42, params.Universe)
	gal := Galaxy(42, params.Galaxy)
	for _, i := range []int{0, 1, 17, 999, params.Galaxy.Count - 1} {
		assert.Equal(t, uni.Bodies[i], UniverseBodyAt(42, params.Universe, i), "universe body %d", i)
		assert.Equal(t, gal.Bodies[i], GalaxyBodyAt(42, params.Galaxy, i), "galaxy body %d", i)
	}
}

// Bodies do not depend on population size
func TestUniverse_PrefixStable(t *testing.T) {
	params := testParams().Universe
	big := Universe(9, params)
	params.Count = 100
	small := Universe(9, params)
	for i := range small.Bodies {
		require.Equal(t, big.Bodies[i], small.Bodies[i])
	}
}

func TestPopulationID(t *testing.T) {
	assert.Equal(t, PopulationID(TierGalaxy, 5), PopulationID(TierGalaxy, 5))
	assert.NotEqual(t, PopulationID(TierGalaxy, 5), PopulationID(TierSystem, 5))
	assert.NotEqual(t, PopulationID(TierGalaxy, 5), PopulationID(TierGalaxy, 6))
	assert.Equal(t, 5, int(PopulationID(TierUniverse, 1).Version()))
}

// =============================================================================
// UNIVERSE
// =============================================================================

func TestUniverse_GasShareAndBounds(t *testing.T) {
	params := testParams().Universe
	pop := Universe(1337, params)

	nebulae := 0
	for _, b := range pop.Bodies {
		if b.Kind == KindNebula {
			nebulae++
			assert.GreaterOrEqual(t, b.Size, 2.0)
		} else {
			assert.Less(t, b.Size, 2.0)
		}
		// Anchors sit inside the radius, jitter adds a few sigma at most
		assert.Less(t, vmath.V3FMag(b.Position), params.Radius*1.5)
	}
	share := float64(nebulae) / float64(pop.Len())
	assert.InDelta(t, 1-parameter.GasThreshold, share, 0.03)
}

func TestUniverse_ZeroScatterStaysOnSegments(t *testing.T) {
	params := testParams().Universe
	params.FilamentScatter = 0
	anchors := universeAnchors(3, params.normalized())
	pop := Universe(3, params)
	for _, b := range pop.Bodies[:200] {
		r := vmath.NewFastRand(vmath.SubSeed(3, b.Index))
		a := anchors[r.Intn(len(anchors))]
		c := anchors[r.Intn(len(anchors))]
		want := vmath.V3FLerp(a, c, vmath.SmoothStep(r.Float64()))
		assert.Equal(t, want, b.Position)
	}
}

// =============================================================================
// GALAXY
// =============================================================================

func TestGalaxy_MorphologyCoverage(t *testing.T) {
	seen := map[Morphology]int{}
	for seed := uint64(1); seed <= 400; seed++ {
		shape := newGalaxyShape(seed, GalaxyParams{Count: 1}.normalized())
		seen[shape.morphology]++
	}
	for _, m := range []Morphology{MorphologySpiral, MorphologyElliptical, MorphologyIrregular, MorphologyQuasar} {
		assert.Positive(t, seen[m], "morphology %s never produced", m)
	}
	assert.InDelta(t, 0.6, float64(seen[MorphologySpiral])/400, 0.08)
	t.Logf("✓ morphology counts %v", seen)
}

func TestGalaxy_OrbitElementsReproducePosition(t *testing.T) {
	for _, m := range []Morphology{MorphologySpiral, MorphologyElliptical, MorphologyIrregular, MorphologyQuasar} {
		t.Run(m.String(), func(t *testing.T) {
			pop := Galaxy(77, GalaxyParams{Count: 500, Morphology: m})
			require.Equal(t, m, pop.Morphology)
			for _, b := range pop.Bodies {
				o := b.Orbit
				require.NotNil(t, o)
				assert.InDelta(t, b.Position.X, o.Radius*math.Cos(o.Angle), 1e-6)
				assert.InDelta(t, b.Position.Z, o.Radius*math.Sin(o.Angle), 1e-6)
				assert.Equal(t, b.Position.Y, o.Height)
				want := parameter.GalaxyRotationSpeed / math.Max(o.Radius, parameter.GalaxyCoreRadius)
				assert.InDelta(t, want, o.SpeedFactor, 1e-12)
			}
		})
	}
}

func TestGalaxy_SpiralIsThinDisk(t *testing.T) {
	pop := Galaxy(11, GalaxyParams{Count: 4000, Morphology: MorphologySpiral})
	var sumY, sumR float64
	for _, b := range pop.Bodies {
		sumY += math.Abs(b.Position.Y)
		sumR += b.Orbit.Radius
	}
	assert.Less(t, sumY, sumR*0.3, "disk should be much flatter than wide")
}

func TestGalaxy_IrregularDiffersFromElliptical(t *testing.T) {
	ell := Galaxy(19, GalaxyParams{Count: 50, Morphology: MorphologyElliptical})
	irr := Galaxy(19, GalaxyParams{Count: 50, Morphology: MorphologyIrregular})
	moved := 0
	for i := range ell.Bodies {
		if ell.Bodies[i].Position != irr.Bodies[i].Position {
			moved++
		}
	}
	assert.Greater(t, moved, 40)
}

// =============================================================================
// SYSTEM
// =============================================================================

func TestSystem_Layout(t *testing.T) {
	for seed := uint64(1); seed <= 300; seed++ {
		pop := System(seed, SystemParams{})
		stars := pop.starCount()
		planets := pop.Len() - stars
		require.GreaterOrEqual(t, stars, 1)
		require.LessOrEqual(t, stars, 3)
		require.GreaterOrEqual(t, planets, parameter.PlanetCountMin)
		require.LessOrEqual(t, planets, parameter.PlanetCountMax)

		prev := 0.0
		for _, b := range pop.Bodies[stars:] {
			require.True(t, b.Kind == KindRocky || b.Kind == KindGasGiant)
			r := vmath.V3FMag(b.Position)
			require.Greater(t, r, prev, "seed %d planet radii must increase", seed)
			prev = r
		}
	}
}

func TestSystem_BarycenterAtOrigin(t *testing.T) {
	multi := 0
	for seed := uint64(1); seed <= 200; seed++ {
		pop := System(seed, SystemParams{})
		stars := pop.starCount()
		if stars < 2 {
			assert.Equal(t, vmath.Vec3F{}, pop.Bodies[0].Position)
			assert.Equal(t, vmath.Vec3F{}, pop.Bodies[0].Velocity)
			continue
		}
		multi++
		var weighted vmath.Vec3F
		var omega float64
		for k, b := range pop.Bodies[:stars] {
			weighted = vmath.V3FAdd(weighted, vmath.V3FScale(b.Position, b.Mass))
			// Tangential, all stars share one angular speed
			assert.InDelta(t, 0, vmath.V3FDot(b.Position, b.Velocity), 1e-6)
			w := vmath.V3FMag(b.Velocity) / vmath.V3FMag(b.Position)
			if k > 0 {
				assert.InDelta(t, omega, w, 1e-9)
			}
			omega = w
		}
		assert.InDelta(t, 0, vmath.V3FMag(weighted), 1e-6)
	}
	assert.Positive(t, multi)
}

func TestSystem_MultiplicityShares(t *testing.T) {
	counts := [4]int{}
	const n = 3000
	for seed := uint64(1); seed <= n; seed++ {
		counts[len(newSystemHeader(seed).stars)]++
	}
	assert.InDelta(t, 0.5, float64(counts[1])/n, 0.04)
	assert.InDelta(t, 0.4, float64(counts[2])/n, 0.04)
	assert.InDelta(t, 0.1, float64(counts[3])/n, 0.03)
}

func TestSystem_CompanionBias(t *testing.T) {
	for _, draw := range []float64{0, 0.01, 0.06} {
		c := companionClass(draw)
		assert.GreaterOrEqual(t, c.Mass, 0.0)
		assert.Contains(t, []string{"K", "M", "G", "F"}, c.ID.String(), "draw %v", draw)
	}
}

func TestSystem_PlanetCircularSpeed(t *testing.T) {
	pop := System(1337, SystemParams{})
	stars := pop.starCount()
	var mass float64
	for _, b := range pop.Bodies[:stars] {
		mass += b.Mass
	}
	for _, b := range pop.Bodies[stars:] {
		r := vmath.V3FMag(b.Position)
		assert.InDelta(t, math.Sqrt(parameter.GravitationalConstant*mass/r), vmath.V3FMag(b.Velocity), 1e-9)
	}
}

// =============================================================================
// POPULATION
// =============================================================================

func TestPopulation_TranslateRecenter(t *testing.T) {
	pop := Galaxy(5, GalaxyParams{Count: 10})
	orig := pop.Positions(nil)
	delta := vmath.Vec3F{X: 1e6, Y: -3, Z: 42}

	pop.Translate(delta)
	assert.Equal(t, delta, pop.Origin)
	pop.Recenter(delta)
	assert.Equal(t, vmath.Vec3F{}, pop.Origin)
	for i, p := range pop.Positions(nil) {
		assert.InDelta(t, orig[i].X, p.X, 1e-6)
		assert.InDelta(t, orig[i].Z, p.Z, 1e-9)
	}
}

func TestPopulation_Designation(t *testing.T) {
	var pop *Population
	for seed := uint64(1); ; seed++ {
		pop = System(seed, SystemParams{})
		if pop.starCount() == 2 {
			break
		}
	}
	assert.Equal(t, pop.Name+" A", pop.Designation(0))
	assert.Equal(t, pop.Name+" B", pop.Designation(1))
	assert.Equal(t, pop.Name+" I", pop.Designation(2))
	assert.Equal(t, pop.Name+" III", pop.Designation(4))
	assert.Empty(t, pop.Designation(-1))
	assert.Empty(t, pop.Designation(pop.Len()))

	uni := Universe(1, UniverseParams{Count: 3})
	assert.Contains(t, uni.Designation(2), "-000002")
	assert.NotEmpty(t, uni.Name)
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// A collapsed high-mass body keeps its remnant class frame after frame
func TestBody_RemnantStableAcrossFrames(t *testing.T) {
	pop := Universe(1337, testParams().Universe)
	checked := 0
	for i := range pop.Bodies {
		b := &pop.Bodies[i]
		c := celestial.Lookup(b.Class)
		if !b.Kind.Stellar() || c == nil || c.MassGroup != celestial.MassHigh {
			continue
		}

		// First frame past the giant phase
		start := math.Max(0, (c.Lifespan*1.1-b.Age)/parameter.AgeGyrPerSimSecond) + 1
		state, first := b.Lifecycle(start)
		require.Equal(t, celestial.LifecycleRemnant, state)
		for f := 1; f <= 60; f++ {
			_, eff := b.Lifecycle(start + float64(f)*0.016)
			require.Same(t, first, eff, "body %d class %s flipped at frame %d", i, c.ID, f)
		}
		checked++
	}
	require.NotZero(t, checked, "universe must contain high-mass stars")
	t.Logf("✓ %d high-mass bodies stable over 60 frames", checked)
}

func TestPalette_Parsed(t *testing.T) {
	for name, c := range map[string]colorful.Color{
		"cool": paletteCool, "warm": paletteWarm, "gas": paletteGas,
		"bulge": bulgeTint, "quasar": quasarTint,
		"rocky dark": rockyDark, "rocky light": rockyLight, "gas warm": gasWarm, "gas cool": gasCool,
	} {
		assert.NotEqual(t, colorful.Color{}, c, "palette %s", name)
	}
	assert.Panics(t, func() { mustHex("#12") })
}
