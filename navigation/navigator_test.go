package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

type hookLog struct {
	arrivals  [][2]generator.Tier
	camera    []bool
	discarded []*generator.Population
}

type fixture struct {
	nav   *Navigator
	hooks *hookLog
	gens  int
	seeds []uint64
}

func testGenParams() generator.Params {
	p := generator.DefaultParams()
	p.Universe.Count = 500
	p.Galaxy.Count = 300
	return p
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{hooks: &hookLog{}}
	params := testGenParams()
	gen := GeneratorFunc(func(tier generator.Tier, seed uint64) *generator.Population {
		f.gens++
		f.seeds = append(f.seeds, seed)
		return generator.Generate(tier, seed, params)
	})
	root := generator.Universe(1337, params.Universe)
	nav, err := New(gen, root, Hooks{
		OnArrive:      func(from, to generator.Tier) { f.hooks.arrivals = append(f.hooks.arrivals, [2]generator.Tier{from, to}) },
		OnCameraInput: func(enabled bool) { f.hooks.camera = append(f.hooks.camera, enabled) },
		OnDiscard:     func(pop *generator.Population) { f.hooks.discarded = append(f.hooks.discarded, pop) },
	})
	require.NoError(t, err)
	f.nav = nav
	return f
}

// settle ticks until the in-flight transition lands
func settle(t *testing.T, nav *Navigator) {
	t.Helper()
	for i := 0; i < 1000 && nav.Transitioning(); i++ {
		nav.Update(16 * time.Millisecond)
	}
	require.False(t, nav.Transitioning(), "transition never completed")
}

func descend(t *testing.T, nav *Navigator, index int) Snapshot {
	t.Helper()
	snap, ok := nav.Inspect(index, 0)
	require.True(t, ok)
	require.True(t, nav.TravelTo(snap, 1))
	settle(t, nav)
	return snap
}

func TestNavigator_InitialState(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	assert.Equal(t, generator.TierUniverse, nav.Level())
	assert.Equal(t, "Universe", nav.State())
	assert.False(t, nav.Transitioning())
	assert.True(t, nav.CameraInputEnabled())
	assert.NotNil(t, nav.Population(generator.TierUniverse))
	assert.Nil(t, nav.Population(generator.TierGalaxy))
	assert.Nil(t, nav.Population(generator.Tier(9)))
	assert.False(t, nav.GoBack(), "goBack at the coarsest level is a no-op")
}

func TestNavigator_SingleTransitionEpisode(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	snap, ok := nav.Inspect(42, 0)
	require.True(t, ok)

	require.True(t, nav.TravelTo(snap, 1))
	assert.False(t, nav.TravelTo(snap, 1), "second request while transitioning is dropped")
	assert.False(t, nav.GoBack())
	assert.True(t, nav.Transitioning())
	assert.Equal(t, "Transitioning", nav.State())
	assert.False(t, nav.CameraInputEnabled())

	tr := nav.Transition()
	assert.True(t, tr.Active)
	assert.Equal(t, generator.TierUniverse, tr.From)
	assert.Equal(t, generator.TierGalaxy, tr.To)
	assert.Equal(t, snap.Position, tr.Target)
	assert.Zero(t, tr.Progress)

	// Level does not change until arrival
	nav.Update(time.Second)
	assert.Equal(t, generator.TierUniverse, nav.Level())
	assert.InDelta(t, 0.4, nav.Transition().Progress, 1e-9)
	assert.Nil(t, nav.Population(generator.TierGalaxy))

	settle(t, nav)
	assert.Equal(t, generator.TierGalaxy, nav.Level())
	assert.Equal(t, "Galaxy", nav.State())
	assert.Equal(t, 1, f.gens)
	assert.Equal(t, []uint64{snap.Seed}, f.seeds)
	assert.Equal(t, [][2]generator.Tier{{generator.TierUniverse, generator.TierGalaxy}}, f.hooks.arrivals)
	assert.Equal(t, []bool{true, false, true}, f.hooks.camera)
	assert.True(t, nav.CameraInputEnabled())
	assert.False(t, nav.Transition().Active)
}

func TestNavigator_ArrivalRecentresOnTarget(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	uni := nav.Population(generator.TierUniverse)
	snap := descend(t, nav, 7)

	gal := nav.Population(generator.TierGalaxy)
	require.NotNil(t, gal)
	assert.InDelta(t, 0, vmath.V3FMag(gal.Origin), 1e-6)
	assert.Equal(t, snap.Position, nav.Offset().Delta)
	assert.Equal(t, 1, nav.Offset().Arrivals)

	// The selected universe body is now at the origin
	assert.InDelta(t, 0, vmath.V3FMag(uni.Bodies[7].Position), 1e-6)
	assert.InDelta(t, 0, vmath.V3FMag(nav.Camera().LookAt), 1e-6)

	// Galaxy matches a fresh generation around the origin
	fresh := generator.Galaxy(snap.Seed, testGenParams().Galaxy)
	for i := range fresh.Bodies {
		require.InDelta(t, 0, vmath.V3FDist(fresh.Bodies[i].Position, gal.Bodies[i].Position), 1e-3)
	}
}

func TestNavigator_RoundTripReconstructsAbsolute(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	uni := nav.Population(generator.TierUniverse)
	original := uni.Positions(nil)

	extra := &CameraPose{Position: vmath.Vec3F{X: 123, Y: 4, Z: -5}}
	nav.RegisterSpatial(extra)

	descend(t, nav, 42)
	descend(t, nav, 3)
	require.Equal(t, generator.TierSystem, nav.Level())
	assert.False(t, nav.TravelTo(Snapshot{Tier: generator.TierSystem}, 1), "no tier below system")

	// Mid-trip, absolute positions are still reconstructible
	off := nav.Offset()
	for i := range original {
		require.InDelta(t, 0, vmath.V3FDist(original[i], off.Absolute(uni.Bodies[i].Position)), 1e-4)
	}
	assert.InDelta(t, 0, vmath.V3FDist(vmath.Vec3F{X: 123, Y: 4, Z: -5}, off.Absolute(extra.Position)), 1e-4)

	require.True(t, nav.GoBack())
	settle(t, nav)
	require.Equal(t, generator.TierGalaxy, nav.Level())
	assert.Nil(t, nav.Population(generator.TierSystem))

	require.True(t, nav.GoBack())
	settle(t, nav)
	require.Equal(t, generator.TierUniverse, nav.Level())
	assert.Nil(t, nav.Population(generator.TierGalaxy))
	assert.Same(t, uni, nav.Population(generator.TierUniverse), "coarser tier is kept, not regenerated")

	assert.InDelta(t, 0, vmath.V3FMag(nav.Offset().Delta), 1e-4)
	for i := range original {
		require.InDelta(t, 0, vmath.V3FDist(original[i], uni.Bodies[i].Position), 1e-4)
	}
	assert.Equal(t, 2, f.gens)
	assert.Len(t, f.hooks.discarded, 2)
	assert.Equal(t, generator.TierSystem, f.hooks.discarded[0].Tier)
	assert.Equal(t, generator.TierGalaxy, f.hooks.discarded[1].Tier)
}

func TestNavigator_CameraEases(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	start := nav.Camera()
	snap, _ := nav.Inspect(10, 0)
	end := FramePose(generator.TierGalaxy, snap.Position)

	require.True(t, nav.TravelTo(snap, 1))
	nav.Update(1250 * time.Millisecond)
	mid := nav.Camera()
	want := LerpPose(start, end, vmath.EaseInOutCubic(0.5))
	assert.InDelta(t, 0, vmath.V3FDist(want.Position, mid.Position), 1e-3)
	assert.InDelta(t, 0, vmath.V3FDist(want.LookAt, mid.LookAt), 1e-3)

	settle(t, nav)
	framed := FramePose(generator.TierGalaxy, vmath.Vec3F{})
	assert.InDelta(t, 0, vmath.V3FDist(framed.Position, nav.Camera().Position), 1e-3)
}

func TestNavigator_RejectsForeignSnapshot(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	assert.False(t, nav.TravelTo(Snapshot{Tier: generator.TierGalaxy}, 1), "descent must start from the current level")
	assert.False(t, nav.TravelTo(Snapshot{}, 2), "multi-level jumps are dropped")
	assert.False(t, nav.TravelTo(Snapshot{}, -1), "nothing above the universe")
	assert.False(t, nav.Transitioning())
}

func TestNavigator_Reset(t *testing.T) {
	f := newFixture(t)
	nav := f.nav
	descend(t, nav, 1)
	snap, _ := nav.Inspect(0, 0)
	require.True(t, nav.TravelTo(snap, 1))

	root := generator.Universe(99, testGenParams().Universe)
	require.NoError(t, nav.Reset(root))
	assert.Equal(t, generator.TierUniverse, nav.Level())
	assert.Equal(t, "Universe", nav.State())
	assert.False(t, nav.Transitioning())
	assert.Same(t, root, nav.Current())
	assert.Nil(t, nav.Population(generator.TierGalaxy))
	assert.Equal(t, WorldOffset{}, nav.Offset())
	assert.Equal(t, 1, f.gens, "reset must not complete the pending arrival")
	assert.Error(t, nav.Reset(nil))
}

func TestInspect(t *testing.T) {
	pop := generator.System(5, generator.SystemParams{})
	snap, ok := Inspect(pop, 0, 0)
	require.True(t, ok)
	assert.Equal(t, generator.KindStar, snap.Kind)
	require.NotNil(t, snap.Class)
	assert.Equal(t, pop.Designation(0), snap.Designation)
	assert.Equal(t, pop.Seed, snap.ParentSeed)

	last := pop.Len() - 1
	planet, ok := Inspect(pop, last, 0)
	require.True(t, ok)
	assert.Nil(t, planet.Class)
	assert.Equal(t, pop.Bodies[last].Size, planet.Radius)

	_, ok = Inspect(pop, pop.Len(), 0)
	assert.False(t, ok)
	_, ok = Inspect(nil, 0, 0)
	assert.False(t, ok)

	// Aging moves the snapshot forward without touching the body
	later, _ := Inspect(pop, 0, 1000)
	assert.Greater(t, later.Age, snap.Age)
	assert.Equal(t, snap.Age, pop.Bodies[0].Age)
}

func TestNew_RequiresInputs(t *testing.T) {
	_, err := New(nil, &generator.Population{}, Hooks{})
	assert.Error(t, err)
	noop := GeneratorFunc(func(generator.Tier, uint64) *generator.Population { return nil })
	_, err = New(noop, nil, Hooks{})
	assert.Error(t, err)
}
