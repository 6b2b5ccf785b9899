// Package navigation runs the scale-transition state machine and owns the floating origin
package navigation

import (
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/vi-cosmos/engine/fsm"
	"github.com/lixenwraith/vi-cosmos/event"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

//go:embed navigation.toml
var graphConfig []byte

// Generator produces the population nested in a body
type Generator interface {
	Generate(tier generator.Tier, seed uint64) *generator.Population
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func(tier generator.Tier, seed uint64) *generator.Population

func (f GeneratorFunc) Generate(tier generator.Tier, seed uint64) *generator.Population {
	return f(tier, seed)
}

// Hooks are optional listeners, nil fields are skipped
type Hooks struct {
	OnArrive      func(from, to generator.Tier)
	OnCameraInput func(enabled bool)
	OnDiscard     func(pop *generator.Population)
}

// Transition is the in-flight scale change, zero when resident
type Transition struct {
	Active   bool
	From     generator.Tier
	To       generator.Tier
	Target   vmath.Vec3F
	Progress float64
	Snapshot Snapshot

	camStart CameraPose
	camEnd   CameraPose
}

// Navigator holds the current view level and every resident population
type Navigator struct {
	machine  *fsm.Machine[*Navigator]
	gen      Generator
	hooks    Hooks
	duration time.Duration

	level       generator.Tier
	populations [generator.TierMax + 1]*generator.Population
	offset      WorldOffset
	camera      CameraPose
	cameraInput bool
	extras      []Spatial

	transition Transition
	pending    *Transition
}

// New creates a navigator resident at the universe tier with root as its population
func New(gen Generator, root *generator.Population, hooks Hooks) (*Navigator, error) {
	if gen == nil || root == nil {
		return nil, fmt.Errorf("navigator requires a generator and a root population")
	}
	event.InitRegistry()

	n := &Navigator{
		machine:  fsm.NewMachine[*Navigator](),
		gen:      gen,
		hooks:    hooks,
		duration: parameter.TransitionDuration,
	}
	n.registerComponents()
	if err := n.machine.LoadConfig(graphConfig); err != nil {
		return nil, fmt.Errorf("navigation graph: %w", err)
	}

	n.resetState(root)
	if err := n.machine.Init(n); err != nil {
		return nil, fmt.Errorf("navigation init: %w", err)
	}
	return n, nil
}

// Reset discards every population and restarts at the universe tier with root
func (n *Navigator) Reset(root *generator.Population) error {
	if root == nil {
		return fmt.Errorf("navigator reset requires a root population")
	}
	// Clear the in-flight transition so exit actions do not arrive
	n.transition = Transition{}
	for tier := generator.TierMax; tier >= generator.TierMin; tier-- {
		n.discard(tier)
	}
	n.resetState(root)
	return n.machine.Reset(n)
}

func (n *Navigator) resetState(root *generator.Population) {
	n.level = generator.TierUniverse
	n.populations = [generator.TierMax + 1]*generator.Population{}
	n.populations[generator.TierUniverse] = root
	n.offset = WorldOffset{}
	n.camera = FramePose(generator.TierUniverse, root.Origin)
	n.transition = Transition{}
	n.pending = nil
	n.setCameraInput(true)
}

// SetDuration overrides the transition length, values <= 0 are ignored
func (n *Navigator) SetDuration(d time.Duration) {
	if d > 0 {
		n.duration = d
	}
}

// RegisterSpatial adds an extra owner recentred on every arrival
func (n *Navigator) RegisterSpatial(s Spatial) {
	n.extras = append(n.extras, s)
}

// Update advances any in-flight transition by dt
func (n *Navigator) Update(dt time.Duration) {
	n.machine.Update(n, dt)
}

// Level returns the active view level, during a transition this is the origin level
func (n *Navigator) Level() generator.Tier {
	return n.level
}

// Transitioning reports whether a scale change is in flight
func (n *Navigator) Transitioning() bool {
	return n.machine.InState(parameter.NavRegion, parameter.NavStateTransit)
}

// State returns the active graph state name
func (n *Navigator) State() string {
	return n.machine.GetRegionState(parameter.NavRegion)
}

// Transition returns a copy of the in-flight transition
func (n *Navigator) Transition() Transition {
	return n.transition
}

func (n *Navigator) Offset() WorldOffset {
	return n.offset
}

func (n *Navigator) Camera() CameraPose {
	return n.camera
}

func (n *Navigator) CameraInputEnabled() bool {
	return n.cameraInput
}

// Population returns the resident population of tier, nil when not resident
func (n *Navigator) Population(tier generator.Tier) *generator.Population {
	if !tier.Valid() {
		return nil
	}
	return n.populations[tier]
}

// Current returns the population of the active level
func (n *Navigator) Current() *generator.Population {
	return n.populations[n.level]
}

// Inspect resolves a body of the current population, a pure read
func (n *Navigator) Inspect(index int, simTime float64) (Snapshot, bool) {
	return Inspect(n.Current(), index, simTime)
}

// TravelTo requests a scale change by delta levels toward snap
// delta is +1 to descend into snap or -1 to ascend toward it
// Returns false when the request is dropped: already transitioning, target level
// out of range, or a descent from a body not in the current population
func (n *Navigator) TravelTo(snap Snapshot, delta int) bool {
	if n.Transitioning() || (delta != 1 && delta != -1) {
		return false
	}
	to := n.level + generator.Tier(delta)
	if !to.Valid() {
		return false
	}
	if delta > 0 && snap.Tier != n.level {
		return false
	}

	n.pending = &Transition{
		From:     n.level,
		To:       to,
		Target:   snap.Position,
		Snapshot: snap,
	}
	ok := n.machine.HandleEvent(n, event.EventTravel)
	n.pending = nil
	return ok
}

// GoBack travels to the coarser tier, anchored at its population origin
// Only legal above the universe tier and while resident
func (n *Navigator) GoBack() bool {
	if n.level <= generator.TierUniverse || n.Transitioning() {
		return false
	}
	coarser := n.populations[n.level-1]
	if coarser == nil {
		return false
	}
	return n.TravelTo(Snapshot{
		Tier:        coarser.Tier,
		Index:       -1,
		Position:    coarser.Origin,
		Seed:        coarser.Seed,
		Designation: coarser.Name,
	}, -1)
}

func (n *Navigator) setCameraInput(enabled bool) {
	n.cameraInput = enabled
	if n.hooks.OnCameraInput != nil {
		n.hooks.OnCameraInput(enabled)
	}
}

// discard drops the resident population of tier
func (n *Navigator) discard(tier generator.Tier) {
	pop := n.populations[tier]
	if pop == nil {
		return
	}
	n.populations[tier] = nil
	if n.hooks.OnDiscard != nil {
		n.hooks.OnDiscard(pop)
	}
}

// recenter shifts every spatial owner by -delta exactly once
func (n *Navigator) recenter(delta vmath.Vec3F) {
	for _, pop := range n.populations {
		if pop != nil {
			pop.Recenter(delta)
		}
	}
	n.camera.Recenter(delta)
	for _, s := range n.extras {
		s.Recenter(delta)
	}
}

// resolveSeed returns the sub-seed for regenerating the tier nested in snap
// A snapshot not taken from parent violates the regeneration contract
func (n *Navigator) resolveSeed(snap Snapshot, parent *generator.Population) uint64 {
	var parentSeed uint64
	if parent != nil {
		parentSeed = parent.Seed
		if snap.Seed != 0 && snap.ParentSeed == parentSeed && snap.Index >= 0 {
			return snap.Seed
		}
	}
	fallback := vmath.SubSeed(parentSeed, snap.Index)
	contractViolation(fmt.Sprintf(
		"navigation: regenerate %s without valid sub-seed (seed %#x parent %#x index %d), using %#x",
		snap.Tier+1, snap.Seed, snap.ParentSeed, snap.Index, fallback))
	return fallback
}

// arrive performs the arrival sequence, run as the Transitioning exit action
func (n *Navigator) arrive() {
	t := n.transition
	if !t.Active {
		return
	}

	// 1. Level
	n.level = t.To

	// 2. Regenerate the finer tier or discard it
	if t.To > t.From {
		parent := n.populations[t.From]
		for tier := generator.TierMax; tier >= t.To; tier-- {
			n.discard(tier)
		}
		seed := n.resolveSeed(t.Snapshot, parent)
		pop := n.gen.Generate(t.To, seed)
		pop.Translate(t.Target)
		n.populations[t.To] = pop
		log.Printf("navigation: descended to %s %q (%d bodies, seed %#x)", t.To, pop.Name, pop.Len(), seed)
	} else {
		for tier := t.From; tier > t.To; tier-- {
			n.discard(tier)
		}
		log.Printf("navigation: returned to %s", t.To)
	}

	// 3. Floating origin
	n.camera = t.camEnd
	n.recenter(t.Target)
	n.offset.add(t.Target)

	// 4. Camera control back to the external rig
	n.transition = Transition{}
	n.setCameraInput(true)

	if n.hooks.OnArrive != nil {
		n.hooks.OnArrive(t.From, t.To)
	}
}
