// Package autopilot sequences automatic exploration on top of the navigator
package autopilot

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-cosmos/engine/fsm"
	"github.com/lixenwraith/vi-cosmos/event"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/navigation"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

//go:embed autopilot.toml
var graphConfig []byte

// Navigator is the subset of navigation.Navigator the autopilot drives
type Navigator interface {
	Level() generator.Tier
	Transitioning() bool
	Current() *generator.Population
	TravelTo(snap navigation.Snapshot, delta int) bool
	GoBack() bool
}

// Action is one autopilot decision
type Action int

const (
	ActionNone Action = iota
	ActionDescend
	ActionInspect
	ActionGoBack
)

func (a Action) String() string {
	switch a {
	case ActionDescend:
		return "descend"
	case ActionInspect:
		return "inspect"
	case ActionGoBack:
		return "go_back"
	default:
		return "none"
	}
}

// Listener receives every issued action, snap is zero for ActionGoBack
type Listener func(action Action, snap navigation.Snapshot)

// State is the observable autopilot state
type State struct {
	Enabled            bool
	Timer              time.Duration
	NextActionDelay    time.Duration
	CurrentTargetIndex int
	Toured             [generator.TierMax + 1]int
}

// Autopilot picks targets and drives the navigator without user input
type Autopilot struct {
	machine  *fsm.Machine[*Autopilot]
	nav      Navigator
	listener Listener
	rng      *vmath.FastRand

	state     State
	simTime   float64
	lastLevel generator.Tier
}

// New creates a disabled autopilot over nav, seeded from the simulation seed
func New(nav Navigator, seed uint64, listener Listener) (*Autopilot, error) {
	if nav == nil {
		return nil, fmt.Errorf("autopilot requires a navigator")
	}
	event.InitRegistry()

	a := &Autopilot{
		machine:  fsm.NewMachine[*Autopilot](),
		nav:      nav,
		listener: listener,
	}
	a.registerComponents()
	if err := a.machine.LoadConfig(graphConfig); err != nil {
		return nil, fmt.Errorf("autopilot graph: %w", err)
	}

	a.resetState(seed)
	if err := a.machine.Init(a); err != nil {
		return nil, fmt.Errorf("autopilot init: %w", err)
	}
	return a, nil
}

func (a *Autopilot) resetState(seed uint64) {
	a.rng = vmath.NewFastRand(vmath.SubSeed(seed, parameter.AutopilotSeedSalt))
	a.state = State{CurrentTargetIndex: -1}
	a.lastLevel = a.nav.Level()
	a.simTime = 0
}

// Reset reseeds the rng and clears the tour, enablement is kept
func (a *Autopilot) Reset(seed uint64) error {
	enabled := a.state.Enabled
	a.resetState(seed)
	if err := a.machine.Reset(a); err != nil {
		return err
	}
	if enabled {
		a.SetEnabled(true)
	}
	return nil
}

// SetEnabled switches the loop on or off
// Disabling lets an in-flight transition finish but no further action is issued
func (a *Autopilot) SetEnabled(enabled bool) {
	a.state.Enabled = enabled
	if enabled {
		a.machine.HandleEvent(a, event.EventAutopilotEnable)
	} else {
		a.machine.HandleEvent(a, event.EventAutopilotDisable)
	}
}

// Update advances the countdown, simTime is used for inspection reads
func (a *Autopilot) Update(dt time.Duration, simTime float64) {
	a.simTime = simTime
	a.trackLevel()
	a.machine.Update(a, dt)
}

// trackLevel resets the tour count of a level entered by a descent
func (a *Autopilot) trackLevel() {
	level := a.nav.Level()
	if level > a.lastLevel {
		a.state.Toured[level] = 0
	}
	a.lastLevel = level
}

func (a *Autopilot) Enabled() bool {
	return a.state.Enabled
}

// State returns a copy of the autopilot state
func (a *Autopilot) State() State {
	return a.state
}

// StateName returns the active graph state
func (a *Autopilot) StateName() string {
	return a.machine.GetRegionState(parameter.AutopilotRegion)
}

// act issues exactly one action for the current level
func (a *Autopilot) act() {
	level := a.nav.Level()
	tours := parameter.AutopilotTourCount[level]

	switch {
	case level == generator.TierUniverse:
		a.descend()
	case level == generator.TierMax:
		if a.state.Toured[level] < tours {
			a.state.Toured[level]++
			a.inspect()
		} else {
			a.goBack()
		}
	default:
		if a.state.Toured[level] < tours {
			a.state.Toured[level]++
			a.descend()
		} else {
			a.goBack()
		}
	}
}

// pick selects a random body of the current population
func (a *Autopilot) pick() (navigation.Snapshot, bool) {
	pop := a.nav.Current()
	if pop == nil || pop.Len() == 0 {
		return navigation.Snapshot{}, false
	}
	index := a.rng.Intn(pop.Len())
	a.state.CurrentTargetIndex = index
	return navigation.Inspect(pop, index, a.simTime)
}

func (a *Autopilot) descend() {
	snap, ok := a.pick()
	if !ok {
		return
	}
	if a.nav.TravelTo(snap, 1) {
		a.notify(ActionDescend, snap)
	}
}

func (a *Autopilot) inspect() {
	snap, ok := a.pick()
	if !ok {
		return
	}
	a.notify(ActionInspect, snap)
}

func (a *Autopilot) goBack() {
	if a.nav.GoBack() {
		a.state.CurrentTargetIndex = -1
		a.notify(ActionGoBack, navigation.Snapshot{})
	}
}

func (a *Autopilot) notify(action Action, snap navigation.Snapshot) {
	if a.listener != nil {
		a.listener(action, snap)
	}
}
