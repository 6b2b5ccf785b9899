// Package cosmos is the simulation context and the boundary to presentation and UI
package cosmos

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-cosmos/autopilot"
	"github.com/lixenwraith/vi-cosmos/config"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/navigation"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/physics"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Simulation owns every component of one running cosmos
// Not safe for concurrent use, drive it from a single frame loop
type Simulation struct {
	cfg       config.Config
	store     *Store
	nav       *navigation.Navigator
	pilot     *autopilot.Autopilot
	renderer  Renderer
	observers observers

	simTime     float64 // seconds of simulated time
	galaxyClock float64 // galaxy rotation phase, advances only while the galaxy is viewed
	selected    int
	onSelect    []func(Summary)
	posBuf      []vmath.Vec3F
}

// New validates cfg, generates the universe tier and wires the navigator and autopilot
// A nil renderer is replaced with NopRenderer
func New(cfg config.Config, renderer Renderer, obs ...Observer) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = NopRenderer{}
	}

	s := &Simulation{
		cfg:       cfg,
		renderer:  renderer,
		observers: observers(obs),
		selected:  -1,
	}
	s.store = newStore(cfg.GeneratorParams(), s.observers)

	root := s.store.Generate(generator.TierUniverse, cfg.SeedValue())
	nav, err := navigation.New(s.store, root, navigation.Hooks{
		OnArrive:      s.arrived,
		OnCameraInput: s.renderer.SetCameraInputEnabled,
		OnDiscard:     s.discarded,
	})
	if err != nil {
		return nil, err
	}
	s.nav = nav

	pilot, err := autopilot.New(nav, cfg.SeedValue(), s.autopilotAction)
	if err != nil {
		return nil, err
	}
	s.pilot = pilot
	if cfg.Autopilot {
		pilot.SetEnabled(true)
	}

	s.uploadColors()
	s.upload()
	log.Printf("cosmos: seed %d, universe %q with %d bodies", cfg.Seed, root.Name, root.Len())
	return s, nil
}

// Step advances the simulation by one frame of dt wall time
func (s *Simulation) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if dt > parameter.MaxStepDuration {
		dt = parameter.MaxStepDuration
	}

	s.nav.Update(dt)
	s.pilot.Update(dt, s.simTime)

	simDt := dt.Seconds() * s.cfg.TimeScale
	s.simTime += simDt

	// Time scale multiplies past the clamp, sub-step so one integration step stays bounded
	if pop := s.nav.Population(generator.TierSystem); pop != nil {
		physics.AdvanceBy(pop, simDt, parameter.MaxStepDuration.Seconds())
	}
	if pop := s.nav.Population(generator.TierGalaxy); pop != nil && s.nav.Level() == generator.TierGalaxy {
		s.galaxyClock += simDt
		physics.AnimateGalaxy(pop, s.galaxyClock)
	}

	s.upload()
}

// upload pushes the current level and camera to the renderer
func (s *Simulation) upload() {
	cur := s.nav.Current()
	if cur != nil {
		s.posBuf = cur.Positions(s.posBuf)
		s.renderer.UploadPositions(cur.ID, s.posBuf)
	}
	cam := s.nav.Camera()
	s.renderer.SetCameraPose(cam.Position, cam.LookAt)
}

func (s *Simulation) uploadColors() {
	if cur := s.nav.Current(); cur != nil {
		s.renderer.UploadColors(cur.ID, cur.Colors())
	}
}

// arrived hides the level left behind and shows the new one
func (s *Simulation) arrived(from, to generator.Tier) {
	if prev := s.nav.Population(from); prev != nil {
		s.renderer.UploadPositions(prev.ID, nil)
	}
	if to == generator.TierGalaxy && to > from {
		s.galaxyClock = 0
	}
	s.selected = -1
	s.uploadColors()
	s.observers.ObserveTransition(from, to)
}

func (s *Simulation) discarded(pop *generator.Population) {
	s.store.Drop(pop)
	s.renderer.UploadPositions(pop.ID, nil)
}

func (s *Simulation) autopilotAction(action autopilot.Action, snap navigation.Snapshot) {
	s.observers.ObserveAutopilotAction(action)
	if action == autopilot.ActionDescend || action == autopilot.ActionInspect {
		s.selectSnapshot(snap)
	}
}

func (s *Simulation) selectSnapshot(snap navigation.Snapshot) {
	s.selected = snap.Index
	sum := summarize(snap)
	for _, cb := range s.onSelect {
		cb(sum)
	}
}

// --- UI boundary ---

// CurrentLevel returns the active view level
func (s *Simulation) CurrentLevel() generator.Tier {
	return s.nav.Level()
}

// SelectedTargetSummary resolves the selection at the current sim time
func (s *Simulation) SelectedTargetSummary() (Summary, bool) {
	if s.selected < 0 {
		return Summary{}, false
	}
	snap, ok := s.nav.Inspect(s.selected, s.simTime)
	if !ok {
		return Summary{}, false
	}
	return summarize(snap), true
}

// OnSelect registers a callback run on every selection change
func (s *Simulation) OnSelect(cb func(Summary)) {
	if cb != nil {
		s.onSelect = append(s.onSelect, cb)
	}
}

// Select picks a body of the current population, false when index is out of range
func (s *Simulation) Select(index int) bool {
	snap, ok := s.nav.Inspect(index, s.simTime)
	if !ok {
		return false
	}
	s.selectSnapshot(snap)
	return true
}

// TravelTo descends into body index of the current population
func (s *Simulation) TravelTo(index int) bool {
	snap, ok := s.nav.Inspect(index, s.simTime)
	if !ok {
		return false
	}
	if !s.nav.TravelTo(snap, 1) {
		return false
	}
	s.selectSnapshot(snap)
	return true
}

// GoBack travels to the coarser tier
func (s *Simulation) GoBack() bool {
	return s.nav.GoBack()
}

func (s *Simulation) SetAutopilotEnabled(enabled bool) {
	s.pilot.SetEnabled(enabled)
}

func (s *Simulation) AutopilotEnabled() bool {
	return s.pilot.Enabled()
}

// SetSeed discards every population and regenerates from seed
func (s *Simulation) SetSeed(seed int64) error {
	cfg := s.cfg
	cfg.Seed = seed
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg

	s.store.clear()
	root := s.store.Generate(generator.TierUniverse, cfg.SeedValue())
	if err := s.nav.Reset(root); err != nil {
		return err
	}
	if err := s.pilot.Reset(cfg.SeedValue()); err != nil {
		return err
	}
	s.simTime = 0
	s.galaxyClock = 0
	s.selected = -1

	s.uploadColors()
	s.upload()
	log.Printf("cosmos: reseeded to %d, universe %q", seed, root.Name)
	return nil
}

// SetPopulationDensity changes a tier body count for its next regeneration
// System populations are sized by their generator and cannot be set
func (s *Simulation) SetPopulationDensity(tier generator.Tier, count int) error {
	cfg := s.cfg
	switch tier {
	case generator.TierUniverse:
		cfg.StarCount = count
	case generator.TierGalaxy:
		cfg.GalaxyStarCount = count
	default:
		return fmt.Errorf("population density of tier %s is not configurable: %w", tier, config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.store.setParams(cfg.GeneratorParams())
	return nil
}

// SetTimeScale changes the simulated seconds per wall second
func (s *Simulation) SetTimeScale(scale float64) error {
	cfg := s.cfg
	cfg.TimeScale = scale
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// --- read access for presentation ---

func (s *Simulation) Config() config.Config {
	return s.cfg
}

func (s *Simulation) Store() *Store {
	return s.store
}

func (s *Simulation) Navigator() *navigation.Navigator {
	return s.nav
}

func (s *Simulation) Autopilot() *autopilot.Autopilot {
	return s.pilot
}

// SimTime returns elapsed simulated seconds since creation or reseed
func (s *Simulation) SimTime() float64 {
	return s.simTime
}

// Status is a one-line view of the simulation for HUDs
type Status struct {
	Seed          int64
	Population    uuid.UUID // current level population, nil UUID when none
	Level         generator.Tier
	State         string
	Progress      float64
	Bodies        int
	Autopilot     bool
	AutopilotMode string
	Offset        vmath.Vec3F
	SimTime       float64
}

func (s *Simulation) Status() Status {
	st := Status{
		Seed:          s.cfg.Seed,
		Level:         s.nav.Level(),
		State:         s.nav.State(),
		Progress:      s.nav.Transition().Progress,
		Autopilot:     s.pilot.Enabled(),
		AutopilotMode: s.pilot.StateName(),
		Offset:        s.nav.Offset().Delta,
		SimTime:       s.simTime,
	}
	if cur := s.nav.Current(); cur != nil {
		st.Population = cur.ID
		st.Bodies = cur.Len()
	}
	return st
}
