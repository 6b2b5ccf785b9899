package autopilot

import (
	"time"

	"github.com/lixenwraith/vi-cosmos/engine/fsm"
	"github.com/lixenwraith/vi-cosmos/parameter"
)

// registerComponents binds the guards and actions named in autopilot.toml
func (a *Autopilot) registerComponents() {
	m := a.machine

	// --- ACTIONS ---

	m.RegisterAction("Disarm", func(ap *Autopilot, _ map[string]any) {
		ap.state.Timer = 0
		ap.state.NextActionDelay = 0
	})

	// ArmDelay: draw the next idle countdown
	m.RegisterAction("ArmDelay", func(ap *Autopilot, _ map[string]any) {
		span := parameter.AutopilotMaxDelay - parameter.AutopilotMinDelay
		ap.state.NextActionDelay = parameter.AutopilotMinDelay + time.Duration(ap.rng.Float64()*float64(span))
		ap.state.Timer = 0
	})

	m.RegisterAction("CountDown", func(ap *Autopilot, _ map[string]any) {
		ap.state.Timer = ap.machine.RegionTimeInState(parameter.AutopilotRegion)
	})

	m.RegisterAction("Act", func(ap *Autopilot, _ map[string]any) {
		ap.act()
	})

	// --- GUARDS ---

	// ReadyToAct: countdown elapsed and no transition in flight
	m.RegisterGuard("ReadyToAct", func(ap *Autopilot, region *fsm.RegionState) bool {
		return region.TimeInState >= ap.state.NextActionDelay && !ap.nav.Transitioning()
	})
}
