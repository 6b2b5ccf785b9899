package parameter

import "time"

// Scale transition timing
const (
	// TransitionDuration is the length of one animated scale change
	TransitionDuration = 2500 * time.Millisecond
)

// FSM graph names shared by the navigation TOML and Go code
const (
	NavRegion          = "navigation"
	NavStateUniverse   = "Universe"
	NavStateGalaxy     = "Galaxy"
	NavStateSystem     = "System"
	NavStateTransit    = "Transitioning"
	AutopilotRegion    = "autopilot"
	AutopilotStateOff  = "Disabled"
	AutopilotStateIdle = "Idle"
	AutopilotStateAct  = "Acting"
)
