package event

// EventType identifies an FSM trigger
// Zero is reserved for the Tick pseudo-event
type EventType int

const (
	// EventTravel starts a scale transition
	// Trigger: Navigator.TravelTo after a request is captured | Consumer: navigation FSM
	EventTravel EventType = iota + 1

	// EventAutopilotEnable arms the autopilot loop
	// Trigger: Autopilot.SetEnabled(true) | Consumer: autopilot FSM
	EventAutopilotEnable

	// EventAutopilotDisable halts the autopilot loop immediately
	// Trigger: Autopilot.SetEnabled(false) | Consumer: autopilot FSM
	EventAutopilotDisable
)
