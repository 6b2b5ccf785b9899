package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	Regions map[string]RegionConfig `toml:"regions"`
	States  map[string]*StateConfig `toml:"states"`
}

// RegionConfig names the initial state of a region
type RegionConfig struct {
	Initial string `toml:"initial"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `toml:"parent,omitempty"`
	OnEnter     []ActionConfig     `toml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `toml:"on_update,omitempty"`
	OnExit      []ActionConfig     `toml:"on_exit,omitempty"`
	Transitions []TransitionConfig `toml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger   string         `toml:"trigger"`              // Event Name or "Tick"
	Target    string         `toml:"target"`               // Target state name
	Guard     string         `toml:"guard,omitempty"`      // Guard function name
	GuardArgs map[string]any `toml:"guard_args,omitempty"` // Parameters for factory guards
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action string         `toml:"action"`         // Action function name
	Args   map[string]any `toml:"args,omitempty"` // Passed verbatim to the action
}
