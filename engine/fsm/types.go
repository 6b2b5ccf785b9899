package fsm

import (
	"time"

	"github.com/lixenwraith/vi-cosmos/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *navigation.Navigator)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes   map[StateID]*Node[T]
	nameIDs map[string]StateID

	// Region configuration, regionOrder is sorted for deterministic updates
	regionInitials map[string]StateID
	regionOrder    []string

	// Runtime State
	regions map[string]*RegionState

	// Dependency Injection
	guardReg        map[string]GuardFunc[T]
	guardFactoryReg map[string]GuardFactoryFunc[T]
	actionReg       map[string]ActionFunc[T]
}

// RegionState is the runtime state of one orthogonal region
type RegionState struct {
	Name          string
	ActiveStateID StateID       // The current leaf node
	TimeInState   time.Duration // Time elapsed in current state
	ActivePath    []StateID     // Stack of active states (Root -> Child -> Leaf)
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // 0 = Tick (auto-transition)
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T, region *RegionState) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)

// GuardFactoryFunc creates a parameterized guard from TOML args
// Used for configurable guards like StateTimeExceeds with duration parameter
type GuardFactoryFunc[T any] func(m *Machine[T], args map[string]any) (GuardFunc[T], error)
