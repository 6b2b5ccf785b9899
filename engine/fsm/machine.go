package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-cosmos/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		nameIDs:         make(map[string]StateID),
		regionInitials:  make(map[string]StateID),
		regions:         make(map[string]*RegionState),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init initializes all configured regions
func (m *Machine[T]) Init(ctx T) error {
	if len(m.regionInitials) == 0 {
		return fmt.Errorf("FSM has no defined regions to initialize")
	}

	for _, regionName := range m.regionOrder {
		if err := m.initRegion(ctx, regionName, m.regionInitials[regionName]); err != nil {
			return fmt.Errorf("region '%s': %w", regionName, err)
		}
	}
	return nil
}

// initRegion initializes a single region
func (m *Machine[T]) initRegion(ctx T, regionName string, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}

	region := &RegionState{
		Name:          regionName,
		ActiveStateID: initialID,
		ActivePath:    make([]StateID, len(node.Path)),
	}
	copy(region.ActivePath, node.Path)
	m.regions[regionName] = region

	// Execute OnEnter for the entire chain from Root to Initial
	for _, id := range region.ActivePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances the FSM by delta time for all active regions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	for _, name := range m.regionOrder {
		if region, ok := m.regions[name]; ok {
			m.updateRegion(ctx, region, dt)
		}
	}
}

// updateRegion runs leaf OnUpdate actions, then evaluates Tick transitions bubbling up
func (m *Machine[T]) updateRegion(ctx T, region *RegionState, dt time.Duration) {
	if region.ActiveStateID == StateNone {
		return
	}

	region.TimeInState += dt
	runActions(ctx, m.nodes[region.ActiveStateID].OnUpdate)
	m.fire(ctx, region, 0)
}

// HandleEvent routes an external event through all active regions
// Returns true if the event triggered a transition in any region
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	handled := false
	for _, name := range m.regionOrder {
		region, ok := m.regions[name]
		if !ok || region.ActiveStateID == StateNone {
			continue
		}
		if m.fire(ctx, region, eventType) {
			handled = true
		}
	}
	return handled
}

// fire takes the first passing transition for eventType, Leaf -> Parent -> Root
func (m *Machine[T]) fire(ctx T, region *RegionState, eventType event.EventType) bool {
	currID := region.ActiveStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx, region) {
				m.transitionRegion(ctx, region, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transitionRegion performs state change within a specific region
func (m *Machine[T]) transitionRegion(ctx T, region *RegionState, targetID StateID) {
	if region.ActiveStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d in region '%s'", targetID, region.Name))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := region.ActivePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}

	region.ActiveStateID = targetID
	region.TimeInState = 0
	region.ActivePath = append(region.ActivePath[:0], targetPath...)
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Reset returns FSM to initial state for all regions
func (m *Machine[T]) Reset(ctx T) error {
	for _, name := range m.regionOrder {
		region, ok := m.regions[name]
		if !ok || region.ActiveStateID == StateNone {
			continue
		}
		for i := len(region.ActivePath) - 1; i >= 0; i-- {
			runActions(ctx, m.nodes[region.ActivePath[i]].OnExit)
		}
	}

	m.regions = make(map[string]*RegionState)
	return m.Init(ctx)
}

// HasRegion checks if a region exists
func (m *Machine[T]) HasRegion(regionName string) bool {
	_, ok := m.regions[regionName]
	return ok
}

// GetRegionState returns current state name for a region
func (m *Machine[T]) GetRegionState(regionName string) string {
	if region, ok := m.regions[regionName]; ok {
		if node, ok := m.nodes[region.ActiveStateID]; ok {
			return node.Name
		}
	}
	return ""
}

// RegionTimeInState returns time spent in current state for a region
func (m *Machine[T]) RegionTimeInState(regionName string) time.Duration {
	if region, ok := m.regions[regionName]; ok {
		return region.TimeInState
	}
	return 0
}

// RegionStateID returns the active StateID for a named region
// Returns StateNone if region doesn't exist
func (m *Machine[T]) RegionStateID(regionName string) StateID {
	if region, ok := m.regions[regionName]; ok {
		return region.ActiveStateID
	}
	return StateNone
}

// InState reports whether the named state is on the active path of the region
// True for the leaf and every ancestor
func (m *Machine[T]) InState(regionName, stateName string) bool {
	id, ok := m.nameIDs[stateName]
	if !ok {
		return false
	}
	region, ok := m.regions[regionName]
	if !ok {
		return false
	}
	for _, active := range region.ActivePath {
		if active == id {
			return true
		}
	}
	return false
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	id, ok := m.nameIDs[name]
	return id, ok
}

// StateName resolves an ID to its state name
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}
