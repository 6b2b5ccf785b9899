package fsm

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/vi-cosmos/event"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading, registries are kept
func (m *Machine[T]) LoadConfig(data []byte) error {
	// 1. Decode TOML into intermediate config, unknown keys are rejected
	var config RootConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}

	// 2. Clear existing graph
	m.nodes = make(map[StateID]*Node[T])
	m.nameIDs = make(map[string]StateID)
	m.regions = make(map[string]*RegionState)
	m.regionInitials = make(map[string]StateID)
	m.regionOrder = m.regionOrder[:0]

	// 3. First Pass: Root node and state IDs
	m.AddState(StateRoot, "Root", StateNone)
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}
	if _, ok := config.States["Root"]; !ok {
		config.States["Root"] = &StateConfig{}
	}

	// Sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nameToID := map[string]StateID{"Root": StateRoot}
	for i, name := range stateNames {
		nameToID[name] = StateID(i + 2)
	}

	// 4. Second Pass: Build Nodes in ID order
	for _, name := range append([]string{"Root"}, stateNames...) {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
		}
		id := nameToID[name]

		node := m.nodes[StateRoot]
		if id != StateRoot {
			pName := cfg.Parent
			if pName == "" {
				pName = "Root"
			}
			parentID, ok := nameToID[pName]
			if !ok {
				return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
			}
			node = m.AddState(id, name, parentID)
		}

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' OnUpdate: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	// 5. Finalize: Compile Paths for LCA
	if err := m.CompilePaths(); err != nil {
		return err
	}

	// 6. Regions
	if len(config.Regions) == 0 {
		return fmt.Errorf("FSM config defines no regions")
	}
	for regionName, regionCfg := range config.Regions {
		initialID, ok := nameToID[regionCfg.Initial]
		if !ok || initialID == StateRoot {
			return fmt.Errorf("region '%s' references unknown initial state '%s'", regionName, regionCfg.Initial)
		}
		m.regionInitials[regionName] = initialID
		m.regionOrder = append(m.regionOrder, regionName)
	}
	sort.Strings(m.regionOrder)

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{
			Func: fn,
			Args: cfg.Args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		eventType, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			// Check factory first
			if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				g, err := factory(m, cfg.GuardArgs)
				if err != nil {
					return fmt.Errorf("guard '%s': %w", cfg.Guard, err)
				}
				guard = g
			} else if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    eventType,
			Guard:    guard,
		})
	}
	return nil
}
