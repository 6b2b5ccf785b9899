package navigation

import (
	"fmt"

	"github.com/lixenwraith/vi-cosmos/engine/fsm"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

var levelNames = map[string]generator.Tier{
	parameter.NavStateUniverse: generator.TierUniverse,
	parameter.NavStateGalaxy:   generator.TierGalaxy,
	parameter.NavStateSystem:   generator.TierSystem,
}

// registerComponents binds the guards and actions named in navigation.toml
func (n *Navigator) registerComponents() {
	m := n.machine

	// --- ACTIONS ---

	// BeginTransition: capture the pending request and take camera control
	m.RegisterAction("BeginTransition", func(nav *Navigator, _ map[string]any) {
		t := *nav.pending
		t.Active = true
		t.Progress = 0
		t.camStart = nav.camera
		t.camEnd = arrivalPose(t)
		nav.transition = t
		nav.setCameraInput(false)
	})

	// AdvanceProgress: progress from time in state, camera eased toward the target
	m.RegisterAction("AdvanceProgress", func(nav *Navigator, _ map[string]any) {
		t := &nav.transition
		if !t.Active {
			return
		}
		elapsed := nav.machine.RegionTimeInState(parameter.NavRegion)
		t.Progress = vmath.Clamp01(float64(elapsed) / float64(nav.duration))
		nav.camera = LerpPose(t.camStart, t.camEnd, vmath.EaseInOutCubic(t.Progress))
	})

	// CompleteArrival: arrival sequence on leaving Transitioning
	m.RegisterAction("CompleteArrival", func(nav *Navigator, _ map[string]any) {
		nav.arrive()
	})

	// --- GUARDS ---

	m.RegisterGuard("HasPendingTravel", func(nav *Navigator, _ *fsm.RegionState) bool {
		return nav.pending != nil
	})

	// ArrivedAt: progress complete and the transition targets the named level
	m.RegisterGuardFactory("ArrivedAt", func(_ *fsm.Machine[*Navigator], args map[string]any) (fsm.GuardFunc[*Navigator], error) {
		name, err := fsm.ArgString(args, "level")
		if err != nil {
			return nil, err
		}
		tier, ok := levelNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown level '%s'", name)
		}
		return func(nav *Navigator, _ *fsm.RegionState) bool {
			return nav.transition.Active && nav.transition.Progress >= 1 && nav.transition.To == tier
		}, nil
	})
}

// arrivalPose frames the destination tier around the target
func arrivalPose(t Transition) CameraPose {
	return FramePose(t.To, t.Target)
}
