package cosmos

import (
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-cosmos/autopilot"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Renderer is the presentation collaborator fed every step
// Slices passed in are reused by the caller and valid only until the next call
type Renderer interface {
	// UploadPositions replaces the point set of a population, nil clears it
	UploadPositions(id uuid.UUID, positions []vmath.Vec3F)
	UploadColors(id uuid.UUID, colors []colorful.Color)
	SetCameraPose(position, lookAt vmath.Vec3F)
	SetCameraInputEnabled(enabled bool)
}

// NopRenderer discards everything, for headless runs
type NopRenderer struct{}

func (NopRenderer) UploadPositions(uuid.UUID, []vmath.Vec3F) {}
func (NopRenderer) UploadColors(uuid.UUID, []colorful.Color) {}
func (NopRenderer) SetCameraPose(vmath.Vec3F, vmath.Vec3F) {}
func (NopRenderer) SetCameraInputEnabled(bool) {}

// Observer receives simulation events, implemented by metrics and audio
type Observer interface {
	ObserveGeneration(tier generator.Tier, bodies int, elapsed time.Duration)
	ObserveTransition(from, to generator.Tier)
	ObserveAutopilotAction(action autopilot.Action)
}

// NopObserver ignores every event, embed it to implement a subset
type NopObserver struct{}

func (NopObserver) ObserveGeneration(generator.Tier, int, time.Duration) {}
func (NopObserver) ObserveTransition(generator.Tier, generator.Tier) {}
func (NopObserver) ObserveAutopilotAction(autopilot.Action) {}

// observers fans an event out to every registered observer
type observers []Observer

func (o observers) ObserveGeneration(tier generator.Tier, bodies int, elapsed time.Duration) {
	for _, obs := range o {
		obs.ObserveGeneration(tier, bodies, elapsed)
	}
}

func (o observers) ObserveTransition(from, to generator.Tier) {
	for _, obs := range o {
		obs.ObserveTransition(from, to)
	}
}

func (o observers) ObserveAutopilotAction(action autopilot.Action) {
	for _, obs := range o {
		obs.ObserveAutopilotAction(action)
	}
}
