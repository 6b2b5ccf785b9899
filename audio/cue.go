package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-cosmos/autopilot"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
)

// Cue plays tones on arrival and autopilot inspection
// Every method is a no-op until Start succeeds, so a machine without audio runs silent
type Cue struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	volume  float64
	started bool
	muted   bool
	played  int
}

// NewCue creates a stopped cue player
func NewCue() *Cue {
	return &Cue{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		mixer:  &beep.Mixer{},
		volume: parameter.AudioMasterVolume,
	}
}

// Start opens the speaker, safe to call twice
func (c *Cue) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.started = true
	return nil
}

// Stop silences pending cues and closes the speaker
func (c *Cue) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.started = false
}

// SetMuted toggles output without closing the speaker
func (c *Cue) SetMuted(muted bool) {
	c.mu.Lock()
	c.muted = muted
	c.mu.Unlock()
}

// Played returns the number of cues sent to the speaker
func (c *Cue) Played() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played
}

func (c *Cue) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.muted {
		return
	}
	speaker.Lock()
	c.mixer.Add(masterGain(s, c.volume))
	speaker.Unlock()
	c.played++
}

func (c *Cue) ObserveGeneration(generator.Tier, int, time.Duration) {}

func (c *Cue) ObserveTransition(from, to generator.Tier) {
	c.play(ArrivalTone(from, to, c.rate))
}

func (c *Cue) ObserveAutopilotAction(action autopilot.Action) {
	if action == autopilot.ActionInspect {
		c.play(InspectTone(c.rate))
	}
}

// masterGain scales s linearly by vol, zero or below is silent
func masterGain(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(max(vol, math.SmallestNonzeroFloat64)),
		Silent:   vol <= 0,
	}
}
