package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every cue, linear gain
	AudioMasterVolume = 0.5
)

// Arrival Cue, two notes rising on descent and falling on ascent
const (
	ArrivalNoteDuration = 140 * time.Millisecond
	ArrivalNoteAttack   = 8 * time.Millisecond
	ArrivalNoteRelease  = 90 * time.Millisecond

	// ArrivalBaseFrequency is the first note of a descent into the galaxy tier (A4)
	// Each finer tier shifts the pair up a fifth
	ArrivalBaseFrequency = 440.0
	ArrivalInterval      = 1.5
)

// Inspect Cue, a short tick when the autopilot reads a body
const (
	InspectSoundDuration  = 40 * time.Millisecond
	InspectSoundAttack    = 2 * time.Millisecond
	InspectSoundRelease   = 30 * time.Millisecond
	InspectSoundFrequency = 1760.0
	InspectSoundVolume    = 0.3
)
