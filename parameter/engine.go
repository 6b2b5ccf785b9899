package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxStepDuration caps a single simulation step so a stalled frame cannot destabilize orbits
	MaxStepDuration = 100 * time.Millisecond
)
