package parameter

import "time"

// Autopilot pacing
const (
	// AutopilotMinDelay and AutopilotMaxDelay bound the randomized idle countdown
	AutopilotMinDelay = 2 * time.Second
	AutopilotMaxDelay = 5 * time.Second

	// AutopilotSeedSalt separates the autopilot stream from generator streams
	AutopilotSeedSalt = -7
)

// AutopilotTourCount is the number of actions per tier before the autopilot goes back up
// Universe never goes back, the value there is unused
var AutopilotTourCount = [3]int{0, 2, 3}
