package celestial

import (
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Lifecycle is the evolutionary phase of a stellar body
type Lifecycle uint8

const (
	LifecycleNone Lifecycle = iota
	LifecycleProto
	LifecycleMainSequence
	LifecycleGiant
	LifecycleRemnant
)

// Phase boundaries as fractions of main-sequence lifespan
const (
	protoFraction = 0.05
	giantFraction = 1.1
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleProto:
		return "Protostar"
	case LifecycleMainSequence:
		return "Main Sequence"
	case LifecycleGiant:
		return "Giant"
	case LifecycleRemnant:
		return "Remnant"
	default:
		return "None"
	}
}

// EvaluateLifecycle derives phase and effective class from class and age in Gyr
// key identifies the body, the remnant coin for high-mass classes is a hash of (class, key)
// so a body collapses to the same remnant at every age
func EvaluateLifecycle(class *Class, age float64, key uint64) (Lifecycle, *Class) {
	if class == nil {
		return LifecycleNone, nil
	}
	if class.IsRemnant() {
		return LifecycleRemnant, class
	}

	span := class.Lifespan
	switch {
	case age < protoFraction*span:
		return LifecycleProto, class
	case class.MassGroup == MassLow:
		// Lifespan exceeds simulated time, never leaves the main sequence
		return LifecycleMainSequence, class
	case age < span:
		return LifecycleMainSequence, class
	case age < giantFraction*span:
		return LifecycleGiant, class
	}

	if class.MassGroup == MassHigh {
		if remnantCoin(class.ID, key) {
			return LifecycleRemnant, &classes[ClassBlackHole]
		}
		return LifecycleRemnant, &classes[ClassNeutronStar]
	}
	return LifecycleRemnant, &classes[ClassWhiteDwarf]
}

// remnantCoin is a 50/50 deterministic draw keyed on class and body
func remnantCoin(id ClassID, key uint64) bool {
	h := vmath.Mix64(uint64(id)<<56 ^ key)
	return h&1 == 0
}
