// Package celestial holds the static spectral class table and the lifecycle evaluator
package celestial

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ClassID identifies a spectral or remnant class
type ClassID uint8

const (
	ClassO ClassID = iota
	ClassB
	ClassA
	ClassF
	ClassG
	ClassK
	ClassM
	ClassWhiteDwarf
	ClassNeutronStar
	ClassBlackHole
	classCount
)

// MassGroup selects the remnant rule applied at end of life
type MassGroup uint8

const (
	MassLow MassGroup = iota
	MassMid
	MassHigh
	MassRemnant
)

// Class is an immutable class table entry
// Mass, Radius and Luminosity are solar units, Lifespan is main-sequence lifetime in Gyr
type Class struct {
	ID             ClassID
	Symbol         string
	Name           string
	Probability    float64
	BaseColor      colorful.Color
	TemperatureMin float64
	TemperatureMax float64
	Mass           float64
	Radius         float64
	Luminosity     float64
	Lifespan       float64
	MassGroup      MassGroup
}

// Shares follow a small-catalog distribution that keeps rare classes visible
// while red dwarfs stay most common
var classes = [classCount]Class{
	{ClassO, "O", "Blue Supergiant", 0.005, mustHex("#9bb0ff"), 30000, 50000, 40, 10, 100000, 0.01, MassHigh},
	{ClassB, "B", "Blue Giant", 0.02, mustHex("#aabfff"), 10000, 30000, 8, 4, 1000, 0.1, MassHigh},
	{ClassA, "A", "White Star", 0.05, mustHex("#cad7ff"), 7500, 10000, 2, 1.7, 20, 1, MassMid},
	{ClassF, "F", "Yellow-White Star", 0.10, mustHex("#f8f7ff"), 6000, 7500, 1.3, 1.3, 3, 4, MassMid},
	{ClassG, "G", "Yellow Dwarf", 0.175, mustHex("#fff4ea"), 5200, 6000, 1, 1, 1, 10, MassMid},
	{ClassK, "K", "Orange Dwarf", 0.25, mustHex("#ffd2a1"), 3700, 5200, 0.7, 0.8, 0.3, 30, MassLow},
	{ClassM, "M", "Red Dwarf", 0.40, mustHex("#ffcc6f"), 2400, 3700, 0.3, 0.4, 0.02, 200, MassLow},
	{ClassWhiteDwarf, "D", "White Dwarf", 0, mustHex("#e6ecff"), 8000, 40000, 0.6, 0.012, 0.01, 0, MassRemnant},
	{ClassNeutronStar, "N", "Neutron Star", 0, mustHex("#b4c8ff"), 600000, 1000000, 1.4, 0.000015, 0.001, 0, MassRemnant},
	{ClassBlackHole, "X", "Black Hole", 0, mustHex("#1a1020"), 0, 0, 10, 0.00004, 0, 0, MassRemnant},
}

// drawable is the ordered prefix of classes with nonzero probability
var drawable []*Class

// cumulative[i] is the running probability through drawable[i]
var cumulative []float64

func init() {
	var sum float64
	for i := range classes {
		if classes[i].Probability <= 0 {
			continue
		}
		sum += classes[i].Probability
		drawable = append(drawable, &classes[i])
		cumulative = append(cumulative, sum)
	}
}

// Classify maps a uniform draw to the first class whose cumulative weight exceeds it
// Draws outside [0,1) are clamped, rounding at the top falls back to the last drawable class
func Classify(draw float64) *Class {
	if draw < 0 {
		draw = 0
	}
	for i, c := range cumulative {
		if draw < c {
			return drawable[i]
		}
	}
	return drawable[len(drawable)-1]
}

// Lookup returns the class for id, nil when out of range
func Lookup(id ClassID) *Class {
	if id >= classCount {
		return nil
	}
	return &classes[id]
}

// Drawable returns the naturally drawn classes in table order
func Drawable() []*Class {
	out := make([]*Class, len(drawable))
	copy(out, drawable)
	return out
}

func (id ClassID) String() string {
	if c := Lookup(id); c != nil {
		return c.Symbol
	}
	return "?"
}

// IsRemnant reports whether the class is only reachable through the lifecycle evaluator
func (c *Class) IsRemnant() bool {
	return c.MassGroup == MassRemnant
}
