package generator

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Morphology is the structural type of a galaxy population
type Morphology uint8

const (
	MorphologyNone Morphology = iota
	MorphologySpiral
	MorphologyElliptical
	MorphologyIrregular
	MorphologyQuasar
)

func (m Morphology) String() string {
	switch m {
	case MorphologySpiral:
		return "Spiral"
	case MorphologyElliptical:
		return "Elliptical"
	case MorphologyIrregular:
		return "Irregular"
	case MorphologyQuasar:
		return "Proto/Quasar"
	default:
		return "None"
	}
}

// Population is an ordered fixed-size body set produced by one generator pass
type Population struct {
	ID         uuid.UUID
	Tier       Tier
	Seed       uint64
	Origin     vmath.Vec3F // frame origin in current rendered coordinates
	Name       string
	Morphology Morphology
	Bodies     []Body
}

// PopulationID derives a stable UUIDv5 from tier and seed
func PopulationID(tier Tier, seed uint64) uuid.UUID {
	var buf [9]byte
	buf[0] = byte(tier)
	binary.BigEndian.PutUint64(buf[1:], seed)
	return uuid.NewSHA1(uuid.NameSpaceOID, buf[:])
}

func newPopulation(tier Tier, seed uint64, count int) *Population {
	return &Population{
		ID:     PopulationID(tier, seed),
		Tier:   tier,
		Seed:   seed,
		Bodies: make([]Body, count),
	}
}

func (p *Population) Len() int {
	return len(p.Bodies)
}

// Body returns the body at index, nil when out of range
func (p *Population) Body(index int) *Body {
	if index < 0 || index >= len(p.Bodies) {
		return nil
	}
	return &p.Bodies[index]
}

// Translate moves every body and the origin by delta
func (p *Population) Translate(delta vmath.Vec3F) {
	p.Origin = vmath.V3FAdd(p.Origin, delta)
	for i := range p.Bodies {
		p.Bodies[i].Position = vmath.V3FAdd(p.Bodies[i].Position, delta)
	}
}

// Recenter subtracts delta from every position, making delta the new origin
func (p *Population) Recenter(delta vmath.Vec3F) {
	p.Translate(vmath.V3FScale(delta, -1))
}

// Positions copies body positions into dst, growing it as needed
func (p *Population) Positions(dst []vmath.Vec3F) []vmath.Vec3F {
	if cap(dst) < len(p.Bodies) {
		dst = make([]vmath.Vec3F, len(p.Bodies))
	}
	dst = dst[:len(p.Bodies)]
	for i := range p.Bodies {
		dst[i] = p.Bodies[i].Position
	}
	return dst
}

func (p *Population) Colors() []colorful.Color {
	out := make([]colorful.Color, len(p.Bodies))
	for i := range p.Bodies {
		out[i] = p.Bodies[i].Color
	}
	return out
}

// starCount returns the leading run of stars, which is the star block of a system
func (p *Population) starCount() int {
	n := 0
	for n < len(p.Bodies) && p.Bodies[n].Kind == KindStar {
		n++
	}
	return n
}
