package navigation

import (
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Spatial is anything holding rendered positions that must shift on recentre
type Spatial interface {
	Recenter(delta vmath.Vec3F)
}

// WorldOffset is the accumulated floating-origin translation
// Absolute coordinates are rendered coordinates plus Delta
type WorldOffset struct {
	Delta    vmath.Vec3F
	Arrivals int
}

func (w *WorldOffset) add(delta vmath.Vec3F) {
	w.Delta = vmath.V3FAdd(w.Delta, delta)
	w.Arrivals++
}

// Absolute reconstructs an absolute position from a rendered one
func (w WorldOffset) Absolute(rendered vmath.Vec3F) vmath.Vec3F {
	return vmath.V3FAdd(rendered, w.Delta)
}

// CameraPose is a camera position and look-at point in rendered coordinates
type CameraPose struct {
	Position vmath.Vec3F
	LookAt   vmath.Vec3F
}

func (c *CameraPose) Recenter(delta vmath.Vec3F) {
	c.Position = vmath.V3FSub(c.Position, delta)
	c.LookAt = vmath.V3FSub(c.LookAt, delta)
}

// LerpPose interpolates both points of the pose
func LerpPose(a, b CameraPose, t float64) CameraPose {
	return CameraPose{
		Position: vmath.V3FLerp(a.Position, b.Position, t),
		LookAt:   vmath.V3FLerp(a.LookAt, b.LookAt, t),
	}
}

// FramePose frames a tier centered at center
func FramePose(tier generator.Tier, center vmath.Vec3F) CameraPose {
	r := tier.Radius()
	return CameraPose{
		Position: vmath.V3FAdd(center, vmath.Vec3F{
			Y: r * parameter.CameraElevationFactor,
			Z: r * parameter.CameraViewDistanceFactor,
		}),
		LookAt: center,
	}
}
