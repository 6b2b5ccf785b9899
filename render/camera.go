package render

import (
	"math"

	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// Rig is the terminal camera: the pose set by the simulation plus user orbit and zoom
// Orbit and zoom are reset whenever the simulation takes camera control
type Rig struct {
	position vmath.Vec3F
	lookAt   vmath.Vec3F
	yaw      float64
	zoom     float64
	input    bool
}

func newRig() Rig {
	return Rig{zoom: 1, input: true}
}

func (r *Rig) setInput(enabled bool) {
	r.input = enabled
	if !enabled {
		r.yaw = 0
		r.zoom = 1
	}
}

// orbit yaws the eye around the look-at point, false while input is disabled
func (r *Rig) orbit(dir int) bool {
	if !r.input || dir == 0 {
		return false
	}
	r.yaw += float64(dir) * parameter.CameraOrbitStep
	return true
}

// zoomBy scales the view distance by CameraZoomStep^-dir, false while input is disabled
func (r *Rig) zoomBy(dir int) bool {
	if !r.input || dir == 0 {
		return false
	}
	z := r.zoom * math.Pow(parameter.CameraZoomStep, float64(dir))
	r.zoom = math.Max(parameter.CameraZoomMin, math.Min(parameter.CameraZoomMax, z))
	return true
}

// eye returns the effective camera position after orbit and zoom
func (r *Rig) eye() vmath.Vec3F {
	rel := vmath.V3FSub(r.position, r.lookAt)
	rel = vmath.V3FRotateY(rel, r.yaw)
	rel = vmath.V3FScale(rel, 1/r.zoom)
	return vmath.V3FAdd(r.lookAt, rel)
}

// projector caches the camera basis for one frame
type projector struct {
	eye      vmath.Vec3F
	forward  vmath.Vec3F
	right    vmath.Vec3F
	up       vmath.Vec3F
	near     float64
	distance float64
	cx, cy   float64
	scale    float64
}

var worldUp = vmath.Vec3F{Y: 1}

// newProjector builds the perspective projection onto a w×h cell viewport
// Returns false for a degenerate pose
func (r *Rig) newProjector(w, h int) (projector, bool) {
	eye := r.eye()
	view := vmath.V3FSub(r.lookAt, eye)
	dist := vmath.V3FMag(view)
	if dist == 0 || w <= 0 || h <= 0 {
		return projector{}, false
	}
	forward := vmath.V3FScale(view, 1/dist)

	right := vmath.V3FCross(forward, worldUp)
	if vmath.V3FMagSq(right) < 1e-12 {
		// Looking straight along Y
		right = vmath.Vec3F{X: 1}
	}
	right = vmath.V3FNormalize(right)
	up := vmath.V3FCross(right, forward)

	return projector{
		eye:      eye,
		forward:  forward,
		right:    right,
		up:       up,
		near:     parameter.CameraNearPlane * dist,
		distance: dist,
		cx:       float64(w) / 2,
		cy:       float64(h) / 2,
		scale:    float64(w) / 2 * parameter.CameraFocalLength,
	}, true
}

// project maps a world point to a cell, depth is distance along the view axis
func (p *projector) project(pt vmath.Vec3F) (col, row int, depth float64, ok bool) {
	d := vmath.V3FSub(pt, p.eye)
	z := vmath.V3FDot(d, p.forward)
	if z < p.near {
		return 0, 0, 0, false
	}
	nx := vmath.V3FDot(d, p.right) / z
	ny := vmath.V3FDot(d, p.up) / z
	col = int(math.Floor(p.cx + nx*p.scale))
	row = int(math.Floor(p.cy - ny*p.scale/parameter.CellAspect))
	return col, row, z, true
}
