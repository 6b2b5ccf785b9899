// Package render draws the simulation as a projected point cloud on a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-cosmos/cosmos"
	"github.com/lixenwraith/vi-cosmos/parameter"
	"github.com/lixenwraith/vi-cosmos/vmath"
)

// cloud is the uploaded state of one population
type cloud struct {
	positions []vmath.Vec3F
	bands     [][]tcell.Color // per depth band, per point
}

// TerminalRenderer implements cosmos.Renderer on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	rig    Rig
	clouds map[uuid.UUID]*cloud
	depth  []float64
	drawn  int
}

// NewTerminalRenderer creates a renderer drawing to an initialized screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		rig:    newRig(),
		clouds: make(map[uuid.UUID]*cloud),
	}
}

func (r *TerminalRenderer) cloudFor(id uuid.UUID) *cloud {
	c, ok := r.clouds[id]
	if !ok {
		c = &cloud{}
		r.clouds[id] = c
	}
	return c
}

// UploadPositions copies positions, nil removes the population
func (r *TerminalRenderer) UploadPositions(id uuid.UUID, positions []vmath.Vec3F) {
	if positions == nil {
		delete(r.clouds, id)
		return
	}
	c := r.cloudFor(id)
	c.positions = append(c.positions[:0], positions...)
}

// UploadColors precomputes the depth-faded color of every point
func (r *TerminalRenderer) UploadColors(id uuid.UUID, colors []colorful.Color) {
	c := r.cloudFor(id)
	n := len(parameter.PointGlyphs)
	if len(c.bands) != n {
		c.bands = make([][]tcell.Color, n)
	}
	for k := range c.bands {
		band := c.bands[k][:0]
		for _, col := range colors {
			band = append(band, bandColor(col, k, n))
		}
		c.bands[k] = band
	}
}

func (r *TerminalRenderer) SetCameraPose(position, lookAt vmath.Vec3F) {
	r.rig.position = position
	r.rig.lookAt = lookAt
}

func (r *TerminalRenderer) SetCameraInputEnabled(enabled bool) {
	r.rig.setInput(enabled)
}

// CameraInputEnabled reports whether orbit and zoom keys are honored
func (r *TerminalRenderer) CameraInputEnabled() bool {
	return r.rig.input
}

// Orbit yaws the camera by one step in dir, false while the simulation owns the camera
func (r *TerminalRenderer) Orbit(dir int) bool {
	return r.rig.orbit(dir)
}

// Zoom moves the camera in (dir > 0) or out by one step
func (r *TerminalRenderer) Zoom(dir int) bool {
	return r.rig.zoomBy(dir)
}

// Drawn returns the number of cells holding a point in the last frame
func (r *TerminalRenderer) Drawn() int {
	return r.drawn
}

// Draw renders one frame: points, status bar, selection panel and key hints
func (r *TerminalRenderer) Draw(st cosmos.Status, sel *cosmos.Summary) {
	w, h := r.screen.Size()
	r.screen.Clear()
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.fill(0, 0, w, h, bg)

	viewH := h - parameter.TopMargin - parameter.BottomMargin
	r.drawn = 0
	if viewH > 0 {
		r.drawPoints(st, sel, w, viewH, bg)
	}

	r.drawStatusBar(st, w)
	if h > parameter.TopMargin+1 {
		r.drawPanel(sel, h-2, w, bg)
	}
	if h > parameter.TopMargin {
		r.drawText(0, h-1, w, parameter.KeyHintText, bg.Foreground(RgbHintText))
	}
	r.screen.Show()
}

// drawPoints projects every cloud, nearest point wins a cell
func (r *TerminalRenderer) drawPoints(st cosmos.Status, sel *cosmos.Summary, w, viewH int, bg tcell.Style) {
	proj, ok := r.rig.newProjector(w, viewH)
	if !ok {
		return
	}

	size := w * viewH
	if cap(r.depth) < size {
		r.depth = make([]float64, size)
	}
	r.depth = r.depth[:size]
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}

	glyphs := parameter.PointGlyphs
	n := len(glyphs)
	for _, c := range r.clouds {
		for i, pt := range c.positions {
			col, row, z, ok := proj.project(pt)
			if !ok || col < 0 || col >= w || row < 0 || row >= viewH {
				continue
			}
			cell := row*w + col
			prev := r.depth[cell]
			if z >= prev {
				continue
			}
			r.depth[cell] = z
			if math.IsInf(prev, 1) {
				r.drawn++
			}

			// Bands double in depth beyond the view distance
			k := 0
			if z > proj.distance {
				k = min(n-1, 1+int(math.Log2(z/proj.distance)))
			}
			fg := RgbPointDefault
			if k < len(c.bands) && i < len(c.bands[k]) {
				fg = c.bands[k][i]
			}
			r.screen.SetContent(col, row+parameter.TopMargin, glyphs[k], nil, bg.Foreground(fg))
		}
	}

	// Selection marker on top of everything
	if sel == nil {
		return
	}
	c, ok := r.clouds[st.Population]
	if !ok || sel.Index < 0 || sel.Index >= len(c.positions) {
		return
	}
	if col, row, _, ok := proj.project(c.positions[sel.Index]); ok && col >= 0 && col < w && row >= 0 && row < viewH {
		r.screen.SetContent(col, row+parameter.TopMargin, '◎', nil, bg.Foreground(RgbSelection).Bold(true))
	}
}

func (r *TerminalRenderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// drawText writes s from x, clipped at maxX, and returns the next free column
func (r *TerminalRenderer) drawText(x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
