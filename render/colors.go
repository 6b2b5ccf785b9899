package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbStatusBar  = tcell.NewRGBColor(40, 42, 58)
	RgbStatusText = tcell.NewRGBColor(220, 220, 230)
	RgbBadgeText  = tcell.NewRGBColor(0, 0, 0) // Dark text on badges

	RgbLevelUniverseBg = tcell.NewRGBColor(192, 74, 208)  // Gas purple
	RgbLevelGalaxyBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbLevelSystemBg   = tcell.NewRGBColor(255, 210, 161) // Warm star
	RgbAutopilotBg     = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbProgress        = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbPanelText = tcell.NewRGBColor(180, 180, 180)
	RgbHintText  = tcell.NewRGBColor(90, 92, 110)
	RgbSelection = tcell.NewRGBColor(255, 255, 0) // Bright yellow marker

	RgbPointDefault = tcell.NewRGBColor(200, 200, 200)
)

// background as a blend target for depth fading
var backgroundColor = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}

// depthFade is the blend toward the background at the farthest glyph band
const depthFade = 0.65

// toTcell converts a colorful color to a terminal RGB color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// bandColor fades c toward the background for depth band k of n
func bandColor(c colorful.Color, k, n int) tcell.Color {
	if n <= 1 || k <= 0 {
		return toTcell(c)
	}
	t := depthFade * float64(k) / float64(n-1)
	return toTcell(c.BlendRgb(backgroundColor, t))
}
