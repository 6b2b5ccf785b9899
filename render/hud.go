package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cosmos/cosmos"
	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
)

// levelBadge returns badge text and background for a view level
func levelBadge(tier generator.Tier) (string, tcell.Color) {
	switch tier {
	case generator.TierGalaxy:
		return parameter.LevelTextGalaxy, RgbLevelGalaxyBg
	case generator.TierSystem:
		return parameter.LevelTextSystem, RgbLevelSystemBg
	default:
		return parameter.LevelTextUniverse, RgbLevelUniverseBg
	}
}

// progressBar renders p in [0,1] as a fixed-width bar
func progressBar(p float64) string {
	filled := int(p * parameter.ProgressBarWidth)
	filled = max(0, min(parameter.ProgressBarWidth, filled))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", parameter.ProgressBarWidth-filled) + "]"
}

// drawStatusBar draws level, transition and autopilot state on the top row
func (r *TerminalRenderer) drawStatusBar(st cosmos.Status, w int) {
	barStyle := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	r.fill(0, 0, w, 1, barStyle)

	text, badgeBg := levelBadge(st.Level)
	x := r.drawText(0, 0, w, text, tcell.StyleDefault.Background(badgeBg).Foreground(RgbBadgeText).Bold(true))

	if st.Autopilot {
		x = r.drawText(x+1, 0, w, parameter.AutopilotText, tcell.StyleDefault.Background(RgbAutopilotBg).Foreground(RgbBadgeText))
	}

	if st.State == parameter.NavStateTransit {
		x = r.drawText(x+1, 0, w, progressBar(st.Progress), barStyle.Foreground(RgbProgress))
	}

	info := fmt.Sprintf(" seed %d  bodies %d  t %.1fs", st.Seed, st.Bodies, st.SimTime)
	r.drawText(x, 0, w, info, barStyle)
}

// drawPanel draws the selected target summary on row y
func (r *TerminalRenderer) drawPanel(sel *cosmos.Summary, y, w int, bg tcell.Style) {
	style := bg.Foreground(RgbPanelText)
	if sel == nil {
		r.drawText(1, y, w, "no target selected", style)
		return
	}

	class := sel.Class
	if class == "" {
		class = sel.Kind
	}
	text := fmt.Sprintf("%s  %s  %s  age %.3f Gyr  M %.3g  R %.3g  L %.3g",
		sel.Designation, class, sel.Lifecycle, sel.Age, sel.Mass, sel.Radius, sel.Luminosity)
	r.drawText(1, y, w, text, style.Bold(true))
}
