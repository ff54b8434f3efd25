package tui

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pomoterm/pomoterm/internal/config"
	"github.com/pomoterm/pomoterm/internal/domain"
)

// blendHex linearly interpolates between two hex colors in RGB space.
// t=0 yields start, t=1 yields end; t is clamped to [0, 1]. Malformed
// colors fall back to the start value.
func blendHex(start, end string, t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a, err := colorful.Hex(start)
	if err != nil {
		return start
	}
	b, err := colorful.Hex(end)
	if err != nil {
		return start
	}
	return a.BlendRgb(b, t).Hex()
}

// gaugeColor computes the gauge color for the current timer state. The
// work gauge moves from the theme's start color to its end color as the
// phase runs out; breaks and the paused state each use a fixed color.
func gaugeColor(timer *domain.Timer, theme config.ThemeConfig) string {
	if !timer.Running() {
		return theme.ColorPaused
	}
	switch timer.Phase() {
	case domain.PhaseShortBreak:
		return theme.ColorShortBreak
	case domain.PhaseLongBreak:
		return theme.ColorLongBreak
	default:
		return blendHex(theme.ColorWorkStart, theme.ColorWorkEnd, timer.Progress())
	}
}

// emptyBarColor returns the color of the unfilled gauge portion.
func emptyBarColor(darkMode bool) string {
	if darkMode {
		return "#303030"
	}
	return "#D7D7D7"
}
