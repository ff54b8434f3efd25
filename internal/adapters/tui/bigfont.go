package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphRows is the height of the block digit font.
const glyphRows = 5

// glyphs maps the characters of a mm:ss readout to 3-column block digits;
// the colon is a single column.
var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// renderCountdown renders a mm:ss string as block glyphs when the
// terminal has room for them, falling back to a single bold line on
// small screens.
func renderCountdown(timeStr string, color lipgloss.Color, width, height int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < countdownWidth(timeStr) || height < glyphRows+7 {
		return style.Render(timeStr)
	}

	rows := make([]string, glyphRows)
	for _, ch := range timeStr {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			rows[i] += glyph[i]
		}
	}
	for i, row := range rows {
		rows[i] = style.Render(row)
	}
	return strings.Join(rows, "\n")
}

// countdownWidth returns the rendered width of the block form of timeStr.
func countdownWidth(timeStr string) int {
	w := 0
	for _, ch := range timeStr {
		glyph, ok := glyphs[ch]
		if !ok {
			continue
		}
		if w > 0 {
			w++
		}
		w += len([]rune(glyph[0]))
	}
	return w
}
