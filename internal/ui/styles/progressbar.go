package styles

import "strings"

const (
	barFilled = "█"
	barEmpty  = "░"
)

// ProgressBar renders a gradient-filled bar of the given width for a percent
// in 0–100.
func ProgressBar(percent float64, width int, theme Theme) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	bar := ApplyGradient(strings.Repeat(barFilled, filled), theme.Secondary, theme.SelectionBg)
	rest := theme.Subtle().Render(strings.Repeat(barEmpty, width-filled))
	return bar + rest
}
