// Package styles defines the color palette and pre-built lipgloss styles.
// The palette is the "xcad" terminal scheme: black background, blue accents.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the color palette.
type Theme struct {
	// Text hierarchy
	FgBase   lipgloss.Color // primary text
	FgMuted  lipgloss.Color // headers, labels
	FgSubtle lipgloss.Color // separators, size column

	// Accents
	Primary   lipgloss.Color // titles
	Secondary lipgloss.Color // status text
	AccentDir lipgloss.Color // directories

	// Selection
	SelectionFg lipgloss.Color
	SelectionBg lipgloss.Color

	// Status
	Error lipgloss.Color
}

var defaultTheme = Theme{
	FgBase:   lipgloss.Color("#CCCCCC"),
	FgMuted:  lipgloss.Color("#F1F1F1"),
	FgSubtle: lipgloss.Color("#999999"),

	Primary:   lipgloss.Color("#F1F1F1"),
	Secondary: lipgloss.Color("#5C78FF"),
	AccentDir: lipgloss.Color("#5AC8FF"),

	SelectionFg: lipgloss.Color("#FFFFFF"),
	SelectionBg: lipgloss.Color("#2B4FFF"),

	Error: lipgloss.Color("#FF4040"),
}

// Default returns the application theme.
func Default() Theme {
	return defaultTheme
}

func (t Theme) Base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgBase)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

func (t Theme) Subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgSubtle)
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
}

func (t Theme) Status() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Secondary)
}

func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.AccentDir)
}

func (t Theme) Cursor() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.SelectionFg).
		Background(t.SelectionBg).
		Bold(true)
}

func (t Theme) ErrorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error)
}
