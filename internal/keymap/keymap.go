// Package keymap defines the application key bindings.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the UI reacts to. It satisfies help.KeyMap so
// the help line renders straight from the bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Back        key.Binding
	Open        key.Binding
	TogglePause key.Binding
	Quit        key.Binding
}

func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "parent"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("enter", "open/play"),
		),
		TogglePause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single-line help shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.TogglePause, k.Back, k.Quit}
}

// FullHelp groups bindings by concern: navigation, playback, application.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Back, k.Open},
		{k.TogglePause},
		{k.Quit},
	}
}
