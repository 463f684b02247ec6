package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultBindings(t *testing.T) {
	k := Default()

	tests := []struct {
		name    string
		binding key.Binding
		msg     tea.KeyMsg
	}{
		{"vim up", k.Up, keyMsg("k")},
		{"vim down", k.Down, keyMsg("j")},
		{"vim back", k.Back, keyMsg("h")},
		{"vim open", k.Open, keyMsg("l")},
		{"enter opens", k.Open, tea.KeyMsg{Type: tea.KeyEnter}},
		{"space pauses", k.TogglePause, keyMsg(" ")},
		{"p pauses", k.TogglePause, keyMsg("p")},
		{"q quits", k.Quit, keyMsg("q")},
		{"ctrl+c quits", k.Quit, tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestPauseKeyDoesNotQuit(t *testing.T) {
	k := Default()

	require.False(t, key.Matches(keyMsg("p"), k.Quit))
	require.False(t, key.Matches(keyMsg("q"), k.TogglePause))
}

func TestHelpCoversEveryBinding(t *testing.T) {
	k := Default()

	var full []key.Binding
	for _, group := range k.FullHelp() {
		full = append(full, group...)
	}
	require.Len(t, full, 6)

	for _, b := range full {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
}
