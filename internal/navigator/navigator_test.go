package navigator

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type memNode struct {
	id       string
	name     string
	dir      bool
	playable bool
}

func (n memNode) ID() string          { return n.id }
func (n memNode) DisplayName() string { return n.name }
func (n memNode) IsContainer() bool   { return n.dir }
func (n memNode) IsPlayable() bool    { return n.playable }

type memSource struct {
	root     memNode
	children map[string][]memNode
	parents  map[string]memNode
}

func (s *memSource) Root() memNode { return s.root }

func (s *memSource) Children(parent memNode) ([]memNode, error) {
	return s.children[parent.id], nil
}

func (s *memSource) Parent(node memNode) *memNode {
	p, ok := s.parents[node.id]
	if !ok {
		return nil
	}
	return &p
}

func (s *memSource) DisplayPath(node memNode) string { return node.id }

func testSource() *memSource {
	root := memNode{id: "/", name: "/", dir: true}
	album := memNode{id: "/album", name: "album", dir: true}
	return &memSource{
		root: root,
		children: map[string][]memNode{
			"/": {
				album,
				{id: "/a.mp3", name: "a.mp3", playable: true},
				{id: "/b.mp3", name: "b.mp3", playable: true},
				{id: "/notes.txt", name: "notes.txt"},
				{id: "/c.mp3", name: "c.mp3", playable: true},
			},
			"/album": {
				{id: "/album/x.mp3", name: "x.mp3", playable: true},
			},
		},
		parents: map[string]memNode{
			"/album":       root,
			"/album/x.mp3": album,
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_SelectsFirstItem(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	sel := m.Selected()
	require.NotNil(t, sel)
	require.Equal(t, "album", sel.DisplayName())
}

func TestUpdate_CursorMovement(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	m, _ = m.Update(keyMsg("j"))
	require.Equal(t, "a.mp3", m.SelectedName())

	m, _ = m.Update(keyMsg("j"))
	require.Equal(t, "b.mp3", m.SelectedName())

	m, _ = m.Update(keyMsg("k"))
	require.Equal(t, "a.mp3", m.SelectedName())
}

func TestUpdate_CursorStopsAtEdges(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	m, _ = m.Update(keyMsg("k"))
	require.Equal(t, "album", m.SelectedName())

	for range 10 {
		m, _ = m.Update(keyMsg("j"))
	}
	require.Equal(t, "c.mp3", m.SelectedName())
}

func TestUpdate_EnterDirectory(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	m, cmd := m.Update(keyMsg("l"))

	require.Equal(t, "/album", m.CurrentPath())
	require.Equal(t, "x.mp3", m.SelectedName())
	require.NotNil(t, cmd)

	msg, ok := cmd().(NavigationChangedMsg)
	require.True(t, ok)
	require.Equal(t, "/album", msg.CurrentPath)
}

func TestUpdate_ParentReselectsChildFolder(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	m, _ = m.Update(keyMsg("l")) // into /album
	m, _ = m.Update(keyMsg("h")) // back up

	require.Equal(t, "/", m.CurrentPath())
	require.Equal(t, "album", m.SelectedName())
}

func TestUpdate_EnterOnFileIsNoOp(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	m, _ = m.Update(keyMsg("j")) // a.mp3
	m, cmd := m.Update(keyMsg("l"))

	require.Equal(t, "/", m.CurrentPath())
	require.Nil(t, cmd)
}

func TestFocusByName(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	m.FocusByName("b.mp3")
	require.Equal(t, "b.mp3", m.SelectedName())

	// Unknown names leave the selection alone.
	m.FocusByName("zzz.mp3")
	require.Equal(t, "b.mp3", m.SelectedName())
}

func TestNextPlayable(t *testing.T) {
	m, err := New[memNode](testSource())
	require.NoError(t, err)

	// From the folder at the top, the first playable leaf is a.mp3.
	next := m.NextPlayable()
	require.NotNil(t, next)
	require.Equal(t, "a.mp3", next.DisplayName())

	next = m.NextPlayable()
	require.Equal(t, "b.mp3", next.DisplayName())

	// notes.txt is skipped.
	next = m.NextPlayable()
	require.Equal(t, "c.mp3", next.DisplayName())

	require.Nil(t, m.NextPlayable())
}

func TestFileSource_ListsOnlyFoldersAndMusic(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"track.mp3", "cover.jpg", ".hidden.mp3", "zz.flac"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	src, err := NewFileSource(dir, false)
	require.NoError(t, err)

	nodes, err := src.Children(src.Root())
	require.NoError(t, err)

	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.DisplayName()
	}
	// Folders first, then files alphabetically; jpg and hidden skipped.
	require.Equal(t, []string{"sub", "track.mp3", "zz.flac"}, names)
}

func TestFileSource_ShowHidden(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".secret.mp3"), []byte("x"), 0o644))

	src, err := NewFileSource(dir, true)
	require.NoError(t, err)

	nodes, err := src.Children(src.Root())
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, ".secret.mp3", nodes[0].DisplayName())
}

func TestFileSource_ParentAtRoot(t *testing.T) {
	src, err := NewFileSource("/", false)
	require.NoError(t, err)

	require.Nil(t, src.Parent(src.Root()))
}
