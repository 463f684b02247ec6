package navigator

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NavigationChangedMsg is sent when the current folder or selection changes.
type NavigationChangedMsg struct {
	CurrentPath  string
	SelectedName string
}

type Model[T Node] struct {
	source  Source[T]
	current T
	items   []T
	cursor  int
	offset  int
	width   int
	height  int
}

func New[T Node](source Source[T]) (Model[T], error) {
	m := Model[T]{
		source:  source,
		current: source.Root(),
	}

	if err := m.refresh(); err != nil {
		return Model[T]{}, err
	}

	return m, nil
}

func (m *Model[T]) refresh() error {
	var err error
	m.items, err = m.source.Children(m.current)
	if err != nil {
		return err
	}

	if m.cursor >= len(m.items) {
		m.cursor = max(0, len(m.items)-1)
	}
	return nil
}

func (m *Model[T]) adjustOffset() {
	listHeight := m.listHeight()
	if listHeight <= 0 {
		return
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
}

func (m *Model[T]) focusNode(id string) {
	for i, node := range m.items {
		if node.ID() == id {
			m.cursor = i
			m.centerCursor()
			return
		}
	}
	m.cursor = 0
	m.offset = 0
}

// FocusByName selects the item with the given display name. If not found,
// selection stays where it is.
func (m *Model[T]) FocusByName(name string) {
	for i, node := range m.items {
		if node.DisplayName() == name {
			m.cursor = i
			m.centerCursor()
			return
		}
	}
}

func (m *Model[T]) centerCursor() {
	listHeight := m.listHeight()
	if listHeight <= 0 {
		return
	}

	m.offset = max(m.cursor-listHeight/2, 0)
	maxOffset := max(len(m.items)-listHeight, 0)
	if m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func (m Model[T]) Selected() *T {
	if len(m.items) == 0 || m.cursor >= len(m.items) {
		return nil
	}
	return &m.items[m.cursor]
}

// NextPlayable moves the cursor to the next playable item after the current
// selection and returns it, or nil when none remains in this folder.
func (m *Model[T]) NextPlayable() *T {
	for i := m.cursor + 1; i < len(m.items); i++ {
		if m.items[i].IsPlayable() {
			m.cursor = i
			m.adjustOffset()
			return &m.items[i]
		}
	}
	return nil
}

// CurrentPath returns the display path of the current folder.
func (m Model[T]) CurrentPath() string {
	return m.source.DisplayPath(m.current)
}

// SelectedName returns the display name of the selected item, or empty.
func (m Model[T]) SelectedName() string {
	if selected := m.Selected(); selected != nil {
		return (*selected).DisplayName()
	}
	return ""
}

// CurrentItems returns the items in the current folder.
func (m Model[T]) CurrentItems() []T {
	return m.items
}

func (m Model[T]) navigationChangedCmd() tea.Cmd {
	return func() tea.Msg {
		return NavigationChangedMsg{
			CurrentPath:  m.CurrentPath(),
			SelectedName: m.SelectedName(),
		}
	}
}

func (m Model[T]) Init() tea.Cmd {
	return nil
}

func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	var navChanged bool

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustOffset()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.adjustOffset()
				navChanged = true
			}

		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.adjustOffset()
				navChanged = true
			}

		case "left", "h":
			parent := m.source.Parent(m.current)
			if parent != nil {
				prevID := m.current.ID()
				m.current = *parent
				_ = m.refresh()
				m.focusNode(prevID)
				navChanged = true
			}

		case "right", "l", "enter":
			if len(m.items) > 0 {
				selected := m.items[m.cursor]
				if selected.IsContainer() {
					m.current = selected
					m.cursor = 0
					m.offset = 0
					_ = m.refresh()
					navChanged = true
				}
			}
		}
	}

	if navChanged {
		return m, m.navigationChangedCmd()
	}
	return m, nil
}
