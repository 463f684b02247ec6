package navigator

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/pitrio/internal/ui/styles"
)

// Header line plus separator sit above the list.
const chromeHeight = 2

func (m Model[T]) listHeight() int {
	return m.height - chromeHeight
}

func (m Model[T]) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	theme := styles.Default()

	header := theme.Muted().Render(truncate(m.CurrentPath(), m.width))
	separator := theme.Subtle().Render(strings.Repeat("─", max(m.width, 0)))

	listHeight := m.listHeight()
	lines := make([]string, 0, listHeight+chromeHeight)
	lines = append(lines, header, separator)

	for i := range listHeight {
		idx := i + m.offset
		if idx >= len(m.items) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, m.renderItem(m.items[idx], idx == m.cursor))
	}

	return strings.Join(lines, "\n")
}

func (m Model[T]) renderItem(node T, selected bool) string {
	theme := styles.Default()

	name := node.DisplayName()
	if node.IsContainer() {
		name += "/"
	}

	var size string
	if sized, ok := any(node).(interface{ Size() int64 }); ok && !node.IsContainer() {
		size = humanize.Bytes(uint64(sized.Size()))
	}

	prefix := "  "
	if selected {
		prefix = "> "
	}

	// Reserve room for the right-aligned size column.
	sizeWidth := runewidth.StringWidth(size)
	maxName := m.width - len(prefix)
	if sizeWidth > 0 {
		maxName -= sizeWidth + 1
	}
	name = truncate(name, max(maxName, 0))

	line := prefix + name
	if sizeWidth > 0 {
		padding := m.width - runewidth.StringWidth(line) - sizeWidth
		if padding > 0 {
			line += strings.Repeat(" ", padding) + size
		}
	}

	if selected {
		return theme.Cursor().Render(line)
	}
	if node.IsContainer() {
		return theme.Accent().Render(line)
	}
	return theme.Base().Render(line)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
