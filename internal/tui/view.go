package tui

import (
	"fmt"
	"slices"
	"strings"
)

// listTop is the screen line of the first row: frame border, title, blank.
const listTop = 3

func (m Model) View() string {
	t := m.opts.Theme
	n := m.data.NumberOfRows()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s   %s %d", t.Title.Render("Items"), t.Accent.Render(t.Grip), n))
	if !m.opts.DragInteractionEnabled {
		b.WriteString("  " + t.Muted.Render("(drag disabled)"))
	}
	b.WriteString("\n\n")

	order := m.previewOrder(n)
	end := min(m.offset+m.visibleRows(), n)
	for i := m.offset; i < end; i++ {
		text := m.data.CellForRow(order[i]).Text
		switch {
		case m.session != nil && i == m.session.destination:
			b.WriteString(t.Drop.Render(t.Grip+" ") + t.Dragged.Render(text))
		case m.session == nil && i == m.cursor:
			b.WriteString(t.Selected.Render(t.Cursor+" "+text))
		default:
			b.WriteString("  " + text)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.statusErr {
		b.WriteString(t.Error.Render(m.status))
	} else {
		b.WriteString(t.Muted.Render(m.status))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.bindings()))

	frame := t.FrameStyle()
	if m.width > 2 {
		frame = frame.Width(m.width - 2)
	}
	return frame.Render(b.String())
}

// previewOrder maps screen positions to data source rows, applying the
// pending drop of an open session without touching the data source.
func (m Model) previewOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if s := m.session; s != nil && s.source != s.destination {
		order = slices.Delete(order, s.source, s.source+1)
		order = slices.Insert(order, s.destination, s.source)
	}
	return order
}

func (m Model) visibleRows() int {
	n := m.data.NumberOfRows()
	if m.height <= 0 {
		return n
	}
	chrome := 7
	if m.help.ShowAll {
		chrome += 2
	}
	return max(m.height-chrome, 1)
}

// rowAt maps a screen line to a data source row.
func (m Model) rowAt(y int) (int, bool) {
	r := y - listTop
	if r < 0 || r >= m.visibleRows() {
		return 0, false
	}
	row := m.offset + r
	if row >= m.data.NumberOfRows() {
		return 0, false
	}
	return row, true
}

func (m *Model) scrollTo(row int) {
	vis := m.visibleRows()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+vis {
		m.offset = row - vis + 1
	}
	m.offset = max(m.offset, 0)
}
