package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/idilsaglam/dragsort/internal/reorder"
	"github.com/idilsaglam/dragsort/internal/shared"
	"github.com/idilsaglam/dragsort/internal/ui"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

var _ tea.Model = Model{}

// Options tune the host.
type Options struct {
	// DragInteractionEnabled is the only switch that suppresses dragging.
	DragInteractionEnabled bool
	Theme                  ui.Theme
	Logger                 *log.Logger
	// Clipboard receives copied payload text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// session is an in-flight drag.
type session struct {
	source      int
	destination int
	items       []reorder.DragItem
	mouse       bool
}

// Model is the Bubble Tea model of the list host.
type Model struct {
	data reorder.DataSource
	drag reorder.DragSource
	opts Options

	keys keyMap
	help help.Model

	cursor  int
	offset  int
	session *session

	width, height int

	status    string
	statusErr bool
}

// New builds a host over data and drag.
func New(data reorder.DataSource, drag reorder.DragSource, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Theme.Name == "" {
		opts.Theme = ui.NewTheme("")
	}
	opts.Logger = shared.WithLogger(opts.Logger, "component", "tui")

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Accent
	h.Styles.FullKey = opts.Theme.Accent
	return Model{
		data: data,
		drag: drag,
		opts: opts,
		keys: newKeyMap(),
		help: h,
	}
}

// Run starts the program on the alternate screen with mouse motion reporting
// and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.scrollTo(m.focusRow())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) bindings() keyMap {
	k := m.keys.dragging(m.session != nil)
	if !m.opts.DragInteractionEnabled {
		k.grab.SetEnabled(false)
	}
	return k
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.bindings()
	switch {
	case key.Matches(msg, k.quit):
		return m, tea.Quit
	case key.Matches(msg, k.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, k.up):
		m.step(-1)
	case key.Matches(msg, k.down):
		m.step(1)
	case key.Matches(msg, k.drop):
		m.dropSession()
	case key.Matches(msg, k.cancel):
		m.cancelSession()
	case key.Matches(msg, k.grab):
		m.beginSession(m.cursor, false)
	case key.Matches(msg, k.yank):
		m.copyRow(m.cursor)
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) Model {
	row, onRow := m.rowAt(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.step(-1)
		case tea.MouseButtonWheelDown:
			m.step(1)
		case tea.MouseButtonLeft:
			if onRow && m.session == nil {
				m.cursor = row
				m.beginSession(row, true)
			}
		}
	case tea.MouseActionMotion:
		if m.session != nil && m.session.mouse {
			m.session.destination = m.clamp(m.offset + msg.Y - listTop)
			m.scrollTo(m.session.destination)
		}
	case tea.MouseActionRelease:
		if m.session != nil && m.session.mouse {
			m.dropSession()
		}
	}
	return *m
}

// step moves the drag destination while dragging, the cursor otherwise.
func (m *Model) step(delta int) {
	if m.session != nil {
		m.session.destination = m.clamp(m.session.destination + delta)
	} else {
		m.cursor = m.clamp(m.cursor + delta)
	}
	m.scrollTo(m.focusRow())
}

func (m *Model) beginSession(row int, mouse bool) {
	if !m.opts.DragInteractionEnabled || m.data.NumberOfRows() == 0 {
		return
	}
	items := m.drag.ItemsForBeginning(row)
	m.session = &session{source: row, destination: row, items: items, mouse: mouse}
	m.setStatus("dragging "+payloadLabel(items), false)
	m.opts.Logger.Debug("drag began", "row", row, "items", len(items), "mouse", mouse)
}

func (m *Model) dropSession() {
	s := m.session
	if s == nil {
		return
	}
	m.session = nil
	m.data.MoveRow(s.source, s.destination)
	m.cursor = s.destination
	m.scrollTo(m.cursor)
	if s.source == s.destination {
		m.setStatus("", false)
	} else {
		m.setStatus(fmt.Sprintf("moved %d → %d", s.source, s.destination), false)
	}
	m.opts.Logger.Debug("drag dropped", "from", s.source, "to", s.destination)
}

func (m *Model) cancelSession() {
	if m.session == nil {
		return
	}
	m.opts.Logger.Debug("drag cancelled", "row", m.session.source)
	m.cursor = m.session.source
	m.session = nil
	m.scrollTo(m.cursor)
	m.setStatus("drag cancelled", false)
}

func (m *Model) copyRow(row int) {
	if m.data.NumberOfRows() == 0 {
		return
	}
	items := m.drag.ItemsForBeginning(row)
	if len(items) == 0 {
		m.setStatus("nothing to copy", false)
		return
	}
	if err := m.opts.Clipboard(items[0].Text); err != nil {
		err = fmt.Errorf("%w: %v", shared.ErrClipboard, err)
		m.opts.Logger.Warn("copy failed", "row", row, "err", err)
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("copied "+payloadLabel(items), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m Model) focusRow() int {
	if m.session != nil {
		return m.session.destination
	}
	return m.cursor
}

func (m Model) clamp(row int) int {
	n := m.data.NumberOfRows()
	switch {
	case n == 0 || row < 0:
		return 0
	case row >= n:
		return n - 1
	}
	return row
}

func payloadLabel(items []reorder.DragItem) string {
	if len(items) == 0 {
		return "(no payload)"
	}
	return fmt.Sprintf("%q", items[0].Text)
}
