package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/jh3/class-schedule/internal/clipboard"
	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
	"github.com/jh3/class-schedule/internal/state"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
)

// copyResultMsg reports a finished clipboard write.
type copyResultMsg struct {
	req state.CopyRequest
	err error
}

// feedbackExpiredMsg fires when a "Copied!" marker's delay has passed.
type feedbackExpiredMsg struct {
	handle state.ResetHandle
}

// Options wires a dashboard to its collaborators. Zero fields get defaults.
type Options struct {
	Pipeline   *schedule.Pipeline
	Controller *state.Controller
	Clipboard  clipboard.Writer
}

// Model is the bubbletea model for the schedule dashboard
type Model struct {
	sessions []session.Session
	pipeline *schedule.Pipeline
	ctrl     *state.Controller
	clip     clipboard.Writer

	search textinput.Model
	keys   keyMap
	help   help.Model

	view       schedule.View
	visible    []session.Session
	focus      int
	menuCursor int

	width    int
	height   int
	quitting bool
}

// New builds a dashboard over sessions.
func New(sessions []session.Session, opts Options) Model {
	if opts.Pipeline == nil {
		opts.Pipeline = schedule.NewPipeline(language.Und)
	}
	if opts.Controller == nil {
		opts.Controller = state.New()
	}

	ti := textinput.New()
	ti.Placeholder = "Search by course or teacher..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 100
	ti.Width = 36
	ti.SetValue(opts.Controller.Snapshot().SearchQuery)

	m := Model{
		sessions: sessions,
		pipeline: opts.Pipeline,
		ctrl:     opts.Controller,
		clip:     opts.Clipboard,
		search:   ti,
		keys:     keys,
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Weekly Class Schedule")
}

// Update handles one message and re-runs the pipeline over the new state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, min(36, msg.Width-60))
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case copyResultMsg:
		if msg.err != nil {
			m.ctrl.CopyFailed(msg.req, msg.err)
			return nil
		}
		if h, ok := m.ctrl.CopySucceeded(msg.req); ok {
			return expireAfter(h)
		}
		return nil

	case feedbackExpiredMsg:
		m.ctrl.ExpireFeedback(msg.handle)
		return nil
	}

	// Cursor blink and other textinput messages
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	snap := m.ctrl.Snapshot()
	switch {
	case snap.ModalOpen():
		return m.handleModalKey(msg)
	case m.search.Focused():
		return m.handleSearchKey(msg)
	case snap.OpenMenu != state.MenuNone:
		if cmd, handled := m.handleMenuKey(msg, snap.OpenMenu); handled {
			return cmd
		}
	}
	return m.handleBrowseKey(msg)
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
		m.ctrl.HandleEscape()
	case key.Matches(msg, m.keys.CopyPhone):
		return m.copy(state.CopyPhone)
	case key.Matches(msg, m.keys.CopyEmail):
		return m.copy(state.CopyEmail)
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.SetSearchQuery(m.search.Value())
	m.focus = 0
	return cmd
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.ctrl.CloseMenu()
		return m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.openMenu(state.MenuFilter)
	case key.Matches(msg, m.keys.Sort):
		m.openMenu(state.MenuSort)
	case key.Matches(msg, m.keys.Theme):
		m.openMenu(state.MenuTheme)

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Left):
		m.jumpGroup(-1)
	case key.Matches(msg, m.keys.Right):
		m.jumpGroup(1)

	case key.Matches(msg, m.keys.Open):
		if s, ok := m.focused(); ok {
			m.ctrl.OpenContactModal(s)
		}

	case key.Matches(msg, m.keys.Close):
		m.ctrl.HandleEscape()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// copy starts a clipboard write for the modal's phone or email.
func (m *Model) copy(kind state.CopyKind) tea.Cmd {
	if m.clip == nil {
		return nil
	}
	req, ok := m.ctrl.RequestCopy(kind)
	if !ok {
		return nil
	}
	clip := m.clip
	return func() tea.Msg {
		return copyResultMsg{req: req, err: clip.WriteText(req.Text)}
	}
}

func expireAfter(h state.ResetHandle) tea.Cmd {
	return tea.Tick(h.Delay, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{handle: h}
	})
}

// refresh recomputes the view model and keeps the focus in range.
func (m *Model) refresh() {
	m.view = m.pipeline.Build(m.sessions, m.ctrl.Query())
	m.visible = m.view.Visible()
	if m.focus >= len(m.visible) {
		m.focus = max(0, len(m.visible)-1)
	}
}

func (m *Model) focused() (session.Session, bool) {
	if m.focus < 0 || m.focus >= len(m.visible) {
		return session.Session{}, false
	}
	return m.visible[m.focus], true
}

func (m *Model) moveFocus(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.focus = max(0, min(len(m.visible)-1, m.focus+delta))
}

// jumpGroup moves focus to the first card of the next or previous non-empty
// column. The unscheduled list counts as the last column.
func (m *Model) jumpGroup(dir int) {
	starts := groupStarts(m.view)
	if len(starts) == 0 {
		return
	}
	current := 0
	for i, start := range starts {
		if m.focus >= start {
			current = i
		}
	}
	next := max(0, min(len(starts)-1, current+dir))
	m.focus = starts[next]
}

// groupStarts returns the visible index of the first card of each non-empty
// column.
func groupStarts(v schedule.View) []int {
	var starts []int
	idx := 0
	for _, g := range v.Days {
		if len(g.Sessions) > 0 {
			starts = append(starts, idx)
		}
		idx += len(g.Sessions)
	}
	if len(v.Unscheduled) > 0 {
		starts = append(starts, idx)
	}
	return starts
}

// Run starts the dashboard on the alternate screen with mouse support.
func Run(sessions []session.Session, opts Options) error {
	p := tea.NewProgram(New(sessions, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
