package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jh3/class-schedule/internal/session"
	"github.com/jh3/class-schedule/internal/state"
)

type fakeClipboard struct {
	err    error
	copied []string
}

func (f *fakeClipboard) WriteText(text string) error {
	f.copied = append(f.copied, text)
	return f.err
}

func newTestModel(t *testing.T, clip *fakeClipboard) Model {
	t.Helper()
	store, err := session.Default()
	require.NoError(t, err)

	opts := Options{Controller: state.New(state.WithFeedbackDelay(time.Millisecond))}
	if clip != nil {
		opts.Clipboard = clip
	}
	return New(store.All(), opts)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func visibleIDs(m Model) []string {
	out := make([]string, len(m.visible))
	for i, s := range m.visible {
		out[i] = s.ID
	}
	return out
}

func TestInitialView(t *testing.T) {
	m := newTestModel(t, nil)

	require.Len(t, m.visible, 14)
	assert.Equal(t, "am4203-sun", m.visible[0].ID)
	assert.Equal(t, 0, m.focus)

	out := m.View()
	assert.Contains(t, out, "Weekly Class Schedule")
	assert.Contains(t, out, "Unscheduled Courses")
	assert.Contains(t, out, "No classes scheduled.")
	assert.Contains(t, out, "Fashion & Design")
	assert.NotNil(t, m.Init())
}

func TestMenuKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "f")
	assert.Equal(t, state.MenuFilter, m.ctrl.Snapshot().OpenMenu)

	m = press(t, m, "s")
	assert.Equal(t, state.MenuSort, m.ctrl.Snapshot().OpenMenu, "opening a menu closes the other")

	m = press(t, m, "s")
	assert.Equal(t, state.MenuNone, m.ctrl.Snapshot().OpenMenu)

	m = press(t, m, "t")
	require.Equal(t, state.MenuTheme, m.ctrl.Snapshot().OpenMenu)
	assert.Equal(t, 0, m.menuCursor, "cursor starts on the active theme")
	assert.Contains(t, m.View(), "Solarized")

	m = press(t, m, "down", "enter")
	snap := m.ctrl.Snapshot()
	assert.Equal(t, state.ThemeProfessional, snap.Theme)
	assert.Equal(t, state.MenuNone, snap.OpenMenu)
	assert.Equal(t, "theme-professional", m.ctrl.ThemeScope())
}

func TestSortMenu(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "s", "down", "enter")
	assert.Equal(t, "Sort by Title", m.ctrl.Snapshot().Sort.Label())
	assert.Equal(t, state.MenuNone, m.ctrl.Snapshot().OpenMenu)
	assert.Equal(t, []string{"te4208", "te4209", "te4207"}, visibleIDs(m)[11:])

	m = press(t, m, "s")
	assert.Equal(t, 1, m.menuCursor, "cursor starts on the active sort")
}

func TestFilterMenu(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "f", "space")
	snap := m.ctrl.Snapshot()
	assert.False(t, snap.Days.Has(session.Sun))
	assert.Equal(t, state.MenuFilter, snap.OpenMenu, "filter menu stays open")
	assert.Len(t, m.view.Days, 5)

	m = press(t, m, "n")
	assert.True(t, m.ctrl.Snapshot().Days.Empty())
	assert.Empty(t, m.view.Days)
	assert.Equal(t, []string{"te4207", "te4208", "te4209"}, visibleIDs(m))

	m = press(t, m, "a")
	assert.Equal(t, session.AllDays(), m.ctrl.Snapshot().Days)

	m = press(t, m, "esc")
	assert.Equal(t, state.MenuNone, m.ctrl.Snapshot().OpenMenu)
}

func TestNoClassesVisible(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "f", "n", "esc", "/")
	m = press(t, m, "mahmud")

	assert.True(t, m.view.NoClassesVisible)
	assert.Contains(t, m.View(), "No Classes to Display")
}

func TestSearch(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "f", "/")
	assert.Equal(t, state.MenuNone, m.ctrl.Snapshot().OpenMenu, "search closes the open menu")
	require.True(t, m.search.Focused())

	m = press(t, m, "viva")
	assert.Equal(t, "viva", m.ctrl.Snapshot().SearchQuery)
	assert.Equal(t, []string{"te4208"}, visibleIDs(m))

	m = press(t, m, "enter")
	assert.False(t, m.search.Focused())
	assert.Equal(t, "viva", m.ctrl.Snapshot().SearchQuery)
}

func TestSearchCapturesShortcutKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "/", "f", "q")

	assert.Equal(t, "fq", m.ctrl.Snapshot().SearchQuery)
	assert.Equal(t, state.MenuNone, m.ctrl.Snapshot().OpenMenu)
	assert.False(t, m.quitting)
}

func TestSearchNoResults(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "/", "quantum")

	assert.True(t, m.view.NoSearchResults)
	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), "No Results Found")
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "j", "j")
	assert.Equal(t, 2, m.focus)
	m = press(t, m, "k")
	assert.Equal(t, 1, m.focus)

	m = press(t, m, "l")
	assert.Equal(t, "te4204-mon", m.visible[m.focus].ID)
	m = press(t, m, "l", "l", "l")
	assert.Equal(t, "te4207", m.visible[m.focus].ID, "unscheduled list is the last column")
	m = press(t, m, "l")
	assert.Equal(t, "te4207", m.visible[m.focus].ID)
	m = press(t, m, "h")
	assert.Equal(t, "te4206-wed", m.visible[m.focus].ID)
}

func TestOpenAndCloseModal(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, "enter")
	snap := m.ctrl.Snapshot()
	require.True(t, snap.ModalOpen())
	assert.Equal(t, "am4203-sun", snap.Modal.Session.ID)

	out := m.View()
	assert.Contains(t, out, "ROY_Mowshumi Roy")
	assert.Contains(t, out, "01719854378")
	assert.Contains(t, out, "mroy@niter.edu.bd")
	assert.Contains(t, out, "p Copy")

	m = press(t, m, "q")
	assert.False(t, m.ctrl.Snapshot().ModalOpen(), "q closes the modal before quitting")
	assert.False(t, m.quitting)

	m = press(t, m, "enter", "esc")
	assert.False(t, m.ctrl.Snapshot().ModalOpen())
}

func TestUnscheduledCardHasNoModal(t *testing.T) {
	m := newTestModel(t, nil)
	m.focus = 11
	m = press(t, m, "enter")
	assert.False(t, m.ctrl.Snapshot().ModalOpen())
}

func TestCopyFeedback(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	m = press(t, m, "enter")

	m, cmd := send(t, m, keyMsg("p"))
	require.NotNil(t, cmd)
	m, tick := send(t, m, cmd())
	require.NotNil(t, tick)

	assert.Equal(t, []string{"01719854378"}, clip.copied)
	assert.Equal(t, state.CopyPhone, m.ctrl.Snapshot().Feedback)
	assert.Contains(t, m.View(), "✓ Copied!")

	_, again := send(t, m, keyMsg("p"))
	assert.Nil(t, again, "copy button is disabled while the marker shows")

	m, _ = send(t, m, tick())
	assert.Equal(t, state.CopyNone, m.ctrl.Snapshot().Feedback)
	assert.NotContains(t, m.View(), "✓ Copied!")
}

func TestSecondCopyReplacesFirst(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	m = press(t, m, "enter")

	m, cmd := send(t, m, keyMsg("p"))
	m, phoneTick := send(t, m, cmd())
	m, cmd = send(t, m, keyMsg("e"))
	m, emailTick := send(t, m, cmd())

	assert.Equal(t, []string{"01719854378", "mroy@niter.edu.bd"}, clip.copied)
	assert.Equal(t, state.CopyEmail, m.ctrl.Snapshot().Feedback)

	m, _ = send(t, m, phoneTick())
	assert.Equal(t, state.CopyEmail, m.ctrl.Snapshot().Feedback, "stale reset is ignored")

	m, _ = send(t, m, emailTick())
	assert.Equal(t, state.CopyNone, m.ctrl.Snapshot().Feedback)
}

func TestCopyFailureIsSilent(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	m := newTestModel(t, clip)
	m = press(t, m, "enter")

	m, cmd := send(t, m, keyMsg("e"))
	require.NotNil(t, cmd)
	m, tick := send(t, m, cmd())
	assert.Nil(t, tick)
	assert.Equal(t, state.CopyNone, m.ctrl.Snapshot().Feedback)
	assert.True(t, m.ctrl.Snapshot().ModalOpen())
}

func TestCopyCompletesAfterModalClosed(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	m = press(t, m, "enter")

	m, cmd := send(t, m, keyMsg("p"))
	require.NotNil(t, cmd)
	m = press(t, m, "esc")

	m, tick := send(t, m, cmd())
	assert.Nil(t, tick)
	assert.Equal(t, state.CopyNone, m.ctrl.Snapshot().Feedback)
}

func TestCopyWithoutClipboard(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter")
	_, cmd := send(t, m, keyMsg("p"))
	assert.Nil(t, cmd)
}

func TestMouseOnMenu(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "f")

	r := m.menuRect()
	require.Positive(t, r.W)
	m, _ = send(t, m, click(r.X+3, r.Y+1))
	assert.False(t, m.ctrl.Snapshot().Days.Has(session.Sun), "first line toggles Sunday")
	assert.Equal(t, state.MenuFilter, m.ctrl.Snapshot().OpenMenu)

	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: m.height - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.Equal(t, state.MenuFilter, m.ctrl.Snapshot().OpenMenu, "only the primary button counts")

	m, _ = send(t, m, click(0, m.height-1))
	assert.Equal(t, state.MenuNone, m.ctrl.Snapshot().OpenMenu)
}

func TestMouseOnModal(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter")

	r := m.modalRect()
	require.Positive(t, r.W)
	m, _ = send(t, m, click(r.X+1, r.Y+1))
	assert.True(t, m.ctrl.Snapshot().ModalOpen(), "presses inside the panel are absorbed")

	m, _ = send(t, m, click(0, 0))
	assert.False(t, m.ctrl.Snapshot().ModalOpen())
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, 200, m.width)
	assert.Equal(t, 50, m.height)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, "enter")

	m, cmd := send(t, m, keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestPaletteFor(t *testing.T) {
	for _, info := range state.Themes {
		_, ok := palettes[info.Name.Scope()]
		assert.True(t, ok, info.Name)
	}
	assert.Equal(t, palettes[state.DefaultTheme.Scope()], PaletteFor("theme-plaid"))
}
