package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
	"github.com/jh3/class-schedule/internal/state"
)

type menuAction int

const (
	actionToggleDay menuAction = iota
	actionSelectAll
	actionDeselectAll
	actionSort
	actionTheme
)

// menuItem is one line of a dropdown panel.
type menuItem struct {
	label  string
	action menuAction
	day    session.Day
	sort   schedule.SortOption
	theme  state.Theme
}

func menuItems(which state.Menu) []menuItem {
	var items []menuItem
	switch which {
	case state.MenuFilter:
		for _, d := range session.Week {
			items = append(items, menuItem{label: d.String(), action: actionToggleDay, day: d})
		}
		items = append(items,
			menuItem{label: "Select All", action: actionSelectAll},
			menuItem{label: "Deselect All", action: actionDeselectAll},
		)
	case state.MenuSort:
		for _, o := range schedule.SortOptions {
			items = append(items, menuItem{label: o.Label(), action: actionSort, sort: o})
		}
	case state.MenuTheme:
		for _, t := range state.Themes {
			items = append(items, menuItem{label: t.Label, action: actionTheme, theme: t.Name})
		}
	}
	return items
}

// openMenu toggles which and parks the cursor on the active entry.
func (m *Model) openMenu(which state.Menu) {
	m.ctrl.ToggleMenu(which)
	m.menuCursor = 0

	snap := m.ctrl.Snapshot()
	for i, item := range menuItems(snap.OpenMenu) {
		if (item.action == actionSort && item.sort == snap.Sort) ||
			(item.action == actionTheme && item.theme == snap.Theme) {
			m.menuCursor = i
		}
	}
}

// handleMenuKey handles keys meant for the open menu. Keys it does not claim
// fall through to the browse handler.
func (m *Model) handleMenuKey(msg tea.KeyMsg, which state.Menu) (tea.Cmd, bool) {
	items := menuItems(which)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = max(0, m.menuCursor-1)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = min(len(items)-1, m.menuCursor+1)
	case key.Matches(msg, m.keys.Toggle):
		m.activateMenuItem(which)
	case key.Matches(msg, m.keys.Close):
		m.ctrl.HandleEscape()
	case which == state.MenuFilter && key.Matches(msg, m.keys.SelectAll):
		m.ctrl.SelectAllDays()
	case which == state.MenuFilter && key.Matches(msg, m.keys.DeselectAll):
		m.ctrl.DeselectAllDays()
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) activateMenuItem(which state.Menu) {
	items := menuItems(which)
	if m.menuCursor < 0 || m.menuCursor >= len(items) {
		return
	}
	item := items[m.menuCursor]
	switch item.action {
	case actionToggleDay:
		m.ctrl.ToggleDay(item.day)
	case actionSelectAll:
		m.ctrl.SelectAllDays()
	case actionDeselectAll:
		m.ctrl.DeselectAllDays()
	case actionSort:
		_ = m.ctrl.SetSortOption(item.sort)
	case actionTheme:
		_ = m.ctrl.SetTheme(item.theme)
	}
}

func (m Model) renderMenu(st styles, snap state.Snapshot) string {
	if snap.OpenMenu == state.MenuNone {
		return ""
	}

	var lines []string
	for i, item := range menuItems(snap.OpenMenu) {
		cursor := "  "
		if i == m.menuCursor {
			cursor = st.menuCursor.Render("› ")
		}

		label := item.label
		active := false
		switch item.action {
		case actionToggleDay:
			box := "[ ] "
			if snap.Days.Has(item.day) {
				box = "[x] "
			}
			label = box + label
		case actionSort:
			active = item.sort == snap.Sort
		case actionTheme:
			active = item.theme == snap.Theme
		}

		if active {
			lines = append(lines, cursor+st.menuActive.Render(label))
		} else {
			lines = append(lines, cursor+st.menuItem.Render(label))
		}
	}
	return st.menu.Render(strings.Join(lines, "\n"))
}
