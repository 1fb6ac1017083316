package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jh3/class-schedule/internal/state"
)

// rect is a screen region in cells.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// menuRect is where View draws the open menu panel: right-aligned directly
// under the header.
func (m Model) menuRect() rect {
	snap := m.ctrl.Snapshot()
	st := newStyles(PaletteFor(m.ctrl.ThemeScope()))
	panel := m.renderMenu(st, snap)
	if panel == "" {
		return rect{}
	}
	w, h := lipgloss.Size(panel)
	return rect{
		X: max(0, m.width-w),
		Y: lipgloss.Height(m.renderHeader(st, snap)),
		W: w,
		H: h,
	}
}

// modalRect is where View centres the contact modal.
func (m Model) modalRect() rect {
	snap := m.ctrl.Snapshot()
	if !snap.ModalOpen() {
		return rect{}
	}
	st := newStyles(PaletteFor(m.ctrl.ThemeScope()))
	w, h := lipgloss.Size(m.renderModal(st, snap))
	return rect{
		X: max(0, (m.width-w)/2),
		Y: max(0, (m.height-h)/2),
		W: w,
		H: h,
	}
}

// handleMouse turns presses into outside-click notifications for the open
// menu or modal, and item picks for presses on a menu line.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	snap := m.ctrl.Snapshot()
	if snap.ModalOpen() {
		if m.modalRect().contains(msg.X, msg.Y) {
			m.ctrl.ModalPointerDown()
			return nil
		}
		m.ctrl.BackdropPointerDown()
		return nil
	}

	if snap.OpenMenu == state.MenuNone {
		return nil
	}
	r := m.menuRect()
	if !r.contains(msg.X, msg.Y) {
		m.ctrl.PointerDownOutsideMenu()
		return nil
	}
	// One item per line between the top and bottom border.
	i := msg.Y - r.Y - 1
	if i >= 0 && i < len(menuItems(snap.OpenMenu)) {
		m.menuCursor = i
		m.activateMenuItem(snap.OpenMenu)
	}
	return nil
}
