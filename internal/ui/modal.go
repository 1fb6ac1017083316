package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jh3/class-schedule/internal/state"
)

const modalWidth = 52

func (m Model) renderModal(st styles, snap state.Snapshot) string {
	modal := snap.Modal
	inner := modalWidth - st.modal.GetHorizontalFrameSize()

	closeHint := st.emptyHint.Render("esc ✕")
	title := st.modalTitle.Width(inner - lipgloss.Width(closeHint)).Render(modal.Session.Teacher)
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, title, closeHint)}

	if phone := modal.Contact.Phone; phone != "" {
		lines = append(lines,
			st.label.Render("Phone Number"),
			contactRow(st, inner, "☎ ", phone, "p", snap.Feedback == state.CopyPhone),
			"",
		)
	}
	if email := modal.Contact.Email; email != "" {
		lines = append(lines,
			st.label.Render("Email Address"),
			contactRow(st, inner, "✉ ", email, "e", snap.Feedback == state.CopyEmail),
		)
	}
	return st.modal.Width(modalWidth - st.modal.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// contactRow renders "icon value   [key] Copy", swapping the button for a
// confirmation while the copy feedback is showing.
func contactRow(st styles, width int, icon, value, keyName string, copied bool) string {
	button := st.button.Render(keyName + " Copy")
	if copied {
		button = st.copied.Render("✓ Copied!")
	}
	valueWidth := max(8, width-lipgloss.Width(icon)-lipgloss.Width(button)-1)
	text := st.value.Width(valueWidth).MaxHeight(1).Render(value)
	return lipgloss.JoinHorizontal(lipgloss.Top, st.icon.Render(icon), text, " ", button)
}
