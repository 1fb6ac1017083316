package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
	"github.com/jh3/class-schedule/internal/state"
)

const (
	minColumnWidth = 30
	gridGap        = 1
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.ctrl.Snapshot()
	st := newStyles(PaletteFor(m.ctrl.ThemeScope()))

	if snap.ModalOpen() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.renderModal(st, snap),
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(st.backdrop),
		)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(st, snap))
	b.WriteString("\n")
	if menu := m.renderMenu(st, snap); menu != "" {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, menu))
		b.WriteString("\n")
	}
	b.WriteString(m.renderBody(st))
	b.WriteString("\n")
	b.WriteString(st.help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader(st styles, snap state.Snapshot) string {
	days := "none"
	switch {
	case snap.Days == session.AllDays():
		days = "all"
	case !snap.Days.Empty():
		days = snap.Days.String()
	}

	left := st.title.Render("▦ Weekly Class Schedule")
	status := st.indicator.Render(fmt.Sprintf("days: %s · %s · %s",
		days, strings.ToLower(snap.Sort.Label()), snap.Theme.Label()))

	row := lipgloss.JoinHorizontal(lipgloss.Center, left, "   ", m.search.View(), "   ", status)
	return st.header.Render(row)
}

func (m Model) renderBody(st styles) string {
	switch {
	case m.view.NoSearchResults:
		return renderEmpty(st, "No Results Found", "Try adjusting your search for course titles or teachers.")
	case m.view.NoClassesVisible:
		return renderEmpty(st, "No Classes to Display", "Try adjusting your day filter to see scheduled classes.")
	}

	var parts []string
	idx := 0
	if len(m.view.Days) > 0 {
		var columns []string
		perRow := columnsPerRow(m.width, len(m.view.Days))
		colWidth := max(minColumnWidth, m.width/perRow-gridGap)
		for _, g := range m.view.Days {
			columns = append(columns, m.renderColumn(st, g, colWidth, idx))
			idx += len(g.Sessions)
		}
		parts = append(parts, grid(columns, perRow))
	}

	if len(m.view.Unscheduled) > 0 {
		perRow := columnsPerRow(m.width, len(m.view.Unscheduled))
		cardWidth := max(minColumnWidth, m.width/perRow-gridGap)
		var cards []string
		for _, s := range m.view.Unscheduled {
			cards = append(cards, m.renderCard(st, s, cardWidth, idx == m.focus))
			idx++
		}
		title := st.section.Width(m.width).Align(lipgloss.Center).Render("Unscheduled Courses")
		parts = append(parts, title, grid(cards, perRow))
	}
	return strings.Join(parts, "\n")
}

func renderEmpty(st styles, title, hint string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		st.emptyTitle.Render(title),
		st.emptyHint.Render(hint),
		"",
	)
}

func (m Model) renderColumn(st styles, g schedule.DayGroup, width, firstIdx int) string {
	inner := width - st.column.GetHorizontalFrameSize()
	lines := []string{st.columnTitle.Width(inner).Render(g.Day.String())}
	if len(g.Sessions) == 0 {
		lines = append(lines, st.placeholder.Width(inner).Align(lipgloss.Center).Render("No classes scheduled."))
	}
	for i, s := range g.Sessions {
		lines = append(lines, m.renderCard(st, s, inner, firstIdx+i == m.focus))
	}
	return st.column.Width(width - st.column.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderCard draws one session card width cells wide, border included.
func (m Model) renderCard(st styles, s session.Session, width int, focused bool) string {
	box := st.card
	if focused {
		box = st.cardFocused
	}
	inner := max(10, width-box.GetHorizontalFrameSize())

	badge := st.badge.Render(s.Section)
	textWidth := max(4, inner-lipgloss.Width(badge)-3)
	heading := lipgloss.JoinVertical(lipgloss.Left,
		st.course.Render(s.Course),
		st.cardTitle.Width(textWidth).Render(s.Title),
	)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).
		Render(strings.TrimSuffix(strings.Repeat("┃\n", lipgloss.Height(heading)), "\n"))
	top := lipgloss.JoinHorizontal(lipgloss.Top, bar, " ", heading, " ", badge)

	lines := []string{top}
	if s.HasDetails() {
		lines = append(lines, st.rule.Render(strings.Repeat("─", inner)))
		if s.StartTime != "" {
			lines = append(lines, st.icon.Render("◷ ")+st.detail.Render(s.TimeRange()))
		}
		if s.Room != "" {
			lines = append(lines, st.icon.Render("⌂ ")+st.detail.Render("Room: "+s.Room))
		}
		if s.HasTeacher() {
			lines = append(lines, st.icon.Render("☺ ")+st.detail.Render(s.Teacher))
		}
	}
	return box.Width(width - box.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func columnsPerRow(width, n int) int {
	if n <= 0 {
		return 1
	}
	return max(1, min(n, width/(minColumnWidth+gridGap)))
}

// grid lays blocks out left to right, wrapping after perRow blocks.
func grid(blocks []string, perRow int) string {
	var rows []string
	for start := 0; start < len(blocks); start += perRow {
		end := min(len(blocks), start+perRow)
		var row []string
		for i, b := range blocks[start:end] {
			if i > 0 {
				row = append(row, strings.Repeat(" ", gridGap))
			}
			row = append(row, b)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
