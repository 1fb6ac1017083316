package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/koki-develop/go-fzf"

	"github.com/jh3/class-schedule/internal/session"
)

// ErrNoSessions is returned when there is nothing to pick from.
var ErrNoSessions = errors.New("no sessions to pick from")

// PickSession presents an interactive fuzzy finder over sessions. A nil
// session with a nil error means the user cancelled.
func PickSession(sessions []session.Session) (*session.Session, error) {
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}

	f, err := fzf.New(
		fzf.WithPrompt("Classes > "),
		fzf.WithInputPosition(fzf.InputPositionTop),
		fzf.WithLimit(1),
	)
	if err != nil {
		return nil, err
	}

	idxs, err := f.Find(
		sessions,
		func(i int) string {
			return formatSessionLine(sessions[i])
		},
		fzf.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 || i >= len(sessions) {
				return ""
			}
			return formatPreview(sessions[i])
		}),
	)
	if errors.Is(err, fzf.ErrAbort) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(idxs) == 0 {
		return nil, nil // User cancelled
	}

	return &sessions[idxs[0]], nil
}

func formatSessionLine(s session.Session) string {
	day := s.Day.String()
	if day == "" {
		day = "---"
	}
	teacher := s.Teacher
	if !s.HasTeacher() {
		teacher = ""
	}
	return fmt.Sprintf("%-3s  %-8s  %-8s  %s  %s", day, s.StartTime, s.Course, s.Title, teacher)
}

func formatPreview(s session.Session) string {
	var b strings.Builder

	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", s.Course, s.Title))
	b.WriteString(fmt.Sprintf("Section: %s\n", s.Section))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	if s.Scheduled() {
		b.WriteString(fmt.Sprintf("When: %s %s\n", s.Day, s.TimeRange()))
	} else {
		b.WriteString("When: unscheduled\n")
	}
	if s.Room != "" {
		b.WriteString(fmt.Sprintf("Room: %s\n", s.Room))
	}
	if s.HasTeacher() {
		b.WriteString(fmt.Sprintf("Teacher: %s\n", s.Teacher))
	}

	if s.HasContact() {
		c := session.ParseContact(s.Contact)
		b.WriteString("\n")
		if c.Phone != "" {
			b.WriteString(fmt.Sprintf("Phone: %s\n", c.Phone))
		}
		if c.Email != "" {
			b.WriteString(fmt.Sprintf("Email: %s\n", c.Email))
		}
	}

	return b.String()
}
