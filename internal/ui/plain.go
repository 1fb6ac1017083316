package ui

import (
	"fmt"
	"io"

	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
)

// WritePlain prints a view as uncoloured text, for scripting.
func WritePlain(w io.Writer, v schedule.View) error {
	switch {
	case v.NoSearchResults:
		_, err := fmt.Fprintln(w, "No Results Found")
		return err
	case v.NoClassesVisible:
		_, err := fmt.Fprintln(w, "No Classes to Display")
		return err
	}

	for _, g := range v.Days {
		if _, err := fmt.Fprintln(w, g.Day); err != nil {
			return err
		}
		if len(g.Sessions) == 0 {
			if _, err := fmt.Fprintln(w, "  No classes scheduled."); err != nil {
				return err
			}
		}
		for _, s := range g.Sessions {
			if _, err := fmt.Fprintln(w, "  "+plainLine(s)); err != nil {
				return err
			}
		}
	}

	if len(v.Unscheduled) > 0 {
		if _, err := fmt.Fprintln(w, "Unscheduled Courses"); err != nil {
			return err
		}
		for _, s := range v.Unscheduled {
			if _, err := fmt.Fprintln(w, "  "+plainLine(s)); err != nil {
				return err
			}
		}
	}
	return nil
}

func plainLine(s session.Session) string {
	line := fmt.Sprintf("%s  %s", s.Course, s.Title)
	if tr := s.TimeRange(); tr != "" {
		line = tr + "  " + line
	}
	if s.Room != "" {
		line += "  room " + s.Room
	}
	if s.HasTeacher() {
		line += "  " + s.Teacher
	}
	return line
}
