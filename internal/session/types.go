package session

import "strings"

// Session is one class meeting from the schedule fixture. Sessions are
// read-only once loaded.
type Session struct {
	ID        string `yaml:"id"`
	Course    string `yaml:"course"`
	Title     string `yaml:"title"`
	Teacher   string `yaml:"teacher"`
	Contact   string `yaml:"contact"`
	Day       Day    `yaml:"day"`
	Room      string `yaml:"room"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Section   string `yaml:"section"`
	Color     string `yaml:"color"`
}

// noTeacher is the fixture's placeholder for sessions without a teacher.
const noTeacher = "-"

// Scheduled reports whether the session is bound to a weekday.
func (s Session) Scheduled() bool {
	return s.Day != NoDay
}

// HasContact reports whether the contact string carries an email address.
// Only those sessions can open the contact modal.
func (s Session) HasContact() bool {
	return strings.Contains(s.Contact, "@")
}

// HasDetails reports whether the card has anything to show below the title.
func (s Session) HasDetails() bool {
	return s.HasTeacher() || s.Room != "" || s.StartTime != ""
}

// HasTeacher reports whether the teacher field is a real name.
func (s Session) HasTeacher() bool {
	return s.Teacher != noTeacher && s.Teacher != ""
}

// TimeRange formats the start and end time for display.
func (s Session) TimeRange() string {
	if s.StartTime == "" {
		return ""
	}
	return s.StartTime + " - " + s.EndTime
}
