package session

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Day is a weekday a session meets on. The zero value means the session is
// unscheduled.
type Day int

const (
	NoDay Day = iota
	Sun
	Mon
	Tue
	Wed
	Thu
	Fri
)

// Week is the canonical display order.
var Week = []Day{Sun, Mon, Tue, Wed, Thu, Fri}

var dayNames = map[Day]string{
	Sun: "Sun",
	Mon: "Mon",
	Tue: "Tue",
	Wed: "Wed",
	Thu: "Thu",
	Fri: "Fri",
}

func (d Day) String() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return ""
}

// ParseDay accepts a three-letter day name, case-insensitively.
func ParseDay(s string) (Day, error) {
	for _, d := range Week {
		if strings.EqualFold(dayNames[d], strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return NoDay, fmt.Errorf("unknown day %q", s)
}

// UnmarshalYAML decodes a day name. A null or missing day leaves NoDay.
func (d *Day) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw == "" {
		*d = NoDay
		return nil
	}
	parsed, err := ParseDay(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML writes the day name, or null for unscheduled sessions.
func (d Day) MarshalYAML() (interface{}, error) {
	if d == NoDay {
		return nil, nil
	}
	return d.String(), nil
}

// DaySet is a set of weekdays. It is a value type; mutators return a new set.
type DaySet uint8

// AllDays returns the set holding every day of the week.
func AllDays() DaySet {
	var s DaySet
	for _, d := range Week {
		s = s.With(d)
	}
	return s
}

// NewDaySet builds a set from the given days.
func NewDaySet(days ...Day) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

func bit(d Day) DaySet {
	if d <= NoDay || d > Fri {
		return 0
	}
	return 1 << uint(d-1)
}

func (s DaySet) Has(d Day) bool {
	b := bit(d)
	return b != 0 && s&b != 0
}

func (s DaySet) With(d Day) DaySet {
	return s | bit(d)
}

func (s DaySet) Without(d Day) DaySet {
	return s &^ bit(d)
}

// Toggle flips membership of d.
func (s DaySet) Toggle(d Day) DaySet {
	return s ^ bit(d)
}

// Days lists the members in canonical week order.
func (s DaySet) Days() []Day {
	var days []Day
	for _, d := range Week {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s DaySet) Len() int {
	return len(s.Days())
}

func (s DaySet) Empty() bool {
	return s&AllDays() == 0
}

func (s DaySet) String() string {
	days := s.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ",")
}

// ParseDays parses a comma separated list such as "Sun,Mon". "all" selects
// the whole week and "none" or an empty string selects nothing.
func ParseDays(s string) (DaySet, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "all":
		return AllDays(), nil
	case "", "none":
		return 0, nil
	}
	var set DaySet
	for _, part := range strings.Split(s, ",") {
		d, err := ParseDay(part)
		if err != nil {
			return 0, err
		}
		set = set.With(d)
	}
	return set, nil
}
