package schedule

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jh3/class-schedule/internal/session"
)

// SortOption selects the ordering inside a day column and the unscheduled
// list.
type SortOption string

const (
	SortTime    SortOption = "time"
	SortTitle   SortOption = "title"
	SortTeacher SortOption = "teacher"
)

// SortOptions lists the options in menu order.
var SortOptions = []SortOption{SortTime, SortTitle, SortTeacher}

var sortLabels = map[SortOption]string{
	SortTime:    "Sort by Time",
	SortTitle:   "Sort by Title",
	SortTeacher: "Sort by Teacher",
}

// Label is the menu text for the option.
func (o SortOption) Label() string {
	return sortLabels[o]
}

func (o SortOption) Valid() bool {
	_, ok := sortLabels[o]
	return ok
}

// ParseSortOption validates a sort option name.
func ParseSortOption(s string) (SortOption, error) {
	o := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("unknown sort option %q", s)
	}
	return o, nil
}

// Minutes converts "H:MM AM|PM" to minutes after midnight. 12 AM is the
// midnight hour and 12 PM is noon. Empty or malformed input yields 0.
func Minutes(clock string) int {
	if clock == "" {
		return 0
	}
	hm, modifier, _ := strings.Cut(strings.TrimSpace(clock), " ")
	h, m, ok := strings.Cut(hm, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}

	switch {
	case modifier == "PM" && hours < 12:
		hours += 12
	case modifier == "AM" && hours == 12:
		hours = 0
	}
	return hours*60 + minutes
}

// Sorter orders sessions. Title and teacher comparisons use a collator for
// the configured language.
type Sorter struct {
	lang language.Tag
}

// NewSorter returns a sorter collating in lang.
func NewSorter(lang language.Tag) *Sorter {
	return &Sorter{lang: lang}
}

// Sort returns a stably sorted copy of sessions.
func (s *Sorter) Sort(sessions []session.Session, opt SortOption) []session.Session {
	out := slices.Clone(sessions)
	if len(out) < 2 {
		return out
	}

	switch opt {
	case SortTitle:
		c := collate.New(s.lang)
		slices.SortStableFunc(out, func(a, b session.Session) int {
			return c.CompareString(a.Title, b.Title)
		})
	case SortTeacher:
		c := collate.New(s.lang)
		slices.SortStableFunc(out, func(a, b session.Session) int {
			return c.CompareString(a.Teacher, b.Teacher)
		})
	default:
		slices.SortStableFunc(out, func(a, b session.Session) int {
			return Minutes(a.StartTime) - Minutes(b.StartTime)
		})
	}
	return out
}
