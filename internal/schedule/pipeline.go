// Package schedule turns the session list and the dashboard's filter state
// into the grouped, sorted view the UI renders.
package schedule

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/jh3/class-schedule/internal/session"
)

// Query is the filter state the pipeline reads.
type Query struct {
	Search string
	Days   session.DaySet
	Sort   SortOption
}

// DayGroup is one day column. Sessions may be empty.
type DayGroup struct {
	Day      session.Day
	Sessions []session.Session
}

// View is everything the dashboard draws for one render.
type View struct {
	Matched          []session.Session
	Days             []DayGroup
	Unscheduled      []session.Session
	NoSearchResults  bool
	NoClassesVisible bool
}

// Scheduled flattens the day columns in display order.
func (v View) Scheduled() []session.Session {
	var out []session.Session
	for _, g := range v.Days {
		out = append(out, g.Sessions...)
	}
	return out
}

// Visible returns every session on screen in display order: day columns
// first, then the unscheduled list.
func (v View) Visible() []session.Session {
	return append(v.Scheduled(), v.Unscheduled...)
}

// Pipeline builds views. It holds no state between calls.
type Pipeline struct {
	sorter *Sorter
}

// NewPipeline returns a pipeline collating titles and teachers in lang.
func NewPipeline(lang language.Tag) *Pipeline {
	return &Pipeline{sorter: NewSorter(lang)}
}

// Build runs filter, group and sort over sessions. sessions is not modified.
func (p *Pipeline) Build(sessions []session.Session, q Query) View {
	var v View

	needle := strings.ToLower(q.Search)
	var scheduled, unscheduled []session.Session
	for _, s := range sessions {
		if !matches(s, needle) {
			continue
		}
		v.Matched = append(v.Matched, s)

		switch {
		case !s.Scheduled():
			unscheduled = append(unscheduled, s)
		case q.Days.Has(s.Day):
			scheduled = append(scheduled, s)
		}
	}

	for _, day := range q.Days.Days() {
		var forDay []session.Session
		for _, s := range scheduled {
			if s.Day == day {
				forDay = append(forDay, s)
			}
		}
		v.Days = append(v.Days, DayGroup{Day: day, Sessions: p.sorter.Sort(forDay, q.Sort)})
	}
	v.Unscheduled = p.sorter.Sort(unscheduled, q.Sort)

	v.NoSearchResults = len(v.Matched) == 0
	v.NoClassesVisible = len(scheduled) == 0 && len(unscheduled) == 0 && !v.NoSearchResults
	return v
}

// Build runs the pipeline with root collation.
func Build(sessions []session.Session, search string, days session.DaySet, opt SortOption) View {
	return NewPipeline(language.Und).Build(sessions, Query{Search: search, Days: days, Sort: opt})
}

// Matches reports whether title or teacher contains query, ignoring case.
func Matches(s session.Session, query string) bool {
	return matches(s, strings.ToLower(query))
}

func matches(s session.Session, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), needle) ||
		strings.Contains(strings.ToLower(s.Teacher), needle)
}
