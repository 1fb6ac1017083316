package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jh3/class-schedule/internal/session"
)

func TestMinutes(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"9:15 AM", 555},
		{"1:30 PM", 810},
		{"12:15 AM", 15},
		{"8:00 AM", 480},
		{"12:15 PM", 735},
		{"11:45 AM", 705},
		{"", 0},
		{"noon", 0},
		{"x:15 AM", 0},
	}
	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			assert.Equal(t, tt.want, Minutes(tt.clock))
		})
	}

	assert.Less(t, Minutes("9:15 AM"), Minutes("1:30 PM"))
	assert.Less(t, Minutes("12:15 AM"), Minutes("8:00 AM"))
	assert.Greater(t, Minutes("12:15 PM"), Minutes("11:45 AM"))
}

func TestParseSortOption(t *testing.T) {
	for _, o := range SortOptions {
		got, err := ParseSortOption(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ParseSortOption("room")
	assert.Error(t, err)

	assert.Equal(t, "Sort by Time", SortTime.Label())
	assert.Equal(t, "Sort by Title", SortTitle.Label())
	assert.Equal(t, "Sort by Teacher", SortTeacher.Label())
}

func ids(sessions []session.Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.ID
	}
	return out
}

func TestSortByTime(t *testing.T) {
	in := []session.Session{
		{ID: "pm", StartTime: "1:30 PM"},
		{ID: "am", StartTime: "9:15 AM"},
		{ID: "noon", StartTime: "12:15 PM"},
		{ID: "midnight", StartTime: "12:15 AM"},
	}
	got := NewSorter(language.Und).Sort(in, SortTime)
	assert.Equal(t, []string{"midnight", "am", "noon", "pm"}, ids(got))
	assert.Equal(t, "pm", in[0].ID, "input must not be reordered")
}

func TestSortIsStable(t *testing.T) {
	in := []session.Session{
		{ID: "a", Title: "Same", StartTime: "9:00 AM"},
		{ID: "b", Title: "Same", StartTime: "9:00 AM"},
		{ID: "c", Title: "Same", StartTime: "9:00 AM"},
	}
	s := NewSorter(language.Und)
	for _, opt := range SortOptions {
		assert.Equal(t, []string{"a", "b", "c"}, ids(s.Sort(in, opt)), opt)
	}
}

func TestSortByTitleAndTeacherCollates(t *testing.T) {
	in := []session.Session{
		{ID: "1", Title: "Zoology", Teacher: "carol"},
		{ID: "2", Title: "apparel", Teacher: "Bob"},
		{ID: "3", Title: "Biology", Teacher: "alice"},
	}
	s := NewSorter(language.English)

	assert.Equal(t, []string{"2", "3", "1"}, ids(s.Sort(in, SortTitle)))
	assert.Equal(t, []string{"3", "2", "1"}, ids(s.Sort(in, SortTeacher)))
}
