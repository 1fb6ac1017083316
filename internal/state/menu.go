package state

// Menu is the header dropdown that is currently open. Only one can be.
type Menu int

const (
	MenuNone Menu = iota
	MenuFilter
	MenuSort
	MenuTheme
)

func (m Menu) String() string {
	switch m {
	case MenuFilter:
		return "filter"
	case MenuSort:
		return "sort"
	case MenuTheme:
		return "theme"
	default:
		return "none"
	}
}
