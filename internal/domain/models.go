package domain

import "fmt"

// Suggestion is a candidate item offered by the field
type Suggestion struct {
	Name string
	Tag  string // opaque icon identifier ("" if none)
}

// DisplayStyle selects how matches are laid out
type DisplayStyle int

const (
	StyleList DisplayStyle = iota
	StyleGrid
	StyleChips
)

// String returns the config/flag spelling of the style
func (s DisplayStyle) String() string {
	switch s {
	case StyleGrid:
		return "grid"
	case StyleChips:
		return "chips"
	default:
		return "list"
	}
}

// ParseDisplayStyle parses the config/flag spelling of a style
func ParseDisplayStyle(s string) (DisplayStyle, error) {
	switch s {
	case "list", "":
		return StyleList, nil
	case "grid":
		return StyleGrid, nil
	case "chips":
		return StyleChips, nil
	default:
		return StyleList, fmt.Errorf("unknown display style: %q", s)
	}
}

// FilterState is the derived view of the suggestion panel. It is replaced
// wholesale on every recomputation and never mutated in place.
type FilterState struct {
	Query   string
	Matches []Suggestion
	Loading bool // a recomputation is pending behind the debounce timer
	Visible bool
}
