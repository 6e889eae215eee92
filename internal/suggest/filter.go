package suggest

import (
	"strings"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
)

// Filter computes the ordered subset of suggestions to display for the
// given query. It is a pure function: no side effects, no error
// conditions.
//
// An empty query yields the first max history entries mapped back to
// full suggestion records, preserving recency order. A non-empty query
// yields every suggestion whose name contains it as a substring (exact
// case when caseSensitive, both sides lower-cased otherwise), in the
// store's original order, truncated to the first max matches.
func Filter(store *Store, query string, recents *History, max int, caseSensitive bool) []domain.Suggestion {
	if max <= 0 {
		return nil
	}

	if query == "" {
		return recentView(store, recents, max)
	}

	needle := query
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}

	var matches []domain.Suggestion
	for _, s := range store.All() {
		name := s.Name
		if !caseSensitive {
			name = strings.ToLower(name)
		}
		if strings.Contains(name, needle) {
			matches = append(matches, s)
			if len(matches) == max {
				break
			}
		}
	}
	return matches
}

// recentView maps history names back to full suggestion records. A name
// with no backing store record still surfaces as a bare suggestion so
// the view always equals the first max history entries.
func recentView(store *Store, recents *History, max int) []domain.Suggestion {
	if recents == nil || recents.Len() == 0 {
		return nil
	}
	names := recents.Names()
	if len(names) > max {
		names = names[:max]
	}
	out := make([]domain.Suggestion, 0, len(names))
	for _, name := range names {
		if s, ok := store.ByName(name); ok {
			out = append(out, s)
		} else {
			out = append(out, domain.Suggestion{Name: name})
		}
	}
	return out
}
