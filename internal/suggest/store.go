// Package suggest holds the portable core of the field: the suggestion
// store, the filter function and the recent-search history. Nothing in
// here knows about rendering or the event loop.
package suggest

import "github.com/SocialMobikul/mobikul-suggest-field/internal/domain"

// Store holds the canonical list of candidate suggestions. It is built
// once from the caller-supplied list and never mutated afterwards.
type Store struct {
	items  []domain.Suggestion
	byName map[string]domain.Suggestion
}

// NewStore creates a store from the caller's suggestions, preserving
// their order
func NewStore(items []domain.Suggestion) *Store {
	s := &Store{
		items:  make([]domain.Suggestion, len(items)),
		byName: make(map[string]domain.Suggestion, len(items)),
	}
	copy(s.items, items)
	for _, it := range s.items {
		// First occurrence wins on duplicate names
		if _, exists := s.byName[it.Name]; !exists {
			s.byName[it.Name] = it
		}
	}
	return s
}

// All returns the suggestions in their original order. Callers must not
// modify the returned slice.
func (s *Store) All() []domain.Suggestion {
	return s.items
}

// Len returns the number of suggestions
func (s *Store) Len() int {
	return len(s.items)
}

// ByName looks up a suggestion by its exact (case-sensitive) name
func (s *Store) ByName(name string) (domain.Suggestion, bool) {
	it, ok := s.byName[name]
	return it, ok
}
