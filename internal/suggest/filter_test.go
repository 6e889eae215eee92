package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
)

func countries() *Store {
	return NewStore([]domain.Suggestion{
		{Name: "Canada", Tag: "flag-ca"},
		{Name: "Australia", Tag: "flag-au"},
		{Name: "Germany", Tag: "flag-de"},
		{Name: "France", Tag: "flag-fr"},
		{Name: "Netherlands", Tag: "flag-nl"},
		{Name: "New Zealand", Tag: "flag-nz"},
	})
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	t.Parallel()
	store := countries()

	got := Filter(store, "an", nil, 5, false)

	// Every match contains the query case-insensitively, in store order
	require.NotEmpty(t, got)
	for _, s := range got {
		require.Contains(t, strings.ToLower(s.Name), "an", "match %q should contain query", s.Name)
	}
	names := matchNames(got)
	require.Equal(t, []string{"Canada", "Germany", "France", "Netherlands", "New Zealand"}, names)
}

func TestFilterCaseSensitive(t *testing.T) {
	t.Parallel()
	store := countries()

	got := Filter(store, "Ne", nil, 5, true)
	require.Equal(t, []string{"Netherlands", "New Zealand"}, matchNames(got))

	// Lowercase "ne" only matches exact-case occurrences
	got = Filter(store, "ne", nil, 5, true)
	require.Empty(t, got)
}

func TestFilterPreservesOrderAndCap(t *testing.T) {
	t.Parallel()
	store := countries()

	got := Filter(store, "a", nil, 3, false)
	require.Len(t, got, 3)
	require.Equal(t, []string{"Canada", "Australia", "Germany"}, matchNames(got))
}

func TestFilterResultNeverExceedsMax(t *testing.T) {
	t.Parallel()
	store := countries()

	for max := 0; max <= store.Len()+1; max++ {
		got := Filter(store, "a", nil, max, false)
		require.LessOrEqual(t, len(got), max)
	}
}

func TestFilterEmptyQueryUsesHistory(t *testing.T) {
	t.Parallel()
	store := countries()
	recents := NewHistory(5, true, []string{"Germany", "Canada"})

	got := Filter(store, "", recents, 5, false)
	require.Equal(t, []string{"Germany", "Canada"}, matchNames(got))
	// Records are mapped back to the store, tags intact
	require.Equal(t, "flag-de", got[0].Tag)
}

func TestFilterEmptyQueryTruncatesHistory(t *testing.T) {
	t.Parallel()
	store := countries()
	recents := NewHistory(5, true, []string{"Germany", "Canada", "France"})

	got := Filter(store, "", recents, 2, false)
	require.Equal(t, []string{"Germany", "Canada"}, matchNames(got))
}

func TestFilterEmptyQueryKeepsUnknownNames(t *testing.T) {
	t.Parallel()
	store := countries()
	recents := NewHistory(5, true, []string{"Atlantis", "Canada"})

	got := Filter(store, "", recents, 5, false)
	require.Equal(t, []string{"Atlantis", "Canada"}, matchNames(got))
	require.Empty(t, got[0].Tag)
}

func TestFilterEmptyInputs(t *testing.T) {
	t.Parallel()

	empty := NewStore(nil)
	require.Empty(t, Filter(empty, "an", nil, 5, false))
	require.Empty(t, Filter(empty, "", nil, 5, false))
	require.Empty(t, Filter(countries(), "", NewHistory(5, true, nil), 5, false))
	require.Empty(t, Filter(countries(), "zzz", nil, 5, false))
}

func TestStoreByName(t *testing.T) {
	t.Parallel()
	store := countries()

	s, ok := store.ByName("Canada")
	require.True(t, ok)
	require.Equal(t, "flag-ca", s.Tag)

	// Lookup is case-sensitive
	_, ok = store.ByName("canada")
	require.False(t, ok)
}

func matchNames(matches []domain.Suggestion) []string {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}
