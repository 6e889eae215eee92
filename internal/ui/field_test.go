package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Suggestions = []domain.Suggestion{
		{Name: "Canada", Tag: "flag-ca"},
		{Name: "Australia", Tag: "flag-au"},
		{Name: "Germany", Tag: "flag-de"},
		{Name: "France", Tag: "flag-fr"},
	}
	opts.DebounceTime = time.Millisecond
	return opts
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds runes through Update and returns the field
func typeText(t *testing.T, f *Field, s string) *Field {
	t.Helper()
	for _, r := range s {
		f, _ = f.Update(keyRunes(string(r)))
	}
	return f
}

// settle delivers the pending recomputation directly, standing in for
// the debounce timer firing
func settle(f *Field) *Field {
	f, _ = f.Update(filterMsg{id: f.debounceID, query: f.input.Value()})
	return f
}

func TestTypingNotifiesSynchronouslyAndDefersFilter(t *testing.T) {
	t.Parallel()

	var changed []string
	opts := testOptions()
	opts.OnChanged = func(s string) { changed = append(changed, s) }

	f := New(opts)
	f.Focus()
	f = typeText(t, f, "an")

	// OnChanged fired once per keystroke, before any recomputation
	require.Equal(t, []string{"a", "an"}, changed)
	require.True(t, f.State().Loading, "recomputation should still be pending")
	require.Empty(t, f.State().Matches)

	f = settle(f)
	require.False(t, f.State().Loading)
	require.Equal(t, "an", f.State().Query)
}

func TestDebounceDropsSupersededRecomputations(t *testing.T) {
	t.Parallel()

	f := New(testOptions())
	f.Focus()

	f = typeText(t, f, "c")
	staleID := f.debounceID
	f = typeText(t, f, "an")

	// The stale timer lands after newer input; it must not apply
	f, _ = f.Update(filterMsg{id: staleID, query: "c"})
	require.True(t, f.State().Loading)
	require.Empty(t, f.State().Matches)

	// Only the latest generation applies, with the final query value
	f = settle(f)
	require.Equal(t, "can", f.State().Query)
	require.Equal(t, []string{"Canada"}, stateNames(f))
}

func TestFocusWithEmptyQueryShowsHistory(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.RecentSearches = []string{"Germany", "Canada"}

	f := New(opts)
	f.Focus()

	st := f.State()
	require.True(t, st.Visible)
	require.False(t, st.Loading)
	require.Equal(t, []string{"Germany", "Canada"}, stateNames(f))
	// Mapped back to full records
	require.Equal(t, "flag-de", st.Matches[0].Tag)
}

func TestSelectionUpdatesHistoryAndClearsPanel(t *testing.T) {
	t.Parallel()

	var selected []domain.Suggestion
	opts := testOptions()
	opts.OnSelected = func(s domain.Suggestion) { selected = append(selected, s) }

	f := New(opts)
	f.Focus()
	f = typeText(t, f, "an")
	f = settle(f)
	require.NotEmpty(t, f.State().Matches)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, selected, 1)
	require.Equal(t, domain.Suggestion{Name: "Canada", Tag: "flag-ca"}, selected[0])
	require.Equal(t, []string{"Canada"}, f.Recent())
	require.False(t, f.State().Visible, "panel should clear on selection")
	require.Empty(t, f.State().Matches)
	require.Equal(t, "Canada", f.Value())
}

func TestHistoryEvictionThroughSelections(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.MaxSuggestions = 2

	f := New(opts)
	f.Focus()
	for _, name := range []string{"Canada", "Australia", "Germany"} {
		s, ok := f.store.ByName(name)
		require.True(t, ok)
		f.Select(s)
	}

	require.Equal(t, []string{"Germany", "Australia"}, f.Recent())
}

func TestHistoryDisabledLeavesRecentEmpty(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.EnableHistory = false

	f := New(opts)
	f.Focus()
	s, _ := f.store.ByName("Canada")
	f.Select(s)

	require.Empty(t, f.Recent())
}

func TestEnterWithoutHighlightSubmitsRawText(t *testing.T) {
	t.Parallel()

	var submitted []string
	opts := testOptions()
	opts.OnSubmitted = func(s string) { submitted = append(submitted, s) }

	f := New(opts)
	f.Focus()
	f = typeText(t, f, "an")
	f = settle(f)

	// No match highlighted: enter submits the raw text
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"an"}, submitted)
	require.False(t, f.State().Visible)
}

func TestNilCallbacksAreNoOps(t *testing.T) {
	t.Parallel()

	f := New(testOptions())
	f.Focus()
	f = typeText(t, f, "an")
	f = settle(f)

	require.NotPanics(t, func() {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	})
}

func TestBlurDropsPendingRecomputation(t *testing.T) {
	t.Parallel()

	f := New(testOptions())
	f.Focus()
	f = typeText(t, f, "a")
	pending := f.debounceID

	f.Blur()
	f, _ = f.Update(filterMsg{id: pending, query: "a"})

	require.False(t, f.State().Visible)
	require.Empty(t, f.State().Matches)
}

func TestMatchesNeverExceedMax(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.MaxSuggestions = 2

	f := New(opts)
	f.Focus()
	f = typeText(t, f, "a")
	f = settle(f)

	require.LessOrEqual(t, len(f.State().Matches), 2)
}

func stateNames(f *Field) []string {
	matches := f.State().Matches
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names
}
