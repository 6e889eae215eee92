// Package ui implements the suggestion text field as a Bubble Tea
// component. Embedding programs compose it into their own model and
// forward messages to Update.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/eventbus"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/suggest"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/ui/views"
)

// Field is a text input that filters a fixed suggestion list as the
// user types. All mutation happens on the Bubble Tea event loop; the
// debounce timer is the only deferred work, and it is invalidated by
// bumping the generation counter.
type Field struct {
	input    textinput.Model
	store    *suggest.Store
	history  *suggest.History
	opts     Options
	renderer *views.Renderer

	state  domain.FilterState
	cursor int // highlighted match index, -1 for none

	debounceID int // generation counter for pending recomputations
	width      int
}

// New creates a field from the given options
func New(opts Options) *Field {
	opts.normalize()

	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.Placeholder = opts.Placeholder
	ti.PlaceholderStyle = opts.Styles.Placeholder
	ti.PromptStyle = opts.Styles.Prompt

	return &Field{
		input:    ti,
		store:    suggest.NewStore(opts.Suggestions),
		history:  suggest.NewHistory(opts.MaxSuggestions, opts.EnableHistory, opts.RecentSearches),
		opts:     opts,
		renderer: views.NewRenderer(opts.Styles, opts.DisplayStyle, opts.ShowIcons, opts.CaseSensitive),
		cursor:   -1,
	}
}

// Init returns the initial command
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Focus gives the field input focus. With empty query text the panel
// immediately shows the recency view, independent of any pending
// debounce timer.
func (f *Field) Focus() tea.Cmd {
	cmd := f.input.Focus()
	if f.input.Value() == "" {
		f.showRecent()
	}
	return cmd
}

// Blur removes focus, hides the panel and drops any pending
// recomputation
func (f *Field) Blur() {
	f.input.Blur()
	f.debounceID++
	f.state = domain.FilterState{}
	f.cursor = -1
}

// Focused reports whether the field has input focus
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// Value returns the current query text
func (f *Field) Value() string {
	return f.input.Value()
}

// State returns the current derived panel state
func (f *Field) State() domain.FilterState {
	return f.state
}

// Recent returns the current history entries, most-recent-first
func (f *Field) Recent() []string {
	return f.history.Names()
}

// Update handles messages
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.input.Width = msg.Width - len(f.opts.Prompt) - 1
		return f, nil

	case filterMsg:
		if msg.id != f.debounceID {
			// Superseded by newer input or teardown
			return f, nil
		}
		f.applyFilter(msg.query)
		return f, nil

	case tea.KeyMsg:
		if !f.input.Focused() {
			return f, nil
		}
		return f.handleKey(msg)

	default:
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}
}

// handleKey processes keys while focused
func (f *Field) handleKey(msg tea.KeyMsg) (*Field, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if f.state.Visible {
			f.debounceID++
			f.state = domain.FilterState{}
			f.cursor = -1
			return f, nil
		}
		f.Blur()
		return f, nil

	case "up", "ctrl+p":
		if f.panelActive() {
			if f.cursor > 0 {
				f.cursor--
			} else {
				f.cursor = len(f.state.Matches) - 1
			}
			return f, nil
		}

	case "down", "ctrl+n":
		if f.panelActive() {
			f.cursor = (f.cursor + 1) % len(f.state.Matches)
			return f, nil
		}

	case "enter":
		if f.panelActive() && f.cursor >= 0 && f.cursor < len(f.state.Matches) {
			f.Select(f.state.Matches[f.cursor])
			return f, nil
		}
		f.submit()
		return f, nil
	}

	// Everything else goes to the text input. A changed value notifies
	// OnChanged synchronously and reschedules the deferred filter run.
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	after := f.input.Value()
	if after == before {
		return f, cmd
	}

	if f.opts.OnChanged != nil {
		f.opts.OnChanged(after)
	}
	f.publish(eventbus.QueryChangedEvent{Query: after})

	return f, tea.Batch(cmd, f.scheduleFilter())
}

// scheduleFilter starts (or restarts) the trailing debounce window. At
// most one pending recomputation exists; older timers land with a stale
// id and are dropped.
func (f *Field) scheduleFilter() tea.Cmd {
	f.debounceID++
	id := f.debounceID
	query := f.input.Value()

	f.state = domain.FilterState{
		Query:   f.state.Query,
		Matches: f.state.Matches,
		Loading: true,
		Visible: true,
	}

	return tea.Tick(f.opts.DebounceTime, func(time.Time) tea.Msg {
		return filterMsg{id: id, query: query}
	})
}

// applyFilter recomputes the panel contents for query
func (f *Field) applyFilter(query string) {
	matches := suggest.Filter(f.store, query, f.history, f.opts.MaxSuggestions, f.opts.CaseSensitive)
	f.state = domain.FilterState{
		Query:   query,
		Matches: matches,
		Visible: f.input.Focused(),
	}
	f.cursor = -1

	f.publish(eventbus.SuggestionsShownEvent{
		Query:      query,
		MatchCount: len(matches),
		FromRecent: query == "",
	})
}

// showRecent replaces the panel with the recency-capped history view
func (f *Field) showRecent() {
	f.applyFilter("")
}

// Select picks a suggestion: history is updated, the selection callback
// fires with the full record, and the panel is cleared
func (f *Field) Select(s domain.Suggestion) {
	if f.history.Add(s.Name) {
		f.publish(eventbus.HistoryChangedEvent{Recent: f.history.Names()})
	}

	if f.opts.OnSelected != nil {
		f.opts.OnSelected(s)
	}
	f.publish(eventbus.SuggestionSelectedEvent{Suggestion: s})

	f.input.SetValue(s.Name)
	f.input.CursorEnd()

	f.debounceID++
	f.state = domain.FilterState{}
	f.cursor = -1
}

// submit delivers the raw text and closes the panel
func (f *Field) submit() {
	text := f.input.Value()
	if f.opts.OnSubmitted != nil {
		f.opts.OnSubmitted(text)
	}
	f.publish(eventbus.QuerySubmittedEvent{Text: text})

	f.debounceID++
	f.state = domain.FilterState{}
	f.cursor = -1
}

// View renders the input line and the suggestion panel
func (f *Field) View() string {
	view := f.input.View()
	if panel := f.renderer.Render(f.state, f.cursor, f.width); panel != "" {
		view += "\n" + panel
	}
	return view
}

func (f *Field) panelActive() bool {
	return f.state.Visible && !f.state.Loading && len(f.state.Matches) > 0
}

func (f *Field) publish(event eventbus.DomainEvent) {
	if f.opts.Bus != nil {
		f.opts.Bus.Publish(event)
	}
}
