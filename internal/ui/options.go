package ui

import (
	"time"

	"github.com/SocialMobikul/mobikul-suggest-field/internal/domain"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/eventbus"
	"github.com/SocialMobikul/mobikul-suggest-field/internal/ui/views"
)

// Options is the constructor-time configuration surface of a Field. It
// is immutable for the lifetime of the instance.
type Options struct {
	// Suggestions is the canonical candidate list, in display order.
	Suggestions []domain.Suggestion

	// Callbacks. Any of them may be nil, in which case the event is
	// simply not delivered; an unset callback is never a fault.
	OnSelected  func(domain.Suggestion)
	OnSubmitted func(string)
	OnChanged   func(string)

	MaxSuggestions int                 // cap for matches and history, default 5
	EnableHistory  bool                // record selections, default true
	DisplayStyle   domain.DisplayStyle // default StyleList
	DebounceTime   time.Duration       // default 300ms
	CaseSensitive  bool                // default false
	RecentSearches []string            // optional history seed, most-recent-first

	// Presentation
	Placeholder string
	Prompt      string
	ShowIcons   bool
	Styles      *views.Styles

	// Bus, when set, receives the field's domain events in addition to
	// the direct callbacks.
	Bus eventbus.EventBus
}

// DefaultOptions returns the documented defaults. Callers start from
// here and override what they need.
func DefaultOptions() Options {
	return Options{
		MaxSuggestions: 5,
		EnableHistory:  true,
		DisplayStyle:   domain.StyleList,
		DebounceTime:   300 * time.Millisecond,
		Prompt:         "> ",
		ShowIcons:      true,
	}
}

// normalize repairs zero values that have non-zero defaults
func (o *Options) normalize() {
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = 5
	}
	if o.DebounceTime <= 0 {
		o.DebounceTime = 300 * time.Millisecond
	}
	if o.Styles == nil {
		o.Styles = views.NewStyles()
	}
}
