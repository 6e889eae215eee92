package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged       EventType = "QueryChanged"
	EventSuggestionsShown   EventType = "SuggestionsShown"
	EventSuggestionSelected EventType = "SuggestionSelected"
	EventQuerySubmitted     EventType = "QuerySubmitted"
	EventHistoryChanged     EventType = "HistoryChanged"
	EventError              EventType = "Error"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted synchronously on every text change,
// before any filter recomputation is scheduled
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// SuggestionsShownEvent is emitted when a filter recomputation lands
// and the panel contents are replaced
type SuggestionsShownEvent struct {
	Query      string
	MatchCount int
	FromRecent bool // matches came from history, not the store
}

func (e SuggestionsShownEvent) Type() EventType { return EventSuggestionsShown }

// SuggestionSelectedEvent is emitted when the user picks a suggestion
type SuggestionSelectedEvent struct {
	Suggestion Suggestion
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// QuerySubmittedEvent is emitted when the user submits raw text
// without picking a suggestion
type QuerySubmittedEvent struct {
	Text string
}

func (e QuerySubmittedEvent) Type() EventType { return EventQuerySubmitted }

// HistoryChangedEvent is emitted when a selection changes the recent
// searches list
type HistoryChangedEvent struct {
	Recent []string // most-recent-first
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
