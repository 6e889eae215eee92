package ui

// filterMsg lands after the debounce window and triggers the deferred
// filter recomputation. The id is compared against the field's current
// generation so superseded timers are ignored.
type filterMsg struct {
	id    int
	query string
}
