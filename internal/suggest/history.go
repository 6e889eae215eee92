package suggest

// History is the bounded, most-recent-first record of selected
// suggestion names. It is only ever mutated from the UI event loop.
type History struct {
	max     int
	enabled bool
	names   []string
}

// NewHistory creates a history capped at max entries, optionally seeded.
// The seed is taken as most-recent-first, de-duplicated and truncated to
// the cap.
func NewHistory(max int, enabled bool, seed []string) *History {
	h := &History{max: max, enabled: enabled}
	if max <= 0 || !enabled {
		return h
	}
	seen := make(map[string]bool, len(seed))
	for _, name := range seed {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		h.names = append(h.names, name)
		if len(h.names) == max {
			break
		}
	}
	return h
}

// Add records a selection. A name already present is left where it is
// (first-seen ordering, no move-to-front); otherwise it is prepended and
// the oldest entry beyond the cap is dropped. Reports whether the
// history changed.
func (h *History) Add(name string) bool {
	if !h.enabled || h.max <= 0 || name == "" {
		return false
	}
	for _, existing := range h.names {
		if existing == name {
			return false
		}
	}
	h.names = append([]string{name}, h.names...)
	if len(h.names) > h.max {
		h.names = h.names[:h.max]
	}
	return true
}

// Names returns a copy of the entries, most-recent-first
func (h *History) Names() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.names)
}

// Enabled reports whether selections are being recorded
func (h *History) Enabled() bool {
	return h.enabled
}
