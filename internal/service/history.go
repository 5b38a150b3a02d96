package service

// HistorySize is the number of passwords kept in a History.
const HistorySize = 4

// History is a bounded, most-recent-first list of generated passwords. It
// lives only as long as the process.
type History struct {
	entries []string
	size    int
}

// NewHistory creates an empty History holding up to HistorySize entries.
func NewHistory() *History {
	return &History{size: HistorySize}
}

// Push records password as the newest entry, evicting the oldest one when
// the history is full.
func (h *History) Push(password string) {
	h.entries = append([]string{password}, h.entries...)
	if len(h.entries) > h.size {
		h.entries = h.entries[:h.size]
	}
}

// Entries returns a copy of the stored passwords, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

// Latest returns the newest entry, if any.
func (h *History) Latest() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[0], true
}
