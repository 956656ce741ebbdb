package session

// maxRecentQueries bounds the recent-query history.
const maxRecentQueries = 5

// history is a bounded, most-recent-first list of query strings.
// Not safe for concurrent use; the Session serializes access.
type history struct {
	entries []string
}

// record adds a query to the front of the history.
// An exact duplicate of any stored entry leaves the history unchanged,
// including its order. The oldest entry falls off past the cap.
func (h *history) record(query string) {
	for _, e := range h.entries {
		if e == query {
			return
		}
	}
	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > maxRecentQueries {
		h.entries = h.entries[:maxRecentQueries]
	}
}

// list returns a copy of the history, most recent first.
func (h *history) list() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
