package domain

// HistoryEntry is one record in a user's watch history. An empty Genre means
// the entry carries no genre tag; such entries still count toward the user's
// watched total but are excluded from genre counts.
type HistoryEntry struct {
	Title     string `json:"title,omitempty"`
	Genre     string `json:"genre,omitempty"`
	WatchedAt string `json:"watched_at,omitempty"`
}

// History maps a user id (decimal string form) to that user's ordered
// watch history.
type History map[string][]HistoryEntry
