// Package history persists the recent-quotations list: a per-session,
// newest-first list of generated documents capped at the ten most
// recent entries.
package history

import (
	"encoding/json"
	"strings"
	"time"
)

// Limit is the maximum number of entries kept per session; the oldest
// entry is evicted when a new one arrives at capacity.
const Limit = 10

type Entry struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Document  string    `json:"document"`
	Preview   string    `json:"preview"`
}

// NewEntry builds a history entry for a freshly generated document.
func NewEntry(document string, now time.Time) Entry {
	return Entry{
		ID:        now.UnixMilli(),
		CreatedAt: now,
		Document:  document,
		Preview:   Preview(document),
	}
}

// Preview condenses the first lines of a document into a short teaser
// for the recent-quotations list.
func Preview(document string) string {
	lines := strings.Split(document, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	joined := strings.Join(lines, " ")
	if r := []rune(joined); len(r) > 80 {
		joined = string(r[:80])
	}
	return joined + "..."
}

// Append puts e first and drops everything beyond the cap. Two
// generations in the same millisecond would share a timestamp id; the
// id is bumped until unique so Remove stays exact.
func Append(entries []Entry, e Entry) []Entry {
	for hasID(entries, e.ID) {
		e.ID++
	}
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, e)
	out = append(out, entries...)
	if len(out) > Limit {
		out = out[:Limit]
	}
	return out
}

func hasID(entries []Entry, id int64) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given id, leaving every other entry
// untouched. Unknown ids are a no-op.
func Remove(entries []Entry, id int64) []Entry {
	out := entries[:0:0]
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// decodeEntries tolerates a corrupt payload: persistence errors read as
// an empty history rather than propagating.
func decodeEntries(payload []byte) ([]Entry, bool) {
	if len(payload) == 0 {
		return nil, true
	}
	var entries []Entry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, false
	}
	return entries, true
}
