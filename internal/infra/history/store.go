package history

import "context"

// Store is the persistence contract the handlers depend on: the whole
// bounded list is loaded and saved as a unit, keyed by session.
type Store interface {
	Load(ctx context.Context, session string) ([]Entry, error)
	Save(ctx context.Context, session string, entries []Entry) error
}
