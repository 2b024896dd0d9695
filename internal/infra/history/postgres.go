package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/infra/db/postgres"
)

// PostgresStore persists each session's history as a single JSONB
// payload, the same list-per-key contract the original local storage
// gave us.
type PostgresStore struct {
	db     *postgres.DB
	logger *zap.Logger
}

func NewPostgresStore(ctx context.Context, db *postgres.DB, logger *zap.Logger) (*PostgresStore, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS quotation_history (
		session     TEXT PRIMARY KEY,
		entries     JSONB NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("history schema: %w", err)
	}
	return &PostgresStore{db: db, logger: logger}, nil
}

func (s *PostgresStore) Load(ctx context.Context, session string) ([]Entry, error) {
	var payload []byte
	err := s.db.Pool.QueryRow(ctx,
		`SELECT entries FROM quotation_history WHERE session = $1`, session,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history load: %w", err)
	}
	entries, ok := decodeEntries(payload)
	if !ok {
		// Corrupt payload reads as an empty history.
		s.logger.Warn("history: corrupt payload, resetting", zap.String("session", session))
		return nil, nil
	}
	return entries, nil
}

func (s *PostgresStore) Save(ctx context.Context, session string, entries []Entry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("history marshal: %w", err)
	}
	_, err = s.db.Pool.Exec(ctx,
		`INSERT INTO quotation_history (session, entries, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (session) DO UPDATE SET entries = $2, updated_at = now()`,
		session, payload,
	)
	if err != nil {
		return fmt.Errorf("history save: %w", err)
	}
	return nil
}
