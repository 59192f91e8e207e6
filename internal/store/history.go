package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// HistoryRepo persists one opaque history document per user key.
// The contract is deliberately coarse: load the whole list, overwrite the
// whole list, delete the record. There is no per-entry access.
type HistoryRepo interface {
	// Load returns the stored history document, or nil if the user has none.
	Load(ctx context.Context, userID string) (json.RawMessage, error)

	// Save overwrites the user's history document.
	Save(ctx context.Context, userID string, doc json.RawMessage) error

	// Clear deletes the user's history record entirely.
	Clear(ctx context.Context, userID string) error
}

type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Load(ctx context.Context, userID string) (json.RawMessage, error) {
	if userID == "" {
		return nil, nil
	}

	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT history FROM user_histories WHERE user_id = ?`, userID,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history for %q: %w", userID, err)
	}
	return json.RawMessage(doc), nil
}

func (r *historyRepo) Save(ctx context.Context, userID string, doc json.RawMessage) error {
	if userID == "" {
		return nil
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_histories (user_id, history) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET history = excluded.history`,
		userID, string(doc),
	)
	if err != nil {
		return fmt.Errorf("save history for %q: %w", userID, err)
	}
	return nil
}

func (r *historyRepo) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_histories WHERE user_id = ?`, userID,
	)
	if err != nil {
		return fmt.Errorf("clear history for %q: %w", userID, err)
	}
	return nil
}
