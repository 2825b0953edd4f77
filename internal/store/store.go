// Package store persists translation history in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one translation history entry.
type Record struct {
	ID             string    `json:"id"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	UserKey        string    `json:"-"`
	CreatedAt      time.Time `json:"timestamp"`
}

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_history (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		source_lang TEXT NOT NULL,
		target_lang TEXT NOT NULL,
		user_key TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_history_user ON translation_history(user_key, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveTranslation records one completed translation.
func (s *Store) SaveTranslation(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_history (id, source_text, translated_text, source_lang, target_lang, user_key, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SourceText, rec.TranslatedText, rec.SourceLang, rec.TargetLang, rec.UserKey, rec.CreatedAt)
	return err
}

// ListHistory returns the most recent records for the given API key, newest
// first, capped at limit.
func (s *Store) ListHistory(ctx context.Context, userKey string, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_text, translated_text, source_lang, target_lang, user_key, created_at
		 FROM translation_history WHERE user_key = ? ORDER BY created_at DESC LIMIT ?`,
		userKey, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.SourceText, &r.TranslatedText, &r.SourceLang, &r.TargetLang, &r.UserKey, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
