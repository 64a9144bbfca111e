// Package store keeps a local history of pushes in SQLite. It backs the
// history command and lets push skip the network round trip when a note has
// not changed since it was last sent.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Push is one recorded translation-and-upload of a note.
type Push struct {
	ID           string
	InputFile    string
	DocID        string
	Title        string
	RequestCount int
	FooterChars  int
	ContentHash  string
	CreatedAt    time.Time
}

type Stats struct {
	TotalPushes   int
	DistinctFiles int
	DistinctDocs  int
	TotalRequests int
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

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pushes (
		id TEXT PRIMARY KEY,
		input_file TEXT NOT NULL,
		doc_id TEXT NOT NULL,
		title TEXT,
		request_count INTEGER NOT NULL,
		footer_chars INTEGER NOT NULL DEFAULT 0,
		content_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_pushes_file ON pushes(input_file, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) SavePush(ctx context.Context, p Push) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pushes (id, input_file, doc_id, title, request_count, footer_chars, content_hash, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.InputFile, p.DocID, p.Title, p.RequestCount, p.FooterChars, p.ContentHash, p.CreatedAt)
	return err
}

// LastPush returns the most recent push recorded for inputFile.
func (s *Store) LastPush(ctx context.Context, inputFile string) (*Push, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, input_file, doc_id, title, request_count, footer_chars, content_hash, created_at
		 FROM pushes WHERE input_file = ? ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		inputFile)

	var p Push
	err := row.Scan(&p.ID, &p.InputFile, &p.DocID, &p.Title, &p.RequestCount, &p.FooterChars, &p.ContentHash, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *Store) ListPushes(ctx context.Context) ([]Push, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_file, doc_id, title, request_count, footer_chars, content_hash, created_at
		 FROM pushes ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pushes []Push
	for rows.Next() {
		var p Push
		if err := rows.Scan(&p.ID, &p.InputFile, &p.DocID, &p.Title, &p.RequestCount, &p.FooterChars, &p.ContentHash, &p.CreatedAt); err != nil {
			return nil, err
		}
		pushes = append(pushes, p)
	}
	return pushes, rows.Err()
}

func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT input_file), COUNT(DISTINCT doc_id), COALESCE(SUM(request_count), 0) FROM pushes`).
		Scan(&stats.TotalPushes, &stats.DistinctFiles, &stats.DistinctDocs, &stats.TotalRequests)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Clear removes all history entries and returns the number deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pushes`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ContentHash fingerprints a note body. The text is NFC-normalized and
// trimmed first so that equivalent encodings and trailing-whitespace noise
// hash identically.
func ContentHash(text string) string {
	sum := sha256.Sum256([]byte(normalizeText(text)))
	return hex.EncodeToString(sum[:])
}

func normalizeText(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
