// Package store persists parsed contract artifacts in a local SQLite
// database. The artifact column holds the canonical JSON document exactly as
// the API and CLI emit it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one stored contract artifact.
type Record struct {
	DocID         string          `json:"doc_id"`
	Filename      string          `json:"filename"`
	ContentHash   string          `json:"content_hash"`
	Title         string          `json:"title"`
	ContractType  string          `json:"contract_type"`
	EffectiveDate *string         `json:"effective_date"`
	Engine        string          `json:"engine"`
	Document      json.RawMessage `json:"document"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the artifact database with WAL mode.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS contracts (
	doc_id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	title TEXT NOT NULL,
	contract_type TEXT NOT NULL,
	effective_date TEXT,
	engine TEXT NOT NULL,
	document TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contracts_hash ON contracts(content_hash);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Put inserts or replaces a contract artifact.
func (s *Store) Put(ctx context.Context, rec Record) error {
	var date any
	if rec.EffectiveDate != nil {
		date = *rec.EffectiveDate
	}
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO contracts
	(doc_id, filename, content_hash, title, contract_type, effective_date, engine, document, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.DocID, rec.Filename, rec.ContentHash, rec.Title, rec.ContractType,
		date, rec.Engine, string(rec.Document), rec.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("put contract %s: %w", rec.DocID, err)
	}
	return nil
}

// Get returns the artifact for a doc ID, or nil when absent.
func (s *Store) Get(ctx context.Context, docID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT doc_id, filename, content_hash, title, contract_type, effective_date, engine, document, created_at
FROM contracts WHERE doc_id = ?`, docID)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contract %s: %w", docID, err)
	}
	return rec, nil
}

// FindByHash returns the doc ID of the stored artifact with the given content
// hash, or "" when none exists. Used for duplicate detection.
func (s *Store) FindByHash(ctx context.Context, hash string) (string, error) {
	var docID string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc_id FROM contracts WHERE content_hash = ? LIMIT 1`, hash).Scan(&docID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find by hash: %w", err)
	}
	return docID, nil
}

// List returns stored artifacts, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT doc_id, filename, content_hash, title, contract_type, effective_date, engine, document, created_at
FROM contracts ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Delete removes an artifact. Reports whether a row existed.
func (s *Store) Delete(ctx context.Context, docID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contracts WHERE doc_id = ?`, docID)
	if err != nil {
		return false, fmt.Errorf("delete contract %s: %w", docID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var date sql.NullString
	var doc string
	var created string
	if err := row.Scan(&rec.DocID, &rec.Filename, &rec.ContentHash, &rec.Title,
		&rec.ContractType, &date, &rec.Engine, &doc, &created); err != nil {
		return nil, err
	}
	if date.Valid {
		rec.EffectiveDate = &date.String
	}
	rec.Document = json.RawMessage(doc)
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		rec.CreatedAt = t
	}
	return &rec, nil
}
