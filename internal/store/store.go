// Package store provides SQLite-backed history of processed prompts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Query is one processed prompt and its outcome.
type Query struct {
	ID         string
	Prompt     string
	Intent     string
	PetID      int64
	Status     string
	Outcome    string
	Error      string
	DurationMs int64
	CreatedAt  time.Time
}

// Outcome values for Query records.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Store provides access to the history SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	// Open with WAL mode for better concurrency. modernc.org/sqlite takes
	// pragmas via _pragma=name(value), not the mattn-style _name keys.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS queries (
		id TEXT PRIMARY KEY,
		prompt TEXT NOT NULL,
		intent TEXT NOT NULL,
		pet_id INTEGER,
		status TEXT,
		outcome TEXT NOT NULL,
		error TEXT,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_queries_intent ON queries(intent);
	CREATE INDEX IF NOT EXISTS idx_queries_created_at ON queries(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add inserts a new query record, filling ID and CreatedAt.
func (s *Store) Add(q Query) (*Query, error) {
	q.ID = uuid.New().String()
	q.CreatedAt = time.Now().UTC()
	if q.Outcome == "" {
		q.Outcome = OutcomeOK
	}

	var petID sql.NullInt64
	if q.PetID != 0 {
		petID = sql.NullInt64{Int64: q.PetID, Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO queries (id, prompt, intent, pet_id, status, outcome, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Prompt, q.Intent, petID, q.Status, q.Outcome, q.Error, q.DurationMs, q.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert query: %w", err)
	}
	return &q, nil
}

// Recent returns the most recent query records, newest first.
func (s *Store) Recent(limit int) ([]Query, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, prompt, intent, pet_id, status, outcome, error, duration_ms, created_at
		 FROM queries ORDER BY created_at DESC, id LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var queries []Query
	for rows.Next() {
		var q Query
		var petID sql.NullInt64
		var status, errMsg sql.NullString
		if err := rows.Scan(&q.ID, &q.Prompt, &q.Intent, &petID, &status, &q.Outcome, &errMsg, &q.DurationMs, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan query: %w", err)
		}
		if petID.Valid {
			q.PetID = petID.Int64
		}
		if status.Valid {
			q.Status = status.String
		}
		if errMsg.Valid {
			q.Error = errMsg.String
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// CountByIntent returns how many queries were recorded per intent.
func (s *Store) CountByIntent() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT intent, COUNT(*) FROM queries GROUP BY intent`)
	if err != nil {
		return nil, fmt.Errorf("count queries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var intent string
		var n int
		if err := rows.Scan(&intent, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[intent] = n
	}
	return counts, rows.Err()
}
