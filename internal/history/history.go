// Package history persists generated drafts to a local SQLite database
// so past seeds and layouts can be recalled and re-rendered.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Record is one generated draft: the seed and shape that produced it
// plus the finished board, so it can be reloaded without regenerating.
type Record struct {
	ID          string    `json:"id"`
	Seed        int64     `json:"seed"`
	Players     int       `json:"players"`
	SliceValues []float64 `json:"slice_values"`
	MapString   string    `json:"map_string"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store wraps a SQLite database holding draft records.
type Store struct {
	sql *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	version := 0
	s.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS drafts (
				id           TEXT PRIMARY KEY,
				seed         INTEGER NOT NULL,
				players      INTEGER NOT NULL,
				slice_values TEXT NOT NULL DEFAULT '[]',
				map_string   TEXT NOT NULL,
				created_at   TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_drafts_created ON drafts(created_at);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

// Save inserts a record, assigning an ID and timestamp when unset, and
// returns the stored record.
func (s *Store) Save(rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	valuesJSON, err := json.Marshal(rec.SliceValues)
	if err != nil {
		return Record{}, fmt.Errorf("encode slice values: %w", err)
	}

	_, err = s.sql.Exec(`
		INSERT INTO drafts (id, seed, players, slice_values, map_string, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Seed,
		rec.Players,
		string(valuesJSON),
		rec.MapString,
		rec.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Recent returns the newest records, newest first. Limit 0 means
// unlimited.
func (s *Store) Recent(limit int) ([]Record, error) {
	query := `
		SELECT id, seed, players, slice_values, map_string, created_at
		  FROM drafts
		 ORDER BY created_at DESC, id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.sql.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		return []Record{}, nil
	}
	return records, nil
}

// ByID looks up a single record. sql.ErrNoRows when absent.
func (s *Store) ByID(id string) (Record, error) {
	row := s.sql.QueryRow(`
		SELECT id, seed, players, slice_values, map_string, created_at
		  FROM drafts
		 WHERE id = ?`, id)
	return scanRecord(row.Scan)
}

// Delete removes a record by ID.
func (s *Store) Delete(id string) error {
	_, err := s.sql.Exec("DELETE FROM drafts WHERE id = ?", id)
	return err
}

func scanRecord(scan func(...interface{}) error) (Record, error) {
	var rec Record
	var valuesStr, createdStr string
	if err := scan(&rec.ID, &rec.Seed, &rec.Players, &valuesStr, &rec.MapString, &createdStr); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(valuesStr), &rec.SliceValues); err != nil {
		return Record{}, fmt.Errorf("decode slice values: %w", err)
	}
	created, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return Record{}, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = created
	return rec, nil
}
