// Package history persists the bounded interaction log in SQLite.
package history

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS history_items (
	item_id        TEXT PRIMARY KEY,
	position       INTEGER NOT NULL,
	input          TEXT NOT NULL,
	response       TEXT NOT NULL,
	analysis_json  TEXT NOT NULL,
	bias_json      TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_position ON history_items(position);
`

// #endregion schema

// #region store-struct

// SQLiteStore keeps the history snapshot in a single SQLite table.
// Position 0 is the most recent item.
type SQLiteStore struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewSQLiteStore opens the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// #endregion close

// #region load

// Load reads the stored snapshot, newest-first. A corrupted row degrades the
// whole snapshot to empty: history is expendable, the pipeline is not.
func (s *SQLiteStore) Load() ([]Item, error) {
	rows, err := s.db.Query(
		`SELECT item_id, input, response, analysis_json, bias_json, created_at
		 FROM history_items ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var analysisJSON, biasJSON, createdStr string
		if err := rows.Scan(&it.ID, &it.Input, &it.Response, &analysisJSON, &biasJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(analysisJSON), &it.Analysis); err != nil {
			log.Printf("[HIST] corrupt analysis row %s, dropping snapshot: %v", it.ID, err)
			return nil, nil
		}
		if err := json.Unmarshal([]byte(biasJSON), &it.Bias); err != nil {
			log.Printf("[HIST] corrupt bias row %s, dropping snapshot: %v", it.ID, err)
			return nil, nil
		}
		it.CreatedAt, err = time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			log.Printf("[HIST] corrupt timestamp row %s, dropping snapshot: %v", it.ID, err)
			return nil, nil
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return items, nil
}

// #endregion load

// #region save

// Save replaces the stored snapshot with items, atomically.
func (s *SQLiteStore) Save(items []Item) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history_items`); err != nil {
		return fmt.Errorf("clear old snapshot: %w", err)
	}

	for pos, it := range items {
		analysisJSON, err := json.Marshal(it.Analysis)
		if err != nil {
			return fmt.Errorf("marshal analysis: %w", err)
		}
		biasJSON, err := json.Marshal(it.Bias)
		if err != nil {
			return fmt.Errorf("marshal bias: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO history_items (item_id, position, input, response, analysis_json, bias_json, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			it.ID, pos, it.Input, it.Response,
			string(analysisJSON), string(biasJSON),
			it.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}

	return tx.Commit()
}

// #endregion save

// #region clear

// Clear removes the stored snapshot.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM history_items`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// #endregion clear
