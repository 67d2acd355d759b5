// This file implements JSONL snapshot loading for store open.
// Implements: prd002-sqlite-store R4 (startup sequence), R4.2 (malformed lines),
//             R4.4 (transactional loading), R7.2 (unknown field tolerance).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// jsonlTableMapping maps JSONL filenames to their SQLite tables and column lists.
// The order matters: annotations reference objects, so objects load first.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
}{
	{objectsFile, "objects", []string{"object_id", "name", "kind", "ordinal"}},
	{annotationsFile, "annotations", []string{"object_id", "key", "value_type", "value"}},
	{sceneStateFile, "scene_state", []string{"key", "value"}},
	{pieMenuFile, "pie_menu", []string{"ordinal", "tag"}},
}

// loadSnapshot reads each JSONL file from the data directory and inserts its
// records into the corresponding SQLite table. Loading is transactional: all
// succeed or the database remains empty (prd002-sqlite-store R4.4). Malformed
// lines are skipped per R4.2. Unknown fields in JSONL records are silently
// ignored, so snapshots written by newer generations still load (R7.2).
func loadSnapshot(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	// Disable foreign keys during loading, re-enable after.
	if _, err := tx.Exec("PRAGMA foreign_keys = OFF"); err != nil {
		return fmt.Errorf("disabling foreign keys for load: %w", err)
	}

	for _, mapping := range jsonlTableMapping {
		path := filepath.Join(dataDir, mapping.file)
		records, err := readJSONL(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", mapping.file, err)
		}

		if len(records) == 0 {
			continue
		}

		if err := insertRecords(tx, mapping.table, mapping.columns, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if _, err := tx.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("re-enabling foreign keys: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}

	return nil
}

// insertRecords inserts parsed JSONL records into a SQLite table. Only the
// listed columns are extracted; extra fields from future generations do not
// cause errors (prd002-sqlite-store R7.2).
func insertRecords(tx *sql.Tx, table string, columns []string, records []json.RawMessage) error {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		joinColumns(columns),
		joinColumns(placeholders),
	)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			// Skip malformed records (prd002-sqlite-store R4.2).
			continue
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			val, ok := obj[col]
			if !ok {
				args[i] = nil
				continue
			}
			// Structured values need to be re-serialized as strings.
			switch v := val.(type) {
			case map[string]any, []any:
				b, err := json.Marshal(v)
				if err != nil {
					args[i] = nil
					continue
				}
				args[i] = string(b)
			default:
				args[i] = val
			}
		}

		if _, err := stmt.Exec(args...); err != nil {
			// Skip records that violate constraints (prd002-sqlite-store R4.2).
			continue
		}
	}

	return nil
}

// joinColumns joins column names with commas.
func joinColumns(cols []string) string {
	result := ""
	for i, c := range cols {
		if i > 0 {
			result += ", "
		}
		result += c
	}
	return result
}
