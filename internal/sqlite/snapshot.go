// JSONL snapshot persistence: dumps the database tables to snapshot files.
// Implements: prd002-sqlite-store R5 (persistence), R5.2 (atomic write).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// persistSnapshot writes all four tables to their JSONL snapshot files
// (prd002-sqlite-store R5). Rows dump in a stable order so snapshots diff
// cleanly under version control.
func persistSnapshot(db *sql.DB, dataDir string) error {
	dumps := []struct {
		file string
		dump func(*sql.DB) ([]json.RawMessage, error)
	}{
		{objectsFile, dumpObjects},
		{annotationsFile, dumpAnnotations},
		{sceneStateFile, dumpSceneState},
		{pieMenuFile, dumpPieMenu},
	}
	for _, d := range dumps {
		records, err := d.dump(db)
		if err != nil {
			return fmt.Errorf("dumping %s: %w", d.file, err)
		}
		if err := writeJSONL(filepath.Join(dataDir, d.file), records); err != nil {
			return fmt.Errorf("writing %s: %w", d.file, err)
		}
	}
	return nil
}

// dumpObjects reads the objects table as objects.jsonl records.
func dumpObjects(db *sql.DB) ([]json.RawMessage, error) {
	rows, err := db.Query("SELECT object_id, name, kind, ordinal FROM objects ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying objects: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec objectJSON
		if err := rows.Scan(&rec.ObjectID, &rec.Name, &rec.Kind, &rec.Ordinal); err != nil {
			return nil, fmt.Errorf("scanning object: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling object: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// dumpAnnotations reads the annotations table as annotations.jsonl records.
func dumpAnnotations(db *sql.DB) ([]json.RawMessage, error) {
	rows, err := db.Query("SELECT object_id, key, value_type, value FROM annotations ORDER BY object_id, key")
	if err != nil {
		return nil, fmt.Errorf("querying annotations: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec annotationJSON
		if err := rows.Scan(&rec.ObjectID, &rec.Key, &rec.ValueType, &rec.Value); err != nil {
			return nil, fmt.Errorf("scanning annotation: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling annotation: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// dumpSceneState reads the scene_state table as scene_state.jsonl records.
func dumpSceneState(db *sql.DB) ([]json.RawMessage, error) {
	rows, err := db.Query("SELECT key, value FROM scene_state ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("querying scene_state: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec sceneStateJSON
		if err := rows.Scan(&rec.Key, &rec.Value); err != nil {
			return nil, fmt.Errorf("scanning scene_state: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling scene_state: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// dumpPieMenu reads the pie_menu table as pie_menu.jsonl records.
func dumpPieMenu(db *sql.DB) ([]json.RawMessage, error) {
	rows, err := db.Query("SELECT ordinal, tag FROM pie_menu ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying pie_menu: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec pieMenuJSON
		if err := rows.Scan(&rec.Ordinal, &rec.Tag); err != nil {
			return nil, fmt.Errorf("scanning pie_menu: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling pie_menu: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
