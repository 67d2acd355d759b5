// Scene hydration and dehydration between SQLite rows and the in-memory
// scene document.
// Implements: prd002-sqlite-store R5 (persistence), R14 (hydration);
//             prd001-scene-core R2 (document load).
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/scenetag/internal/memscene"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// Load hydrates a scene document from the database (prd002-sqlite-store R14).
// Objects come back in scene order; annotations whose object no longer
// exists are dropped.
func (s *Store) Load() (*memscene.Scene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.opened {
		return nil, types.ErrStoreClosed
	}

	scene := memscene.New()

	byID, err := s.hydrateObjects(scene)
	if err != nil {
		return nil, err
	}
	if err := s.hydrateAnnotations(byID); err != nil {
		return nil, err
	}
	if err := s.hydrateSceneState(scene, byID); err != nil {
		return nil, err
	}
	if err := s.hydratePieMenu(scene); err != nil {
		return nil, err
	}

	return scene, nil
}

// hydrateObjects loads the objects table into the scene in ordinal order and
// returns the loaded objects keyed by ID.
func (s *Store) hydrateObjects(scene *memscene.Scene) (map[string]*memscene.Object, error) {
	rows, err := s.db.Query("SELECT object_id, name, kind FROM objects ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("querying objects: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*memscene.Object)
	for rows.Next() {
		var id, name, kind string
		if err := rows.Scan(&id, &name, &kind); err != nil {
			return nil, fmt.Errorf("scanning object: %w", err)
		}
		obj := memscene.Restore(id, name, kind, nil)
		if err := scene.AddObject(obj); err != nil {
			// Duplicate names cannot come from a saved document, but a
			// hand-edited snapshot can carry them. Keep the first.
			continue
		}
		byID[id] = obj
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating objects: %w", err)
	}
	return byID, nil
}

// hydrateAnnotations loads annotation rows into each object's property bag.
func (s *Store) hydrateAnnotations(byID map[string]*memscene.Object) error {
	rows, err := s.db.Query("SELECT object_id, key, value_type, value FROM annotations")
	if err != nil {
		return fmt.Errorf("querying annotations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var objectID, key, valueType, raw string
		if err := rows.Scan(&objectID, &key, &valueType, &raw); err != nil {
			return fmt.Errorf("scanning annotation: %w", err)
		}
		obj, ok := byID[objectID]
		if !ok {
			continue
		}
		val, err := decodeValue(valueType, raw)
		if err != nil {
			// Skip values that no longer parse rather than failing the
			// whole document.
			continue
		}
		obj.Set(key, val)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating annotations: %w", err)
	}
	return nil
}

// hydrateSceneState restores the selection order and active object.
func (s *Store) hydrateSceneState(scene *memscene.Scene, byID map[string]*memscene.Object) error {
	rows, err := s.db.Query("SELECT key, value FROM scene_state")
	if err != nil {
		return fmt.Errorf("querying scene_state: %w", err)
	}
	defer rows.Close()

	var selectionJSON, activeID string
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scanning scene_state: %w", err)
		}
		switch key {
		case stateSelection:
			selectionJSON = value
		case stateActive:
			activeID = value
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating scene_state: %w", err)
	}

	if selectionJSON != "" {
		var ids []string
		if err := json.Unmarshal([]byte(selectionJSON), &ids); err == nil {
			var selected []types.Object
			for _, id := range ids {
				if obj, ok := byID[id]; ok {
					selected = append(selected, obj)
				}
			}
			scene.SetSelected(selected)
		}
	}
	if obj, ok := byID[activeID]; ok {
		scene.SetActive(obj)
	}
	return nil
}

// hydratePieMenu restores the pie menu slots in ordinal order.
func (s *Store) hydratePieMenu(scene *memscene.Scene) error {
	rows, err := s.db.Query("SELECT tag FROM pie_menu ORDER BY ordinal")
	if err != nil {
		return fmt.Errorf("querying pie_menu: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("scanning pie_menu: %w", err)
		}
		names = append(names, tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating pie_menu: %w", err)
	}

	scene.PieMenu().Reset(names)
	return nil
}

// Save dehydrates the scene into the database, replacing the previous
// document, then runs the configured sync strategy (prd002-sqlite-store R5).
func (s *Store) Save(scene types.Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return types.ErrStoreClosed
	}

	if err := s.replaceSceneLocked(scene); err != nil {
		return err
	}
	return s.persistAfterSaveLocked()
}

// replaceSceneLocked rewrites all four tables from the scene in one
// transaction. The caller must hold s.mu write lock.
func (s *Store) replaceSceneLocked(scene types.Scene) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	// Annotations reference objects, so they clear first.
	for _, table := range []string{"annotations", "scene_state", "pie_menu", "objects"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := dehydrateObjects(tx, scene); err != nil {
		return err
	}
	if err := dehydrateSceneState(tx, scene); err != nil {
		return err
	}
	if err := dehydratePieMenu(tx, scene); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// dehydrateObjects writes object and annotation rows in scene order.
func dehydrateObjects(tx *sql.Tx, scene types.Scene) error {
	objStmt, err := tx.Prepare("INSERT INTO objects (object_id, name, kind, ordinal) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing object insert: %w", err)
	}
	defer objStmt.Close()

	annStmt, err := tx.Prepare("INSERT INTO annotations (object_id, key, value_type, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing annotation insert: %w", err)
	}
	defer annStmt.Close()

	for i, obj := range scene.Objects() {
		if _, err := objStmt.Exec(obj.ID(), obj.Name(), obj.Kind(), i); err != nil {
			return fmt.Errorf("inserting object %s: %w", obj.Name(), err)
		}
		for _, key := range obj.Keys() {
			val, ok := obj.Get(key)
			if !ok {
				continue
			}
			vt, raw, err := encodeValue(val)
			if err != nil {
				return fmt.Errorf("encoding %s property %s: %w", obj.Name(), key, err)
			}
			if _, err := annStmt.Exec(obj.ID(), key, vt, raw); err != nil {
				return fmt.Errorf("inserting annotation %s on %s: %w", key, obj.Name(), err)
			}
		}
	}
	return nil
}

// dehydrateSceneState writes the selection order and active object.
func dehydrateSceneState(tx *sql.Tx, scene types.Scene) error {
	selected := scene.Selected()
	ids := make([]string, 0, len(selected))
	for _, obj := range selected {
		ids = append(ids, obj.ID())
	}
	selJSON, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshaling selection: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO scene_state (key, value) VALUES (?, ?)",
		stateSelection, string(selJSON),
	); err != nil {
		return fmt.Errorf("inserting selection state: %w", err)
	}

	if active := scene.Active(); active != nil {
		if _, err := tx.Exec(
			"INSERT INTO scene_state (key, value) VALUES (?, ?)",
			stateActive, active.ID(),
		); err != nil {
			return fmt.Errorf("inserting active state: %w", err)
		}
	}
	return nil
}

// dehydratePieMenu writes the pie menu slots in order.
func dehydratePieMenu(tx *sql.Tx, scene types.Scene) error {
	for i, tag := range scene.PieMenu().Names() {
		if _, err := tx.Exec(
			"INSERT INTO pie_menu (ordinal, tag) VALUES (?, ?)",
			i, tag,
		); err != nil {
			return fmt.Errorf("inserting pie_menu slot %d: %w", i, err)
		}
	}
	return nil
}
