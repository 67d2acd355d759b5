// JSON record structures for SQLite store persistence.
// These structures define the JSON/JSONL record format for data files.
// Implements: prd002-sqlite-store R2 (snapshot format), R7 (value types);
//
//	docs/ARCHITECTURE § Scene Store.
package sqlite

import (
	"encoding/json"
	"fmt"
)

// objectJSON represents a scene object in objects.jsonl.
type objectJSON struct {
	ObjectID string `json:"object_id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Ordinal  int64  `json:"ordinal"`
}

// annotationJSON represents one property-bag entry in annotations.jsonl.
// Value holds the JSON encoding of the entry's value; ValueType records
// which Go type it decodes to.
type annotationJSON struct {
	ObjectID  string `json:"object_id"`
	Key       string `json:"key"`
	ValueType string `json:"value_type"`
	Value     string `json:"value"`
}

// sceneStateJSON represents a scene_state row in scene_state.jsonl.
// Known keys are stateSelection (JSON array of object IDs) and stateActive
// (a single object ID).
type sceneStateJSON struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// pieMenuJSON represents a pie menu slot in pie_menu.jsonl.
type pieMenuJSON struct {
	Ordinal int64  `json:"ordinal"`
	Tag     string `json:"tag"`
}

// Value type tags stored in the annotations value_type column.
const (
	valueTypeBool   = "bool"
	valueTypeInt    = "int"
	valueTypeFloat  = "float"
	valueTypeString = "string"
	valueTypeJSON   = "json"
)

// Scene state keys.
const (
	stateSelection = "selection"
	stateActive    = "active"
)

// encodeValue returns the value_type tag and JSON encoding for a property
// value (prd002-sqlite-store R7).
func encodeValue(v any) (string, string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", "", fmt.Errorf("marshaling property value: %w", err)
	}
	var vt string
	switch v.(type) {
	case bool:
		vt = valueTypeBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		vt = valueTypeInt
	case float32, float64:
		vt = valueTypeFloat
	case string:
		vt = valueTypeString
	default:
		vt = valueTypeJSON
	}
	return vt, string(data), nil
}

// decodeValue parses a stored JSON value. Integer values normalize to int64
// so tag truthiness checks see a concrete integer type.
func decodeValue(valueType, raw string) (any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parsing stored value: %w", err)
	}
	if valueType == valueTypeInt {
		if f, ok := parsed.(float64); ok {
			return int64(f), nil
		}
	}
	return parsed, nil
}
