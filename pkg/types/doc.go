// Package types defines the Scene and Object interfaces, the pie menu
// entity, tag status and selection mode constants, and standard error
// types for the scenetag tagging system.
// Implements: prd001-scene-core (Scene, Object, PieMenu, error types);
//
//	docs/ARCHITECTURE § Main Interface, § System Components (Scene API).
package types
