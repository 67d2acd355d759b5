package types

import "errors"

// Standard errors returned by tag, pie menu, and scene operations.
var (
	// ErrEmptyTagName is returned when a tag name is empty after trimming.
	ErrEmptyTagName = errors.New("tag name is empty")

	// ErrPieMenuFull is returned when appending to a pie menu at capacity.
	ErrPieMenuFull = errors.New("pie menu is full")

	// ErrDuplicateTag is returned when appending a tag already in the pie menu.
	ErrDuplicateTag = errors.New("tag already in pie menu")

	// ErrIndexOutOfRange is returned for pie menu indices that no longer
	// name an entry.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrObjectNotFound is returned when no object has the requested ID or name.
	ErrObjectNotFound = errors.New("object not found")

	// ErrDuplicateName is returned when creating an object whose name is taken.
	ErrDuplicateName = errors.New("object name already exists")

	// ErrNoSelection is returned by operations that need at least one
	// selected object.
	ErrNoSelection = errors.New("no objects selected")

	// ErrInvalidStatus is returned for unrecognized tag status values.
	ErrInvalidStatus = errors.New("invalid tag status")

	// ErrInvalidMode is returned for unrecognized selection mode values.
	ErrInvalidMode = errors.New("invalid selection mode")

	// ErrInvalidKind is returned for unrecognized object kind values.
	ErrInvalidKind = errors.New("invalid object kind")

	// ErrStoreClosed is returned by store operations after Close.
	ErrStoreClosed = errors.New("store is closed")

	// ErrAlreadyOpen is returned when opening a store twice.
	ErrAlreadyOpen = errors.New("store is already open")
)
