package types

// Scene is the host document: an ordered set of objects, a selection, one
// optional active object, and the pie menu configuration.
type Scene interface {
	// Objects returns all objects in scene order.
	Objects() []Object

	// Object returns the object with the given ID.
	// Returns ErrObjectNotFound if no object has that ID.
	Object(id string) (Object, error)

	// Selected returns the selected objects in selection order.
	Selected() []Object

	// SetSelected replaces the selection. A nil or empty slice clears it.
	// Objects not part of the scene are ignored.
	SetSelected(objs []Object)

	// Active returns the active object, or nil if none.
	Active() Object

	// SetActive sets the active object. Passing nil clears it. The active
	// object need not be selected.
	SetActive(obj Object)

	// PieMenu returns the scene's pie menu configuration. Never nil.
	PieMenu() *PieMenu
}

// ActiveNotifier is an optional Scene capability: hosts that track active
// object changes let interested parties subscribe. The returned function
// unsubscribes; calling it more than once is a no-op.
type ActiveNotifier interface {
	OnActiveChange(fn func(Object)) (unsubscribe func())
}
