// Package memscene implements the in-memory scene host: ordered objects,
// selection, an active object with change notification, and the pie menu.
// Implements: prd001-scene-core R2 (Scene), R4 (selection consistency),
//             R5 (active object and notifier);
//             docs/ARCHITECTURE § Scene Host.
package memscene

import (
	"sync"

	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// Scene is an in-memory types.Scene. Objects keep insertion order, the
// selection keeps the order it was applied in, and the active object is
// tracked by ID so removal cannot leave a dangling pointer.
type Scene struct {
	mu       sync.RWMutex
	objects  []*Object          // insertion order
	byID     map[string]*Object // ID lookup
	byName   map[string]*Object // name lookup, names are unique
	selected []string           // selection as ordered object IDs
	active   string             // active object ID, "" for none
	pie      *types.PieMenu

	subMu   sync.Mutex                  // protects subs and nextSub
	subs    map[int]func(types.Object)  // active-change subscribers
	nextSub int
}

// New creates an empty scene with an empty pie menu.
func New() *Scene {
	return &Scene{
		byID:   make(map[string]*Object),
		byName: make(map[string]*Object),
		pie:    types.NewPieMenu(),
		subs:   make(map[int]func(types.Object)),
	}
}

// AddObject appends obj to the scene. Returns types.ErrDuplicateName if an
// object with the same name already exists.
func (s *Scene) AddObject(obj *Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[obj.name]; exists {
		return types.ErrDuplicateName
	}
	s.objects = append(s.objects, obj)
	s.byID[obj.id] = obj
	s.byName[obj.name] = obj
	return nil
}

// RemoveObject removes the object with the given ID, dropping it from the
// selection and clearing the active object if it was active. Returns
// types.ErrObjectNotFound for unknown IDs.
func (s *Scene) RemoveObject(id string) error {
	s.mu.Lock()

	obj, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return types.ErrObjectNotFound
	}

	delete(s.byID, id)
	delete(s.byName, obj.name)
	for i, o := range s.objects {
		if o.id == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			break
		}
	}
	s.selected = removeID(s.selected, id)

	cleared := false
	if s.active == id {
		s.active = ""
		cleared = true
	}
	s.mu.Unlock()

	if cleared {
		s.notifyActive(nil)
	}
	return nil
}

// Objects returns all objects in scene order.
func (s *Scene) Objects() []types.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Object, len(s.objects))
	for i, obj := range s.objects {
		out[i] = obj
	}
	return out
}

// Object returns the object with the given ID, or types.ErrObjectNotFound.
func (s *Scene) Object(id string) (types.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.byID[id]
	if !ok {
		return nil, types.ErrObjectNotFound
	}
	return obj, nil
}

// ObjectByName returns the object with the given name, or
// types.ErrObjectNotFound.
func (s *Scene) ObjectByName(name string) (types.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.byName[name]
	if !ok {
		return nil, types.ErrObjectNotFound
	}
	return obj, nil
}

// Len returns the number of objects in the scene.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Selected returns the selected objects in selection order.
func (s *Scene) Selected() []types.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Object, 0, len(s.selected))
	for _, id := range s.selected {
		if obj, ok := s.byID[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

// SetSelected replaces the selection. Nil or empty clears it. Objects not in
// the scene are ignored; duplicates keep their first position.
func (s *Scene) SetSelected(objs []types.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(objs))
	ids := make([]string, 0, len(objs))
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		id := obj.ID()
		if seen[id] {
			continue
		}
		if _, ok := s.byID[id]; !ok {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	s.selected = ids
}

// Active returns the active object, or nil when none is active.
func (s *Scene) Active() types.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == "" {
		return nil
	}
	return s.byID[s.active]
}

// SetActive sets the active object. Nil clears it. The active object need
// not be selected. Objects not in the scene are ignored. Subscribers fire
// only when the active object actually changes.
func (s *Scene) SetActive(obj types.Object) {
	s.mu.Lock()

	id := ""
	var resolved types.Object
	if obj != nil {
		member, ok := s.byID[obj.ID()]
		if !ok {
			s.mu.Unlock()
			return
		}
		id = member.id
		resolved = member
	}
	if s.active == id {
		s.mu.Unlock()
		return
	}
	s.active = id
	s.mu.Unlock()

	s.notifyActive(resolved)
}

// PieMenu returns the scene's pie menu. Never nil.
func (s *Scene) PieMenu() *types.PieMenu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pie
}

// OnActiveChange registers fn to run after the active object changes. The
// callback receives the new active object, nil when cleared. Returns an
// unsubscribe function.
func (s *Scene) OnActiveChange(fn func(types.Object)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// notifyActive runs subscribers outside the scene lock so callbacks can
// read scene state.
func (s *Scene) notifyActive(obj types.Object) {
	s.subMu.Lock()
	fns := make([]func(types.Object), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(obj)
	}
}

// removeID returns ids with the first occurrence of id removed.
func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
