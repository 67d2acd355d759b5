// Package sqlite implements the scene document store for scenetag.
// This file implements demo scene seeding for init --demo.
// Implements: prd002-sqlite-store R9 (demo scene seeding).
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/scenetag/internal/memscene"
	"github.com/mesh-intelligence/scenetag/pkg/tags"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// seedObject describes a demo object to seed.
type seedObject struct {
	name     string
	kind     string
	tags     []string
	selected bool
}

// demoObjects defines the demo scene created by init --demo
// (prd002-sqlite-store R9.1). Hero and Sidekick start selected and share the
// character tag, so the panel opens with one tag at ALL and one at SOME.
var demoObjects = []seedObject{
	{
		name:     "Hero",
		kind:     types.KindMesh,
		tags:     []string{"character", "hero"},
		selected: true,
	},
	{
		name:     "Sidekick",
		kind:     types.KindMesh,
		tags:     []string{"character"},
		selected: true,
	},
	{
		name: "Stage",
		kind: types.KindMesh,
		tags: []string{"environment"},
	},
	{
		name: "Props",
		kind: types.KindMesh,
		tags: []string{"environment", "props"},
	},
	{
		name: "KeyLight",
		kind: types.KindLight,
		tags: []string{"lighting"},
	},
	{
		name: "FillLight",
		kind: types.KindLight,
		tags: []string{"lighting"},
	},
	{
		name: "MainCamera",
		kind: types.KindCamera,
	},
}

// demoPieMenu lists the tags pinned to the pie menu by the demo scene.
var demoPieMenu = []string{"character", "environment", "props", "lighting"}

// Seed populates an empty scene with the demo objects, selection, and pie
// menu. Seeding is idempotent: a scene that already has objects is left
// untouched (prd002-sqlite-store R9.4).
func Seed(scene *memscene.Scene, acc tags.Accessor) error {
	if scene.Len() > 0 {
		return nil
	}

	var selected []types.Object
	for _, so := range demoObjects {
		obj := memscene.NewObject(so.name, so.kind)
		if err := scene.AddObject(obj); err != nil {
			return fmt.Errorf("seeding object %s: %w", so.name, err)
		}
		for _, tag := range so.tags {
			if err := acc.Set(obj, tag); err != nil {
				return fmt.Errorf("seeding tag %s on %s: %w", tag, so.name, err)
			}
		}
		if so.selected {
			selected = append(selected, obj)
		}
	}

	scene.SetSelected(selected)
	if len(selected) > 0 {
		scene.SetActive(selected[0])
	}
	scene.PieMenu().Reset(demoPieMenu)
	return nil
}
