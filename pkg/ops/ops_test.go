package ops

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scenetag/internal/memscene"
	"github.com/mesh-intelligence/scenetag/pkg/types"
)

// recorder captures reported messages for assertions.
type recorder struct {
	infos    []string
	warnings []string
}

func (r *recorder) Info(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recorder) Warning(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recorder) last() string {
	if n := len(r.infos); n > 0 {
		return r.infos[n-1]
	}
	return ""
}

func testConfig() types.Config {
	return types.Config{Backend: types.BackendSQLite}
}

// testScene builds a scene of mesh objects with the given names, all
// selected.
func testScene(t *testing.T, names ...string) (*memscene.Scene, []*memscene.Object) {
	t.Helper()
	scene := memscene.New()
	objs := make([]*memscene.Object, 0, len(names))
	selection := make([]types.Object, 0, len(names))
	for _, name := range names {
		obj := memscene.NewObject(name, types.KindMesh)
		require.NoError(t, scene.AddObject(obj))
		objs = append(objs, obj)
		selection = append(selection, obj)
	}
	scene.SetSelected(selection)
	return scene, objs
}

func selectedNames(scene types.Scene) []string {
	var names []string
	for _, obj := range scene.Selected() {
		names = append(names, obj.Name())
	}
	return names
}
