package arraymodel

import (
	"os"
	"path/filepath"
	"testing"

	"mini-bz/internal/drawarrays"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModels = "testdata/models"

func TestLoadSimpleModel(t *testing.T) {
	loader := NewLoader(testModels)
	model, err := loader.LoadModel("marker")
	require.NoError(t, err)

	assert.Equal(t, "marker", model.Name)
	assert.Equal(t, drawarrays.TriangleFan, model.DrawMode())
	assert.Equal(t, []float32{1, 0.5, 0}, model.Color)
	require.Len(t, model.Vertices, 4)
	assert.Equal(t, []float32{1, 1}, model.Vertices[2].Position)
}

func TestLoadChildModel(t *testing.T) {
	loader := NewLoader(testModels)
	model, err := loader.LoadModel("marker_blue")
	require.NoError(t, err)

	assert.Equal(t, "marker_blue", model.Name)
	assert.Equal(t, drawarrays.TriangleFan, model.DrawMode(), "mode is inherited")
	assert.Equal(t, []float32{0, 0, 1, 0.5}, model.Color, "color is overridden")
	assert.Len(t, model.Vertices, 4)

	lines, err := loader.LoadModel("lines.yaml")
	require.NoError(t, err)
	assert.Equal(t, drawarrays.LineStrip, lines.DrawMode())
	assert.Len(t, lines.Vertices, 6)
}

func TestChildDoesNotShareParentData(t *testing.T) {
	loader := NewLoader(testModels)
	child, err := loader.LoadModel("lines")
	require.NoError(t, err)
	child.Vertices[0].Position[0] = 99

	parent, err := loader.LoadModel("pyramid")
	require.NoError(t, err)
	assert.Equal(t, float32(-1), parent.Vertices[0].Position[0])
}

func TestCache(t *testing.T) {
	loader := NewLoader(testModels)
	m1, err := loader.LoadModel("marker")
	require.NoError(t, err)
	m2, err := loader.LoadModel("marker")
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}

func TestLoadErrors(t *testing.T) {
	loader := NewLoader(testModels)
	for name, want := range map[string]string{
		"bad_topology":  "cannot be drawn as triangles",
		"partial_color": "color must be set on every vertex or none",
		"loop_a":        "extends itself",
		"misspelled":    "vertexes",
		"absent":        "could not read model file",
	} {
		_, err := loader.LoadModel(name)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), want, name)
	}
}

func TestValidateComponentCounts(t *testing.T) {
	m := &Model{Name: "odd", Vertices: []Vertex{{Position: []float32{0, 0, 0, 0}}}}
	m.Mode = new(drawarrays.Mode)
	assert.ErrorContains(t, m.Validate(), "position has 4 components")

	m = &Model{Name: "tex", Vertices: []Vertex{{TexCoord: []float32{1}, Position: []float32{0, 0}}}}
	m.Mode = new(drawarrays.Mode)
	assert.ErrorContains(t, m.Validate(), "texcoord has 1 components")

	m = &Model{Name: "tint", Color: []float32{1, 1}}
	assert.ErrorContains(t, m.Validate(), "color has 2 components")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("base.yaml", "mode: points\nvertices:\n  - position: [1, 2, 3]\n")
	write("dot.yaml", "extends: base\ncolor: [1, 1, 1]\n")

	m, err := LoadFile(filepath.Join(dir, "dot.yaml"))
	require.NoError(t, err)
	assert.Equal(t, drawarrays.Points, m.DrawMode())
	assert.Equal(t, []float32{1, 2, 3}, m.Vertices[0].Position)
}
