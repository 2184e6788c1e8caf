// Package arraymodel loads draw arrays described in YAML files.
//
//	name: marker
//	mode: triangle_fan
//	color: [1, 0.5, 0]
//	vertices:
//	  - position: [0, 0]
//	  - position: [1, 0]
//	  - position: [1, 1]
//
// A model may name another file under extends; fields it leaves empty
// are taken from that parent.
package arraymodel

import (
	"fmt"

	"mini-bz/internal/drawarrays"
)

// Vertex is one vertex of a model. Only Position is required; the other
// attributes must be given on every vertex or on none.
type Vertex struct {
	Color    []float32 `yaml:"color,omitempty"`
	TexCoord []float32 `yaml:"texcoord,omitempty"`
	Normal   []float32 `yaml:"normal,omitempty"`
	Position []float32 `yaml:"position"`
}

type Model struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends,omitempty"`

	Mode *drawarrays.Mode `yaml:"mode,omitempty"`
	// Color is the current color for models whose vertices carry none
	Color    []float32 `yaml:"color,omitempty"`
	Vertices []Vertex  `yaml:"vertices"`
}

// DrawMode returns the model's topology, triangles when unset.
func (m *Model) DrawMode() drawarrays.Mode {
	if m.Mode == nil {
		return drawarrays.Triangles
	}
	return *m.Mode
}

// Validate checks attribute sizes, that each optional attribute is
// present on all vertices or none, and that the vertex count suits the
// mode.
func (m *Model) Validate() error {
	if n := len(m.Color); n != 0 && n != 3 && n != 4 {
		return fmt.Errorf("model %q: color has %d components", m.Name, n)
	}
	var first Vertex
	if len(m.Vertices) > 0 {
		first = m.Vertices[0]
	}
	for i, v := range m.Vertices {
		checks := []struct {
			attr  string
			got   []float32
			ref   []float32
			sizes []int
		}{
			{"color", v.Color, first.Color, []int{3, 4}},
			{"texcoord", v.TexCoord, first.TexCoord, []int{2}},
			{"normal", v.Normal, first.Normal, []int{3}},
			{"position", v.Position, first.Position, []int{2, 3}},
		}
		for _, c := range checks {
			if (len(c.got) == 0) != (len(c.ref) == 0) {
				return fmt.Errorf("model %q: vertex %d: %s must be set on every vertex or none", m.Name, i, c.attr)
			}
			if len(c.got) != 0 && !oneOf(len(c.got), c.sizes) {
				return fmt.Errorf("model %q: vertex %d: %s has %d components", m.Name, i, c.attr, len(c.got))
			}
		}
		if len(v.Position) == 0 {
			return fmt.Errorf("model %q: vertex %d: missing position", m.Name, i)
		}
	}
	if mode := m.DrawMode(); !mode.Accepts(len(m.Vertices)) {
		return fmt.Errorf("model %q: %d vertices cannot be drawn as %s", m.Name, len(m.Vertices), mode)
	}
	return nil
}

func oneOf(n int, sizes []int) bool {
	for _, s := range sizes {
		if n == s {
			return true
		}
	}
	return false
}
