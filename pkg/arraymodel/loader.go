package arraymodel

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const ext = ".yaml"

type Loader struct {
	root       string
	modelCache map[string]*Model
	loading    map[string]bool
}

// NewLoader resolves model names relative to root.
func NewLoader(root string) *Loader {
	return &Loader{
		root:       root,
		modelCache: make(map[string]*Model),
		loading:    make(map[string]bool),
	}
}

// LoadFile loads the model at path; its extends names resolve against
// the file's directory.
func LoadFile(path string) (*Model, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return NewLoader(filepath.Dir(path)).LoadModel(name)
}

// LoadModel returns the model stored in <root>/<name>.yaml with its
// parents applied. Models are cached by name and must not be modified.
func (l *Loader) LoadModel(name string) (*Model, error) {
	name = strings.TrimSuffix(name, ext)
	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}
	if l.loading[name] {
		return nil, fmt.Errorf("model %q extends itself", name)
	}
	l.loading[name] = true
	defer delete(l.loading, name)

	data, err := os.ReadFile(filepath.Join(l.root, name+ext))
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	model, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", name, err)
	}
	if model.Name == "" {
		model.Name = name
	}

	if model.Extends != "" {
		parent, err := l.LoadModel(model.Extends)
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", model.Extends, err)
		}
		inherit(model, parent)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	l.modelCache[name] = model
	return model, nil
}

// Decode parses one YAML model document without resolving extends.
// Unknown fields are an error.
func Decode(data []byte) (*Model, error) {
	var m Model
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("could not unmarshal model yaml: %w", err)
	}
	return &m, nil
}

// inherit fills the fields child leaves empty from parent. Slices are
// cloned so cached parents are never shared.
func inherit(child, parent *Model) {
	if child.Mode == nil && parent.Mode != nil {
		mode := *parent.Mode
		child.Mode = &mode
	}
	if len(child.Color) == 0 {
		child.Color = slices.Clone(parent.Color)
	}
	if len(child.Vertices) == 0 {
		child.Vertices = make([]Vertex, len(parent.Vertices))
		for i, v := range parent.Vertices {
			child.Vertices[i] = Vertex{
				Color:    slices.Clone(v.Color),
				TexCoord: slices.Clone(v.TexCoord),
				Normal:   slices.Clone(v.Normal),
				Position: slices.Clone(v.Position),
			}
		}
	}
}
