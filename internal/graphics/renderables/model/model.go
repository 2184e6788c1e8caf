package model

import (
	"mini-bz/internal/drawarrays"
	renderer "mini-bz/internal/graphics/renderer"
	"mini-bz/internal/profiling"
	"mini-bz/pkg/arraymodel"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Model draws an array model loaded from disk, scaled and spinning
// slowly about the vertical axis
type Model struct {
	reg   *drawarrays.Registry
	model *arraymodel.Model
	h     drawarrays.Handle

	scale float32
	angle float32
}

func NewModel(reg *drawarrays.Registry, m *arraymodel.Model, scale float32) *Model {
	return &Model{reg: reg, model: m, scale: scale}
}

func (m *Model) Init() error {
	m.h = m.model.Build(m.reg)
	return nil
}

func (m *Model) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderModel")()

	m.angle += float32(ctx.DT) * 0.5

	p := ctx.Pipeline
	p.SetModel(mgl32.HomogRotate3DZ(m.angle).Mul4(mgl32.Scale3D(m.scale, m.scale, m.scale)))
	p.SetLighting(true)
	p.SetPointSize(4)
	gl.Enable(gl.BLEND)

	m.model.Draw(m.reg, m.h)

	gl.Disable(gl.BLEND)
	p.SetLighting(false)
	p.SetModel(mgl32.Ident4())
}

func (m *Model) Dispose() {
	if m.h != drawarrays.InvalidHandle {
		m.reg.Delete(m.h)
		m.h = drawarrays.InvalidHandle
	}
}

func (m *Model) SetViewport(width, height int) {}
