package renderer

import (
	"mini-bz/internal/drawarrays"
	"mini-bz/internal/graphics"
	"mini-bz/internal/graphics/gldraw"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera   *graphics.Camera
	Arrays   *drawarrays.Registry
	Pipeline *gldraw.Pipeline
	DT       float64
	View     mgl32.Mat4
	Proj     mgl32.Mat4
	// Ortho maps window pixels, origin top-left
	Ortho  mgl32.Mat4
	Width  int
	Height int
}

// Renderable interface defines the lifecycle for renderable features.
// Init builds any named arrays; Dispose deletes them again.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
