package renderer

import (
	"log/slog"

	"mini-bz/internal/drawarrays"
	"mini-bz/internal/graphics"
	"mini-bz/internal/graphics/gldraw"
	"mini-bz/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	arrays      *drawarrays.Registry
	pipeline    *gldraw.Pipeline

	width, height int
}

// NewRenderer creates a renderer drawing arrays through pipeline and
// initializes rs in order.
func NewRenderer(arrays *drawarrays.Registry, pipeline *gldraw.Pipeline, width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.FrontFace(gl.CCW)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
		arrays:      arrays,
		pipeline:    pipeline,
	}
	if err := r.initAll(); err != nil {
		return nil, err
	}
	r.UpdateViewport(width, height)
	return r, nil
}

func (r *Renderer) initAll() error {
	for _, rb := range r.renderables {
		if err := rb.Init(); err != nil {
			return err
		}
	}
	return nil
}

// Render executes the main render loop
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.04, 0.05, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:   r.camera,
		Arrays:   r.arrays,
		Pipeline: r.pipeline,
		DT:       dt,
		View:     r.camera.GetViewMatrix(),
		Proj:     r.camera.GetProjectionMatrix(),
		Ortho:    graphics.GetOrthoMatrix(r.width, r.height),
		Width:    r.width,
		Height:   r.height,
	}

	r.arrays.ResetStats()
	r.pipeline.Bind()
	for _, renderable := range r.renderables {
		r.pipeline.SetMatrices(ctx.Proj, ctx.View)
		renderable.Render(ctx)
	}
}

// Rebuild recreates every renderable's arrays from scratch, as after
// losing the graphics context: dispose in reverse order, reset the
// registry, then init in order.
func (r *Renderer) Rebuild() error {
	defer profiling.Track("renderer.Rebuild")()
	r.disposeAll()
	r.arrays.Reset()
	if err := r.initAll(); err != nil {
		return err
	}
	for _, rb := range r.renderables {
		rb.SetViewport(r.width, r.height)
	}
	slog.Info("renderer rebuilt", "arrays", r.arrays.Len())
	return nil
}

func (r *Renderer) disposeAll() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Dispose cleans up all renderables in reverse order, then reports any
// array still registered as leaked.
func (r *Renderer) Dispose() {
	r.disposeAll()
	r.arrays.Close()
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable for a new
// framebuffer size
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.camera.SetViewport(width, height)
	for _, rb := range r.renderables {
		rb.SetViewport(width, height)
	}
}
