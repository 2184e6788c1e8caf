package crosshair

import (
	"mini-bz/internal/drawarrays"
	renderer "mini-bz/internal/graphics/renderer"
	"mini-bz/internal/profiling"
	"mini-bz/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// half length of each arm in pixels
const armLength = 10

// Crosshair draws a plus sign at the window center from a temporary
// array every frame
type Crosshair struct {
	reg    *drawarrays.Registry
	cx, cy float32
}

// NewCrosshair creates a new crosshair renderable
func NewCrosshair(reg *drawarrays.Registry) *Crosshair {
	return &Crosshair{reg: reg}
}

// Init has nothing to build; the crosshair owns no named arrays
func (c *Crosshair) Init() error {
	return nil
}

// Render renders the crosshair
func (c *Crosshair) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCrosshair")()

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	ctx.Pipeline.SetMatrices(ctx.Ortho, mgl32.Ident4())
	ctx.Pipeline.SetTexture(0, false)
	gl.LineWidth(1.0)
	c.reg.SetColor(1, 1, 1, 0.9)
	scene.DrawCrosshair(c.reg, c.cx, c.cy, armLength)
}

// Dispose has nothing to release
func (c *Crosshair) Dispose() {}

// SetViewport recenters the crosshair
func (c *Crosshair) SetViewport(width, height int) {
	c.cx, c.cy = float32(width)/2, float32(height)/2
}
