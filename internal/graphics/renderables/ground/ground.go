package ground

import (
	"mini-bz/internal/config"
	"mini-bz/internal/drawarrays"
	"mini-bz/internal/graphics"
	renderer "mini-bz/internal/graphics/renderer"
	"mini-bz/internal/profiling"
	"mini-bz/internal/scene"
)

const (
	// world units covered by one repeat of the ground texture
	textureTile = 20.0
	patternSize = 64
)

// Ground draws the ground plane, either as a textured grid or as a
// flat colored quad
type Ground struct {
	reg      *drawarrays.Registry
	grid     drawarrays.Handle
	quad     drawarrays.Handle
	texture  uint32
	textured bool
}

func NewGround(reg *drawarrays.Registry) *Ground {
	return &Ground{reg: reg, textured: true}
}

// Init builds both ground arrays and the ground texture
func (g *Ground) Init() error {
	size := scene.GroundSize(config.GetWorldSize())
	g.grid = scene.BuildGroundGrid(g.reg, size, config.GetGroundDivs(), 1/textureTile)
	g.quad = scene.BuildGroundQuad(g.reg, size)
	g.texture = graphics.UploadTexture(graphics.GroundPattern(patternSize, 2), true)
	return nil
}

// SetTextured selects the textured grid or the plain quad
func (g *Ground) SetTextured(on bool) { g.textured = on }

// Textured reports which ground is drawn
func (g *Ground) Textured() bool { return g.textured }

func (g *Ground) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderGround")()

	p := ctx.Pipeline
	if g.textured {
		g.reg.SetColor(1, 1, 1, 1)
		p.SetTexture(g.texture, false)
		g.reg.Draw(g.grid, drawarrays.Triangles)
		p.SetTexture(0, false)
		return
	}
	g.reg.SetColor(0.35, 0.55, 0.25, 1)
	g.reg.Draw(g.quad, drawarrays.Triangles)
}

// Dispose deletes the ground arrays and texture
func (g *Ground) Dispose() {
	if g.grid != drawarrays.InvalidHandle {
		g.reg.Delete(g.grid)
		g.grid = drawarrays.InvalidHandle
	}
	if g.quad != drawarrays.InvalidHandle {
		g.reg.Delete(g.quad)
		g.quad = drawarrays.InvalidHandle
	}
	graphics.DeleteTexture(&g.texture)
}

func (g *Ground) SetViewport(width, height int) {}
