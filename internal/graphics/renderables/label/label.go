package label

import (
	"sync"

	"mini-bz/internal/drawarrays"
	"mini-bz/internal/graphics"
	"mini-bz/internal/graphics/font"
	renderer "mini-bz/internal/graphics/renderer"
	"mini-bz/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const margin = 10

// Label draws a block of text in the top-left corner of the window
type Label struct {
	reg     *drawarrays.Registry
	pixels  int
	font    *font.TextureFont
	texture uint32

	mu   sync.Mutex
	text string
}

// NewLabel creates a label whose glyphs are baked at pixels size
func NewLabel(reg *drawarrays.Registry, pixels int) *Label {
	return &Label{reg: reg, pixels: pixels}
}

// Init bakes the atlas, uploads it and builds one array per glyph
func (l *Label) Init() error {
	atlas, err := font.Default(l.pixels)
	if err != nil {
		return err
	}
	l.font = font.NewTextureFont(l.reg, atlas)
	l.texture = graphics.UploadAlpha(atlas.Image)
	return nil
}

// SetText replaces the displayed text
func (l *Label) SetText(text string) {
	l.mu.Lock()
	l.text = text
	l.mu.Unlock()
}

func (l *Label) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderLabel")()

	l.mu.Lock()
	text := l.text
	l.mu.Unlock()
	if text == "" {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	defer func() {
		gl.Disable(gl.BLEND)
		gl.Enable(gl.DEPTH_TEST)
	}()

	p := ctx.Pipeline
	p.SetMatrices(ctx.Ortho, mgl32.Ident4())
	p.SetTexture(l.texture, true)
	l.reg.SetColor(1, 1, 1, 1)
	l.font.DrawString(p, text, margin, margin+l.font.Atlas().LineHeight, 1)
	p.SetTexture(0, false)
}

// Dispose deletes the glyph arrays and the atlas texture
func (l *Label) Dispose() {
	if l.font != nil {
		l.font.Dispose()
		l.font = nil
	}
	graphics.DeleteTexture(&l.texture)
}

func (l *Label) SetViewport(width, height int) {}
