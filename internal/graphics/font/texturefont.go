package font

import (
	"mini-bz/internal/drawarrays"

	"github.com/go-gl/mathgl/mgl32"
)

// Transformer receives the model matrix for each glyph drawn.
type Transformer interface {
	SetModel(m mgl32.Mat4)
}

// TextureFont holds one named array per visible glyph of an atlas. Each
// array is a quad fan in glyph-local pixels with texture coordinates
// into the atlas.
type TextureFont struct {
	atlas   *Atlas
	reg     *drawarrays.Registry
	handles map[rune]drawarrays.Handle
}

// NewTextureFont builds the glyph arrays of atlas in reg.
func NewTextureFont(reg *drawarrays.Registry, atlas *Atlas) *TextureFont {
	f := &TextureFont{atlas: atlas, reg: reg, handles: make(map[rune]drawarrays.Handle)}
	tw := float32(atlas.Image.Rect.Dx())
	th := float32(atlas.Image.Rect.Dy())

	for r := rune(firstRune); r <= lastRune; r++ {
		g, ok := atlas.Glyphs[r]
		if !ok || !g.Visible() {
			continue
		}
		x0, y0 := g.OffsetX, g.OffsetY
		x1, y1 := x0+float32(g.Width), y0+float32(g.Height)
		s0, t0 := float32(g.AtlasX)/tw, float32(g.AtlasY)/th
		s1, t1 := float32(g.AtlasX+g.Width)/tw, float32(g.AtlasY+g.Height)/th

		h := reg.Create()
		reg.Begin(h).
			AddTexCoord(s0, t0).AddVertex2(x0, y0).
			AddTexCoord(s0, t1).AddVertex2(x0, y1).
			AddTexCoord(s1, t1).AddVertex2(x1, y1).
			AddTexCoord(s1, t0).AddVertex2(x1, y0).
			Finish()
		f.handles[r] = h
	}
	return f
}

// Atlas returns the atlas the glyph arrays sample.
func (f *TextureFont) Atlas() *Atlas { return f.atlas }

// Handle returns the array holding r, if r has one.
func (f *TextureFont) Handle(r rune) (drawarrays.Handle, bool) {
	h, ok := f.handles[r]
	return h, ok
}

// DrawString draws text with its first baseline at (x, y). Lines are
// separated by '\n'. The model matrix is left at identity.
func (f *TextureFont) DrawString(t Transformer, text string, x, y, scale float32) {
	penX, penY := x, y
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += f.atlas.LineHeight * scale
			continue
		}
		g, _ := f.atlas.Glyph(r)
		if h, ok := f.handles[r]; ok {
			t.SetModel(mgl32.Translate3D(penX, penY, 0).Mul4(mgl32.Scale3D(scale, scale, 1)))
			f.reg.Draw(h, drawarrays.TriangleFan)
		}
		penX += g.Advance * scale
	}
	t.SetModel(mgl32.Ident4())
}

// Dispose deletes the glyph arrays.
func (f *TextureFont) Dispose() {
	for r, h := range f.handles {
		f.reg.Delete(h)
		delete(f.handles, r)
	}
}
