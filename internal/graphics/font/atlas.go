// Package font bakes glyph atlases and draws text through named draw
// arrays, one triangle fan per glyph.
package font

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	firstRune = ' '
	lastRune  = '~'
	atlasW    = 512
	padding   = 1
)

// Glyph locates one character in the atlas. Offsets are in pixels from
// the pen position on the baseline, with y growing downwards.
type Glyph struct {
	AtlasX, AtlasY int
	Width, Height  int
	OffsetX        float32
	OffsetY        float32
	Advance        float32
}

// Visible reports whether the glyph has any pixels.
func (g Glyph) Visible() bool { return g.Width > 0 && g.Height > 0 }

// Atlas is a single-channel coverage image holding the printable ASCII
// range.
type Atlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	LineHeight float32
}

// Default bakes the Go Regular font at the given pixel size.
func Default(pixels int) (*Atlas, error) {
	return Bake(goregular.TTF, pixels)
}

// Bake rasterizes the TrueType or OpenType font data at the given pixel
// size into a new atlas.
func Bake(data []byte, pixels int) (*Atlas, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("font size %d", pixels)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	// first pass: measure and pack into rows
	x, y, rowH := 0, 0, 0
	atlas := &Atlas{
		Glyphs:     make(map[rune]Glyph, lastRune-firstRune+1),
		LineHeight: float32(face.Metrics().Height.Ceil()),
	}
	for r := rune(firstRune); r <= lastRune; r++ {
		dr, _, _, adv, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		g := Glyph{
			Width:   dr.Dx(),
			Height:  dr.Dy(),
			OffsetX: float32(dr.Min.X),
			OffsetY: float32(dr.Min.Y),
			Advance: float32(adv.Round()),
		}
		if g.Visible() {
			if x+g.Width+padding > atlasW {
				x, y, rowH = 0, y+rowH+padding, 0
			}
			g.AtlasX, g.AtlasY = x, y
			x += g.Width + padding
			rowH = max(rowH, g.Height)
		}
		atlas.Glyphs[r] = g
	}

	atlas.Image = image.NewAlpha(image.Rect(0, 0, atlasW, nextPow2(y+rowH)))

	// second pass: the face reuses its mask between calls, so each
	// glyph is copied as soon as it is rasterized
	for r, g := range atlas.Glyphs {
		if !g.Visible() {
			continue
		}
		_, mask, mp, _, _ := face.Glyph(fixed.P(0, 0), r)
		dst := image.Rect(g.AtlasX, g.AtlasY, g.AtlasX+g.Width, g.AtlasY+g.Height)
		draw.Draw(atlas.Image, dst, mask, mp, draw.Src)
	}
	return atlas, nil
}

// Glyph returns the glyph for r, falling back to the space.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.Glyphs[r]
	if !ok {
		g = a.Glyphs[' ']
	}
	return g, ok
}

// Measure returns the advance width of the longest line of text.
func (a *Atlas) Measure(text string) float32 {
	var width, line float32
	for _, r := range text {
		if r == '\n' {
			line = 0
			continue
		}
		g, _ := a.Glyph(r)
		line += g.Advance
		width = max(width, line)
	}
	return width
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
