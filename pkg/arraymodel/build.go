package arraymodel

import "mini-bz/internal/drawarrays"

// Build stores the model as a new named array and returns its handle.
func (m *Model) Build(reg *drawarrays.Registry) drawarrays.Handle {
	h := reg.Create()
	b := reg.Begin(h)
	m.replay(b)
	b.Finish()
	return h
}

// Draw sets the model's current color, if it has one, and draws the
// array Build returned.
func (m *Model) Draw(reg *drawarrays.Registry, h drawarrays.Handle) {
	m.applyColor(reg)
	reg.Draw(h, m.DrawMode())
}

// DrawTemp draws the model through a temporary array.
func (m *Model) DrawTemp(reg *drawarrays.Registry) {
	m.applyColor(reg)
	b := reg.BeginTemp()
	m.replay(b)
	b.DrawTemp(m.DrawMode())
}

func (m *Model) applyColor(reg *drawarrays.Registry) {
	switch c := m.Color; len(c) {
	case 3:
		reg.SetColor(c[0], c[1], c[2], 1)
	case 4:
		reg.SetColor(c[0], c[1], c[2], c[3])
	}
}

func (m *Model) replay(b *drawarrays.Builder) {
	for _, v := range m.Vertices {
		switch c := v.Color; len(c) {
		case 3:
			b.AddColorRGB(c[0], c[1], c[2])
		case 4:
			b.AddColor(c[0], c[1], c[2], c[3])
		}
		if t := v.TexCoord; len(t) == 2 {
			b.AddTexCoord(t[0], t[1])
		}
		if n := v.Normal; len(n) == 3 {
			b.AddNormal(n[0], n[1], n[2])
		}
		switch p := v.Position; len(p) {
		case 2:
			b.AddVertex2(p[0], p[1])
		case 3:
			b.AddVertex(p[0], p[1], p[2])
		}
	}
}
