package scene

import "mini-bz/internal/drawarrays"

// DrawCrosshair draws a plus sign of half length size centered on
// (cx, cy) as a temporary line list.
func DrawCrosshair(reg *drawarrays.Registry, cx, cy, size float32) {
	reg.BeginTemp().
		AddVertex2(cx-size, cy).
		AddVertex2(cx+size, cy).
		AddVertex2(cx, cy-size).
		AddVertex2(cx, cy+size).
		DrawTemp(drawarrays.Lines)
}

// Triangle is a flat colored triangle.
type Triangle struct {
	Color  [4]float32
	Points [3][3]float32
}

// BuildTriangles stores tris as one colored triangle list. Each
// triangle is emitted with its winding reversed so that polygons
// described clockwise face the viewer.
func BuildTriangles(reg *drawarrays.Registry, tris []Triangle) drawarrays.Handle {
	h := reg.Create()
	b := reg.Begin(h)
	for _, t := range tris {
		for _, p := range [3]int{0, 2, 1} {
			b.AddColor(t.Color[0], t.Color[1], t.Color[2], t.Color[3])
			b.AddVertex(t.Points[p][0], t.Points[p][1], t.Points[p][2])
		}
	}
	b.Finish()
	return h
}
