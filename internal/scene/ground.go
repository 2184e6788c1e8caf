package scene

import "mini-bz/internal/drawarrays"

// corners of the unit square, counter-clockwise from (+1,+1)
var squareShape = [4][2]float32{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

// GroundSize is the half extent of the ground plane.
func GroundSize(worldSize float32) float32 { return 10 * worldSize }

// BuildGroundGrid stores the ground plane of half extent size as a
// divs x divs grid of textured triangles. Texture coordinates are the
// plane coordinates scaled by uvScale, so the texture repeats.
func BuildGroundGrid(reg *drawarrays.Registry, size float32, divs int, uvScale float32) drawarrays.Handle {
	xmax, ymax := size*squareShape[0][0], size*squareShape[0][1]
	xmin, ymin := size*squareShape[2][0], size*squareShape[2][1]
	xdist := (xmax - xmin) / float32(divs)
	ydist := (ymax - ymin) / float32(divs)

	h := reg.Create()
	b := reg.Begin(h)
	vertex := func(x, y float32) {
		b.AddTexCoord(x*uvScale, y*uvScale)
		b.AddVertex2(x, y)
	}
	for i := 0; i < divs; i++ {
		y0 := ymin + ydist*float32(i)
		y1 := y0 + ydist
		x0 := xmin
		for j := 0; j < divs; j++ {
			x1 := xmin + xdist*float32(j+1)

			vertex(x0, y1)
			vertex(x0, y0)
			vertex(x1, y1)

			vertex(x1, y1)
			vertex(x0, y0)
			vertex(x1, y0)

			x0 = x1
		}
	}
	b.Finish()
	return h
}

// BuildGroundQuad stores the untextured ground plane as two triangles.
func BuildGroundQuad(reg *drawarrays.Registry, size float32) drawarrays.Handle {
	h := reg.Create()
	b := reg.Begin(h)
	for _, c := range []int{0, 1, 2, 2, 3, 0} {
		b.AddVertex2(size*squareShape[c][0], size*squareShape[c][1])
	}
	b.Finish()
	return h
}
