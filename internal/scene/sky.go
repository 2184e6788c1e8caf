// Package scene builds the background geometry of the viewer as draw
// arrays. Sky objects are laid out on the +X axis at twice the world
// size; the caller rotates them into place.
package scene

import (
	"math/rand/v2"

	"mini-bz/internal/drawarrays"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SunRimPoints is the number of rim vertices around the sun's center.
const SunRimPoints = 20

// SkyDistance is how far from the origin sky objects are placed.
func SkyDistance(worldSize float32) float32 { return 2 * worldSize }

// SunRadius gives a disk about half a degree wide at a 60 degree field of view.
func SunRadius(worldSize float32) float32 {
	return SkyDistance(worldSize) * math32.Atan(60*math32.Pi/180) / 60
}

// MoonRadius gives a disk about one degree wide.
func MoonRadius(worldSize float32) float32 {
	return SkyDistance(worldSize) * math32.Atan((60*math32.Pi/180)/60)
}

// BuildSun stores the sun disk as a triangle fan: the center followed by
// a closed rim.
func BuildSun(reg *drawarrays.Registry, worldSize float32) drawarrays.Handle {
	d, radius := SkyDistance(worldSize), SunRadius(worldSize)
	h := reg.Create()
	b := reg.Begin(h)
	b.AddVertex(d, 0, 0)
	for i := 0; i < SunRimPoints; i++ {
		angle := 2 * math32.Pi * float32(i) / (SunRimPoints - 1)
		b.AddVertex(d, radius*math32.Sin(angle), radius*math32.Cos(angle))
	}
	b.Finish()
	return h
}

// Star is one point of the star field.
type Star struct {
	Color [3]float32
	Pos   [3]float32
}

// StarField scatters n stars over the upper sky dome of the given
// radius. The same seed always yields the same sky.
func StarField(n int, radius float32, seed uint64) []Star {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	stars := make([]Star, n)
	for i := range stars {
		// uniform on the hemisphere: z uniform in [0,1)
		z := rng.Float32()
		phi := 2 * math32.Pi * rng.Float32()
		r := math32.Sqrt(1 - z*z)

		brightness := 0.4 + 0.6*rng.Float32()
		tint := 0.9 + 0.1*rng.Float32()
		stars[i] = Star{
			Color: [3]float32{brightness * tint, brightness * tint, brightness},
			Pos:   [3]float32{radius * r * math32.Cos(phi), radius * r * math32.Sin(phi), radius * z},
		}
	}
	return stars
}

// BuildStars stores stars as colored points.
func BuildStars(reg *drawarrays.Registry, stars []Star) drawarrays.Handle {
	h := reg.Create()
	b := reg.Begin(h)
	for _, s := range stars {
		b.AddColorRGB(s.Color[0], s.Color[1], s.Color[2])
		b.AddVertex(s.Pos[0], s.Pos[1], s.Pos[2])
	}
	b.Finish()
	return h
}

// MoonCoverage maps the angle between the sun and moon directions to
// the lit fraction used by BuildMoon, leaning towards full.
func MoonCoverage(sunDir, moonDir mgl32.Vec3) float32 {
	c := sunDir.Normalize().Dot(moonDir.Normalize())
	if c < 0 {
		return -math32.Sqrt(-c)
	}
	return c * c
}

// BuildMoon stores the lit part of the moon as a triangle strip running
// from the bottom pole to the top one. Each segment pairs the
// terminator, squeezed by coverage, with the limb. The strip holds
// 2*segments vertices.
func BuildMoon(reg *drawarrays.Registry, worldSize, coverage float32, segments int) drawarrays.Handle {
	d, radius := SkyDistance(worldSize), MoonRadius(worldSize)
	half := float32(segments / 2)

	h := reg.Create()
	b := reg.Begin(h)
	b.AddVertex(d, 0, -radius)
	for i := 0; i < segments-1; i++ {
		angle := 0.5 * math32.Pi * (float32(i) - half - 1) / (float32(segments) / 2)
		sin, cos := math32.Sincos(angle)
		b.AddVertex(d, coverage*radius*cos, radius*sin)
		b.AddVertex(d, radius*cos, radius*sin)
	}
	b.AddVertex(d, 0, radius)
	b.Finish()
	return h
}

// Orient rotates the +X axis, where sky objects are built, onto dir.
func Orient(dir mgl32.Vec3) mgl32.Mat4 {
	return mgl32.QuatBetweenVectors(mgl32.Vec3{1, 0, 0}, dir.Normalize()).Mat4()
}
