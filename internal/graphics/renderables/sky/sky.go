package sky

import (
	"mini-bz/internal/config"
	"mini-bz/internal/drawarrays"
	renderer "mini-bz/internal/graphics/renderer"
	"mini-bz/internal/profiling"
	"mini-bz/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const starSeed = 666

// Sky draws the star field, the sun and the moon around the camera
type Sky struct {
	reg *drawarrays.Registry

	sun   drawarrays.Handle
	stars drawarrays.Handle
	moon  drawarrays.Handle

	sunDir   mgl32.Vec3
	moonDir  mgl32.Vec3
	coverage float32
}

// NewSky creates a sky with an evening sun and a rising half moon
func NewSky(reg *drawarrays.Registry) *Sky {
	s := &Sky{
		reg:     reg,
		sunDir:  mgl32.Vec3{-0.6, 0.5, 0.25}.Normalize(),
		moonDir: mgl32.Vec3{0.7, -0.2, 0.35}.Normalize(),
	}
	s.coverage = scene.MoonCoverage(s.sunDir, s.moonDir)
	return s
}

// Init builds the celestial arrays
func (s *Sky) Init() error {
	worldSize := config.GetWorldSize()
	s.sun = scene.BuildSun(s.reg, worldSize)
	s.stars = scene.BuildStars(s.reg, scene.StarField(config.GetNumStars(), scene.SkyDistance(worldSize), starSeed))
	s.buildMoon()
	return nil
}

func (s *Sky) buildMoon() {
	if s.moon != drawarrays.InvalidHandle {
		s.reg.Delete(s.moon)
	}
	s.moon = scene.BuildMoon(s.reg, config.GetWorldSize(), s.coverage, config.GetMoonSegments())
}

// SetCoverage rebuilds the moon with the given lit fraction, -1 (new)
// through 1 (full)
func (s *Sky) SetCoverage(coverage float32) {
	s.coverage = mgl32.Clamp(coverage, -1, 1)
	s.buildMoon()
}

// SetDirections moves the sun and moon and rebuilds the moon's phase
func (s *Sky) SetDirections(sunDir, moonDir mgl32.Vec3) {
	s.sunDir, s.moonDir = sunDir.Normalize(), moonDir.Normalize()
	s.SetCoverage(scene.MoonCoverage(s.sunDir, s.moonDir))
}

// Coverage returns the moon's lit fraction
func (s *Sky) Coverage() float32 { return s.coverage }

// Render draws the sky centered on the eye, behind everything else
func (s *Sky) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderSky")()

	gl.DepthMask(false)
	defer gl.DepthMask(true)

	p := ctx.Pipeline
	eye := mgl32.Translate3D(ctx.Camera.Eye().Elem())
	p.SetTexture(0, false)

	p.SetModel(eye)
	p.SetPointSize(2)
	s.reg.Draw(s.stars, drawarrays.Points)

	p.SetModel(eye.Mul4(scene.Orient(s.sunDir)))
	s.reg.SetColor(1, 1, 0.85, 1)
	s.reg.Draw(s.sun, drawarrays.TriangleFan)

	p.SetModel(eye.Mul4(scene.Orient(s.moonDir)))
	s.reg.SetColor(0.95, 0.95, 0.88, 1)
	s.reg.Draw(s.moon, drawarrays.TriangleStrip)

	p.SetModel(mgl32.Ident4())
}

// Dispose deletes the celestial arrays
func (s *Sky) Dispose() {
	for _, h := range []*drawarrays.Handle{&s.sun, &s.stars, &s.moon} {
		if *h != drawarrays.InvalidHandle {
			s.reg.Delete(*h)
			*h = drawarrays.InvalidHandle
		}
	}
}

// SetViewport is a no-op; the sky follows the camera
func (s *Sky) SetViewport(width, height int) {}
