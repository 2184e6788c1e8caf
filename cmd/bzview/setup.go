package main

import (
	"log/slog"

	"mini-bz/internal/config"
	"mini-bz/internal/drawarrays"
	"mini-bz/internal/graphics/gldraw"
	"mini-bz/internal/graphics/renderables/crosshair"
	"mini-bz/internal/graphics/renderables/ground"
	"mini-bz/internal/graphics/renderables/label"
	"mini-bz/internal/graphics/renderables/model"
	"mini-bz/internal/graphics/renderables/sky"
	renderer "mini-bz/internal/graphics/renderer"
	"mini-bz/pkg/arraymodel"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	labelPixels = 16
	modelScale  = 10
)

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	width, height := config.GetWindowSize()
	window, err := glfw.CreateWindow(width, height, "bzview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	if config.GetVSync() {
		glfw.SwapInterval(1)
	} else {
		// the frame limiter paces us instead
		glfw.SwapInterval(0)
	}
	return window, nil
}

// viewer holds everything the frame loop and input handlers touch
type viewer struct {
	arrays   *drawarrays.Registry
	pipeline *gldraw.Pipeline
	renderer *renderer.Renderer

	sky    *sky.Sky
	ground *ground.Ground
	label  *label.Label
}

func setupViewer(window *glfw.Window, modelPath string, logger *slog.Logger) (*viewer, error) {
	pipeline, err := gldraw.NewPipeline()
	if err != nil {
		return nil, err
	}

	arrays := drawarrays.NewRegistry(pipeline,
		drawarrays.WithValidation(config.GetValidation()),
		drawarrays.WithLogger(logger.With("component", "drawarrays")),
	)
	slog.Info("draw arrays ready", "validation", arrays.Validation())

	v := &viewer{
		arrays:   arrays,
		pipeline: pipeline,
		sky:      sky.NewSky(arrays),
		ground:   ground.NewGround(arrays),
		label:    label.NewLabel(arrays, labelPixels),
	}

	rs := []renderer.Renderable{v.sky, v.ground}
	if modelPath != "" {
		m, err := arraymodel.LoadFile(modelPath)
		if err != nil {
			pipeline.Dispose()
			return nil, err
		}
		slog.Info("model loaded", "name", m.Name, "mode", m.DrawMode(), "vertices", len(m.Vertices))
		rs = append(rs, model.NewModel(arrays, m, modelScale))
	}
	rs = append(rs, crosshair.NewCrosshair(arrays), v.label)

	width, height := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(arrays, pipeline, width, height, rs...)
	if err != nil {
		pipeline.Dispose()
		return nil, err
	}
	v.renderer = r
	return v, nil
}

func (v *viewer) dispose() {
	v.renderer.Dispose()
	v.pipeline.Dispose()
}
