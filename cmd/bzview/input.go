package main

import (
	"log/slog"

	"mini-bz/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	orbitSpeed = 1.2 // radians per second
	zoomStep   = 1.1
)

func setupInputHandlers(window *glfw.Window, v *viewer) *input.Manager {
	im := input.NewManager()
	im.SetKeyCallback(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		v.renderer.UpdateViewport(width, height)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		zoom(v, yoff)
	})
	return im
}

func zoom(v *viewer, dir float64) {
	cam := v.renderer.GetCamera()
	if dir > 0 {
		cam.Distance /= zoomStep
	} else if dir < 0 {
		cam.Distance *= zoomStep
	}
}

// handleInput applies the actions gathered since the last frame
func handleInput(window *glfw.Window, im *input.Manager, v *viewer, dt float64) {
	defer im.PostUpdate()

	if im.JustPressed(input.ActionQuit) {
		window.SetShouldClose(true)
		return
	}
	if im.JustPressed(input.ActionRebuild) {
		if err := v.renderer.Rebuild(); err != nil {
			slog.Error("rebuild failed", "err", err)
			window.SetShouldClose(true)
			return
		}
	}
	if im.JustPressed(input.ActionToggleGround) {
		v.ground.SetTextured(!v.ground.Textured())
	}
	if im.JustPressed(input.ActionMoonPhase) {
		c := v.sky.Coverage() + 0.25
		if c > 1 {
			c = -1
		}
		v.sky.SetCoverage(c)
	}
	if im.JustPressed(input.ActionZoomIn) {
		zoom(v, 1)
	}
	if im.JustPressed(input.ActionZoomOut) {
		zoom(v, -1)
	}

	step := float32(dt) * orbitSpeed
	var yaw, pitch float32
	if im.IsActive(input.ActionOrbitLeft) {
		yaw -= step
	}
	if im.IsActive(input.ActionOrbitRight) {
		yaw += step
	}
	if im.IsActive(input.ActionOrbitUp) {
		pitch += step
	}
	if im.IsActive(input.ActionOrbitDown) {
		pitch -= step
	}
	if yaw != 0 || pitch != 0 {
		v.renderer.GetCamera().Orbit(yaw, pitch)
	}
}
