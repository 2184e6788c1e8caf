package main

import (
	"fmt"
	"log/slog"
	"time"

	"mini-bz/internal/frame"
	"mini-bz/internal/input"
	"mini-bz/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// frames slower than this are logged with their top costs
const slowFrame = 50 * time.Millisecond

func runLoop(window *glfw.Window, im *input.Manager, v *viewer) {
	limiter := frame.NewLimiter()
	var counter frame.Counter
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		handleInput(window, im, v, dt)
		v.renderer.Render(dt)
		stats := v.arrays.Stats()

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if counter.Tick(time.Now()) {
			v.label.SetText(fmt.Sprintf("%d fps\n%d draws  %d vertices\n%d arrays  %s",
				counter.Rate(), stats.DrawCalls, stats.Vertices, v.arrays.Len(), v.arrays.Validation()))
		}

		if total := time.Since(now); total > slowFrame {
			slog.Warn("slow frame", "took", total, "swap", profiling.SumWithPrefix("glfw."), "top", profiling.TopN(5))
		}

		limiter.Wait()
	}
}
