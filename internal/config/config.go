package config

import "sync"

// RenderSettings holds window and frame pacing configuration
type RenderSettings struct {
	mu           sync.RWMutex
	windowWidth  int
	windowHeight int
	fpsLimit     int // 0 means uncapped
	vsync        bool
}

var globalRenderSettings = &RenderSettings{
	windowWidth:  900,
	windowHeight: 600,
	fpsLimit:     120,
	vsync:        false,
}

// GetWindowSize returns the initial window size in pixels
func GetWindowSize() (int, int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.windowWidth, globalRenderSettings.windowHeight
}

// SetWindowSize sets the initial window size, clamped to 320x240..7680x4320
func SetWindowSize(width, height int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.windowWidth = clamp(width, 320, 7680)
	globalRenderSettings.windowHeight = clamp(height, 240, 4320)
}

// GetFPSLimit returns the frame cap, 0 when uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Values <= 0 remove the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit <= 0 {
		globalRenderSettings.fpsLimit = 0
		return
	}
	globalRenderSettings.fpsLimit = clamp(limit, 15, 1000)
}

// GetVSync returns whether buffer swaps wait for vertical sync
func GetVSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync enables or disables vertical sync
func SetVSync(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = enabled
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
