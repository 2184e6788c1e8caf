package config

import "sync"

// SceneSettings holds the parameters the background geometry is built from
type SceneSettings struct {
	mu           sync.RWMutex
	worldSize    float32
	groundDivs   int
	numStars     int
	moonSegments int
}

var globalSceneSettings = &SceneSettings{
	worldSize:    800,
	groundDivs:   4,
	numStars:     666,
	moonSegments: 64,
}

// GetWorldSize returns the edge length of the playing field
func GetWorldSize() float32 {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.worldSize
}

// SetWorldSize sets the edge length of the playing field
func SetWorldSize(size float32) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	if size < 10 {
		size = 10
	}
	globalSceneSettings.worldSize = size
}

// GetGroundDivs returns the ground grid subdivisions per side
func GetGroundDivs() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.groundDivs
}

// SetGroundDivs sets the ground grid subdivisions per side
func SetGroundDivs(divs int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.groundDivs = clamp(divs, 1, 64)
}

// GetNumStars returns the size of the star field
func GetNumStars() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.numStars
}

// SetNumStars sets the size of the star field
func SetNumStars(n int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.numStars = clamp(n, 0, 10000)
}

// GetMoonSegments returns how many segments the moon crescent uses
func GetMoonSegments() int {
	globalSceneSettings.mu.RLock()
	defer globalSceneSettings.mu.RUnlock()
	return globalSceneSettings.moonSegments
}

// SetMoonSegments sets the moon crescent segment count
func SetMoonSegments(n int) {
	globalSceneSettings.mu.Lock()
	defer globalSceneSettings.mu.Unlock()
	globalSceneSettings.moonSegments = clamp(n, 4, 256)
}
