package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"mini-bz/internal/drawarrays"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preserve restores every setting when the test ends.
func preserve(t *testing.T) {
	t.Helper()
	w, h := GetWindowSize()
	fps, vsync := GetFPSLimit(), GetVSync()
	world, divs, stars, moon := GetWorldSize(), GetGroundDivs(), GetNumStars(), GetMoonSegments()
	v, lvl := GetValidation(), GetLogLevel()
	t.Cleanup(func() {
		globalRenderSettings.windowWidth, globalRenderSettings.windowHeight = w, h
		globalRenderSettings.fpsLimit, globalRenderSettings.vsync = fps, vsync
		globalSceneSettings.worldSize, globalSceneSettings.groundDivs = world, divs
		globalSceneSettings.numStars, globalSceneSettings.moonSegments = stars, moon
		globalDebugSettings.validation, globalDebugSettings.logLevel = v, lvl
	})
}

func TestSettersClamp(t *testing.T) {
	preserve(t)

	SetWindowSize(10, 100000)
	w, h := GetWindowSize()
	assert.Equal(t, 320, w)
	assert.Equal(t, 4320, h)

	SetFPSLimit(-3)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(5)
	assert.Equal(t, 15, GetFPSLimit())

	SetGroundDivs(0)
	assert.Equal(t, 1, GetGroundDivs())
	SetMoonSegments(1000)
	assert.Equal(t, 256, GetMoonSegments())
	SetWorldSize(1)
	assert.Equal(t, float32(10), GetWorldSize())
}

func TestLoadFile(t *testing.T) {
	preserve(t)

	require.NoError(t, Load(filepath.Join("testdata", "bzview.toml")))

	w, h := GetWindowSize()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, 0, GetFPSLimit())
	assert.True(t, GetVSync())
	assert.Equal(t, float32(400), GetWorldSize())
	assert.Equal(t, 8, GetGroundDivs())
	assert.Equal(t, 100, GetNumStars())
	assert.Equal(t, 32, GetMoonSegments())
	assert.Equal(t, drawarrays.Elided, GetValidation())
	assert.Equal(t, slog.LevelDebug, GetLogLevel())
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	preserve(t)
	before := GetGroundDivs()
	require.NoError(t, Load(filepath.Join(t.TempDir(), "absent.toml")))
	assert.Equal(t, before, GetGroundDivs())
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode([]byte("[window]\nwidht = 3\n"))
	assert.Error(t, err)
}

func TestApplyIsAllOrNothingOnParseErrors(t *testing.T) {
	preserve(t)
	SetValidation(drawarrays.Strict)

	var f File
	f.Validation = "elided"
	f.LogLevel = "loud"
	require.Error(t, Apply(f))
	assert.Equal(t, drawarrays.Strict, GetValidation())

	f = File{Validation: "bogus"}
	require.Error(t, Apply(f))
}

func TestParseLogLevel(t *testing.T) {
	l, err := ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}
