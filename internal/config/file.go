package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"sync"

	"mini-bz/internal/drawarrays"

	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk configuration. Zero values leave the current
// setting untouched.
type File struct {
	Window struct {
		Width  int  `toml:"width"`
		Height int  `toml:"height"`
		FPS    *int `toml:"fps_limit"`
		VSync  bool `toml:"vsync"`
	} `toml:"window"`

	Scene struct {
		WorldSize    float32 `toml:"world_size"`
		GroundDivs   int     `toml:"ground_divs"`
		NumStars     *int    `toml:"num_stars"`
		MoonSegments int     `toml:"moon_segments"`
	} `toml:"scene"`

	Validation string `toml:"validation"`
	LogLevel   string `toml:"log_level"`
}

// DebugSettings holds diagnostics configuration
type DebugSettings struct {
	mu         sync.RWMutex
	validation drawarrays.Validation
	logLevel   slog.Level
}

var globalDebugSettings = &DebugSettings{
	validation: drawarrays.DefaultValidation,
	logLevel:   slog.LevelInfo,
}

// GetValidation returns the draw array validation mode
func GetValidation() drawarrays.Validation {
	globalDebugSettings.mu.RLock()
	defer globalDebugSettings.mu.RUnlock()
	return globalDebugSettings.validation
}

// SetValidation sets the draw array validation mode
func SetValidation(v drawarrays.Validation) {
	globalDebugSettings.mu.Lock()
	defer globalDebugSettings.mu.Unlock()
	globalDebugSettings.validation = v
}

// GetLogLevel returns the minimum level logged
func GetLogLevel() slog.Level {
	globalDebugSettings.mu.RLock()
	defer globalDebugSettings.mu.RUnlock()
	return globalDebugSettings.logLevel
}

// SetLogLevel sets the minimum level logged
func SetLogLevel(l slog.Level) {
	globalDebugSettings.mu.Lock()
	defer globalDebugSettings.mu.Unlock()
	globalDebugSettings.logLevel = l
}

// ParseLogLevel accepts debug, info, warn or error.
func ParseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

// Decode parses TOML configuration.
func Decode(data []byte) (File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	return f, nil
}

// Load reads and applies the TOML file at path. A missing file keeps
// the defaults and is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	f, err := Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return Apply(f)
}

// Apply validates f and stores every field it sets. Nothing is stored
// when a field fails to parse.
func Apply(f File) error {
	validation := GetValidation()
	if f.Validation != "" {
		v, err := drawarrays.ParseValidation(f.Validation)
		if err != nil {
			return err
		}
		validation = v
	}
	level := GetLogLevel()
	if f.LogLevel != "" {
		l, err := ParseLogLevel(f.LogLevel)
		if err != nil {
			return err
		}
		level = l
	}
	SetValidation(validation)
	SetLogLevel(level)

	if f.Window.Width > 0 || f.Window.Height > 0 {
		w, h := GetWindowSize()
		if f.Window.Width > 0 {
			w = f.Window.Width
		}
		if f.Window.Height > 0 {
			h = f.Window.Height
		}
		SetWindowSize(w, h)
	}
	if f.Window.FPS != nil {
		SetFPSLimit(*f.Window.FPS)
	}
	if f.Window.VSync {
		SetVSync(true)
	}

	if f.Scene.WorldSize > 0 {
		SetWorldSize(f.Scene.WorldSize)
	}
	if f.Scene.GroundDivs > 0 {
		SetGroundDivs(f.Scene.GroundDivs)
	}
	if f.Scene.NumStars != nil {
		SetNumStars(*f.Scene.NumStars)
	}
	if f.Scene.MoonSegments > 0 {
		SetMoonSegments(f.Scene.MoonSegments)
	}
	return nil
}
