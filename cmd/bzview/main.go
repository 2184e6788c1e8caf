package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"mini-bz/internal/config"
	"mini-bz/internal/drawarrays"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

type options struct {
	configPath string
	validation string
	verbose    bool
	modelPath  string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "bzview.toml", "TOML settings file; missing is fine")
	flag.StringVar(&o.validation, "validation", "", "draw array checks: strict or elided (default from build)")
	flag.BoolVar(&o.verbose, "v", false, "log at debug level")
	flag.StringVar(&o.modelPath, "model", "", "YAML array model to draw at the origin")
	flag.Parse()
	return o
}

// configure loads the settings file, then lets flags override it.
func configure(o options) error {
	if err := config.Load(o.configPath); err != nil {
		return err
	}
	if o.validation != "" {
		v, err := drawarrays.ParseValidation(o.validation)
		if err != nil {
			return err
		}
		config.SetValidation(v)
	}
	if o.verbose {
		config.SetLogLevel(slog.LevelDebug)
	}
	return nil
}

func main() {
	defer closer.Close()

	o := parseFlags()
	if err := configure(o); err != nil {
		fmt.Fprintln(os.Stderr, "bzview:", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.GetLogLevel()}))
	slog.SetDefault(logger)

	if err := glfw.Init(); err != nil {
		slog.Error("glfw init failed", "err", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		slog.Error("window setup failed", "err", err)
		os.Exit(1)
	}

	v, err := setupViewer(window, o.modelPath, logger)
	if err != nil {
		slog.Error("viewer setup failed", "err", err)
		os.Exit(1)
	}
	defer v.dispose()

	closer.Bind(func() {
		stats := v.arrays.Stats()
		slog.Info("bzview exiting", "arrays", v.arrays.Len(), "draws", stats.DrawCalls, "vertices", stats.Vertices)
	})

	im := setupInputHandlers(window, v)
	runLoop(window, im, v)
}
