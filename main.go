/*
Headless testbed: renders a small scene of spinning cubes with the
software rasterizer and writes one image per frame.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/linmath/engine"
	"github.com/spaghettifunk/linmath/engine/assets"
	"github.com/spaghettifunk/linmath/engine/core"
	"github.com/spaghettifunk/linmath/testbed"
)

func main() {
	if err := run(); err != nil {
		core.LogError("%v", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML configuration file")
	frames := flag.Int("frames", -1, "number of frames to render, 0 renders until interrupted")
	outDir := flag.String("out", "", "output directory for frames")
	format := flag.String("format", "", "frame format: webp or png")
	watch := flag.Bool("watch", false, "reload the scene when the config file changes")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *frames >= 0 {
		cfg.Application.Frames = *frames
	}
	if *outDir != "" {
		cfg.Application.OutputDir = *outDir
	}
	if *format != "" {
		cfg.Application.Format = *format
	}
	core.SetLogLevel(core.ParseLogLevel(cfg.Application.LogLevel))

	tb, err := testbed.NewTestGame(&cfg)
	if err != nil {
		return err
	}

	e, err := engine.New(tb.Game)
	if err != nil {
		return err
	}

	if err := e.Initialize(); err != nil {
		return err
	}

	if *watch && *configPath != "" {
		w, err := assets.NewWatcher()
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.Add(*configPath); err != nil {
			return err
		}
		go reloadScene(w, *configPath, tb)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		if _, ok := <-sigCh; ok {
			core.LogInfo("interrupted, finishing the current frame")
			e.Stop()
		}
	}()

	if err := e.Run(); err != nil {
		_ = e.Shutdown()
		return err
	}
	return e.Shutdown()
}

func reloadScene(w *assets.Watcher, path string, tb *testbed.TestGame) {
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
			cfg, err := engine.LoadConfig(path)
			if err != nil {
				core.LogWarn("keeping previous scene: %s", err)
				continue
			}
			tb.ApplyScene(cfg.Scene)
		case _, ok := <-w.Errors():
			if !ok {
				return
			}
		}
	}
}
