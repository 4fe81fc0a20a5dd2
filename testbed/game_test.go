package testbed

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/linmath/engine"
	"github.com/spaghettifunk/linmath/engine/core"
)

func testConfig(t *testing.T) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Application.Width = 64
	cfg.Application.Height = 48
	cfg.Application.Frames = 2
	cfg.Application.Format = "png"
	cfg.Application.Supersample = 1
	cfg.Application.OutputDir = t.TempDir()
	return cfg
}

func TestTestbedRendersFrames(t *testing.T) {
	cfg := testConfig(t)
	tg, err := NewTestGame(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	e, err := engine.New(tg.Game)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"frame_0000.png", "frame_0001.png"} {
		f, err := os.Open(filepath.Join(cfg.Application.OutputDir, name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Fatalf("%s: bounds %v", name, b)
		}
	}
}

func TestTestbedApplyScene(t *testing.T) {
	cfg := testConfig(t)
	tg, err := NewTestGame(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := tg.OnResize(64, 48); err != nil {
		t.Fatal(err)
	}

	scene := cfg.Scene
	scene.Eye = [3]float32{0, 0, 10}
	scene.Scale = 2
	tg.ApplyScene(scene)

	state := tg.state()
	if got := state.WorldCamera.GetPosition(); got != vec3(scene.Eye) {
		t.Fatalf("camera at %v", got)
	}
	if got := state.objects[0].Transform.Scale; got != vec3([3]float32{2, 2, 2}) {
		t.Fatalf("root scale %v", got)
	}
	if err := tg.Update(0.016); err != nil {
		t.Fatal(err)
	}
	if err := tg.Render(0, 0.016); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Application.OutputDir, "frame_0000.png")); err != nil {
		t.Fatal(err)
	}
}

func TestNewTestGameRejectsFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.Application.Format = "gif"
	if _, err := NewTestGame(&cfg); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("NewTestGame: %v", err)
	}
}
