package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/linmath/engine/core"
)

type ApplicationConfig struct {
	// The application name, used in logging and the frame metadata.
	Name string `toml:"name"`
	// Frame width in pixels.
	Width uint32 `toml:"width"`
	// Frame height in pixels.
	Height uint32 `toml:"height"`
	// Number of frames to render. Zero renders until shutdown.
	Frames int `toml:"frames"`
	// Directory the encoded frames are written to.
	OutputDir string `toml:"output_dir"`
	// "webp" or "png".
	Format string `toml:"format"`
	// Render scale factor, downsampled for antialiasing.
	Supersample int    `toml:"supersample"`
	LogLevel    string `toml:"log_level"`
}

type SceneConfig struct {
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
	Up     [3]float32 `toml:"up"`
	// Vertical field of view in degrees.
	FovY float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
	// Cube rotation in degrees per frame.
	RotationSpeed  float32    `toml:"rotation_speed"`
	Scale          float32    `toml:"scale"`
	LightDirection [3]float32 `toml:"light_direction"`
}

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Scene       SceneConfig       `toml:"scene"`
}

func DefaultConfig() Config {
	return Config{
		Application: ApplicationConfig{
			Name:        "linmath testbed",
			Width:       640,
			Height:      480,
			Frames:      60,
			OutputDir:   "frames",
			Format:      "webp",
			Supersample: 2,
			LogLevel:    "info",
		},
		Scene: SceneConfig{
			Eye:            [3]float32{4, 3, 6},
			Target:         [3]float32{0, 0, 0},
			Up:             [3]float32{0, 1, 0},
			FovY:           60,
			Near:           0.1,
			Far:            100,
			RotationSpeed:  3,
			Scale:          1,
			LightDirection: [3]float32{-0.4, -1, -0.6},
		},
	}
}

/**
 * @brief Decodes a TOML configuration. Keys that are missing or zero take
 * the value from DefaultConfig; unknown keys are rejected.
 */
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// EncodeConfig writes cfg as TOML.
func EncodeConfig(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	app, scene := &c.Application, &c.Scene
	if app.Name == "" {
		app.Name = def.Application.Name
	}
	if app.Width == 0 {
		app.Width = def.Application.Width
	}
	if app.Height == 0 {
		app.Height = def.Application.Height
	}
	if app.OutputDir == "" {
		app.OutputDir = def.Application.OutputDir
	}
	if app.Format == "" {
		app.Format = def.Application.Format
	}
	if app.Supersample == 0 {
		app.Supersample = def.Application.Supersample
	}
	if app.LogLevel == "" {
		app.LogLevel = def.Application.LogLevel
	}
	var zero [3]float32
	if scene.Eye == zero {
		scene.Eye = def.Scene.Eye
	}
	if scene.Up == zero {
		scene.Up = def.Scene.Up
	}
	if scene.FovY == 0 {
		scene.FovY = def.Scene.FovY
	}
	if scene.Near == 0 {
		scene.Near = def.Scene.Near
	}
	if scene.Far == 0 {
		scene.Far = def.Scene.Far
	}
	if scene.Scale == 0 {
		scene.Scale = def.Scene.Scale
	}
	if scene.LightDirection == zero {
		scene.LightDirection = def.Scene.LightDirection
	}
}

// Validate reports settings that cannot produce a frame.
func (c Config) Validate() error {
	if c.Application.Supersample < 1 {
		return fmt.Errorf("supersample %d: %w", c.Application.Supersample, core.ErrInvalidArgument)
	}
	if c.Application.Frames < 0 {
		return fmt.Errorf("frames %d: %w", c.Application.Frames, core.ErrInvalidArgument)
	}
	if c.Scene.Near <= 0 || c.Scene.Far <= c.Scene.Near {
		return fmt.Errorf("clip planes near=%g far=%g: %w", c.Scene.Near, c.Scene.Far, core.ErrInvalidArgument)
	}
	if c.Scene.FovY <= 0 || c.Scene.FovY >= 180 {
		return fmt.Errorf("fov %g: %w", c.Scene.FovY, core.ErrInvalidArgument)
	}
	return nil
}
