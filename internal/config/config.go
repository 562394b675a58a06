package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// maxPickable bounds the number of tiles and pieces that fit the 16-bit
// picking code carried in the red and green channels.
const maxPickable = 0xFFFE

// minRanks keeps the white and black starting ranks apart.
const minRanks = 4

type Config struct {
	Window WindowConfig `yaml:"window"`
	Render RenderConfig `yaml:"render"`
	Camera CameraConfig `yaml:"camera"`
	Board  BoardConfig  `yaml:"board"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Resizable    bool   `yaml:"resizable"`
	GLMajor      int    `yaml:"gl_major"`
	GLMinor      int    `yaml:"gl_minor"`
	SwapInterval int    `yaml:"swap_interval"`
}

type RenderConfig struct {
	ClearColor  [4]float32    `yaml:"clear_color"`
	RenderStep  time.Duration `yaml:"render_step"`
	PhysicsStep time.Duration `yaml:"physics_step"`
	TextureSize int           `yaml:"texture_size"`
	Showcase    bool          `yaml:"showcase"`
}

type CameraConfig struct {
	Angle       float32 `yaml:"angle"`
	Radius      float32 `yaml:"radius"`
	Height      float32 `yaml:"height"`
	FovY        float32 `yaml:"fovy"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	RotateSpeed float32 `yaml:"rotate_speed"`
}

type BoardConfig struct {
	NumAcross int     `yaml:"num_across"`
	NumDown   int     `yaml:"num_down"`
	TileWidth float32 `yaml:"tile_width"`
	TileDepth float32 `yaml:"tile_depth"`
}

// AssetsConfig points at a directory holding shaders/ and textures/.
// An empty Dir selects the assets compiled into the binary.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:        "Chess",
			Width:        800,
			Height:       600,
			Resizable:    true,
			GLMajor:      2,
			GLMinor:      1,
			SwapInterval: 1,
		},
		Render: RenderConfig{
			ClearColor:  [4]float32{0.23, 0.47, 0.58, 1.0},
			RenderStep:  time.Second / 60,
			PhysicsStep: time.Second / 60,
			TextureSize: 256,
			Showcase:    true,
		},
		Camera: CameraConfig{
			Angle:       -math.Pi / 2,
			Radius:      7.0,
			Height:      6.5,
			FovY:        45.0,
			Near:        0.1,
			Far:         100.0,
			RotateSpeed: 1.5,
		},
		Board: BoardConfig{
			NumAcross: 8,
			NumDown:   8,
			TileWidth: 0.5,
			TileDepth: 0.1,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.GLMajor < 2:
		return fmt.Errorf("%w: OpenGL %d.%d is below 2.0", ErrInvalidConfig, c.Window.GLMajor, c.Window.GLMinor)
	case c.Render.RenderStep <= 0 || c.Render.PhysicsStep <= 0:
		return fmt.Errorf("%w: render and physics steps must be positive", ErrInvalidConfig)
	case c.Render.TextureSize <= 0:
		return fmt.Errorf("%w: texture size %d", ErrInvalidConfig, c.Render.TextureSize)
	case c.Camera.Radius <= 0 || c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return fmt.Errorf("%w: camera radius %.2f fovy %.2f", ErrInvalidConfig, c.Camera.Radius, c.Camera.FovY)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%.2f far=%.2f", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Board.NumAcross <= 0 || c.Board.NumDown < minRanks:
		return fmt.Errorf("%w: board %dx%d, need at least %d ranks", ErrInvalidConfig, c.Board.NumAcross, c.Board.NumDown, minRanks)
	case c.Board.NumAcross*c.Board.NumDown > maxPickable:
		return fmt.Errorf("%w: board %dx%d exceeds %d pickable tiles", ErrInvalidConfig, c.Board.NumAcross, c.Board.NumDown, maxPickable)
	case c.Board.TileWidth <= 0 || c.Board.TileDepth <= 0:
		return fmt.Errorf("%w: tile %.2fx%.2f", ErrInvalidConfig, c.Board.TileWidth, c.Board.TileDepth)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

func (l LogConfig) SlogLevel() slog.Level {
	level, err := parseLevel(l.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}
