package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window size %dx%d, want 800x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Render.RenderStep != time.Second/60 {
		t.Errorf("render step %v", cfg.Render.RenderStep)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
window:
  title: Cuber
  width: 1024
render:
  physics_step: 10ms
board:
  num_across: 4
log:
  level: debug
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Window.Title != "Cuber" || cfg.Window.Width != 1024 {
		t.Errorf("window not overlaid: %+v", cfg.Window)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("height should keep default, got %d", cfg.Window.Height)
	}
	if cfg.Render.PhysicsStep != 10*time.Millisecond {
		t.Errorf("physics step %v, want 10ms", cfg.Render.PhysicsStep)
	}
	if cfg.Board.NumAcross != 4 || cfg.Board.NumDown != 8 {
		t.Errorf("board %dx%d", cfg.Board.NumAcross, cfg.Board.NumDown)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("level %v, want debug", cfg.Log.SlogLevel())
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero width":    "window: {width: 0}",
		"gl 1.x":        "window: {gl_major: 1}",
		"negative step": "render: {render_step: -1s}",
		"flat board":    "board: {num_down: 0}",
		"two ranks":     "board: {num_across: 8, num_down: 2}",
		"three ranks":   "board: {num_down: 3}",
		"no files":      "board: {num_across: 0}",
		"huge board":    "board: {num_across: 1000, num_down: 1000}",
		"clip planes":   "camera: {near: 5, far: 1}",
		"bad level":     "log: {level: loud}",
		"zero texture":  "render: {texture_size: 0}",
		"zero tile":     "board: {tile_width: 0}",
		"wide fov":      "camera: {fovy: 190}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != Default() {
		t.Error("empty path should yield defaults")
	}

	path := filepath.Join(t.TempDir(), "chess.yaml")
	if err := os.WriteFile(path, []byte("assets: {dir: /tmp/assets}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Assets.Dir != "/tmp/assets" {
		t.Errorf("assets dir %q", cfg.Assets.Dir)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
