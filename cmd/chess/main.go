package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/kjkrol/gochess/internal/app"
	"github.com/kjkrol/gochess/internal/assets"
	"github.com/kjkrol/gochess/internal/config"
	"github.com/kjkrol/gochess/internal/platform"
	"github.com/kjkrol/gochess/internal/platform/glfwplatform"
	"github.com/kjkrol/gochess/internal/renderer"
	"github.com/kjkrol/gochess/pkg/gfx"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	assetsDir := flag.String("assets", "", "directory with shaders/ and textures/ (default: embedded)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	flag.Parse()

	if err := run(*configPath, *assetsDir, *logLevel); err != nil {
		slog.Error("chess", "err", err)
		os.Exit(1)
	}
}

func run(configPath, assetsDir, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if assetsDir != "" {
		cfg.Assets.Dir = assetsDir
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	open := func(conf platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
		w, err := glfwplatform.New(conf, logger)
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	var game *app.Game
	factory := func(w *gfx.Window) (gfx.Renderer, error) {
		width, height := w.Size()
		r := renderer.New(renderer.Config{
			ClearColor:  cfg.Render.ClearColor,
			TextureSize: cfg.Render.TextureSize,
		}, assets.FS(cfg.Assets.Dir), logger)
		if err := r.Init(width, height); err != nil {
			return nil, err
		}
		game = app.New(cfg, r, width, height, logger)
		return game, nil
	}

	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Title:        cfg.Window.Title,
		Resizable:    cfg.Window.Resizable,
		GLMajor:      cfg.Window.GLMajor,
		GLMinor:      cfg.Window.GLMinor,
		SwapInterval: cfg.Window.SwapInterval,
		RenderStep:   cfg.Render.RenderStep,
		PhysicsStep:  cfg.Render.PhysicsStep,
	}, open, factory)
	if err != nil {
		return err
	}
	defer window.Close()

	game.SetStop(window.Stop)
	width, height := window.Size()
	logger.Info("started", "gl", window.GLVersion(), "width", width, "height", height, "tiles", cfg.Board.NumAcross*cfg.Board.NumDown)
	window.ListenEvents(game.HandleEvent, game.Update, gfx.DrainAll())
	return nil
}
