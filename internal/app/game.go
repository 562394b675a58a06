// Package app wires input, camera, board, scene and renderer into the
// window's frame loop.
package app

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/kjkrol/gochess/internal/config"
	"github.com/kjkrol/gochess/internal/renderer"
	"github.com/kjkrol/gochess/pkg/board"
	"github.com/kjkrol/gochess/pkg/camera"
	"github.com/kjkrol/gochess/pkg/gfx"
	"github.com/kjkrol/gochess/pkg/input"
	"github.com/kjkrol/gochess/pkg/picking"
	"github.com/kjkrol/gochess/pkg/scene"
)

var _ gfx.Renderer = (*Game)(nil)

// sceneRenderer is the part of *renderer.Renderer the game drives.
type sceneRenderer interface {
	Resize(width, height int)
	DrawOffscreen(f renderer.Frame)
	Pick(x, y int) picking.Target
	Draw(f renderer.Frame)
	Close()
}

var (
	fromMarker = mgl32.Vec3{0.95, 0.8, 0.2}
	toMarker   = mgl32.Vec3{0.95, 0.55, 0.1}
	turnColors = [2]mgl32.Vec4{{1, 1, 1, 1}, {0, 0, 0, 1}}
)

const handScale = 0.15

type point struct {
	x, y int
}

type Game struct {
	conf     config.Config
	logger   *slog.Logger
	input    *input.State
	camera   *camera.Orbit
	board    *board.Board
	scene    *scene.Scene
	renderer sceneRenderer
	stop     func()

	width, height int
	showcase      bool
	pendingPick   *point
	screenDirty   bool
}

func New(conf config.Config, r sceneRenderer, width, height int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	b := board.New(conf.Board.NumAcross, conf.Board.NumDown, conf.Board.TileWidth, conf.Board.TileDepth)
	cam := conf.Camera
	return &Game{
		conf:        conf,
		logger:      logger,
		input:       input.New(),
		camera:      camera.NewOrbit(cam.Angle, cam.Radius, cam.Height, cam.FovY, cam.Near, cam.Far),
		board:       b,
		scene:       scene.NewStandard(b),
		renderer:    r,
		width:       width,
		height:      height,
		showcase:    conf.Render.Showcase,
		screenDirty: true,
	}
}

// SetStop installs the function that ends the frame loop.
func (g *Game) SetStop(stop func()) {
	g.stop = stop
}

func (g *Game) HandleEvent(event gfx.Event) {
	g.input.Apply(event)
	if e, ok := event.(gfx.Resize); ok {
		g.resize(e.Width, e.Height)
	}
}

func (g *Game) resize(width, height int) {
	if width <= 0 || height <= 0 || (width == g.width && height == g.height) {
		return
	}
	g.width, g.height = width, height
	g.renderer.Resize(width, height)
	g.camera.Invalidate()
}

// Update runs one physics step. Moves queued by the previous pick are applied
// before this step's input is read.
func (g *Game) Update(dt time.Duration) {
	in := g.input
	in.Tick()
	if in.QuitApp {
		if g.stop != nil {
			g.stop()
		}
		return
	}

	if g.scene.Update(dt) {
		g.screenDirty = true
		if m, ok := g.scene.LastMove(); ok {
			g.logger.Debug("move", "from", m.From, "to", m.To, "turn", g.scene.Turn.String())
		}
	}

	step := g.conf.Camera.RotateSpeed * float32(dt.Seconds())
	if in.Left.Pressed || in.A.Pressed {
		g.camera.Rotate(-step)
	}
	if in.Right.Pressed || in.D.Pressed {
		g.camera.Rotate(step)
	}

	if in.Restart.State {
		g.logger.Info("restart")
		g.scene.Reset()
		g.pendingPick = nil
		g.screenDirty = true
	}
	if in.Space.State {
		g.showcase = !g.showcase
	}
	if in.MouseRightClicked || in.Backspace.State {
		g.scene.Deselect()
	}
	if in.MouseClicked {
		g.pendingPick = &point{in.MouseX, in.MouseY}
	}
	in.EndTick()
}

// Render implements gfx.Renderer. The picking buffer is redrawn only when the
// camera moved or the pieces changed since its last draw.
func (g *Game) Render(w *gfx.Window) {
	if w != nil {
		g.resize(w.Size())
	}
	g.render()
}

func (g *Game) render() {
	frame := g.frame()
	if g.camera.Dirty() || g.screenDirty {
		g.renderer.DrawOffscreen(frame)
		g.camera.MarkClean()
		g.screenDirty = false
	}
	if g.pendingPick != nil {
		p := *g.pendingPick
		g.pendingPick = nil
		g.scene.Select(g.renderer.Pick(p.x, p.y))
		frame = g.frame()
	}
	g.renderer.Draw(frame)
}

func (g *Game) frame() renderer.Frame {
	f := renderer.Frame{
		View:       g.camera.View(),
		Projection: g.camera.Projection(g.width, g.height),
		Board:      g.board,
		Scene:      g.scene,
		Highlights: g.scene.Highlights(),
		Showcase:   g.showcase,
		ShowcaseOrigin: mgl32.Vec3{
			0, g.board.Y(g.board.NumDown-1) + 3, 0,
		},
	}
	if m, ok := g.scene.LastMove(); ok {
		f.States = []renderer.BoardState{
			{Pos: m.From, Color: fromMarker},
			{Pos: m.To, Color: toMarker},
		}
	}
	turnRow := 0
	if g.scene.Turn == scene.Black {
		turnRow = g.board.NumDown - 1
	}
	f.Art = []board.ArtInfo{{
		Mesh:  "pyramid",
		Pos:   geom.NewVec(-1, turnRow),
		Color: turnColors[g.scene.Turn],
	}}
	if g.scene.User.Active {
		if p, ok := g.scene.Get(g.scene.User.ActiveID); ok {
			center := g.board.Center(p.Pos)
			hand := mgl32.Translate3D(center[0], center[1], 1.2).Mul4(mgl32.Scale3D(handScale, handScale, handScale))
			f.Hand = &hand
		}
	}
	return f
}

func (g *Game) Close() {
	g.renderer.Close()
}
