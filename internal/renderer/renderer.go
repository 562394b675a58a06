// Package renderer owns every GPU resource of the game: shader programs,
// meshes, textures and the offscreen picking target. All methods must run on
// the thread holding the GL context.
package renderer

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/kjkrol/gochess/internal/assets"
	"github.com/kjkrol/gochess/internal/platform"
	"github.com/kjkrol/gochess/pkg/board"
	"github.com/kjkrol/gochess/pkg/picking"
	"github.com/kjkrol/gochess/pkg/scene"
)

const (
	checkerTexture = "textures/test_2.png"
	appleTexture   = "textures/test_apple.png"
)

type Config struct {
	ClearColor  [4]float32
	TextureSize int
}

// Frame is everything drawn in one visible frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Board      *board.Board
	Scene      *scene.Scene
	Highlights []geom.Vec[int]
	States     []BoardState
	Art        []board.ArtInfo

	// Hand, when set, is the model matrix of the pointer drawn over the
	// selection.
	Hand *mgl32.Mat4

	Showcase       bool
	ShowcaseOrigin mgl32.Vec3
}

type Renderer struct {
	conf   Config
	fsys   fs.FS
	logger *slog.Logger

	basicShader      basicShader
	textureShader    textureShader
	colorVertsShader colorVertsShader
	offscreenShader  offscreenShader

	plane   primitive
	cube    primitive
	pyramid primitive
	objects map[string]Object

	target       *offscreenTarget
	texture2     uint32
	textureApple uint32

	width, height int
	initialized   bool
}

func New(conf Config, fsys fs.FS, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{conf: conf, fsys: fsys, logger: logger}
}

// Init creates every GPU resource in a fixed order: meshes, the basic,
// offscreen, color-vertex and textured programs, the offscreen target and
// finally the two textures. On error everything created so far is released.
func (r *Renderer) Init(width, height int) (err error) {
	defer func() {
		if err != nil {
			r.release()
		}
	}()
	logGLInfo(r.logger)
	r.width, r.height = width, height

	r.plane = uploadPrimitive(planeMesh())
	r.cube = uploadPrimitive(cubeMesh())
	r.pyramid = uploadPrimitive(pyramidMesh())
	r.objects = map[string]Object{
		"plane":   r.plane.object(),
		"cube":    r.cube.object(),
		"pyramid": r.pyramid.object(),
	}

	loader := &shaderLoader{
		fsys:   r.fsys,
		es:     platform.IsES(gl.GoStr(gl.GetString(gl.VERSION))),
		logger: r.logger,
	}
	if r.basicShader, err = newBasicShader(loader); err != nil {
		return err
	}
	if r.offscreenShader, err = newOffscreenShader(loader); err != nil {
		return err
	}
	if r.colorVertsShader, err = newColorVertsShader(loader); err != nil {
		return err
	}
	if r.textureShader, err = newTextureShader(loader); err != nil {
		return err
	}

	if r.target, err = newOffscreenTarget(glFramebuffers{}, width, height, r.logger); err != nil {
		return err
	}

	if r.texture2, err = r.loadTexture(checkerTexture, true); err != nil {
		return err
	}
	if r.textureApple, err = r.loadTexture(appleTexture, false); err != nil {
		return err
	}
	r.initialized = true
	return nil
}

func (r *Renderer) loadTexture(name string, alpha bool) (uint32, error) {
	img, err := assets.LoadImage(r.fsys, name, r.conf.TextureSize, alpha)
	if err != nil {
		r.logger.Error("load texture", "file", name, "err", err)
		return 0, err
	}
	if want := img.Width * img.Height * img.Channels(); len(img.Pix) != want {
		err := fmt.Errorf("texture %s: %d bytes, want %d", name, len(img.Pix), want)
		r.logger.Error("load texture", "file", name, "err", err)
		return 0, err
	}
	return createTexture(img.Width, img.Height, img.Alpha, img.Pix, false), nil
}

// pieceObject returns the mesh drawn for a piece kind: the pyramid for queens
// and kings, the cube for everything else.
func (r *Renderer) pieceObject(kind scene.Kind) Object {
	switch kind {
	case scene.Queen, scene.King:
		return r.objects["pyramid"]
	}
	return r.objects["cube"]
}

// Resize follows a window resize: the viewport and the offscreen target.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	if !r.initialized {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	if err := r.target.resize(width, height, r.logger); err != nil {
		r.logger.Error("resize offscreen target", "err", err)
	}
}

// DrawOffscreen redraws the picking buffer: tiles first, live pieces on top.
func (r *Renderer) DrawOffscreen(f Frame) {
	if !r.initialized || f.Board == nil {
		return
	}
	r.target.bind()
	r.renderChessboardOffscreen(f.View, f.Projection, f.Board)
	if f.Scene != nil {
		f.Scene.Pieces(func(p scene.PieceInfo) {
			r.renderPlayerOffscreen(f.View, f.Projection, f.Board, p)
		})
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
}

// Pick returns what the picking buffer holds under window position (x, y).
func (r *Renderer) Pick(x, y int) picking.Target {
	if !r.initialized {
		return picking.Target{}
	}
	rgb := r.target.readPixel(x, y)
	target := picking.Decode(rgb)
	r.logger.Debug("pick", "x", x, "y", y, "rgb", rgb, "target", target.String())
	return target
}

// Draw renders the visible frame into the default framebuffer.
func (r *Renderer) Draw(f Frame) {
	if !r.initialized {
		return
	}
	c := r.conf.ClearColor
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if f.Showcase {
		r.renderNormal(f.View, f.Projection, mgl32.Vec3{1, 1, 1}, f.ShowcaseOrigin)
	}
	if f.Board == nil {
		return
	}
	r.renderChessboard(f.View, f.Projection, f.Board)
	if f.Scene != nil {
		f.Scene.Pieces(func(p scene.PieceInfo) {
			if p.Alive && p.Piece.Side == scene.White && !f.Scene.User.IsSelected(p.ID) {
				r.renderPiece(f.View, f.Projection, f.Board, p)
				return
			}
			r.renderPlayer(f.View, f.Projection, f.Board, p, f.Scene.User)
		})
	}
	for _, art := range f.Art {
		r.renderArt(f.View, f.Projection, f.Board, art)
	}
	for i, state := range f.States {
		state.Offset += float32(i) * 0.01
		r.renderBoardState(f.View, f.Projection, f.Board, state)
	}
	r.renderHighlights(f.View, f.Projection, f.Board, f.Highlights)
	if f.Hand != nil {
		r.renderHand(*f.Hand, f.View, f.Projection, mgl32.Vec3{1, 1, 1})
	}
}

// Close releases textures, programs, buffers and the framebuffer.
func (r *Renderer) Close() {
	r.release()
}

func (r *Renderer) release() {
	if r.target != nil {
		r.target.delete()
		r.target = nil
	}
	for _, texture := range []*uint32{&r.texture2, &r.textureApple} {
		if *texture != 0 {
			gl.DeleteTextures(1, texture)
			*texture = 0
		}
	}
	r.basicShader.delete()
	r.textureShader.delete()
	r.colorVertsShader.delete()
	r.offscreenShader.delete()
	r.plane.delete()
	r.cube.delete()
	r.pyramid.delete()
	r.objects = nil
	r.initialized = false
}
