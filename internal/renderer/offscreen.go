package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
)

// framebuffers is the part of GL that allocates and attaches the picking
// target's storage.
type framebuffers interface {
	newFramebuffer() uint32
	newColorTexture(width, height int) uint32
	newDepthBuffer(width, height int) uint32
	// attach binds color and depth to fbo and returns the completeness status.
	attach(fbo, color, depth uint32) uint32
	deleteFramebuffer(fbo uint32)
	deleteTexture(texture uint32)
	deleteRenderbuffer(rbo uint32)
}

type glFramebuffers struct{}

func (glFramebuffers) newFramebuffer() uint32 {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	return fbo
}

func (glFramebuffers) newColorTexture(width, height int) uint32 {
	return createTexture(width, height, false, nil, true)
}

func (glFramebuffers) newDepthBuffer(width, height int) uint32 {
	var rbo uint32
	gl.GenRenderbuffers(1, &rbo)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return rbo
}

func (glFramebuffers) attach(fbo, color, depth uint32) uint32 {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, depth)
	return gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
}

func (glFramebuffers) deleteFramebuffer(fbo uint32)  { gl.DeleteFramebuffers(1, &fbo) }
func (glFramebuffers) deleteTexture(texture uint32)  { gl.DeleteTextures(1, &texture) }
func (glFramebuffers) deleteRenderbuffer(rbo uint32) { gl.DeleteRenderbuffers(1, &rbo) }

// offscreenTarget is the hidden picking framebuffer. Its color and depth
// attachments are kept the same size as the window, so pieces hide what is
// behind them exactly as in the visible frame.
type offscreenTarget struct {
	api     framebuffers
	texture uint32
	depth   uint32
	fbo     uint32
	width   int
	height  int
}

func newOffscreenTarget(api framebuffers, width, height int, logger *slog.Logger) (*offscreenTarget, error) {
	t := &offscreenTarget{api: api, fbo: api.newFramebuffer()}
	if err := t.resize(width, height, logger); err != nil {
		t.delete()
		return nil, err
	}
	return t, nil
}

// resize reallocates both attachments when the size changed.
func (t *offscreenTarget) resize(width, height int, logger *slog.Logger) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if t.texture != 0 && width == t.width && height == t.height {
		return nil
	}
	t.release()
	t.width, t.height = width, height
	t.texture = t.api.newColorTexture(width, height)
	t.depth = t.api.newDepthBuffer(width, height)

	if status := t.api.attach(t.fbo, t.texture, t.depth); status != gl.FRAMEBUFFER_COMPLETE {
		logger.Error("offscreen framebuffer incomplete", "status", status)
		return fmt.Errorf("%w: status 0x%x", ErrFramebufferIncomplete, status)
	}
	return nil
}

// release frees the attachments, keeping the framebuffer object.
func (t *offscreenTarget) release() {
	if t.texture != 0 {
		t.api.deleteTexture(t.texture)
		t.texture = 0
	}
	if t.depth != 0 {
		t.api.deleteRenderbuffer(t.depth)
		t.depth = 0
	}
}

func (t *offscreenTarget) bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	drawBuffers := []uint32{gl.COLOR_ATTACHMENT0}
	gl.DrawBuffers(1, &drawBuffers[0])
	gl.Viewport(0, 0, int32(t.width), int32(t.height))
}

// readPixel returns the color under window position (x, y), measured from the
// top-left corner. Positions outside the target read as black.
func (t *offscreenTarget) readPixel(x, y int) [3]uint8 {
	glY, ok := toGLRow(x, y, t.width, t.height)
	if !ok {
		return [3]uint8{}
	}
	var rgb [3]uint8
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(glY), 1, 1, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&rgb[0]))
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return rgb
}

// toGLRow converts a top-left based row to GL's bottom-left based one.
func toGLRow(x, y, width, height int) (int, bool) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0, false
	}
	return height - 1 - y, true
}

func (t *offscreenTarget) delete() {
	t.release()
	if t.fbo != 0 {
		t.api.deleteFramebuffer(t.fbo)
		t.fbo = 0
	}
}
