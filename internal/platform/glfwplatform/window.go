// Package glfwplatform implements platform.PlatformWindowWrapper on top of
// GLFW with a desktop OpenGL context.
package glfwplatform

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/gochess/internal/platform"
)

var _ platform.PlatformWindowWrapper = (*Window)(nil)

var ErrUnsupportedGL = errors.New("OpenGL 2.0 or newer is required")

func init() {
	// GLFW event handling and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type Window struct {
	window *glfw.Window
	queue  platform.EventQueue
	width  int
	height int
	logger *slog.Logger
}

// New creates the window, makes its GL context current and loads the GL
// entry points. Every failing step is reported as an error naming the step.
func New(conf platform.WindowConfig, logger *slog.Logger) (*Window, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("can't init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, conf.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, conf.GLMinor)
	if conf.GLMajor > 3 || (conf.GLMajor == 3 && conf.GLMinor >= 2) {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	if conf.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("can't create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	if major, _, ok := platform.ParseGLVersion(gl.GoStr(gl.GetString(gl.VERSION))); !ok || major < 2 {
		win.Destroy()
		glfw.Terminate()
		return nil, ErrUnsupportedGL
	}
	glfw.SwapInterval(conf.SwapInterval)

	gl.Enable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	w := &Window{window: win, logger: logger}
	w.width, w.height = win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w.width), int32(w.height))
	w.installCallbacks()

	logger.Info("opengl context ready",
		"version", w.GLVersion(),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"width", w.width,
		"height", w.height,
	)
	return w, nil
}

func (w *Window) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := convertKey(key)
		switch action {
		case glfw.Press:
			w.queue.Push(platform.KeyPress{Key: k})
		case glfw.Repeat:
			w.queue.Push(platform.KeyPress{Key: k, Repeat: true})
		case glfw.Release:
			w.queue.Push(platform.KeyRelease{Key: k})
		}
	})
	w.window.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.toFramebuffer(win.GetCursorPos())
		b := convertButton(button)
		if action == glfw.Press {
			w.queue.Push(platform.ButtonPress{Button: b, X: int(x), Y: int(y)})
		} else if action == glfw.Release {
			w.queue.Push(platform.ButtonRelease{Button: b, X: int(x), Y: int(y)})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, cx, cy float64) {
		x, y := w.toFramebuffer(cx, cy)
		w.queue.Push(platform.MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.onResize(width, height)
		w.queue.Push(platform.Resize{Width: width, Height: height})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.Push(platform.Quit{})
	})
}

func (w *Window) onResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) NextEvent() platform.Event {
	return w.queue.Pop()
}

func (w *Window) Swap() {
	w.window.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.width, w.height
}

// toFramebuffer maps window coordinates to framebuffer pixels, which differ
// on HiDPI displays.
func (w *Window) toFramebuffer(x, y float64) (float64, float64) {
	ww, wh := w.window.GetSize()
	if ww <= 0 || wh <= 0 {
		return x, y
	}
	return x * float64(w.width) / float64(ww), y * float64(w.height) / float64(wh)
}

func (w *Window) GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (w *Window) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
}
