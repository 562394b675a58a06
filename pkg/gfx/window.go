package gfx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kjkrol/gochess/internal/platform"
)

type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	Resizable    bool
	GLMajor      int
	GLMinor      int
	SwapInterval int
	RenderStep   time.Duration
	PhysicsStep  time.Duration
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		Width:        w.Width,
		Height:       w.Height,
		Title:        w.Title,
		Resizable:    w.Resizable,
		GLMajor:      w.GLMajor,
		GLMinor:      w.GLMinor,
		SwapInterval: w.SwapInterval,
	}
}

// PlatformOpener creates the native window and its GL context.
type PlatformOpener func(platform.WindowConfig) (platform.PlatformWindowWrapper, error)

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	width              int
	height             int
	renderStep         time.Duration
	physicsStep        time.Duration
	idle               time.Duration
	now                func() time.Time
	sleep              func(time.Duration)
	ctx                context.Context
	cancel             context.CancelFunc
}

const idleWait = time.Millisecond

func NewWindow(conf WindowConfig, open PlatformOpener, factory RendererFactory) (*Window, error) {
	if open == nil {
		return nil, errors.New("platform opener is required")
	}
	wrapper, err := open(conf.convert())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	if wrapper == nil {
		return nil, errors.New("platform window wrapper is required")
	}
	window := &Window{
		platformWinWrapper: wrapper,
		width:              conf.Width,
		height:             conf.Height,
		renderStep:         conf.RenderStep,
		physicsStep:        conf.PhysicsStep,
		idle:               idleWait,
		now:                time.Now,
		sleep:              time.Sleep,
	}
	if fw, fh := wrapper.FramebufferSize(); fw > 0 && fh > 0 {
		window.width, window.height = fw, fh
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	if factory != nil {
		renderer, err := factory(window)
		if err != nil {
			wrapper.Close()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
		window.renderer = renderer
	}
	return window, nil
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) GLVersion() string {
	return w.platformWinWrapper.GLVersion()
}

func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

// ListenEvents runs the frame loop until Stop is called. Each iteration pumps
// native events into handleEvent, advances the fixed physics step through
// update, and renders and swaps when a render step is due.
func (w *Window) ListenEvents(handleEvent func(event Event), update func(dt time.Duration), strategy EventsConsumerStrategy) {
	if strategy == nil {
		strategy = DrainAll()
	}
	physics := newPhysicsUpdater(w.physicsStep, update)
	render := newRenderUpdater(w.renderStep)

	poll := func(_ int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEvent()
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	handle := func(event Event) {
		if e, ok := event.(Resize); ok {
			w.width, w.height = e.Width, e.Height
		}
		if handleEvent != nil {
			handleEvent(event)
		}
	}

	prev := w.now()
	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		cur := w.now()
		frameTime := cur.Sub(prev)
		prev = cur

		w.platformWinWrapper.PollEvents()
		strategy.Consume(poll, handle, 0)

		physics.advance(frameTime)

		if render.due(frameTime) {
			if w.renderer != nil {
				w.renderer.Render(w)
			}
			w.platformWinWrapper.Swap()
			continue
		}
		w.sleep(w.idle)
	}
}
