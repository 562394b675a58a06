package gfx

import (
	"errors"
	"testing"
	"time"

	"github.com/kjkrol/gochess/internal/platform"
)

type fakePlatform struct {
	queue  platform.EventQueue
	polls  int
	swaps  int
	closed bool
	conf   platform.WindowConfig
}

func (f *fakePlatform) PollEvents()                 { f.polls++ }
func (f *fakePlatform) NextEvent() platform.Event   { return f.queue.Pop() }
func (f *fakePlatform) Swap()                       { f.swaps++ }
func (f *fakePlatform) FramebufferSize() (int, int) { return f.conf.Width, f.conf.Height }
func (f *fakePlatform) GLVersion() string           { return "2.1 fake" }
func (f *fakePlatform) Close()                      { f.closed = true }

type stopAfterRenderer struct {
	renders   int
	stopAfter int
	closed    bool
}

func (r *stopAfterRenderer) Render(w *Window) {
	r.renders++
	if r.renders == r.stopAfter {
		w.Stop()
	}
}

func (r *stopAfterRenderer) Close() { r.closed = true }

func newTestWindow(t *testing.T, fp *fakePlatform, r *stopAfterRenderer) *Window {
	t.Helper()
	conf := WindowConfig{Width: 80, Height: 60, Title: "test", RenderStep: 20 * time.Millisecond, PhysicsStep: 20 * time.Millisecond}
	w, err := NewWindow(conf, func(c platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
		fp.conf = c
		return fp, nil
	}, func(*Window) (Renderer, error) { return r, nil })
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	clock := time.Unix(0, 0)
	w.now = func() time.Time {
		now := clock
		clock = clock.Add(10 * time.Millisecond)
		return now
	}
	return w
}

func TestListenEventsRunsFixedLoop(t *testing.T) {
	fp := &fakePlatform{}
	fp.queue.Push(platform.KeyPress{Key: platform.KeyUp})
	fp.queue.Push(platform.Resize{Width: 100, Height: 50})
	fp.queue.Push(platform.Quit{})
	r := &stopAfterRenderer{stopAfter: 3}
	w := newTestWindow(t, fp, r)
	if fp.conf.Title != "test" || fp.conf.Width != 80 {
		t.Fatalf("platform config not forwarded: %+v", fp.conf)
	}

	sleeps := 0
	w.sleep = func(time.Duration) { sleeps++ }
	var events []Event
	updates := 0
	w.ListenEvents(func(e Event) { events = append(events, e) }, func(dt time.Duration) {
		if dt != 20*time.Millisecond {
			t.Errorf("update dt %v, want 20ms", dt)
		}
		updates++
	}, nil)

	if r.renders != 3 || fp.swaps != 3 {
		t.Errorf("renders=%d swaps=%d, want 3 and 3", r.renders, fp.swaps)
	}
	if updates != 3 {
		t.Errorf("updates=%d, want 3", updates)
	}
	if sleeps != 3 {
		t.Errorf("idle sleeps=%d, want 3", sleeps)
	}
	if fp.polls != 6 {
		t.Errorf("polls=%d, want 6", fp.polls)
	}
	if len(events) != 3 {
		t.Fatalf("events=%d, want 3", len(events))
	}
	if e, ok := events[0].(KeyPress); !ok || e.Key != KeyUp {
		t.Errorf("first event %#v", events[0])
	}
	if _, ok := events[2].(Quit); !ok {
		t.Errorf("last event %#v, want Quit", events[2])
	}
	if width, height := w.Size(); width != 100 || height != 50 {
		t.Errorf("size after resize %dx%d", width, height)
	}

	w.Close()
	if !r.closed || !fp.closed {
		t.Error("Close must release renderer and platform window")
	}
}

func TestNewWindowErrors(t *testing.T) {
	if _, err := NewWindow(WindowConfig{}, nil, nil); err == nil {
		t.Error("expected error without opener")
	}
	boom := errors.New("no display")
	_, err := NewWindow(WindowConfig{}, func(platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
		return nil, boom
	}, nil)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped opener error, got %v", err)
	}

	fp := &fakePlatform{}
	_, err = NewWindow(WindowConfig{}, func(platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
		return fp, nil
	}, func(*Window) (Renderer, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped renderer error, got %v", err)
	}
	if !fp.closed {
		t.Error("platform window must be closed when the renderer fails")
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		in   platform.Event
		want Event
	}{
		{platform.KeyPress{Key: platform.KeyA, Repeat: true}, KeyPress{Key: KeyA, Repeat: true}},
		{platform.KeyRelease{Key: platform.KeyD}, KeyRelease{Key: KeyD}},
		{platform.ButtonPress{Button: platform.ButtonLeft, X: 1, Y: 2}, ButtonPress{Button: ButtonLeft, X: 1, Y: 2}},
		{platform.ButtonRelease{Button: platform.ButtonRight, X: 3, Y: 4}, ButtonRelease{Button: ButtonRight, X: 3, Y: 4}},
		{platform.MotionNotify{X: 5, Y: 6}, MotionNotify{X: 5, Y: 6}},
		{platform.Resize{Width: 7, Height: 8}, Resize{Width: 7, Height: 8}},
		{platform.Quit{}, Quit{}},
		{struct{}{}, UnexpectedEvent{}},
	}
	for _, tt := range tests {
		if got := convert(tt.in); got != tt.want {
			t.Errorf("convert(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestWindowReportsPlatform(t *testing.T) {
	fp := &fakePlatform{}
	w := newTestWindow(t, fp, &stopAfterRenderer{})
	if got := w.GLVersion(); got != "2.1 fake" {
		t.Errorf("GLVersion = %q", got)
	}
	if width, height := w.Size(); width != 80 || height != 60 {
		t.Errorf("Size = %dx%d", width, height)
	}
}
