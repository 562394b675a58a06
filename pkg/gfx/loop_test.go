package gfx

import (
	"testing"
	"time"
)

func TestPhysicsUpdaterFixedSteps(t *testing.T) {
	var steps []time.Duration
	u := newPhysicsUpdater(10*time.Millisecond, func(dt time.Duration) {
		steps = append(steps, dt)
	})

	if n := u.advance(4 * time.Millisecond); n != 0 {
		t.Fatalf("4ms should not complete a step, ran %d", n)
	}
	if n := u.advance(7 * time.Millisecond); n != 1 {
		t.Fatalf("11ms accumulated should run 1 step, ran %d", n)
	}
	if n := u.advance(25 * time.Millisecond); n != 2 {
		t.Fatalf("26ms accumulated should run 2 steps, ran %d", n)
	}
	if u.accumulator != 6*time.Millisecond {
		t.Errorf("remainder %v, want 6ms", u.accumulator)
	}
	for _, dt := range steps {
		if dt != 10*time.Millisecond {
			t.Errorf("step dt %v, want 10ms", dt)
		}
	}
}

func TestPhysicsUpdaterClampsStalls(t *testing.T) {
	u := newPhysicsUpdater(10*time.Millisecond, nil)
	if n := u.advance(10 * time.Second); n != int(maxFrameTime/(10*time.Millisecond)) {
		t.Errorf("stall ran %d steps, want %d", n, maxFrameTime/(10*time.Millisecond))
	}
	if n := u.advance(-time.Second); n != 0 {
		t.Errorf("negative frame time ran %d steps", n)
	}
}

func TestRenderUpdaterResetsAccumulator(t *testing.T) {
	r := newRenderUpdater(10 * time.Millisecond)
	if r.due(6 * time.Millisecond) {
		t.Fatal("render due too early")
	}
	if !r.due(9 * time.Millisecond) {
		t.Fatal("render should be due after 15ms")
	}
	if r.accumulator != 0 {
		t.Errorf("accumulator %v after render, want 0", r.accumulator)
	}
	if r.due(6 * time.Millisecond) {
		t.Error("remainder must not carry over to the next frame")
	}
}

func TestUpdaterDefaults(t *testing.T) {
	if u := newPhysicsUpdater(0, nil); u.fixedTimeStep != time.Second/60 {
		t.Errorf("physics default %v", u.fixedTimeStep)
	}
	if r := newRenderUpdater(-1); r.rendererRefreshRate != time.Second/60 {
		t.Errorf("render default %v", r.rendererRefreshRate)
	}
}
