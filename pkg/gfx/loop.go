package gfx

import "time"

// maxFrameTime caps the simulated time a single stalled frame may inject.
const maxFrameTime = 250 * time.Millisecond

type physicsUpdater struct {
	fixedTimeStep time.Duration
	accumulator   time.Duration
	update        func(time.Duration)
}

func newPhysicsUpdater(fixedTimeStep time.Duration, update func(time.Duration)) *physicsUpdater {
	if fixedTimeStep <= 0 {
		fixedTimeStep = time.Second / 60
	}
	return &physicsUpdater{
		fixedTimeStep: fixedTimeStep,
		update:        update,
	}
}

// advance runs update once per whole step contained in the accumulated time
// and returns how many steps ran.
func (u *physicsUpdater) advance(frameTime time.Duration) int {
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	if frameTime < 0 {
		frameTime = 0
	}
	u.accumulator += frameTime
	steps := 0
	for u.accumulator >= u.fixedTimeStep {
		if u.update != nil {
			u.update(u.fixedTimeStep)
		}
		u.accumulator -= u.fixedTimeStep
		steps++
	}
	return steps
}

type renderUpdater struct {
	rendererRefreshRate time.Duration
	accumulator         time.Duration
}

func newRenderUpdater(rendererRefreshRate time.Duration) *renderUpdater {
	if rendererRefreshRate <= 0 {
		rendererRefreshRate = time.Second / 60
	}
	return &renderUpdater{rendererRefreshRate: rendererRefreshRate}
}

// due reports whether a frame should be drawn. The accumulator restarts from
// zero after a render; the remainder is dropped.
func (r *renderUpdater) due(frameTime time.Duration) bool {
	if frameTime > 0 {
		r.accumulator += frameTime
	}
	if r.accumulator >= r.rendererRefreshRate {
		r.accumulator = 0
		return true
	}
	return false
}
