// Package camera implements the orbit camera circling the board.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 0, 1}

// Orbit looks at the origin from a point on a circle of the given radius at a
// fixed height above the board plane.
type Orbit struct {
	Angle  float32
	Radius float32
	Height float32
	FovY   float32
	Near   float32
	Far    float32

	cleanAngle float32
	dirty      bool
}

func NewOrbit(angle, radius, height, fovY, near, far float32) *Orbit {
	return &Orbit{
		Angle:  angle,
		Radius: radius,
		Height: height,
		FovY:   fovY,
		Near:   near,
		Far:    far,
		dirty:  true,
	}
}

func (o *Orbit) Eye() mgl32.Vec3 {
	a := float64(o.Angle)
	return mgl32.Vec3{
		o.Radius * float32(math.Cos(a)),
		o.Radius * float32(math.Sin(a)),
		o.Height,
	}
}

func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), mgl32.Vec3{}, up)
}

// Projection returns the perspective matrix for a width x height viewport.
// A degenerate height is treated as 1.
func (o *Orbit) Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(o.FovY), aspect, o.Near, o.Far)
}

// Rotate moves the eye along the orbit by delta radians, keeping Angle in
// [-pi, pi).
func (o *Orbit) Rotate(delta float32) {
	if delta == 0 {
		return
	}
	a := math.Mod(float64(o.Angle+delta)+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	o.Angle = float32(a - math.Pi)
}

// Invalidate forces the next Dirty call to report true, e.g. after a resize.
func (o *Orbit) Invalidate() {
	o.dirty = true
}

// Dirty reports whether the view changed since the last MarkClean.
func (o *Orbit) Dirty() bool {
	return o.dirty || o.Angle != o.cleanAngle
}

func (o *Orbit) MarkClean() {
	o.cleanAngle = o.Angle
	o.dirty = false
}
