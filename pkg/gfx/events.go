package gfx

import (
	"github.com/kjkrol/gochess/internal/platform"
)

type Event interface{}

type Key = platform.Key

const (
	KeyUnknown   = platform.KeyUnknown
	KeyUp        = platform.KeyUp
	KeyDown      = platform.KeyDown
	KeyLeft      = platform.KeyLeft
	KeyRight     = platform.KeyRight
	KeyW         = platform.KeyW
	KeyA         = platform.KeyA
	KeyS         = platform.KeyS
	KeyD         = platform.KeyD
	KeyR         = platform.KeyR
	KeyEscape    = platform.KeyEscape
	KeySpace     = platform.KeySpace
	KeyEnter     = platform.KeyEnter
	KeyTab       = platform.KeyTab
	KeyBackspace = platform.KeyBackspace
)

type Button = platform.Button

const (
	ButtonLeft   = platform.ButtonLeft
	ButtonMiddle = platform.ButtonMiddle
	ButtonRight  = platform.ButtonRight
)

type KeyPress struct {
	Key    Key
	Repeat bool
}
type KeyRelease struct {
	Key Key
}
type ButtonPress struct {
	Button Button
	X, Y   int
}
type ButtonRelease struct {
	Button Button
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type Resize struct {
	Width, Height int
}
type Quit struct{}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Key: e.Key, Repeat: e.Repeat}
	case platform.KeyRelease:
		return KeyRelease{Key: e.Key}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return MotionNotify{X: e.X, Y: e.Y}
	case platform.Resize:
		return Resize{Width: e.Width, Height: e.Height}
	case platform.Quit:
		return Quit{}
	default:
		return UnexpectedEvent{}
	}
}
