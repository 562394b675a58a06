// Package input keeps a per-tick snapshot of keyboard and mouse state built
// from window events.
package input

import "github.com/kjkrol/gochess/pkg/gfx"

// SinglePress turns a held key into a one-shot trigger: State is true for
// exactly one Update after the key goes down and re-arms only once the key
// has been released.
type SinglePress struct {
	Pressed  bool
	State    bool
	Released bool
}

func NewSinglePress() SinglePress {
	return SinglePress{Released: true}
}

func (k *SinglePress) Update() bool {
	if k.Released {
		if k.Pressed {
			k.State = true
			k.Released = false
		}
	} else {
		k.State = false
		if !k.Pressed {
			k.Released = true
		}
	}
	return k.State
}

type State struct {
	Up, Down, Left, Right SinglePress
	Restart               SinglePress
	Enter, Tab            SinglePress
	W, A, S, D            SinglePress
	Space, Backspace      SinglePress

	MouseClicked      bool
	MouseRightClicked bool
	MouseX, MouseY    int

	DisplayConsole bool
	EditorMode     bool
	QuitApp        bool
	Paused         bool
}

func New() *State {
	s := &State{}
	for _, k := range s.keys() {
		*k = NewSinglePress()
	}
	return s
}

func (s *State) keys() []*SinglePress {
	return []*SinglePress{
		&s.Up, &s.Down, &s.Left, &s.Right,
		&s.Restart, &s.Enter, &s.Tab,
		&s.W, &s.A, &s.S, &s.D,
		&s.Space, &s.Backspace,
	}
}

func (s *State) key(k gfx.Key) *SinglePress {
	switch k {
	case gfx.KeyUp:
		return &s.Up
	case gfx.KeyDown:
		return &s.Down
	case gfx.KeyLeft:
		return &s.Left
	case gfx.KeyRight:
		return &s.Right
	case gfx.KeyW:
		return &s.W
	case gfx.KeyA:
		return &s.A
	case gfx.KeyS:
		return &s.S
	case gfx.KeyD:
		return &s.D
	case gfx.KeyR:
		return &s.Restart
	case gfx.KeyEnter:
		return &s.Enter
	case gfx.KeyTab:
		return &s.Tab
	case gfx.KeySpace:
		return &s.Space
	case gfx.KeyBackspace:
		return &s.Backspace
	}
	return nil
}

// Apply folds one window event into the snapshot.
func (s *State) Apply(event gfx.Event) {
	switch e := event.(type) {
	case gfx.KeyPress:
		if e.Key == gfx.KeyEscape {
			s.QuitApp = true
			return
		}
		if k := s.key(e.Key); k != nil {
			k.Pressed = true
		}
	case gfx.KeyRelease:
		if k := s.key(e.Key); k != nil {
			k.Pressed = false
		}
	case gfx.ButtonRelease:
		s.MouseX, s.MouseY = e.X, e.Y
		switch e.Button {
		case gfx.ButtonLeft:
			s.MouseClicked = true
		case gfx.ButtonRight:
			s.MouseRightClicked = true
		}
	case gfx.MotionNotify:
		s.MouseX, s.MouseY = e.X, e.Y
	case gfx.Quit:
		s.QuitApp = true
	}
}

// Tick advances every single-press detector. Call it once per physics step
// before reading State fields.
func (s *State) Tick() {
	for _, k := range s.keys() {
		k.Update()
	}
}

// EndTick clears the one-step click flags at the end of a physics step.
func (s *State) EndTick() {
	s.MouseClicked = false
	s.MouseRightClicked = false
}
