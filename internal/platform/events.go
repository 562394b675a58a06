package platform

type Event interface{}

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
type TimeoutEvent struct{}

type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
)

var keyNames = [...]string{
	KeyUnknown:   "unknown",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyW:         "w",
	KeyA:         "a",
	KeyS:         "s",
	KeyD:         "d",
	KeyR:         "r",
	KeyEscape:    "escape",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// EventQueue is a FIFO filled by native callbacks and drained by NextEvent.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

func (q *EventQueue) Pop() Event {
	if len(q.events) == 0 {
		return TimeoutEvent{}
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return e
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
