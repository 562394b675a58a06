package platform

type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	Resizable    bool
	GLMajor      int
	GLMinor      int
	SwapInterval int
}

// PlatformWindowWrapper owns a native window together with its current GL
// context. All methods must be called from the thread that created it.
type PlatformWindowWrapper interface {
	// PollEvents pumps the native event queue without blocking.
	PollEvents()
	// NextEvent pops one queued event or returns TimeoutEvent when the queue is empty.
	NextEvent() Event
	Swap()
	FramebufferSize() (width, height int)
	GLVersion() string
	Close()
}
