package gfx

// Renderer draws one frame into the window's current GL context. Render is
// called only when a render step is due; the window swaps buffers afterwards.
type Renderer interface {
	Render(w *Window)
	Close()
}

type RendererFactory func(w *Window) (Renderer, error)
