package carousel

// Viewport is the host surface the carousel scrolls.
type Viewport interface {
	// SlideOffsets returns the horizontal offset of every slide in index
	// order. ok is false while the surface is not mounted or measurable.
	SlideOffsets() (offsets []float64, ok bool)

	// ScrollOffset returns the current horizontal scroll offset.
	ScrollOffset() float64

	// SetScrollOffset moves the viewport.
	SetScrollOffset(offset float64)
}

// InputHandler receives input events from the host.
type InputHandler interface {
	HandleEvent(e Event)
}

// EventSource delivers host input events to a handler until stopped.
type EventSource interface {
	// Listen subscribes h to pointer, touch, keyboard, scroll and resize
	// events. The returned func unsubscribes.
	Listen(h InputHandler) (stop func())
}

// Adapter is everything the carousel needs from its host.
type Adapter interface {
	Viewport
	EventSource
}
