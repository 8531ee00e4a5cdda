package carousel

import "time"

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event.
type EventType uint8

const (
	// Pointer events (mouse or pen on the slide track)
	EventPointerDown EventType = iota + 1
	EventPointerMove
	EventPointerUp
	EventPointerLeave

	// Touch events on the slide track
	EventTouchStart
	EventTouchMove
	EventTouchEnd

	// EventTouchScroll is a page-level touch move, delivered so the
	// carousel can decide whether to suppress cross-axis scrolling.
	EventTouchScroll

	// Keyboard events, scoped to the carousel surface
	EventKeyDown
	EventKeyUp

	// Native scroll of the viewing surface
	EventScroll

	// Layout changes
	EventResize
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	case EventPointerLeave:
		return "pointerleave"
	case EventTouchStart:
		return "touchstart"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventTouchScroll:
		return "touchscroll"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventScroll:
		return "scroll"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Buttons is the set of buttons held during a pointer event.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonAuxiliary
)

// Primary reports whether the primary button is held.
func (b Buttons) Primary() bool { return b&ButtonPrimary != 0 }

// Logical key names used by keyboard control.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Point is a position in client coordinates.
type Point struct {
	X, Y float64
}

// ============================================================================
// Event Interface and Base
// ============================================================================

// Event is the interface for all input events.
type Event interface {
	// Type returns the event type.
	Type() EventType

	// StopPropagation prevents the event from reaching other handlers.
	StopPropagation()

	// IsPropagationStopped returns true if propagation was stopped.
	IsPropagationStopped() bool

	// PreventDefault asks the host to skip its default behavior
	// (page scroll, arrow-key scroll, and so on).
	PreventDefault()

	// IsDefaultPrevented returns true if default was prevented.
	IsDefaultPrevented() bool
}

// eventBase provides common event functionality.
type eventBase struct {
	eventType          EventType
	propagationStopped bool
	defaultPrevented   bool
}

func (e *eventBase) Type() EventType            { return e.eventType }
func (e *eventBase) StopPropagation()           { e.propagationStopped = true }
func (e *eventBase) IsPropagationStopped() bool { return e.propagationStopped }
func (e *eventBase) PreventDefault()            { e.defaultPrevented = true }
func (e *eventBase) IsDefaultPrevented() bool   { return e.defaultPrevented }

// ============================================================================
// Pointer Event
// ============================================================================

// PointerEvent represents mouse interaction with the slide track.
type PointerEvent struct {
	eventBase

	// Client coordinates
	X, Y float64

	// Movement since the previous pointer event
	MovementX, MovementY float64

	// Which button triggered the event (for down/up)
	Button MouseButton

	// Buttons held while the event fired
	Buttons Buttons

	// Slide is the index of the slide under the pointer, or -1.
	Slide int
}

// NewPointerEvent creates a pointer event that is not over any slide.
func NewPointerEvent(eventType EventType, x, y float64, button MouseButton, buttons Buttons) *PointerEvent {
	return &PointerEvent{
		eventBase: eventBase{eventType: eventType},
		X:         x,
		Y:         y,
		Button:    button,
		Buttons:   buttons,
		Slide:     -1,
	}
}

// Position returns the pointer position.
func (e *PointerEvent) Position() Point {
	return Point{X: e.X, Y: e.Y}
}

// ============================================================================
// Touch Events
// ============================================================================

// TouchEvent represents a touch on the slide track.
type TouchEvent struct {
	eventBase

	// Touches holds the contacts still on the surface. It is usually
	// empty for touch end.
	Touches []Point

	// Time is the event timestamp. A zero Time means "now".
	Time time.Time
}

// NewTouchEvent creates a touch event.
func NewTouchEvent(eventType EventType, at time.Time, touches ...Point) *TouchEvent {
	return &TouchEvent{
		eventBase: eventBase{eventType: eventType},
		Touches:   touches,
		Time:      at,
	}
}

// TouchScrollEvent is a page-level touch move. Calling PreventDefault
// suppresses the page's native scroll for this move.
type TouchScrollEvent struct {
	eventBase

	// InContainer is true when the gesture path intersects the carousel.
	InContainer bool
}

// NewTouchScrollEvent creates a touch scroll event.
func NewTouchScrollEvent(inContainer bool) *TouchScrollEvent {
	return &TouchScrollEvent{
		eventBase:   eventBase{eventType: EventTouchScroll},
		InContainer: inContainer,
	}
}

// ============================================================================
// Keyboard Event
// ============================================================================

// KeyEvent represents keyboard events.
type KeyEvent struct {
	eventBase

	// Logical key (e.g., 'ArrowLeft', 'Enter')
	Key string

	// Focused is true when the carousel surface has input focus.
	Focused bool
}

// NewKeyEvent creates a keyboard event.
func NewKeyEvent(eventType EventType, key string, focused bool) *KeyEvent {
	return &KeyEvent{
		eventBase: eventBase{eventType: eventType},
		Key:       key,
		Focused:   focused,
	}
}

// ============================================================================
// Scroll and Resize Events
// ============================================================================

// ScrollEvent reports that the viewport's scroll offset changed natively.
type ScrollEvent struct {
	eventBase
}

// NewScrollEvent creates a scroll event.
func NewScrollEvent() *ScrollEvent {
	return &ScrollEvent{eventBase: eventBase{eventType: EventScroll}}
}

// ResizeEvent reports a layout change of the host surface.
type ResizeEvent struct {
	eventBase

	Width, Height float64
}

// NewResizeEvent creates a resize event.
func NewResizeEvent(width, height float64) *ResizeEvent {
	return &ResizeEvent{
		eventBase: eventBase{eventType: EventResize},
		Width:     width,
		Height:    height,
	}
}
