package carousel

import (
	"math"

	"github.com/agiangrant/carousel/loop"
)

// gestureHost is the part of the carousel the gesture coordinator drives.
type gestureHost interface {
	State() State
	Config() Config
	Dispatch(intent NavigationIntent)

	// NearestSlide computes the slide closest to the live scroll offset.
	NearestSlide() int

	// ScrollBy shifts the viewport without animation.
	ScrollBy(delta float64)

	// Swap sets the current index without moving the viewport.
	Swap(index int)

	BeginDrag()
	EndDrag()

	// Relayout re-measures slides after a layout change.
	Relayout()
}

// DragSession tracks one pointer drag.
type DragSession struct {
	Active         bool
	InitialIndex   int
	InitialPointer Point
	FinalPointer   Point
}

// Resolve picks the slide a finished drag settles on.
//
// The nearest slide wins unless swapOnEnd is set and the drag ended over the
// slide it started on, in which case the net horizontal pointer movement
// picks the neighbor: rightward goes back, leftward goes forward.
func (s DragSession) Resolve(nearest, slideCount int, swapOnEnd bool) int {
	if !swapOnEnd || slideCount == 0 || nearest != s.InitialIndex {
		return nearest
	}

	switch {
	case s.FinalPointer.X > s.InitialPointer.X:
		return max(s.InitialIndex-1, 0)
	case s.FinalPointer.X < s.InitialPointer.X:
		return min(s.InitialIndex+1, slideCount-1)
	}
	return nearest
}

// ============================================================================
// Gesture Coordinator
// ============================================================================

// GestureCoordinator turns raw input events into navigation intents, swaps
// and drag sessions. It runs on the event loop and is not safe for
// concurrent use.
type GestureCoordinator struct {
	host gestureHost

	// Pointer state
	pressed  bool
	pressPos Point
	drag     DragSession

	// Touch state
	tracker        VelocityTracker
	velocity       Velocity
	touching       bool
	touchScrolling bool

	clock    loop.Clock
	inertial *loop.Debouncer
	resize   *loop.Debouncer
}

func newGestureCoordinator(host gestureHost, clock loop.Clock, cfg Config) *GestureCoordinator {
	g := &GestureCoordinator{
		host:  host,
		clock: clock,
	}
	g.inertial = loop.NewDebouncer(clock, ms(cfg.InertialScrollTimeoutMs), g.settleInertialScroll)
	g.resize = loop.NewDebouncer(clock, ms(cfg.ResizeTimeoutMs), g.realign)
	return g
}

// configure applies tunables from a new config.
func (g *GestureCoordinator) configure(cfg Config) {
	g.inertial.SetDelay(ms(cfg.InertialScrollTimeoutMs))
	g.resize.SetDelay(ms(cfg.ResizeTimeoutMs))
}

// stop drops pending debounces and any gesture in progress.
func (g *GestureCoordinator) stop() {
	g.inertial.Cancel()
	g.resize.Cancel()
	g.pressed = false
	g.drag = DragSession{}
	g.tracker.Reset()
	g.velocity = Velocity{}
	g.touching = false
	g.touchScrolling = false
}

// Drag returns the current drag session.
func (g *GestureCoordinator) Drag() DragSession {
	return g.drag
}

// Velocity returns the last touch velocity.
func (g *GestureCoordinator) Velocity() Velocity {
	return g.velocity
}

// Touching reports whether a touch is on the surface.
func (g *GestureCoordinator) Touching() bool {
	return g.touching
}

// TouchScrolling reports whether an inertial touch scroll is in progress.
func (g *GestureCoordinator) TouchScrolling() bool {
	return g.touchScrolling
}

// HandleEvent routes an input event.
func (g *GestureCoordinator) HandleEvent(e Event) {
	switch ev := e.(type) {
	case *PointerEvent:
		g.handlePointer(ev)
	case *TouchEvent:
		g.handleTouch(ev)
	case *TouchScrollEvent:
		if !g.AllowCrossAxisScroll(ev.InContainer) {
			ev.PreventDefault()
		}
	case *KeyEvent:
		g.handleKey(ev)
	case *ScrollEvent:
		g.handleScroll()
	case *ResizeEvent:
		g.handleResize()
	}
}

// ============================================================================
// Pointer
// ============================================================================

func (g *GestureCoordinator) handlePointer(e *PointerEvent) {
	cfg := g.host.Config()

	switch e.Type() {
	case EventPointerDown:
		if cfg.Draggable && e.Button == MouseButtonLeft {
			g.pressed = true
			g.pressPos = e.Position()
		}

	case EventPointerMove:
		if !cfg.Draggable {
			return
		}
		// Dragging also starts when the press happened outside the track.
		if !g.drag.Active && e.Buttons.Primary() {
			g.startDrag(e)
		}
		if g.drag.Active {
			g.host.ScrollBy(-e.MovementX)
			g.host.Swap(g.host.NearestSlide())
		}

	case EventPointerUp:
		// Slide clicks only count when no drag is in progress.
		if e.Slide >= 0 && !g.drag.Active {
			if e.Slide != g.host.State().Current {
				g.host.Dispatch(GotoIntent(e.Slide, SourceUser))
			}
		}
		g.endDrag(e, cfg)

	case EventPointerLeave:
		g.endDrag(e, cfg)
	}
}

func (g *GestureCoordinator) startDrag(e *PointerEvent) {
	initial := e.Position()
	if g.pressed {
		initial = g.pressPos
	}
	g.pressed = false

	g.host.BeginDrag()
	g.drag = DragSession{
		Active:         true,
		InitialIndex:   g.host.State().Current,
		InitialPointer: initial,
	}
}

func (g *GestureCoordinator) endDrag(e *PointerEvent, cfg Config) {
	g.pressed = false
	if !cfg.Draggable || !g.drag.Active {
		return
	}

	g.drag.Active = false
	g.drag.FinalPointer = e.Position()
	g.host.EndDrag()

	target := g.drag.Resolve(g.host.NearestSlide(), g.host.State().SlideCount, cfg.SwapOnDragMoveEnd)
	g.host.Swap(target)
	g.host.Dispatch(SnapIntent(g.host.State().Current))

	g.drag = DragSession{InitialIndex: g.drag.InitialIndex}
}

// ============================================================================
// Touch
// ============================================================================

func (g *GestureCoordinator) handleTouch(e *TouchEvent) {
	cfg := g.host.Config()

	switch e.Type() {
	case EventTouchStart:
		// Note: iOS may not deliver touchstart when a touch interrupts
		// momentum scrolling, so moves must work without it.
		g.tracker.Reset()
		g.record(e)
		g.touching = true

	case EventTouchMove:
		g.record(e)
		g.touchScrolling = math.Abs(g.velocity.X) > cfg.TouchScrollingVelocityThreshold

	case EventTouchEnd:
		g.record(e)
		g.touching = false

		vx := g.velocity.X
		switch {
		case cfg.DisableNativeScroll && math.Abs(vx) > cfg.TouchSwipeVelocityThreshold:
			if vx > 0 {
				g.host.Dispatch(PrevIntent(SourceUser))
			} else {
				g.host.Dispatch(NextIntent(SourceUser))
			}
		case !g.touchScrolling:
			g.host.Dispatch(SnapIntent(g.host.State().Current))
		}
	}
}

func (g *GestureCoordinator) record(e *TouchEvent) {
	if len(e.Touches) == 0 {
		return
	}
	at := e.Time
	if at.IsZero() {
		at = g.clock.Now()
	}
	touch := e.Touches[0]
	g.velocity = g.tracker.Record(touch.X, touch.Y, at)
}

// AllowCrossAxisScroll decides whether a page-level touch move may keep its
// native scroll behavior.
func (g *GestureCoordinator) AllowCrossAxisScroll(inContainer bool) bool {
	return allowCrossAxisScroll(g.velocity, inContainer, g.touching, g.host.Config())
}

func allowCrossAxisScroll(v Velocity, inContainer, touching bool, cfg Config) bool {
	vx := math.Abs(v.X)
	vy := math.Abs(v.Y)

	if !inContainer || vy >= vx {
		return true
	}

	return !cfg.DisableNativeScroll ||
		(touching && vy > cfg.TouchCrossAxisScrollThreshold && vx < cfg.TouchSwipeVelocityThreshold)
}

// ============================================================================
// Keyboard
// ============================================================================

func (g *GestureCoordinator) handleKey(e *KeyEvent) {
	cfg := g.host.Config()
	if !cfg.KeyboardControl || !e.Focused {
		return
	}

	switch e.Type() {
	case EventKeyDown:
		// Keep the surface from scrolling on its own with arrow keys.
		if e.Key == KeyArrowLeft || e.Key == KeyArrowRight {
			e.PreventDefault()
			e.StopPropagation()
		}

	case EventKeyUp:
		switch e.Key {
		case KeyArrowLeft:
			g.host.Dispatch(PrevIntent(SourceUser))
		case KeyArrowRight:
			g.host.Dispatch(NextIntent(SourceUser))
		}
	}
}

// ============================================================================
// Scroll and Resize
// ============================================================================

func (g *GestureCoordinator) handleScroll() {
	// Commits own the offset while animating; drags swap on their own moves.
	if g.host.State().Animating || g.drag.Active {
		return
	}

	g.host.Swap(g.host.NearestSlide())

	if g.touchScrolling {
		g.inertial.Call()
	}
}

func (g *GestureCoordinator) settleInertialScroll() {
	g.touchScrolling = false
	// A pointer drag took over the offset; its release does the snapping.
	if g.drag.Active {
		return
	}

	g.host.Swap(g.host.NearestSlide())

	if !g.touching {
		g.host.Dispatch(SnapIntent(g.host.State().Current))
	}
}

func (g *GestureCoordinator) handleResize() {
	g.host.Relayout()

	if g.host.Config().ResetCurrentOnResize {
		g.resize.Call()
	}
}

func (g *GestureCoordinator) realign() {
	if g.drag.Active {
		return
	}
	g.host.Dispatch(SnapIntent(g.host.State().Current))
}
