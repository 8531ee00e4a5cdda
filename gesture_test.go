package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointer(t EventType, x float64, movementX float64, buttons Buttons) *PointerEvent {
	button := MouseButtonNone
	if t == EventPointerDown || t == EventPointerUp {
		button = MouseButtonLeft
	}
	e := NewPointerEvent(t, x, 10, button, buttons)
	e.MovementX = movementX
	return e
}

func draggableHarness(t *testing.T, slides, current int) *harness {
	t.Helper()
	cfg := instantConfig().WithCurrent(current)
	cfg.Draggable = true
	h := newHarness(t, slides, cfg)
	h.c.Start()
	require.Equal(t, float64(current*100), h.adapter.scroll)
	return h
}

// ============================================================================
// Drag
// ============================================================================

func TestDragEndInfersDirection(t *testing.T) {
	tests := []struct {
		name      string
		movementX float64
		want      int
		wantCalls []any
	}{
		{
			name:      "rightward goes back",
			movementX: 20,
			want:      2,
			wantCalls: []any{before(3, 2, SourceUser), after(3, 2, SourceUser)},
		},
		{
			name:      "leftward goes forward",
			movementX: -20,
			want:      4,
			wantCalls: []any{before(3, 4, SourceUser), after(3, 4, SourceUser)},
		},
		{
			name:      "long drag keeps nearest",
			movementX: -160,
			want:      5,
			wantCalls: []any{before(3, 5, SourceUser), after(3, 5, SourceUser)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := draggableHarness(t, 10, 3)

			h.adapter.send(pointer(EventPointerDown, 500, 0, ButtonPrimary))
			h.adapter.send(pointer(EventPointerMove, 500+tt.movementX, tt.movementX, ButtonPrimary))
			assert.True(t, h.c.State().Dragging)
			assert.Equal(t, 3, h.c.Gestures().Drag().InitialIndex)

			h.adapter.send(pointer(EventPointerUp, 500+tt.movementX, 0, 0))

			assert.False(t, h.c.State().Dragging)
			assert.Equal(t, tt.want, h.c.State().Current)
			assert.Equal(t, float64(tt.want*100), h.adapter.scroll)
			assertCalls(t, tt.wantCalls, h.rec.calls)
		})
	}
}

func TestDragWithoutSwapOnEndKeepsNearest(t *testing.T) {
	cfg := instantConfig().WithCurrent(3)
	cfg.Draggable = true
	cfg.SwapOnDragMoveEnd = false
	h := newHarness(t, 10, cfg)
	h.c.Start()

	h.adapter.send(pointer(EventPointerDown, 500, 0, ButtonPrimary))
	h.adapter.send(pointer(EventPointerMove, 520, 20, ButtonPrimary))
	h.adapter.send(pointer(EventPointerUp, 520, 0, 0))

	assert.Equal(t, 3, h.c.State().Current)
	assert.Equal(t, 300.0, h.adapter.scroll)
	assert.Empty(t, h.rec.calls)
}

func TestDragSwapsWhileMoving(t *testing.T) {
	h := draggableHarness(t, 10, 0)

	h.adapter.send(pointer(EventPointerDown, 500, 0, ButtonPrimary))
	h.adapter.send(pointer(EventPointerMove, 440, -60, ButtonPrimary))
	assert.Equal(t, 1, h.c.State().Current)
	assert.Equal(t, 60.0, h.adapter.scroll)

	h.adapter.send(pointer(EventPointerMove, 320, -120, ButtonPrimary))
	assert.Equal(t, 2, h.c.State().Current)

	// Leaving the track ends the drag like a release.
	h.adapter.send(pointer(EventPointerLeave, 320, 0, 0))
	assert.False(t, h.c.State().Dragging)
	assert.Equal(t, 200.0, h.adapter.scroll)
	assertCalls(t, []any{
		before(0, 1, SourceUser), after(0, 1, SourceUser),
		before(1, 2, SourceUser), after(1, 2, SourceUser),
	}, h.rec.calls)
}

func TestDragIgnoredWhenNotDraggable(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()

	h.adapter.send(pointer(EventPointerDown, 500, 0, ButtonPrimary))
	h.adapter.send(pointer(EventPointerMove, 300, -200, ButtonPrimary))
	h.adapter.send(pointer(EventPointerUp, 300, 0, 0))

	assert.False(t, h.c.Gestures().Drag().Active)
	assert.Equal(t, 0.0, h.adapter.scroll)
	assert.Empty(t, h.rec.calls)
}

func TestDragPreemptsTransition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Draggable = true
	h := newHarness(t, 5, cfg)
	h.c.Start()
	h.clock.Advance(200 * time.Millisecond)

	h.c.Next()
	h.clock.Advance(100 * time.Millisecond)
	h.adapter.send(pointer(EventPointerMove, 400, -5, ButtonPrimary))

	assert.True(t, h.c.State().Dragging)
	assert.False(t, h.c.State().Animating)
	assert.Equal(t, 1, h.c.Gestures().Drag().InitialIndex)
	require.GreaterOrEqual(t, len(h.rec.calls), 2)
	assertCalls(t, []any{before(0, 1, SourceUser), after(0, 1, SourceUser)}, h.rec.calls[:2])
}

func TestDragOwnsViewport(t *testing.T) {
	tests := []struct {
		name     string
		autoplay int
		arm      func(h *harness)
		during   func(h *harness)
	}{
		{
			name:     "autoplay tick",
			autoplay: 500,
		},
		{
			name: "keyboard next",
			during: func(h *harness) {
				h.adapter.send(NewKeyEvent(EventKeyDown, KeyArrowRight, true))
				h.adapter.send(NewKeyEvent(EventKeyUp, KeyArrowRight, true))
			},
		},
		{
			name: "keyboard prev",
			during: func(h *harness) {
				h.adapter.send(NewKeyEvent(EventKeyUp, KeyArrowLeft, true))
			},
		},
		{
			name:   "external next",
			during: func(h *harness) { h.c.Next() },
		},
		{
			name: "resize realign",
			during: func(h *harness) {
				h.adapter.send(NewResizeEvent(800, 600))
			},
		},
		{
			name: "inertial settle",
			arm: func(h *harness) {
				now := h.clock.Now()
				h.adapter.send(touch(EventTouchStart, now, 300))
				h.adapter.send(touch(EventTouchMove, now.Add(10*time.Millisecond), 250))
				h.adapter.send(NewTouchEvent(EventTouchEnd, now.Add(20*time.Millisecond)))
				h.adapter.send(NewScrollEvent())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Draggable = true
			cfg.KeyboardControl = true
			cfg.AutoplayIntervalMs = tt.autoplay
			h := newHarness(t, 10, cfg)
			h.c.Start()
			h.clock.Advance(200 * time.Millisecond)

			if tt.arm != nil {
				tt.arm(h)
			}

			h.adapter.send(pointer(EventPointerDown, 500, 0, ButtonPrimary))
			h.adapter.send(pointer(EventPointerMove, 470, -30, ButtonPrimary))
			require.True(t, h.c.State().Dragging)

			if tt.during != nil {
				tt.during(h)
			}
			h.clock.Advance(400 * time.Millisecond)

			state := h.c.State()
			assert.True(t, state.Dragging)
			assert.False(t, state.Animating, "no transition while dragging")
			assert.Equal(t, PhaseDragging, state.Phase())
			assert.Equal(t, 30.0, h.adapter.scroll)
			assert.Empty(t, h.rec.calls)

			h.adapter.send(pointer(EventPointerMove, 460, -10, ButtonPrimary))
			assert.Equal(t, 40.0, h.adapter.scroll, "offset follows the pointer")

			h.adapter.send(pointer(EventPointerUp, 460, 0, 0))
			assert.False(t, h.c.State().Dragging)
			h.clock.Advance(200 * time.Millisecond)

			assert.Equal(t, 1, h.c.State().Current)
			assert.Equal(t, 100.0, h.adapter.scroll)
			assertCalls(t, []any{before(0, 1, SourceUser), after(0, 1, SourceUser)}, h.rec.calls)
		})
	}
}

func TestSlideClick(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()

	up := pointer(EventPointerUp, 250, 0, 0)
	up.Slide = 2
	h.adapter.send(up)

	assert.Equal(t, 2, h.c.State().Current)
	assertCalls(t, []any{before(0, 2, SourceUser), after(0, 2, SourceUser)}, h.rec.calls)

	// Clicking the current slide does nothing.
	h.rec.reset()
	h.adapter.send(up)
	assert.Empty(t, h.rec.calls)
}

func TestDragSessionResolve(t *testing.T) {
	tests := []struct {
		name      string
		session   DragSession
		nearest   int
		swapOnEnd bool
		want      int
	}{
		{"moved to other slide", DragSession{InitialIndex: 3, InitialPointer: Point{X: 0}, FinalPointer: Point{X: 500}}, 1, true, 1},
		{"rightward", DragSession{InitialIndex: 3, InitialPointer: Point{X: 0}, FinalPointer: Point{X: 10}}, 3, true, 2},
		{"leftward", DragSession{InitialIndex: 3, InitialPointer: Point{X: 10}, FinalPointer: Point{X: 0}}, 3, true, 4},
		{"rightward at first", DragSession{InitialIndex: 0, InitialPointer: Point{X: 0}, FinalPointer: Point{X: 10}}, 0, true, 0},
		{"leftward at last", DragSession{InitialIndex: 9, InitialPointer: Point{X: 10}, FinalPointer: Point{X: 0}}, 9, true, 9},
		{"no movement", DragSession{InitialIndex: 3, InitialPointer: Point{X: 5}, FinalPointer: Point{X: 5}}, 3, true, 3},
		{"swap disabled", DragSession{InitialIndex: 3, InitialPointer: Point{X: 0}, FinalPointer: Point{X: 10}}, 3, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.Resolve(tt.nearest, 10, tt.swapOnEnd))
		})
	}
}

// ============================================================================
// Touch
// ============================================================================

func touch(t EventType, at time.Time, x float64) *TouchEvent {
	return NewTouchEvent(t, at, Point{X: x, Y: 100})
}

func TestTouchSwipeWithNativeScrollDisabled(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want int
	}{
		{"swipe left goes next", -10, 3},
		{"swipe right goes prev", 10, 1},
		{"slow swipe stays", -2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := instantConfig().WithCurrent(2)
			cfg.DisableNativeScroll = true
			h := newHarness(t, 5, cfg)
			h.c.Start()

			now := h.clock.Now()
			h.adapter.send(touch(EventTouchStart, now, 300))
			h.adapter.send(touch(EventTouchMove, now.Add(10*time.Millisecond), 300+tt.dx))
			h.adapter.send(NewTouchEvent(EventTouchEnd, now.Add(20*time.Millisecond)))

			assert.False(t, h.c.Gestures().Touching())
			assert.Equal(t, tt.want, h.c.State().Current)
		})
	}
}

func TestTouchEndSnapsWhenNotScrolling(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()
	h.adapter.scroll = 30

	now := h.clock.Now()
	h.adapter.send(touch(EventTouchStart, now, 300))
	h.adapter.send(touch(EventTouchMove, now.Add(10*time.Millisecond), 300))
	assert.False(t, h.c.Gestures().TouchScrolling())

	h.adapter.send(NewTouchEvent(EventTouchEnd, now.Add(20*time.Millisecond)))
	assert.Equal(t, 0.0, h.adapter.scroll)
	assert.Empty(t, h.rec.calls)
}

func TestInertialScrollSettles(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()

	now := h.clock.Now()
	h.adapter.send(touch(EventTouchStart, now, 300))
	h.adapter.send(touch(EventTouchMove, now.Add(10*time.Millisecond), 250))
	require.True(t, h.c.Gestures().TouchScrolling())
	h.adapter.send(NewTouchEvent(EventTouchEnd, now.Add(20*time.Millisecond)))

	// Momentum keeps scrolling after the finger lifts.
	h.adapter.scroll = 90
	h.adapter.send(NewScrollEvent())
	assert.Equal(t, 1, h.c.State().Current)

	h.clock.Advance(60 * time.Millisecond)
	h.adapter.scroll = 130
	h.adapter.send(NewScrollEvent())
	assert.Equal(t, 1, h.c.State().Current)

	h.clock.Advance(99 * time.Millisecond)
	assert.True(t, h.c.Gestures().TouchScrolling())

	h.clock.Advance(time.Millisecond)
	assert.False(t, h.c.Gestures().TouchScrolling())
	assert.Equal(t, 100.0, h.adapter.scroll)
	assertCalls(t, []any{before(0, 1, SourceUser), after(0, 1, SourceUser)}, h.rec.calls)
}

func TestInertialSettleWaitsForTouchRelease(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()

	now := h.clock.Now()
	h.adapter.send(touch(EventTouchStart, now, 300))
	h.adapter.send(touch(EventTouchMove, now.Add(10*time.Millisecond), 250))
	h.adapter.scroll = 120
	h.adapter.send(NewScrollEvent())

	h.clock.Advance(200 * time.Millisecond)
	assert.Equal(t, 1, h.c.State().Current)
	assert.Equal(t, 120.0, h.adapter.scroll, "no snap while the finger is down")
}

func TestAllowCrossAxisScroll(t *testing.T) {
	cfg := DefaultConfig()
	disabled := DefaultConfig()
	disabled.DisableNativeScroll = true

	tests := []struct {
		name        string
		v           Velocity
		inContainer bool
		touching    bool
		cfg         Config
		want        bool
	}{
		{"outside container", Velocity{X: 2, Y: 0}, false, true, disabled, true},
		{"vertical dominant", Velocity{X: 0.1, Y: 0.5}, true, true, disabled, true},
		{"horizontal with native scroll", Velocity{X: 0.5, Y: 0.1}, true, true, cfg, true},
		{"horizontal swipe blocked", Velocity{X: 0.5, Y: 0.1}, true, true, disabled, false},
		{"diagonal under swipe threshold", Velocity{X: 0.29, Y: 0.28}, true, true, disabled, false},
		{"fast cross axis allowed", Velocity{X: 0.29, Y: 0.28}, true, true, withCrossAxis(disabled, 0.2), true},
		{"fast cross axis needs touch", Velocity{X: 0.29, Y: 0.28}, true, false, withCrossAxis(disabled, 0.2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allowCrossAxisScroll(tt.v, tt.inContainer, tt.touching, tt.cfg))
		})
	}
}

func withCrossAxis(cfg Config, threshold float64) Config {
	cfg.TouchCrossAxisScrollThreshold = threshold
	return cfg
}

func TestTouchScrollEventPreventsDefault(t *testing.T) {
	cfg := instantConfig()
	cfg.DisableNativeScroll = true
	h := newHarness(t, 5, cfg)
	h.c.Start()

	now := h.clock.Now()
	h.adapter.send(NewTouchEvent(EventTouchStart, now, Point{X: 300, Y: 100}))
	h.adapter.send(NewTouchEvent(EventTouchMove, now.Add(10*time.Millisecond), Point{X: 295, Y: 100}))

	e := NewTouchScrollEvent(true)
	h.adapter.send(e)
	assert.True(t, e.IsDefaultPrevented())

	e = NewTouchScrollEvent(false)
	h.adapter.send(e)
	assert.False(t, e.IsDefaultPrevented())
}

// ============================================================================
// Keyboard, scroll and resize
// ============================================================================

func TestKeyboardControl(t *testing.T) {
	cfg := instantConfig()
	cfg.KeyboardControl = true
	h := newHarness(t, 5, cfg)
	h.c.Start()

	down := NewKeyEvent(EventKeyDown, KeyArrowRight, true)
	h.adapter.send(down)
	assert.True(t, down.IsDefaultPrevented())
	assert.True(t, down.IsPropagationStopped())
	assert.Equal(t, 0, h.c.State().Current)

	h.adapter.send(NewKeyEvent(EventKeyUp, KeyArrowRight, true))
	assert.Equal(t, 1, h.c.State().Current)

	h.adapter.send(NewKeyEvent(EventKeyUp, KeyArrowLeft, true))
	assert.Equal(t, 0, h.c.State().Current)

	// Unfocused and other keys are ignored.
	h.adapter.send(NewKeyEvent(EventKeyUp, KeyArrowRight, false))
	h.adapter.send(NewKeyEvent(EventKeyUp, "Enter", true))
	assert.Equal(t, 0, h.c.State().Current)
}

func TestKeyboardControlDisabled(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()

	down := NewKeyEvent(EventKeyDown, KeyArrowRight, true)
	h.adapter.send(down)
	h.adapter.send(NewKeyEvent(EventKeyUp, KeyArrowRight, true))

	assert.False(t, down.IsDefaultPrevented())
	assert.Equal(t, 0, h.c.State().Current)
}

func TestScrollSwapsToNearest(t *testing.T) {
	h := newHarness(t, 5, instantConfig())
	h.c.Start()

	h.adapter.scroll = 260
	h.adapter.send(NewScrollEvent())

	assert.Equal(t, 3, h.c.State().Current)
	assert.Equal(t, 260.0, h.adapter.scroll, "swaps never move the viewport")
	assertCalls(t, []any{before(0, 3, SourceUser), after(0, 3, SourceUser)}, h.rec.calls)
}

func TestScrollIgnoredWhileAnimating(t *testing.T) {
	h := newHarness(t, 5, DefaultConfig())
	h.c.Start()
	h.clock.Advance(200 * time.Millisecond)

	h.c.Next()
	h.adapter.scroll = 400
	h.adapter.send(NewScrollEvent())

	assert.Equal(t, 0, h.c.State().Current)
	assertCalls(t, []any{before(0, 1, SourceUser)}, h.rec.calls)
}

func TestResizeRealignsAfterQuietWindow(t *testing.T) {
	h := newHarness(t, 5, instantConfig().WithCurrent(2))
	h.c.Start()
	h.adapter.scroll = 250

	for i := 0; i < 3; i++ {
		h.adapter.send(NewResizeEvent(float64(800+i), 600))
		h.clock.Advance(50 * time.Millisecond)
	}

	h.clock.Advance(149 * time.Millisecond)
	assert.Equal(t, 250.0, h.adapter.scroll)

	h.clock.Advance(time.Millisecond)
	assert.Equal(t, 200.0, h.adapter.scroll)
	assert.Equal(t, 2, h.c.State().Current)
	assert.Empty(t, h.rec.calls)
}

func TestResizeWithoutReset(t *testing.T) {
	cfg := instantConfig()
	cfg.ResetCurrentOnResize = false
	h := newHarness(t, 5, cfg)
	h.c.Start()
	h.adapter.scroll = 30

	h.adapter.send(NewResizeEvent(800, 600))
	assert.Equal(t, 0, h.clock.Pending())

	h.clock.Advance(time.Second)
	assert.Equal(t, 30.0, h.adapter.scroll)
}
