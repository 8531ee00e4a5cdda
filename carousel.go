// Package carousel is the interaction engine behind a slide carousel.
//
// It reconciles pointer drags, touch swipes, native scrolling, keyboard
// input, programmatic control and autoplay into one current-slide state, and
// runs interruptible eased scroll animations between slides. Rendering is
// left to the host, which supplies an Adapter (slide offsets, scroll offset
// and input events) and a loop.Clock.
//
// A Carousel is single-threaded: every method, and every callback it
// invokes, runs on the host's event loop goroutine.
package carousel

import (
	"log"

	"github.com/google/uuid"

	"github.com/agiangrant/carousel/anim"
	"github.com/agiangrant/carousel/loop"
)

// Carousel owns the authoritative slide state and serializes transitions.
type Carousel struct {
	id      string
	cfg     Config
	adapter Adapter
	clock   loop.Clock
	logger  *log.Logger

	scheduler *anim.Scheduler
	gestures  *GestureCoordinator
	autoplay  *AutoplayTimer

	state      State
	transition *transition

	// started is true between Start and Stop; ready once the viewport has
	// been measured and the initial snap issued.
	started    bool
	ready      bool
	stopListen func()

	subscribers  []subscriber
	nextSubID    uint64
	lastNotified State
}

// Option configures a Carousel.
type Option func(*Carousel)

// WithLogger sets the logger used for diagnostics. Defaults to log.Default.
func WithLogger(l *log.Logger) Option {
	return func(c *Carousel) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a stopped carousel.
func New(adapter Adapter, clock loop.Clock, cfg Config, opts ...Option) (*Carousel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Carousel{
		id:        uuid.NewString(),
		cfg:       cfg,
		adapter:   adapter,
		clock:     clock,
		logger:    log.Default(),
		scheduler: anim.NewScheduler(clock),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.gestures = newGestureCoordinator(c, clock, cfg)
	c.autoplay = NewAutoplayTimer(clock, c.Dispatch)
	return c, nil
}

// ID returns the instance identifier used in log lines.
func (c *Carousel) ID() string {
	return c.id
}

// Gestures returns the gesture coordinator subscribed to the adapter.
func (c *Carousel) Gestures() *GestureCoordinator {
	return c.gestures
}

// State returns a snapshot of the current state.
func (c *Carousel) State() State {
	return c.state
}

// Config returns the active configuration.
func (c *Carousel) Config() Config {
	return c.cfg
}

// Started reports whether the carousel is between Start and Stop.
func (c *Carousel) Started() bool {
	return c.started
}

// Ready reports whether the viewport has been measured.
func (c *Carousel) Ready() bool {
	return c.ready
}

// ============================================================================
// Lifecycle
// ============================================================================

// Start subscribes to the adapter, aligns the initial slide and starts
// autoplay. If the viewport is not measurable yet, initialization is
// deferred until the next resize or SlidesChanged.
func (c *Carousel) Start() {
	if c.started {
		return
	}
	c.started = true
	c.stopListen = c.adapter.Listen(c.gestures)
	c.initialize()
	c.restartAutoplay()
}

// Stop releases every listener, timer and animation. The carousel can be
// started again afterwards.
func (c *Carousel) Stop() {
	if !c.started {
		return
	}
	c.started = false
	c.ready = false

	if c.stopListen != nil {
		c.stopListen()
		c.stopListen = nil
	}
	c.autoplay.Stop()
	c.gestures.stop()

	if c.transition != nil {
		c.transition.animation.Cancel()
		c.transition = nil
	}
	c.scheduler.Stop()

	c.state.Animating = false
	c.state.Dragging = false
	c.notify()
}

func (c *Carousel) initialize() {
	offsets, ok := c.adapter.SlideOffsets()
	if !ok {
		c.logf("viewport not measurable, deferring initialization")
		return
	}
	c.ready = true
	c.state.SlideCount = len(offsets)

	initial := 0
	if c.cfg.Current != nil {
		initial = *c.cfg.Current
	}
	if c.state.SlideCount == 0 {
		c.state.Current = 0
		c.notify()
		return
	}
	if clamped := clampIndex(initial, c.state.SlideCount); clamped != initial {
		c.logf("initial index %d out of range [0,%d), clamped to %d", initial, c.state.SlideCount, clamped)
		initial = clamped
	}
	c.state.Current = initial
	c.notify()
	c.Dispatch(SnapIntent(initial))
}

// SlidesChanged re-reads slide offsets after the host added or removed
// slides. Current is clamped into the new range and realigned silently.
func (c *Carousel) SlidesChanged() {
	if !c.started {
		return
	}
	if !c.ready {
		c.initialize()
		return
	}

	offsets, ok := c.adapter.SlideOffsets()
	if !ok {
		return
	}
	count := len(offsets)
	if count == c.state.SlideCount {
		return
	}

	c.dropTransition()
	c.state.SlideCount = count
	if count == 0 {
		c.state.Current = 0
		c.notify()
		return
	}

	c.state.Current = clampIndex(c.state.Current, count)
	c.notify()
	c.Dispatch(SnapIntent(c.state.Current))
}

// SetConfig replaces the configuration. Autoplay restarts when its interval
// or direction changes, and a changed controlled index is committed.
func (c *Carousel) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	old := c.cfg
	c.cfg = cfg
	c.gestures.configure(cfg)

	if !c.started {
		return nil
	}

	controlledChanged := cfg.Current != nil && (old.Current == nil || *old.Current != *cfg.Current)
	switch {
	case controlledChanged:
		c.SetControlledCurrent(*cfg.Current)
	case old.AutoplayIntervalMs != cfg.AutoplayIntervalMs || old.AutoplayDirection != cfg.AutoplayDirection:
		c.restartAutoplay()
	}
	return nil
}

func (c *Carousel) restartAutoplay() {
	if !c.started {
		return
	}
	c.autoplay.Start(c.cfg.autoplayInterval(), c.cfg.AutoplayDirection)
}

// ============================================================================
// Navigation
// ============================================================================

// Next advances one slide.
func (c *Carousel) Next() {
	c.Dispatch(NextIntent(SourceUser))
}

// Prev goes back one slide.
func (c *Carousel) Prev() {
	c.Dispatch(PrevIntent(SourceUser))
}

// SetCurrent navigates to slide i with an animated transition.
func (c *Carousel) SetCurrent(i int) error {
	switch {
	case !c.started:
		return ErrNotStarted
	case c.state.SlideCount == 0:
		return ErrNoSlides
	case i < 0 || i >= c.state.SlideCount:
		return ErrIndexOutOfRange
	}
	c.Dispatch(GotoIntent(i, SourceUser))
	return nil
}

// SetControlledCurrent applies an externally controlled index. It bypasses
// gesture heuristics, clamps out-of-range values and restarts autoplay.
func (c *Carousel) SetControlledCurrent(i int) {
	c.cfg.Current = &i
	if !c.started || c.state.SlideCount == 0 {
		return
	}

	target := clampIndex(i, c.state.SlideCount)
	if target != i {
		c.logf("controlled index %d out of range [0,%d), clamped to %d", i, c.state.SlideCount, target)
	}

	c.restartAutoplay()
	c.Dispatch(GotoIntent(target, SourceUser))
}

// ============================================================================
// Subscriptions
// ============================================================================

type subscriber struct {
	id uint64
	fn func(State)
}

// Subscription is a handle to a state listener.
type Subscription struct {
	id uint64
	c  *Carousel
}

// Unsubscribe removes the listener. It is safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.c == nil {
		return
	}
	subs := s.c.subscribers
	for i, sub := range subs {
		if sub.id == s.id {
			s.c.subscribers = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Subscribe registers fn to run after every state change.
func (c *Carousel) Subscribe(fn func(State)) Subscription {
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscriber{id: c.nextSubID, fn: fn})
	return Subscription{id: c.nextSubID, c: c}
}

func (c *Carousel) notify() {
	if c.state == c.lastNotified {
		return
	}
	c.lastNotified = c.state
	state := c.state
	for _, sub := range append([]subscriber(nil), c.subscribers...) {
		sub.fn(state)
	}
}

func (c *Carousel) logf(format string, args ...any) {
	c.logger.Printf("carousel[%s] "+format, append([]any{c.id}, args...)...)
}
