package anim

import (
	"time"

	"github.com/agiangrant/carousel/loop"
)

// Scheduler drives a Registry from a loop.Clock. Frames are requested only
// while at least one animation is active.
type Scheduler struct {
	clock    loop.Clock
	registry *Registry
	frame    loop.Timer
}

// NewScheduler creates a scheduler bound to clock.
func NewScheduler(clock loop.Clock) *Scheduler {
	s := &Scheduler{
		clock:    clock,
		registry: NewRegistry(),
	}
	s.registry.OnActiveChange(func(hasActive bool) {
		if hasActive {
			s.requestFrame()
		} else {
			s.stopFrame()
		}
	})
	return s
}

// Registry returns the underlying animation registry.
func (s *Scheduler) Registry() *Registry {
	return s.registry
}

// HasActive reports whether any animation is running.
func (s *Scheduler) HasActive() bool {
	return s.registry.HasActive()
}

// FramePending reports whether a frame callback is scheduled.
func (s *Scheduler) FramePending() bool {
	return s.frame != nil
}

// Animate starts building an animation on this scheduler.
func (s *Scheduler) Animate() *Builder {
	return &Builder{
		scheduler: s,
		duration:  300 * time.Millisecond,
		easing:    EaseLinear,
	}
}

// Stop cancels every animation and any pending frame.
func (s *Scheduler) Stop() {
	s.registry.CancelAll()
	s.stopFrame()
}

func (s *Scheduler) requestFrame() {
	if s.frame != nil {
		return
	}
	s.frame = s.clock.RequestFrame(s.onFrame)
}

func (s *Scheduler) stopFrame() {
	if s.frame != nil {
		s.frame.Stop()
		s.frame = nil
	}
}

func (s *Scheduler) onFrame(now time.Time) {
	s.frame = nil
	if s.registry.Tick(now) {
		s.requestFrame()
	}
}

// ============================================================================
// Animation Builder API
// ============================================================================

// Builder provides a fluent API for creating animations.
type Builder struct {
	scheduler  *Scheduler
	duration   time.Duration
	easing     EasingFunc
	onComplete func(value float64)
}

// Duration sets how long the animation runs.
func (b *Builder) Duration(d time.Duration) *Builder {
	b.duration = d
	return b
}

// Easing sets the easing function. A nil easing means linear.
func (b *Builder) Easing(fn EasingFunc) *Builder {
	if fn == nil {
		fn = EaseLinear
	}
	b.easing = fn
	return b
}

// OnComplete sets a callback for when the animation finishes.
func (b *Builder) OnComplete(fn func(value float64)) *Builder {
	b.onComplete = fn
	return b
}

// Value animates from `from` by `delta`, writing each frame through set.
//
// A non-positive duration completes immediately: set receives the final
// value and the completion callback runs before Value returns.
func (b *Builder) Value(from, delta float64, set func(value float64)) *Animation {
	a := &Animation{
		from:       from,
		delta:      delta,
		duration:   b.duration,
		easing:     b.easing,
		set:        set,
		onComplete: b.onComplete,
		done:       make(chan struct{}),
	}

	if b.duration <= 0 {
		a.write(from + delta)
		a.finish()
		return a
	}

	b.scheduler.registry.Add(a)
	return a
}
