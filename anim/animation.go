// Package anim runs frame-stepped numeric animations.
//
// An Animation interpolates a single float64 property from a start value by
// a delta over a duration, writing each eased intermediate value through a
// setter once per display frame. Animations are cancellable so a newer
// transition can pre-empt an older one without the two racing on the same
// property.
package anim

import (
	"time"
)

// AnimationID uniquely identifies an animation.
type AnimationID uint64

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Supported easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseInQuad - accelerate from zero
	EaseInQuad EasingFunc = func(t float64) float64 { return t * t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseInOutQuad - accelerate then decelerate
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
)

// Easing names accepted by EasingByName.
const (
	EasingLinear    = "linear"
	EasingEaseIn    = "ease-in"
	EasingEaseOut   = "ease-out"
	EasingEaseInOut = "ease-in-out"
)

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown; Config.Validate rejects such names
// before they reach the scheduler.
func EasingByName(name string) EasingFunc {
	switch name {
	case EasingLinear:
		return EaseLinear
	case EasingEaseIn:
		return EaseInQuad
	case EasingEaseOut:
		return EaseOutQuad
	case EasingEaseInOut:
		return EaseInOutQuad
	default:
		return nil
	}
}

// Animation represents one in-flight property interpolation.
type Animation struct {
	id       AnimationID
	registry *Registry

	from     float64
	delta    float64
	duration time.Duration
	easing   EasingFunc
	set      func(value float64)

	// Called once with the final value when the animation finishes.
	// Never called for cancelled animations.
	onComplete func(value float64)

	// Recorded on the first frame, not at creation.
	startTime time.Time
	started   bool

	value     float64
	finished  bool
	cancelled bool
	done      chan struct{}
}

// ID returns the animation's unique identifier.
func (a *Animation) ID() AnimationID {
	return a.id
}

// Cancel stops the animation. The setter is not called again and the
// completion callback never runs. Cancelling a finished animation is a no-op.
func (a *Animation) Cancel() {
	if a.finished || a.cancelled {
		return
	}
	a.cancelled = true
	close(a.done)
	if a.registry != nil {
		a.registry.Remove(a.id)
	}
}

// IsCancelled returns whether the animation was cancelled.
func (a *Animation) IsCancelled() bool {
	return a.cancelled
}

// Finished reports whether the animation ran to completion.
func (a *Animation) Finished() bool {
	return a.finished
}

// Done is closed when the animation finishes or is cancelled.
func (a *Animation) Done() <-chan struct{} {
	return a.done
}

// Value returns the last value written through the setter.
func (a *Animation) Value() float64 {
	return a.value
}

// Target returns the value the animation ends on.
func (a *Animation) Target() float64 {
	return a.from + a.delta
}

// step advances the animation to now. Returns true once progress reaches 1.
func (a *Animation) step(now time.Time) bool {
	if !a.started {
		a.startTime = now
		a.started = true
	}

	progress := 1.0
	if a.duration > 0 {
		progress = clamp(float64(now.Sub(a.startTime))/float64(a.duration), 0, 1)
	}

	a.write(a.from + a.delta*a.easing(progress))
	return progress >= 1
}

func (a *Animation) write(value float64) {
	a.value = value
	if a.set != nil {
		a.set(value)
	}
}

func (a *Animation) finish() {
	a.finished = true
	close(a.done)
	if a.onComplete != nil {
		a.onComplete(a.value)
	}
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
