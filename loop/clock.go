// Package loop provides the timing primitives the carousel engine runs on:
// a frame-scheduling clock, cancellable timers and trailing-edge debouncing.
//
// Everything in this package follows a single-threaded, cooperative model.
// Callbacks are delivered on the host's event loop goroutine, never in
// parallel with each other, so the engine needs no locks of its own.
package loop

import "time"

// DefaultFPS is the frame rate used when a clock is created without one.
const DefaultFPS = 60

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the timer had already
	// fired (one-shot) or been stopped.
	Stop() bool
}

// Clock schedules work onto the host's event loop.
type Clock interface {
	// Now returns the current monotonic time.
	Now() time.Time

	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer

	// Every runs fn repeatedly, every d, until stopped.
	// A non-positive d returns a timer that never fires.
	Every(d time.Duration, fn func()) Timer

	// RequestFrame runs fn on the next display frame with the frame timestamp.
	RequestFrame(fn func(now time.Time)) Timer
}

// FrameInterval converts a frame rate into the duration of one frame.
func FrameInterval(fps int) time.Duration {
	if fps < 1 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// stoppedTimer is returned for schedules that can never fire.
type stoppedTimer struct{}

func (stoppedTimer) Stop() bool { return false }
