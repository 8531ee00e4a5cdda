package loop

import (
	"sync/atomic"
	"time"
)

// Realtime is a wall-clock Clock. Timers fire on runtime timer goroutines
// and are handed to post, which must enqueue the callback on the host's event
// loop (for a bubbletea host, a Program.Send wrapper).
type Realtime struct {
	post          func(func())
	frameInterval time.Duration
}

// NewRealtime creates a realtime clock that delivers callbacks through post.
func NewRealtime(post func(func()), fps int) *Realtime {
	return &Realtime{
		post:          post,
		frameInterval: FrameInterval(fps),
	}
}

// Now returns time.Now.
func (r *Realtime) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn on the event loop once after d.
func (r *Realtime) AfterFunc(d time.Duration, fn func()) Timer {
	t := &realtimeTimer{}
	t.timer = time.AfterFunc(d, func() {
		r.post(func() {
			// Stop may have been called after the runtime timer fired but
			// before the loop got to this callback.
			if t.stopped.Swap(true) {
				return
			}
			fn()
		})
	})
	return t
}

// Every runs fn on the event loop every d until stopped.
func (r *Realtime) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		return stoppedTimer{}
	}

	t := &realtimeTimer{}
	var schedule func()
	schedule = func() {
		t.timer = time.AfterFunc(d, func() {
			r.post(func() {
				if t.stopped.Load() {
					return
				}
				fn()
				if !t.stopped.Load() {
					schedule()
				}
			})
		})
	}
	schedule()
	return t
}

// RequestFrame runs fn on the event loop after one frame interval.
func (r *Realtime) RequestFrame(fn func(now time.Time)) Timer {
	return r.AfterFunc(r.frameInterval, func() {
		fn(time.Now())
	})
}

type realtimeTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *realtimeTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	return true
}
