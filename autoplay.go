package carousel

import (
	"time"

	"github.com/agiangrant/carousel/loop"
)

// AutoplayTimer issues periodic navigation intents.
type AutoplayTimer struct {
	clock     loop.Clock
	emit      func(NavigationIntent)
	timer     loop.Timer
	interval  time.Duration
	direction Direction
}

// NewAutoplayTimer creates a stopped timer that hands intents to emit.
func NewAutoplayTimer(clock loop.Clock, emit func(NavigationIntent)) *AutoplayTimer {
	return &AutoplayTimer{
		clock: clock,
		emit:  emit,
	}
}

// Start (re)starts autoplay. Any previous schedule is cleared first; a
// non-positive interval leaves autoplay stopped.
func (a *AutoplayTimer) Start(interval time.Duration, direction Direction) {
	a.Stop()
	a.interval = interval
	a.direction = direction
	if interval <= 0 {
		return
	}
	a.timer = a.clock.Every(interval, a.tick)
}

// Stop clears any pending tick.
func (a *AutoplayTimer) Stop() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Running reports whether autoplay is scheduled.
func (a *AutoplayTimer) Running() bool {
	return a.timer != nil
}

func (a *AutoplayTimer) tick() {
	switch a.direction {
	case DirectionLTR:
		a.emit(NextIntent(SourceAutoplay))
	case DirectionRTL:
		a.emit(PrevIntent(SourceAutoplay))
	}
}
