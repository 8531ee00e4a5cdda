package loop

import "time"

// Debouncer groups rapid successive calls into a single trailing call.
//
// Each Call cancels the pending callback and reschedules it, so fn fires once
// after a quiet period of delay. It must only be used from the event loop.
type Debouncer struct {
	clock Clock
	delay time.Duration
	fn    func()
	timer Timer
}

// NewDebouncer creates a debouncer that runs fn after delay of quiet.
func NewDebouncer(clock Clock, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		clock: clock,
		delay: delay,
		fn:    fn,
	}
}

// Call (re)arms the debouncer.
func (d *Debouncer) Call() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, d.fire)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.timer != nil
}

// SetDelay changes the quiet period for subsequent calls.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.delay = delay
}

func (d *Debouncer) fire() {
	d.timer = nil
	if d.fn != nil {
		d.fn()
	}
}
