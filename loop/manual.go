package loop

import "time"

// Manual is a virtual Clock that only moves when Advance is called.
// Callbacks run synchronously inside Advance, in timestamp order, ties broken
// by scheduling order. It is meant for tests and headless hosts.
type Manual struct {
	now           time.Time
	frameInterval time.Duration
	seq           uint64
	entries       []*manualEntry
}

type manualEntry struct {
	clock   *Manual
	at      time.Time
	seq     uint64
	period  time.Duration
	fn      func()
	stopped bool
}

// NewManual creates a manual clock starting at start.
func NewManual(start time.Time, fps int) *Manual {
	return &Manual{
		now:           start,
		frameInterval: FrameInterval(fps),
	}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// FrameInterval returns the virtual frame duration.
func (m *Manual) FrameInterval() time.Duration {
	return m.frameInterval
}

// AfterFunc schedules fn at Now()+d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	return m.schedule(d, 0, fn)
}

// Every schedules fn at every multiple of d from Now().
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		return stoppedTimer{}
	}
	return m.schedule(d, d, fn)
}

// RequestFrame schedules fn one frame interval from Now().
func (m *Manual) RequestFrame(fn func(now time.Time)) Timer {
	return m.schedule(m.frameInterval, 0, func() {
		fn(m.now)
	})
}

// Advance moves the clock forward by d, firing everything that falls due.
// Callbacks may schedule more work; anything due before the target also runs.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		m.now = e.at
		if e.period > 0 {
			e.at = e.at.Add(e.period)
		} else {
			m.remove(e)
			e.stopped = true
		}
		e.fn()
	}
	m.now = target
}

// AdvanceFrames advances by n frame intervals.
func (m *Manual) AdvanceFrames(n int) {
	for i := 0; i < n; i++ {
		m.Advance(m.frameInterval)
	}
}

// Pending returns the number of scheduled callbacks, periodic ones included.
func (m *Manual) Pending() int {
	return len(m.entries)
}

func (m *Manual) schedule(d, period time.Duration, fn func()) *manualEntry {
	if d < 0 {
		d = 0
	}
	m.seq++
	e := &manualEntry{
		clock:  m,
		at:     m.now.Add(d),
		seq:    m.seq,
		period: period,
		fn:     fn,
	}
	m.entries = append(m.entries, e)
	return e
}

func (m *Manual) nextDue(target time.Time) *manualEntry {
	var best *manualEntry
	for _, e := range m.entries {
		if e.at.After(target) {
			continue
		}
		if best == nil || e.at.Before(best.at) || (e.at.Equal(best.at) && e.seq < best.seq) {
			best = e
		}
	}
	return best
}

func (m *Manual) remove(target *manualEntry) {
	for i, e := range m.entries {
		if e == target {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return
		}
	}
}

func (e *manualEntry) Stop() bool {
	if e.stopped {
		return false
	}
	e.stopped = true
	e.clock.remove(e)
	return true
}
