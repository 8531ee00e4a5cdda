package carousel

import "time"

// Velocity is the last known rate of positional change, in units per
// millisecond.
type Velocity struct {
	X, Y      float64
	Timestamp time.Time
}

// VelocityTracker derives per-sample velocity from timestamped positions.
// Use one tracker per gesture; Reset between gestures.
type VelocityTracker struct {
	last     Point
	lastTime time.Time
	has      bool
	velocity Velocity
}

// Record adds a sample and returns the velocity relative to the previous one.
// The first sample, or one that does not move forward in time, yields zero.
func (t *VelocityTracker) Record(x, y float64, at time.Time) Velocity {
	v := Velocity{Timestamp: at}
	if t.has {
		if dt := float64(at.Sub(t.lastTime)) / float64(time.Millisecond); dt > 0 {
			v.X = (x - t.last.X) / dt
			v.Y = (y - t.last.Y) / dt
		}
	}

	t.last = Point{X: x, Y: y}
	t.lastTime = at
	t.has = true
	t.velocity = v
	return v
}

// Velocity returns the most recent velocity.
func (t *VelocityTracker) Velocity() Velocity {
	return t.velocity
}

// Reset forgets all samples.
func (t *VelocityTracker) Reset() {
	*t = VelocityTracker{}
}
