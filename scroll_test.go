package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNearestSlide(t *testing.T) {
	offsets := []float64{0, 100, 200, 300}

	tests := []struct {
		name     string
		offsets  []float64
		position float64
		want     int
	}{
		{"empty", nil, 50, -1},
		{"exact", offsets, 200, 2},
		{"below first", offsets, -40, 0},
		{"past last", offsets, 900, 3},
		{"rounds down", offsets, 149, 1},
		{"tie keeps earlier", offsets, 150, 1},
		{"rounds up", offsets, 151, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nearestSlide(tt.offsets, tt.position))
		})
	}
}

func TestScrollTarget(t *testing.T) {
	assert.Equal(t, 300.0, scrollTarget(300, 0))
	assert.Equal(t, 260.0, scrollTarget(300, 40))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(-3, 5))
	assert.Equal(t, 4, clampIndex(9, 5))
	assert.Equal(t, 2, clampIndex(2, 5))
}

func TestVelocityTracker(t *testing.T) {
	var tracker VelocityTracker

	v := tracker.Record(100, 50, epoch)
	assert.Equal(t, 0.0, v.X)
	assert.Equal(t, 0.0, v.Y)

	v = tracker.Record(80, 60, epoch.Add(10*time.Millisecond))
	assert.InDelta(t, -2.0, v.X, 1e-9)
	assert.InDelta(t, 1.0, v.Y, 1e-9)
	assert.Equal(t, v, tracker.Velocity())

	// Samples that do not move forward in time carry no velocity.
	v = tracker.Record(0, 0, epoch.Add(10*time.Millisecond))
	assert.Equal(t, 0.0, v.X)

	tracker.Reset()
	assert.Equal(t, Velocity{}, tracker.Velocity())
	v = tracker.Record(500, 0, epoch.Add(time.Second))
	assert.Equal(t, 0.0, v.X)
}
