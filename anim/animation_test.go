package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/carousel/loop"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestEasings(t *testing.T) {
	tests := []struct {
		name   string
		easing EasingFunc
		in     float64
		want   float64
	}{
		{"linear start", EaseLinear, 0, 0},
		{"linear mid", EaseLinear, 0.5, 0.5},
		{"ease-in quarter", EaseInQuad, 0.5, 0.25},
		{"ease-out mid", EaseOutQuad, 0.5, 0.75},
		{"ease-in-out first half", EaseInOutQuad, 0.25, 0.125},
		{"ease-in-out second half", EaseInOutQuad, 0.75, 0.875},
		{"ease-in-out end", EaseInOutQuad, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.easing(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("easing(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{EasingLinear, EasingEaseIn, EasingEaseOut, EasingEaseInOut} {
		if EasingByName(name) == nil {
			t.Errorf("EasingByName(%q) = nil", name)
		}
	}
	if EasingByName("bounce") != nil {
		t.Error("expected nil for unknown easing")
	}
}

func TestAnimateSteppedPerFrame(t *testing.T) {
	clock := loop.NewManual(epoch, 100) // 10ms frames
	s := NewScheduler(clock)

	var writes []float64
	var final float64
	completed := false
	a := s.Animate().
		Duration(40 * time.Millisecond).
		Easing(EaseLinear).
		OnComplete(func(v float64) { completed = true; final = v }).
		Value(100, 40, func(v float64) { writes = append(writes, v) })

	require.True(t, s.HasActive())
	require.True(t, s.FramePending())

	// First frame records the start time, so progress is still zero.
	clock.AdvanceFrames(1)
	assert.Equal(t, []float64{100}, writes)

	clock.AdvanceFrames(4)
	assert.Equal(t, []float64{100, 110, 120, 130, 140}, writes)
	assert.True(t, completed)
	assert.Equal(t, 140.0, final)
	assert.True(t, a.Finished())
	assert.Equal(t, 140.0, a.Value())

	select {
	case <-a.Done():
	default:
		t.Fatal("Done not closed after completion")
	}

	assert.False(t, s.HasActive())
	assert.False(t, s.FramePending())
	assert.Equal(t, 0, clock.Pending())
}

func TestAnimateZeroDurationCompletesImmediately(t *testing.T) {
	clock := loop.NewManual(epoch, 60)
	s := NewScheduler(clock)

	var got float64
	completed := false
	a := s.Animate().
		Duration(0).
		OnComplete(func(float64) { completed = true }).
		Value(10, -5, func(v float64) { got = v })

	assert.True(t, completed)
	assert.Equal(t, 5.0, got)
	assert.True(t, a.Finished())
	assert.False(t, s.FramePending())
	assert.Equal(t, 0, clock.Pending())
}

func TestAnimateSubFrameDuration(t *testing.T) {
	clock := loop.NewManual(epoch, 60)
	s := NewScheduler(clock)

	a := s.Animate().Duration(time.Millisecond).Value(0, 1, nil)

	clock.AdvanceFrames(2)
	assert.True(t, a.Finished())
	assert.Equal(t, 1.0, a.Value())
}

func TestCancelStopsWritesAndFrames(t *testing.T) {
	clock := loop.NewManual(epoch, 100)
	s := NewScheduler(clock)

	writes := 0
	completed := false
	a := s.Animate().
		Duration(100 * time.Millisecond).
		OnComplete(func(float64) { completed = true }).
		Value(0, 100, func(float64) { writes++ })

	clock.AdvanceFrames(2)
	require.Equal(t, 2, writes)

	a.Cancel()
	assert.True(t, a.IsCancelled())
	assert.False(t, s.HasActive())
	assert.False(t, s.FramePending())

	clock.AdvanceFrames(20)
	assert.Equal(t, 2, writes)
	assert.False(t, completed)

	// Cancelling twice is harmless.
	a.Cancel()
}

func TestCompletionCanStartNextAnimation(t *testing.T) {
	clock := loop.NewManual(epoch, 100)
	s := NewScheduler(clock)

	var second *Animation
	s.Animate().
		Duration(20 * time.Millisecond).
		OnComplete(func(v float64) {
			second = s.Animate().Duration(20 * time.Millisecond).Value(v, 10, nil)
		}).
		Value(0, 10, nil)

	clock.AdvanceFrames(3)
	require.NotNil(t, second)
	assert.True(t, s.FramePending())

	clock.AdvanceFrames(3)
	assert.True(t, second.Finished())
	assert.Equal(t, 20.0, second.Value())
	assert.False(t, s.FramePending())
}

func TestSchedulerStop(t *testing.T) {
	clock := loop.NewManual(epoch, 60)
	s := NewScheduler(clock)

	a := s.Animate().Duration(time.Second).Value(0, 1, nil)
	b := s.Animate().Duration(time.Second).Value(0, 1, nil)
	assert.Equal(t, 2, s.Registry().Count())

	s.Stop()
	assert.True(t, a.IsCancelled())
	assert.True(t, b.IsCancelled())
	assert.Equal(t, 0, clock.Pending())
}
