package carousel

import "math"

// ============================================================================
// Scroll Position Utilities
// ============================================================================

// nearestSlide returns the index of the slide whose offset is closest to
// position, or -1 when there are no slides.
//
// Distances are assumed to fall then rise around the nearest slide, so the
// scan stops at the first increase.
func nearestSlide(offsets []float64, position float64) int {
	nearest := -1
	lowest := math.Inf(1)
	for i, offset := range offsets {
		distance := math.Abs(position - offset)
		if distance >= lowest {
			break
		}
		lowest = distance
		nearest = i
	}
	return nearest
}

// scrollTarget is the scroll offset that aligns a slide, leaving `offset`
// of the previous slide visible.
func scrollTarget(slideOffset, offset float64) float64 {
	return slideOffset - offset
}

// clampIndex restricts i to [0, count).
func clampIndex(i, count int) int {
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
