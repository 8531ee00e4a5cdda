package carousel

import "errors"

var (
	// ErrIndexOutOfRange is returned for slide indexes outside [0, SlideCount).
	ErrIndexOutOfRange = errors.New("carousel: slide index out of range")

	// ErrNoSlides is returned when navigating a carousel without slides.
	ErrNoSlides = errors.New("carousel: no slides")

	// ErrNotStarted is returned by navigation before Start or after Stop.
	ErrNotStarted = errors.New("carousel: not started")

	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("carousel: invalid config")
)
