package tui

import (
	"math"

	"github.com/agiangrant/carousel"
)

// strip is the terminal rendition of the carousel's scroll surface. Slides
// are laid out left to right, one cell per unit of scroll offset.
type strip struct {
	slides   int
	width    int // visible columns
	slide    int // columns per slide
	gap      int
	scroll   float64
	measured bool

	handler carousel.InputHandler
}

func newStrip(slides, gap int) *strip {
	return &strip{slides: slides, gap: gap}
}

// resize fits the strip into width columns. fixed > 0 pins the slide width.
func (s *strip) resize(width, fixed int) {
	s.width = max(width, 1)
	s.slide = s.width
	if fixed > 0 && fixed < s.width {
		s.slide = fixed
	}
	s.measured = true
}

func (s *strip) pitch() int {
	return s.slide + s.gap
}

// SlideOffsets implements carousel.Viewport.
func (s *strip) SlideOffsets() ([]float64, bool) {
	if !s.measured {
		return nil, false
	}
	offsets := make([]float64, s.slides)
	for i := range offsets {
		offsets[i] = float64(i * s.pitch())
	}
	return offsets, true
}

// ScrollOffset implements carousel.Viewport.
func (s *strip) ScrollOffset() float64 {
	return s.scroll
}

// SetScrollOffset implements carousel.Viewport.
func (s *strip) SetScrollOffset(offset float64) {
	s.scroll = s.clamp(offset)
}

// scrollBy moves the strip the way a native scroll would and reports it.
func (s *strip) scrollBy(delta float64) {
	s.SetScrollOffset(s.scroll + delta)
	s.send(carousel.NewScrollEvent())
}

// clamp keeps the strip within one pitch of either end.
func (s *strip) clamp(offset float64) float64 {
	if s.slides == 0 {
		return 0
	}
	lower := -float64(s.pitch())
	upper := float64(s.slides * s.pitch())
	return min(max(offset, lower), upper)
}

// origin is the world column drawn at the left edge.
func (s *strip) origin() int {
	return int(math.Floor(s.scroll))
}

// slideAt returns the slide drawn at visible column x, or -1 for a gap.
func (s *strip) slideAt(x int) int {
	if !s.measured || x < 0 || x >= s.width {
		return -1
	}
	world := s.origin() + x
	if world < 0 {
		return -1
	}
	i := world / s.pitch()
	if i >= s.slides || world-i*s.pitch() >= s.slide {
		return -1
	}
	return i
}

// Listen implements carousel.EventSource.
func (s *strip) Listen(h carousel.InputHandler) func() {
	s.handler = h
	return func() {
		if s.handler == h {
			s.handler = nil
		}
	}
}

func (s *strip) send(e carousel.Event) {
	if s.handler != nil {
		s.handler.HandleEvent(e)
	}
}
