package carousel

// ArrowControls is what an arrow renderer needs to draw and wire prev/next
// buttons.
type ArrowControls struct {
	Prev func()
	Next func()

	PrevDisabled bool
	NextDisabled bool

	State State
}

// DotControls is what a dot renderer needs to draw one dot per slide.
type DotControls struct {
	SetCurrent func(i int) error
	State      State
}

// Arrows returns the arrow controls, or false when arrows are turned off.
//
// Arrows are disabled while a transition or drag owns the viewport, and at
// the ends of a finite carousel.
func (c *Carousel) Arrows() (ArrowControls, bool) {
	if !c.cfg.Arrows {
		return ArrowControls{}, false
	}

	s := c.state
	busy := s.Animating || s.Dragging
	return ArrowControls{
		Prev:         c.Prev,
		Next:         c.Next,
		PrevDisabled: busy || s.SlideCount == 0 || (!c.cfg.Infinite && s.Current == 0),
		NextDisabled: busy || s.SlideCount == 0 || (!c.cfg.Infinite && s.Current >= s.SlideCount-1),
		State:        s,
	}, true
}

// Dots returns the dot controls, or false when dots are turned off.
func (c *Carousel) Dots() (DotControls, bool) {
	if !c.cfg.Dots {
		return DotControls{}, false
	}
	return DotControls{
		SetCurrent: c.SetCurrent,
		State:      c.state,
	}, true
}
