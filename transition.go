package carousel

import "github.com/agiangrant/carousel/anim"

// transition is the single committed move in flight.
type transition struct {
	from, to  int
	source    Source
	snap      bool
	animation *anim.Animation
}

// ============================================================================
// Commit
// ============================================================================

// Dispatch resolves a navigation intent against the boundary policy and
// commits it. Intents that resolve to nothing are dropped without callbacks,
// as are intents that arrive while a drag owns the viewport; the drag snaps
// into place when it ends.
func (c *Carousel) Dispatch(intent NavigationIntent) {
	if !c.started || !c.ready || c.state.SlideCount == 0 || c.state.Dragging {
		return
	}

	target, ok := c.resolve(intent)
	if !ok {
		return
	}

	snap := intent.Mode == ModeSnap
	if c.transition != nil {
		if c.transition.to == target {
			return
		}
	} else if !snap && target == c.state.Current {
		return
	}

	c.commit(target, intent.Source, snap)
}

// resolve maps an intent to a slide index. Relative intents count from the
// slide the carousel is heading to, so repeated presses during a transition
// accumulate.
func (c *Carousel) resolve(intent NavigationIntent) (int, bool) {
	count := c.state.SlideCount
	current := c.state.Current
	if c.transition != nil {
		current = c.transition.to
	}
	wrap := c.cfg.Infinite || intent.Source == SourceAutoplay

	switch intent.Kind {
	case IntentNext:
		if current+1 < count {
			return current + 1, true
		}
		if wrap {
			return 0, true
		}
		return 0, false

	case IntentPrev:
		if current > 0 {
			return current - 1, true
		}
		if wrap {
			return count - 1, true
		}
		return 0, false

	default:
		if intent.Target < 0 || intent.Target >= count {
			return 0, false
		}
		return intent.Target, true
	}
}

func (c *Carousel) commit(target int, source Source, snap bool) {
	c.preempt()

	offsets, ok := c.adapter.SlideOffsets()
	if !ok || target >= len(offsets) {
		c.logf("slide %d not measurable, dropping transition", target)
		return
	}

	from := c.state.Current
	if !snap && c.cfg.BeforeChange != nil {
		c.cfg.BeforeChange(BeforeChange{Current: from, Next: target, Source: source})
	}

	start := c.adapter.ScrollOffset()
	end := scrollTarget(offsets[target], c.cfg.offset(c.state))
	duration, easing := c.cfg.motion(modeOf(snap))

	tr := &transition{from: from, to: target, source: source, snap: snap}
	c.transition = tr
	c.state.Animating = true
	c.notify()

	a := c.scheduler.Animate().
		Duration(duration).
		Easing(easing).
		OnComplete(func(float64) { c.settle(tr) }).
		Value(start, end-start, c.adapter.SetScrollOffset)
	tr.animation = a
}

// settle finalizes tr if it is still the transition in flight.
func (c *Carousel) settle(tr *transition) {
	if c.transition != tr {
		return
	}
	c.transition = nil

	c.state.Current = tr.to
	c.state.Animating = false
	c.notify()

	if !tr.snap && c.cfg.AfterChange != nil {
		c.cfg.AfterChange(AfterChange{Previous: tr.from, Current: tr.to, Source: tr.source})
	}
}

// preempt cancels the transition in flight and settles it at its target, so
// its callbacks stay paired before the next commit begins.
func (c *Carousel) preempt() {
	tr := c.transition
	if tr == nil {
		return
	}
	if tr.animation != nil {
		tr.animation.Cancel()
	}
	c.settle(tr)
}

// dropTransition cancels the transition in flight without settling it.
func (c *Carousel) dropTransition() {
	if c.transition == nil {
		return
	}
	if c.transition.animation != nil {
		c.transition.animation.Cancel()
	}
	c.transition = nil
	c.state.Animating = false
}

func modeOf(snap bool) Mode {
	if snap {
		return ModeSnap
	}
	return ModeAnimated
}

// ============================================================================
// Non-animated updates
// ============================================================================

// Swap sets the current index without moving the viewport. It is how drags
// and native scrolling track the slide under the viewport. Swaps are ignored
// while a transition owns the offset.
func (c *Carousel) Swap(index int) {
	if c.transition != nil || index < 0 || index >= c.state.SlideCount || index == c.state.Current {
		return
	}

	previous := c.state.Current
	if c.cfg.BeforeChange != nil {
		c.cfg.BeforeChange(BeforeChange{Current: previous, Next: index, Source: SourceUser})
	}
	c.state.Current = index
	c.notify()
	if c.cfg.AfterChange != nil {
		c.cfg.AfterChange(AfterChange{Previous: previous, Current: index, Source: SourceUser})
	}
}

// NearestSlide returns the slide closest to the live scroll offset, or -1
// when there are no measurable slides.
func (c *Carousel) NearestSlide() int {
	offsets, ok := c.adapter.SlideOffsets()
	if !ok || len(offsets) == 0 {
		return -1
	}
	return nearestSlide(offsets, c.adapter.ScrollOffset()+c.cfg.offset(c.state))
}

// ScrollBy shifts the viewport by delta without animation.
func (c *Carousel) ScrollBy(delta float64) {
	c.adapter.SetScrollOffset(c.adapter.ScrollOffset() + delta)
}

// BeginDrag hands the viewport to a pointer drag. A transition in flight is
// settled first.
func (c *Carousel) BeginDrag() {
	c.preempt()
	c.state.Dragging = true
	c.notify()
}

// EndDrag releases the viewport from a pointer drag.
func (c *Carousel) EndDrag() {
	c.state.Dragging = false
	c.notify()
}

// Relayout re-measures the viewport. A carousel still waiting for its first
// measurement initializes here; otherwise a changed slide count is applied.
func (c *Carousel) Relayout() {
	c.SlidesChanged()
}
