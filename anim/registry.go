package anim

import "time"

// Registry tracks active animations and steps them once per frame.
// It is owned by a single event loop and is not safe for concurrent use.
type Registry struct {
	animations []*Animation
	nextID     AnimationID

	// Callback when animation state changes (for the scheduler to know
	// when to keep requesting frames)
	onActiveChange func(hasActive bool)
}

// NewRegistry creates an empty animation registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *Registry) OnActiveChange(fn func(hasActive bool)) {
	r.onActiveChange = fn
}

// Add registers a new animation.
func (r *Registry) Add(a *Animation) {
	wasEmpty := len(r.animations) == 0
	r.nextID++
	a.id = r.nextID
	a.registry = r
	r.animations = append(r.animations, a)

	if wasEmpty && r.onActiveChange != nil {
		r.onActiveChange(true)
	}
}

// Remove unregisters an animation.
func (r *Registry) Remove(id AnimationID) {
	removed := false
	for i, a := range r.animations {
		if a.id == id {
			r.animations = append(r.animations[:i], r.animations[i+1:]...)
			removed = true
			break
		}
	}

	if removed && len(r.animations) == 0 && r.onActiveChange != nil {
		r.onActiveChange(false)
	}
}

// HasActive returns true if there are any running animations.
func (r *Registry) HasActive() bool {
	return len(r.animations) > 0
}

// Count returns the number of active animations.
func (r *Registry) Count() int {
	return len(r.animations)
}

// Tick steps all animations to now and removes completed ones.
// Completion callbacks run after every animation has been stepped.
// Returns true if any animations are still active.
func (r *Registry) Tick(now time.Time) bool {
	if len(r.animations) == 0 {
		return false
	}

	var completed []*Animation
	remaining := r.animations[:0]
	for _, a := range r.animations {
		if a.cancelled {
			continue
		}
		if a.step(now) {
			completed = append(completed, a)
			continue
		}
		remaining = append(remaining, a)
	}
	// Clear the tail so dropped animations can be collected.
	for i := len(remaining); i < len(r.animations); i++ {
		r.animations[i] = nil
	}
	r.animations = remaining

	for _, a := range completed {
		a.registry = nil
		a.finish()
	}

	hasActive := len(r.animations) > 0
	if len(completed) > 0 && !hasActive && r.onActiveChange != nil {
		r.onActiveChange(false)
	}
	return hasActive
}

// CancelAll cancels every active animation.
func (r *Registry) CancelAll() {
	active := append([]*Animation(nil), r.animations...)
	for _, a := range active {
		a.Cancel()
	}
}
