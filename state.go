package carousel

// State is the authoritative carousel state.
type State struct {
	Current    int
	SlideCount int
	Dragging   bool
	Animating  bool
}

// Phase is the state machine phase derived from a State.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseTransitioning
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Phase returns the state machine phase.
func (s State) Phase() Phase {
	switch {
	case s.Dragging:
		return PhaseDragging
	case s.Animating:
		return PhaseTransitioning
	default:
		return PhaseIdle
	}
}

// Source is the origin of a navigation.
type Source string

const (
	SourceUser     Source = "user"
	SourceAutoplay Source = "autoplay"
)

// Mode selects how a commit moves the viewport.
type Mode uint8

const (
	// ModeAnimated uses the slide transition duration and easing and emits
	// BeforeChange/AfterChange.
	ModeAnimated Mode = iota

	// ModeSnap uses the snap duration and easing and emits no callbacks.
	ModeSnap
)

// IntentKind says how an intent's target is resolved.
type IntentKind uint8

const (
	IntentGoto IntentKind = iota
	IntentNext
	IntentPrev
)

// NavigationIntent is a request to change the current slide.
type NavigationIntent struct {
	Kind   IntentKind
	Target int // only for IntentGoto
	Source Source
	Mode   Mode
}

// GotoIntent navigates to slide i with an animated transition.
func GotoIntent(i int, source Source) NavigationIntent {
	return NavigationIntent{Kind: IntentGoto, Target: i, Source: source}
}

// NextIntent advances one slide.
func NextIntent(source Source) NavigationIntent {
	return NavigationIntent{Kind: IntentNext, Source: source}
}

// PrevIntent goes back one slide.
func PrevIntent(source Source) NavigationIntent {
	return NavigationIntent{Kind: IntentPrev, Source: source}
}

// SnapIntent silently aligns the viewport to slide i.
func SnapIntent(i int) NavigationIntent {
	return NavigationIntent{Kind: IntentGoto, Target: i, Source: SourceUser, Mode: ModeSnap}
}

// BeforeChange is passed to Config.BeforeChange before a transition starts.
type BeforeChange struct {
	Current int
	Next    int
	Source  Source
}

// AfterChange is passed to Config.AfterChange once a transition settles.
type AfterChange struct {
	Previous int
	Current  int
	Source   Source
}
