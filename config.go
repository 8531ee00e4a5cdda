package carousel

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/carousel/anim"
)

// Direction is the autoplay direction.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Config configures carousel behavior. A Config is treated as immutable once
// handed to the carousel; use SetConfig to change options at runtime.
type Config struct {
	// Show the built-in arrow and dot controls
	Arrows bool `toml:"arrows"`
	Dots   bool `toml:"dots"`

	// DisableNativeScroll turns off the viewport's own touch scrolling;
	// fast swipes then navigate one slide at a time.
	DisableNativeScroll bool `toml:"disable_native_scroll"`

	Draggable       bool `toml:"draggable"`
	Infinite        bool `toml:"infinite"`
	KeyboardControl bool `toml:"keyboard_control"`

	// ResetCurrentOnResize realigns the current slide after layout changes.
	ResetCurrentOnResize bool `toml:"reset_current_on_resize"`

	// SwapOnDragMoveEnd moves one slide in the drag direction when a drag
	// ends over the slide it started on.
	SwapOnDragMoveEnd bool `toml:"swap_on_drag_move_end"`

	// AutoplayIntervalMs <= 0 disables autoplay.
	AutoplayIntervalMs int       `toml:"autoplay_interval_ms"`
	AutoplayDirection  Direction `toml:"autoplay_direction"`

	// Offset is subtracted from slide positions when aligning, leaving room
	// for a peek of the previous slide. OffsetFunc, when set, wins.
	Offset     float64             `toml:"offset"`
	OffsetFunc func(State) float64 `toml:"-"`

	SlideSnapDurationMs       int    `toml:"slide_snap_duration_ms"`
	SlideSnapEasing           string `toml:"slide_snap_easing"`
	SlideTransitionDurationMs int    `toml:"slide_transition_duration_ms"`
	SlideTransitionEasing     string `toml:"slide_transition_easing"`

	// Touch thresholds, in units per millisecond
	TouchSwipeVelocityThreshold     float64 `toml:"touch_swipe_velocity_threshold"`
	TouchCrossAxisScrollThreshold   float64 `toml:"touch_cross_axis_scroll_threshold"`
	TouchScrollingVelocityThreshold float64 `toml:"touch_scrolling_velocity_threshold"`

	// Debounce windows
	InertialScrollTimeoutMs int `toml:"inertial_scroll_timeout_ms"`
	ResizeTimeoutMs         int `toml:"resize_timeout_ms"`

	// Current is an externally controlled index. Nil means uncontrolled.
	Current *int `toml:"current,omitempty"`

	BeforeChange func(BeforeChange) `toml:"-"`
	AfterChange  func(AfterChange)  `toml:"-"`
}

// DefaultConfig returns the default carousel configuration.
func DefaultConfig() Config {
	return Config{
		ResetCurrentOnResize:            true,
		SwapOnDragMoveEnd:               true,
		AutoplayDirection:               DirectionLTR,
		SlideSnapDurationMs:             150,
		SlideSnapEasing:                 anim.EasingEaseInOut,
		SlideTransitionDurationMs:       300,
		SlideTransitionEasing:           anim.EasingEaseInOut,
		TouchSwipeVelocityThreshold:     0.3,
		TouchCrossAxisScrollThreshold:   0.45,
		TouchScrollingVelocityThreshold: 0.001,
		// Anything below this might cause issues with iOS momentum scrolling
		InertialScrollTimeoutMs: 100,
		ResizeTimeoutMs:         200,
	}
}

// Validate reports the first invalid option, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.AutoplayDirection != DirectionLTR && c.AutoplayDirection != DirectionRTL:
		return fmt.Errorf("%w: autoplay_direction %q", ErrInvalidConfig, c.AutoplayDirection)
	case anim.EasingByName(c.SlideSnapEasing) == nil:
		return fmt.Errorf("%w: slide_snap_easing %q", ErrInvalidConfig, c.SlideSnapEasing)
	case anim.EasingByName(c.SlideTransitionEasing) == nil:
		return fmt.Errorf("%w: slide_transition_easing %q", ErrInvalidConfig, c.SlideTransitionEasing)
	case c.SlideSnapDurationMs < 0:
		return fmt.Errorf("%w: slide_snap_duration_ms %d", ErrInvalidConfig, c.SlideSnapDurationMs)
	case c.SlideTransitionDurationMs < 0:
		return fmt.Errorf("%w: slide_transition_duration_ms %d", ErrInvalidConfig, c.SlideTransitionDurationMs)
	case c.TouchSwipeVelocityThreshold < 0, c.TouchCrossAxisScrollThreshold < 0, c.TouchScrollingVelocityThreshold < 0:
		return fmt.Errorf("%w: touch thresholds must not be negative", ErrInvalidConfig)
	case c.InertialScrollTimeoutMs < 0, c.ResizeTimeoutMs < 0:
		return fmt.Errorf("%w: debounce timeouts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// WithCurrent returns a copy of c controlled to index i.
func (c Config) WithCurrent(i int) Config {
	c.Current = &i
	return c
}

func (c Config) offset(s State) float64 {
	if c.OffsetFunc != nil {
		return c.OffsetFunc(s)
	}
	return c.Offset
}

func (c Config) motion(mode Mode) (time.Duration, anim.EasingFunc) {
	if mode == ModeSnap {
		return ms(c.SlideSnapDurationMs), anim.EasingByName(c.SlideSnapEasing)
	}
	return ms(c.SlideTransitionDurationMs), anim.EasingByName(c.SlideTransitionEasing)
}

func (c Config) autoplayInterval() time.Duration {
	return ms(c.AutoplayIntervalMs)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ============================================================================
// Config files
// ============================================================================

// DecodeConfig parses TOML on top of DefaultConfig. Keys that are absent keep
// their defaults.
func DecodeConfig(data []byte) (Config, error) {
	return DefaultConfig().Decode(data)
}

// Decode parses TOML on top of c and validates the result. Hosts that ship
// their own defaults decode embedded tables through it.
func (c Config) Decode(data []byte) (Config, error) {
	config := c
	if c.Current != nil {
		current := *c.Current
		config.Current = &current
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// LoadConfig loads a carousel configuration from a TOML file.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	config, err := DecodeConfig(data)
	if err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes the serializable options of config to path.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
