package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/carousel"
)

// Slide is one card shown in the terminal carousel.
type Slide struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
	Color string `toml:"color,omitempty"`
}

// FileConfig is the on-disk configuration of the terminal host.
type FileConfig struct {
	FPS         int `toml:"fps"`
	SlideWidth  int `toml:"slide_width"` // 0 fills the window
	SlideHeight int `toml:"slide_height"`
	Gap         int `toml:"gap"`

	// WheelStep is how many columns one wheel notch scrolls.
	WheelStep int `toml:"wheel_step"`

	// WheelSnapMs is the quiet window after wheel scrolling before the
	// strip snaps back onto a slide.
	WheelSnapMs int `toml:"wheel_snap_ms"`

	Carousel carousel.Config `toml:"carousel"`
	Slides   []Slide         `toml:"slides"`
}

// DefaultFileConfig returns the configuration written by `carousel init`.
func DefaultFileConfig() FileConfig {
	cfg := carousel.DefaultConfig()
	cfg.Arrows = true
	cfg.Dots = true
	cfg.Draggable = true
	cfg.KeyboardControl = true
	cfg.AutoplayIntervalMs = 5000

	return FileConfig{
		FPS:         60,
		SlideHeight: 9,
		Gap:         2,
		WheelStep:   4,
		WheelSnapMs: 150,
		Carousel:    cfg,
		Slides: []Slide{
			{Title: "Welcome", Body: "Drag with the mouse, scroll sideways, or use the arrow keys.", Color: "99"},
			{Title: "Autoplay", Body: "Slides advance on their own. Press space to pause.", Color: "33"},
			{Title: "Hot reload", Body: "Edit the config file and the carousel picks up the change.", Color: "78"},
			{Title: "Dots", Body: "Press 1-9 to jump straight to a slide.", Color: "214"},
		},
	}
}

// Validate checks the host options and the embedded carousel options.
func (c FileConfig) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.SlideHeight < 3:
		return fmt.Errorf("slide_height must be at least 3, got %d", c.SlideHeight)
	case c.Gap < 0, c.SlideWidth < 0, c.WheelStep < 0, c.WheelSnapMs < 0:
		return errors.New("gap, slide_width, wheel_step and wheel_snap_ms must not be negative")
	}
	return c.Carousel.Validate()
}

// ParseFileConfig decodes TOML on top of DefaultFileConfig. A document that
// lists its own slides replaces the default ones.
func ParseFileConfig(data []byte) (FileConfig, error) {
	config := DefaultFileConfig()
	config.Slides = nil
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	if config.Slides == nil {
		config.Slides = DefaultFileConfig().Slides
	}

	// The [carousel] table goes through the engine's own decoder so both
	// layers agree on defaults and validation.
	var doc struct {
		Carousel map[string]any `toml:"carousel"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}
	var table []byte
	var err error
	if len(doc.Carousel) > 0 {
		if table, err = toml.Marshal(doc.Carousel); err != nil {
			return config, fmt.Errorf("failed to read [carousel]: %w", err)
		}
	}
	if config.Carousel, err = DefaultFileConfig().Carousel.Decode(table); err != nil {
		return config, fmt.Errorf("[carousel]: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// LoadFileConfig reads path. A missing file yields DefaultFileConfig.
func LoadFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}
	if err != nil {
		return DefaultFileConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}

	config, err := ParseFileConfig(data)
	if err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// SaveFileConfig writes config to path.
func SaveFileConfig(path string, config FileConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
