// Package tui hosts the carousel in a terminal with Bubble Tea.
//
// The Model owns the strip the carousel scrolls and translates terminal
// keys, mouse and window size messages into carousel input events.
package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agiangrant/carousel"
	"github.com/agiangrant/carousel/loop"
)

const (
	marginX  = 2
	stripTop = 2 // title line and a blank line
)

// callbackMsg carries a clock callback onto the Bubble Tea event loop.
type callbackMsg struct {
	fn func()
}

// configMsg delivers a reloaded config file.
type configMsg struct {
	config FileConfig
	err    error
}

// Callback wraps fn in a message that runs it on the event loop. Hosts use
// it to post loop.Realtime callbacks through Program.Send.
func Callback(fn func()) tea.Msg {
	return callbackMsg{fn: fn}
}

// ConfigReloaded returns the message that applies a reloaded config file.
func ConfigReloaded(config FileConfig, err error) tea.Msg {
	return configMsg{config: config, err: err}
}

// Model is the Bubble Tea model of the terminal carousel.
type Model struct {
	config   FileConfig
	path     string
	carousel *carousel.Carousel
	strip    *strip
	clock    loop.Clock
	logger   *log.Logger

	wheelSnap *loop.Debouncer
	lastMouse carousel.Point
	pressed   bool
	paused    bool

	width  int
	height int
	keys   keyMap
	help   help.Model
	styles styles
	status string
}

// NewModel builds a model and the carousel it drives. Nothing runs until
// Init.
func NewModel(config FileConfig, clock loop.Clock, logger *log.Logger) (*Model, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	m := &Model{
		config: config,
		strip:  newStrip(len(config.Slides), config.Gap),
		clock:  clock,
		logger: logger,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: newStyles(),
	}

	c, err := carousel.New(m.strip, clock, m.hooks(config.Carousel), carousel.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	m.carousel = c
	m.wheelSnap = loop.NewDebouncer(clock, time.Duration(config.WheelSnapMs)*time.Millisecond, m.snap)
	return m, nil
}

// Carousel returns the carousel driven by the model.
func (m *Model) Carousel() *carousel.Carousel {
	return m.carousel
}

// hooks attaches the model's change callbacks to cfg.
func (m *Model) hooks(cfg carousel.Config) carousel.Config {
	cfg.AfterChange = func(e carousel.AfterChange) {
		m.status = fmt.Sprintf("slide %d → %d (%s)", e.Previous+1, e.Current+1, e.Source)
	}
	return cfg
}

// Init starts the carousel. The strip is measured on the first
// WindowSizeMsg, so initial alignment waits until then.
func (m *Model) Init() tea.Cmd {
	m.carousel.Start()
	return nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case callbackMsg:
		msg.fn()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.strip.resize(msg.Width-2*marginX, m.config.SlideWidth)
		m.strip.send(carousel.NewResizeEvent(float64(msg.Width), float64(msg.Height)))

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case configMsg:
		m.applyConfig(msg.config, msg.err)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.carousel.Stop()
		m.wheelSnap.Cancel()
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Prev):
		m.pressArrow(carousel.KeyArrowLeft)

	case key.Matches(msg, m.keys.Next):
		m.pressArrow(carousel.KeyArrowRight)

	case key.Matches(msg, m.keys.First):
		m.setCurrent(0)

	case key.Matches(msg, m.keys.Last):
		m.setCurrent(m.carousel.State().SlideCount - 1)

	case key.Matches(msg, m.keys.Jump):
		m.setCurrent(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Autoplay):
		m.toggleAutoplay()

	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	return nil
}

// pressArrow delivers a full key press. The terminal only reports presses,
// so the release follows immediately.
func (m *Model) pressArrow(name string) {
	m.strip.send(carousel.NewKeyEvent(carousel.EventKeyDown, name, true))
	m.strip.send(carousel.NewKeyEvent(carousel.EventKeyUp, name, true))
}

func (m *Model) setCurrent(i int) {
	dots, ok := m.carousel.Dots()
	if !ok {
		return
	}
	if err := dots.SetCurrent(i); err != nil {
		m.status = err.Error()
	}
}

func (m *Model) toggleAutoplay() {
	m.paused = !m.paused

	cfg := m.carousel.Config()
	cfg.AutoplayIntervalMs = m.config.Carousel.AutoplayIntervalMs
	if m.paused {
		cfg.AutoplayIntervalMs = 0
	}
	if err := m.carousel.SetConfig(cfg); err != nil {
		m.logger.Printf("toggle autoplay: %v", err)
	}

	m.status = "autoplay on"
	if m.paused {
		m.status = "autoplay paused"
	}
}

// ============================================================================
// Mouse
// ============================================================================

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := carousel.Point{X: float64(msg.X - marginX), Y: float64(msg.Y - stripTop)}
	movement := pos.X - m.lastMouse.X
	m.lastMouse = pos

	switch {
	case msg.Button == tea.MouseButtonWheelLeft, msg.Button == tea.MouseButtonWheelUp:
		m.wheel(-1)
		return
	case msg.Button == tea.MouseButtonWheelRight, msg.Button == tea.MouseButtonWheelDown:
		m.wheel(1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.strip.send(carousel.NewPointerEvent(carousel.EventPointerDown, pos.X, pos.Y, carousel.MouseButtonLeft, carousel.ButtonPrimary))

	case tea.MouseActionMotion:
		var buttons carousel.Buttons
		if m.pressed {
			buttons = carousel.ButtonPrimary
		}
		e := carousel.NewPointerEvent(carousel.EventPointerMove, pos.X, pos.Y, carousel.MouseButtonNone, buttons)
		e.MovementX = movement
		m.strip.send(e)

	case tea.MouseActionRelease:
		m.pressed = false
		e := carousel.NewPointerEvent(carousel.EventPointerUp, pos.X, pos.Y, carousel.MouseButtonLeft, 0)
		if m.inStrip(msg.Y) {
			e.Slide = m.strip.slideAt(int(pos.X))
		}
		m.strip.send(e)
	}
}

func (m *Model) inStrip(y int) bool {
	return y >= stripTop && y < stripTop+m.config.SlideHeight
}

// wheel scrolls the strip natively and snaps back once the wheel settles.
func (m *Model) wheel(direction float64) {
	if m.config.WheelStep == 0 {
		return
	}
	m.strip.scrollBy(direction * float64(m.config.WheelStep))
	m.wheelSnap.Call()
}

func (m *Model) snap() {
	m.carousel.Dispatch(carousel.SnapIntent(m.carousel.State().Current))
}

// ============================================================================
// Config reload
// ============================================================================

// SetConfigPath sets the file the reload key reads.
func (m *Model) SetConfigPath(path string) {
	m.path = path
}

func (m *Model) reload() tea.Cmd {
	path := m.path
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		return ConfigReloaded(LoadFileConfig(path))
	}
}

func (m *Model) applyConfig(config FileConfig, err error) {
	if err != nil {
		m.status = "config: " + err.Error()
		m.logger.Printf("config reload failed: %v", err)
		return
	}

	if err := m.carousel.SetConfig(m.hooks(m.pausedConfig(config.Carousel))); err != nil {
		m.status = "config: " + err.Error()
		return
	}

	m.config = config
	m.wheelSnap.SetDelay(time.Duration(config.WheelSnapMs) * time.Millisecond)
	m.strip.gap = config.Gap
	m.strip.slides = len(config.Slides)
	if m.strip.measured {
		m.strip.resize(m.width-2*marginX, config.SlideWidth)
	}
	m.carousel.SlidesChanged()
	m.carousel.Dispatch(carousel.SnapIntent(m.carousel.State().Current))
	m.status = "config reloaded"
}

func (m *Model) pausedConfig(cfg carousel.Config) carousel.Config {
	if m.paused {
		cfg.AutoplayIntervalMs = 0
	}
	return cfg
}
