package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/carousel"
)

type styles struct {
	Title  lipgloss.Style
	Card   lipgloss.Style
	Dim    lipgloss.Style
	Arrow  lipgloss.Style
	Dot    lipgloss.Style
	DotOn  lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
	Frame  lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).PaddingLeft(marginX),
		Card:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Align(lipgloss.Center),
		Dim:    lipgloss.NewStyle().Faint(true),
		Arrow:  lipgloss.NewStyle().Bold(true),
		Dot:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Frame:  lipgloss.NewStyle().Padding(0, marginX),
	}
}

// View renders the title, the visible part of the strip, the controls and
// the help line.
func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	state := m.carousel.State()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("carousel"))
	b.WriteString("\n\n")
	b.WriteString(m.renderStrip())
	b.WriteString("\n\n")

	var controls []string
	if arrows, ok := m.carousel.Arrows(); ok {
		controls = append(controls, m.renderArrow("‹ prev", arrows.PrevDisabled))
	}
	if dots, ok := m.carousel.Dots(); ok {
		controls = append(controls, m.renderDots(dots.State))
	}
	if arrows, ok := m.carousel.Arrows(); ok {
		controls = append(controls, m.renderArrow("next ›", arrows.NextDisabled))
	}
	if len(controls) > 0 {
		b.WriteString(m.styles.Frame.Render(strings.Join(controls, "  ")))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Frame.Render(m.styles.Status.Render(m.statusLine(state))))
	b.WriteString("\n")
	b.WriteString(m.styles.Frame.Render(m.styles.Help.Render(m.help.View(m.keys))))
	return b.String()
}

func (m *Model) statusLine(state carousel.State) string {
	line := fmt.Sprintf("%d/%d · %s", state.Current+1, state.SlideCount, state.Phase())
	if state.SlideCount == 0 {
		line = "no slides"
	}
	if m.paused {
		line += " · paused"
	}
	if m.status != "" {
		line += " · " + m.status
	}
	return line
}

func (m *Model) renderArrow(label string, disabled bool) string {
	if disabled {
		return m.styles.Dim.Render(label)
	}
	return m.styles.Arrow.Render(label)
}

func (m *Model) renderDots(state carousel.State) string {
	dots := make([]string, state.SlideCount)
	for i := range dots {
		if i == state.Current {
			dots[i] = m.styles.DotOn.Render("●")
		} else {
			dots[i] = m.styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// ============================================================================
// Strip
// ============================================================================

// renderStrip draws the window of the strip that is currently scrolled into
// view. Each card is rendered once as plain text and then sliced by column.
func (m *Model) renderStrip() string {
	s := m.strip
	height := m.config.SlideHeight

	cards := make([][][]rune, len(m.config.Slides))
	for i, slide := range m.config.Slides {
		cards[i] = m.renderCard(slide, s.slide, height)
	}

	rows := make([]string, height)
	origin := s.origin()
	for y := 0; y < height; y++ {
		var row strings.Builder
		row.WriteString(strings.Repeat(" ", marginX))

		// Group consecutive columns of one card so each gets a single style run.
		run := -1
		var segment []rune
		flush := func() {
			if len(segment) == 0 {
				return
			}
			text := string(segment)
			if run >= 0 {
				text = m.cardStyle(run).Render(text)
			}
			row.WriteString(text)
			segment = segment[:0]
		}

		for x := 0; x < s.width; x++ {
			i := s.slideAt(x)
			if i != run {
				flush()
				run = i
			}
			r := ' '
			if i >= 0 {
				line := cards[i][y]
				if col := origin + x - i*s.pitch(); col < len(line) {
					r = line[col]
				}
			}
			segment = append(segment, r)
		}
		flush()
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

// renderCard lays out a card as a grid of runes.
func (m *Model) renderCard(slide Slide, width, height int) [][]rune {
	body := lipgloss.JoinVertical(lipgloss.Center, slide.Title, "", slide.Body)
	card := m.styles.Card.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		Render(body)

	lines := strings.Split(card, "\n")
	grid := make([][]rune, height)
	for y := range grid {
		if y < len(lines) {
			grid[y] = []rune(lines[y])
		}
	}
	return grid
}

func (m *Model) cardStyle(i int) lipgloss.Style {
	color := "252"
	if i < len(m.config.Slides) && m.config.Slides[i].Color != "" {
		color = m.config.Slides[i].Color
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if i == m.carousel.State().Current {
		style = style.Bold(true)
	}
	return style
}
