package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/tui/tuistyles"
)

// ProgressBar displays progress toward a milestone target.
type ProgressBar struct {
	Percent     decimal.Decimal // 0..100, clamped for rendering
	Width       int
	Label       string
	ShowPercent bool
}

// NewProgressBar creates a progress bar at the given percentage.
func NewProgressBar(percent decimal.Decimal) *ProgressBar {
	return &ProgressBar{
		Percent:     percent,
		Width:       30,
		ShowPercent: true,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// IsComplete returns true if progress is at or past 100%
func (p *ProgressBar) IsComplete() bool {
	return p.Percent.GreaterThanOrEqual(decimal.NewFromInt(100))
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(p.Label))
		content.WriteString(" ")
	}

	pct := p.Percent.InexactFloat64()
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(float64(p.Width) * pct / 100)
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	barColor := tuistyles.ColorInfo
	if p.IsComplete() {
		barColor = tuistyles.ColorSuccess
	}
	barStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("]")

	if p.ShowPercent {
		percentStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorPrimary).
			Bold(true)
		content.WriteString(" ")
		content.WriteString(percentStyle.Render(fmt.Sprintf("%.1f%%", p.Percent.InexactFloat64())))
	}

	return content.String()
}

// Spinner represents an animated spinner for loading states
type Spinner struct {
	Frame   int
	Message string
}

// NewSpinner creates a new spinner
func NewSpinner() *Spinner {
	return &Spinner{}
}

// WithMessage sets the spinner message
func (s *Spinner) WithMessage(message string) *Spinner {
	s.Message = message
	return s
}

// Next advances the spinner to the next frame
func (s *Spinner) Next() {
	s.Frame++
}

// Render returns the current spinner frame
func (s *Spinner) Render() string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := frames[s.Frame%len(frames)]

	spinnerStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)

	rendered := spinnerStyle.Render(frame)

	if s.Message != "" {
		messageStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground)
		rendered += " " + messageStyle.Render(s.Message)
	}

	return rendered
}
