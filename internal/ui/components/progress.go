package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/ui/theme"
)

// Gauge displays a 0-100 score as a horizontal bar.
type Gauge struct {
	Label string
	Value float64
	Max   float64
	Width int

	// Fill overrides the bar color. Nil uses the theme's secondary color.
	Fill color.Color
}

// NewGauge creates a gauge scaled to 0-100.
func NewGauge(label string, value float64, width int) Gauge {
	return Gauge{Label: label, Value: value, Max: 100, Width: width}
}

// Ratio returns the filled fraction in [0, 1].
func (g Gauge) Ratio() float64 {
	if g.Max <= 0 {
		return 0
	}
	r := g.Value / g.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// View renders the gauge.
func (g Gauge) View() string {
	var result string
	if g.Label != "" {
		result = theme.Label.Render(g.Label)
	}

	const valueWidth = 6 // "  100"
	barWidth := g.Width - lipgloss.Width(result) - valueWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * g.Ratio())
	fill := g.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %3.0f", g.Value))
	return result
}
