package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/cognitive"
)

// Color palette, calm and low-contrast so long sessions stay readable.
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#F97316") // Orange
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Width(22)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// Chat
var (
	Learner = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Tutor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// LevelColor maps a cognitive load level to its display color.
func LevelColor(l cognitive.Level) color.Color {
	switch l {
	case cognitive.LevelLow:
		return Secondary
	case cognitive.LevelOptimal:
		return Success
	case cognitive.LevelHigh:
		return Warning
	case cognitive.LevelOverload:
		return Error
	}
	return TextDim
}

// LevelStyle renders a load level label.
func LevelStyle(l cognitive.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(LevelColor(l)).Bold(true)
}

// StateStyle renders a learning state label. Struggling states are
// highlighted.
func StateStyle(s cognitive.State) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(Text)
	switch s {
	case cognitive.StateConfused, cognitive.StateFrustrated:
		return st.Foreground(Warning).Bold(true)
	case cognitive.StateConfident, cognitive.StateMotivated:
		return st.Foreground(Success)
	}
	return st
}
