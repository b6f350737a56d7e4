// Package layout draws the chrome around a full-screen view.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/adaptutor/internal/cognitive"
	"github.com/abhisek/adaptutor/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16

	// bar height including its border
	barHeight = 3
)

// KeyHint is one key binding listed in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Status is the learner state shown on the right of the header. Empty
// fields are omitted.
type Status struct {
	Load  cognitive.Level
	State cognitive.State
	Style string
}

func (s Status) render() string {
	var parts []string
	if s.Load != "" {
		parts = append(parts, theme.LevelStyle(s.Load).Render("load "+string(s.Load)))
	}
	if s.State != "" {
		parts = append(parts, theme.StateStyle(s.State).Render(string(s.State)))
	}
	if s.Style != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render(s.Style))
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(" · "))
}

// Frame is a header bar, a body and a footer of key hints sized to the
// terminal.
type Frame struct {
	Title  string
	Status Status
	Hints  []KeyHint

	Width, Height int
}

// TooSmall reports whether the terminal is below MinWidth x MinHeight.
func (f Frame) TooSmall() bool {
	return f.Width < MinWidth || f.Height < MinHeight
}

// BodyHeight is the number of rows left between header and footer.
func (f Frame) BodyHeight() int {
	return max(f.Height-2*barHeight, 0)
}

// Render draws the frame around body, or a resize notice when the
// terminal is too small.
func (f Frame) Render(body string) string {
	if f.TooSmall() {
		return f.resizeNotice()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		f.header(),
		lipgloss.NewStyle().Width(f.Width).Height(f.BodyHeight()).MaxHeight(f.BodyHeight()).Render(body),
		f.footer(),
	)
}

func (f Frame) header() string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("adaptutor") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" / ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	right := f.Status.render()

	inner := f.Width - 4
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return bar(f.Width).Render(left + strings.Repeat(" ", gap) + right)
}

func (f Frame) footer() string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(f.Hints))
	for i, h := range f.Hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(f.Width).Render(strings.Join(parts, desc.Render("  │  ")))
}

func (f Frame) resizeNotice() string {
	return lipgloss.NewStyle().
		Width(f.Width).
		Height(f.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small\n\nneed %d x %d, have %d x %d",
			MinWidth, MinHeight, f.Width, f.Height))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
