package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestGaugeRatio(t *testing.T) {
	tests := []struct {
		value, max float64
		want       float64
	}{
		{50, 100, 0.5},
		{150, 100, 1},
		{-5, 100, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		g := Gauge{Value: tt.value, Max: tt.max}
		assert.InDelta(t, tt.want, g.Ratio(), 1e-9)
	}
}

func TestGaugeView(t *testing.T) {
	out := NewGauge("Score", 72, 40).View()
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "72")
}

func TestTextInputTake(t *testing.T) {
	ti := NewTextInput("Ask", 40)
	for _, r := range "  hello  " {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "hello", ti.Value())
	assert.Equal(t, "hello", ti.Take())
	assert.Empty(t, ti.Value())
}

func TestTextInputDisabled(t *testing.T) {
	ti := NewTextInput("Ask", 40)
	ti.SetDisabled(true)
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Empty(t, ti.Value())

	ti.SetDisabled(false)
	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, "x", ti.Value())
}
