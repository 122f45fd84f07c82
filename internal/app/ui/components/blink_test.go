package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func Test_NewBlink(t *testing.T) {
	b := NewBlink()

	assert.NotNil(t, b)
	assert.False(t, b.IsActive())
	assert.Equal(t, pulseIdle, b.Frame())
}

func Test_Blink_BeatLightsThenFades(t *testing.T) {
	b := NewBlink()
	b.Start()
	b.Beat()

	lit := false

	for i := 0; i < 5; i++ {
		b.Update()

		if b.Frame() == pulseLit {
			lit = true
		}
	}

	assert.True(t, lit)

	for i := 0; i < 50; i++ {
		b.Update()
	}

	assert.Equal(t, pulseIdle, b.Frame())
}

func Test_Blink_BeatIgnoredWhenStopped(t *testing.T) {
	b := NewBlink()
	b.Beat()

	for i := 0; i < 5; i++ {
		b.Update()
	}

	assert.Equal(t, pulseIdle, b.Frame())
}

func Test_Blink_Stop(t *testing.T) {
	b := NewBlink()
	b.Start()
	b.Beat()
	b.Update()
	b.Update()
	b.Stop()

	assert.False(t, b.IsActive())
	assert.Equal(t, pulseIdle, b.Frame())
}

func Test_Blink_Render(t *testing.T) {
	b := NewBlink()
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))

	assert.Contains(t, b.Render(style), pulseIdle)
}
