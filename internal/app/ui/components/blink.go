package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	pulseIdle = "○"
	pulseLit  = "●"

	pulseFPS = UITicksPerSecond

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// pulseHoldTicks keeps the target lit after a beat before it decays
	pulseHoldTicks = 2

	pulseFrameThreshold = 0.3
)

// Blink is the live indicator: each applied sample lights it and a spring lets it fade
type Blink struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	hold     int
	active   bool
}

// NewBlink creates an idle live indicator
func NewBlink() *Blink {
	return &Blink{
		spring: harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start enables the indicator
func (b *Blink) Start() {
	b.active = true
}

// Stop disables the indicator and resets it to idle
func (b *Blink) Stop() {
	b.active = false
	b.position = 0
	b.velocity = 0
	b.target = 0
	b.hold = 0
}

// Beat lights the indicator for a newly applied sample
func (b *Blink) Beat() {
	if !b.active {
		return
	}

	b.target = 1
	b.hold = pulseHoldTicks
}

// Update advances the spring one UI tick
func (b *Blink) Update() {
	if !b.active {
		return
	}

	if b.hold > 0 {
		b.hold--
	} else {
		b.target = 0
	}

	b.position, b.velocity = b.spring.Update(b.position, b.velocity, b.target)
}

// Frame returns the current glyph
func (b *Blink) Frame() string {
	if !b.active || b.position < pulseFrameThreshold {
		return pulseIdle
	}

	return pulseLit
}

// Render returns the styled glyph
func (b *Blink) Render(style lipgloss.Style) string {
	return style.Render(b.Frame())
}

// IsActive returns whether the indicator is enabled
func (b *Blink) IsActive() bool {
	return b.active
}
