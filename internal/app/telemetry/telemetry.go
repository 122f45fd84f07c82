package telemetry

import (
	"time"
)

// Source tells where a sample came from
type Source int

// Sample sources
const (
	SourceLive Source = iota
	SourceFallback
	SourceSynthetic
)

// String returns the display label of the source
func (s Source) String() string {
	switch s {
	case SourceLive:
		return "live"
	case SourceFallback:
		return "fallback"
	case SourceSynthetic:
		return "synthetic"
	default:
		return "unknown"
	}
}

// Sample is one immutable radio reading
type Sample struct {
	Timestamp      time.Time
	SignalStrength float64
	SNR            float64
	TxMbps         float64
	RxMbps         float64
	Source         Source
}

// Window is a fixed capacity FIFO of samples, oldest first
type Window struct {
	samples  []Sample
	capacity int
}

// NewWindow creates a window holding at most capacity samples
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}

	return &Window{
		samples:  make([]Sample, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a sample and evicts from the front once over capacity
func (w *Window) Push(sample Sample) {
	w.samples = append(w.samples, sample)

	if over := len(w.samples) - w.capacity; over > 0 {
		w.samples = append(w.samples[:0:0], w.samples[over:]...)
	}
}

// Snapshot returns a copy of the retained samples, oldest first
func (w *Window) Snapshot() []Sample {
	out := make([]Sample, len(w.samples))
	copy(out, w.samples)

	return out
}

// Last returns the newest sample
func (w *Window) Last() (Sample, bool) {
	if len(w.samples) == 0 {
		return Sample{}, false
	}

	return w.samples[len(w.samples)-1], true
}

// Len returns the number of retained samples
func (w *Window) Len() int {
	return len(w.samples)
}

// Cap returns the window capacity
func (w *Window) Cap() int {
	return w.capacity
}
