package components

import (
	"math"
	"strings"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the most recent width values scaled between lo and hi.
// Missing history is padded on the left so the newest value is always rightmost.
func Sparkline(values []float64, width int, lo, hi float64) string {
	if width <= 0 {
		return ""
	}

	if len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder

	b.WriteString(strings.Repeat(" ", width-len(values)))

	top := len(sparkBlocks) - 1

	for _, v := range values {
		level := top / 2

		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * float64(top)))
			level = max(0, min(top, level))
		}

		b.WriteRune(sparkBlocks[level])
	}

	return b.String()
}

// Bounds returns the minimum and maximum of values, zero for an empty slice
func Bounds(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}
