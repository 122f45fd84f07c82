package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text

	FgConnected = lipgloss.Color("10") // Green
	FgWarning   = lipgloss.Color("11") // Yellow
	FgError     = lipgloss.Color("9")  // Red
	FgSynthetic = lipgloss.Color("8")  // Gray
)

// LogSeparatorColor is the adaptive color for log separators
var LogSeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// MetricColors gives each telemetry series its own color
var MetricColors = map[string]lipgloss.AdaptiveColor{
	"signal": {Light: "#0891b2", Dark: "#22d3ee"},
	"snr":    {Light: "#059669", Dark: "#34d399"},
	"tx":     {Light: "#d97706", Dark: "#fbbf24"},
	"rx":     {Light: "#7c3aed", Dark: "#a78bfa"},
}
