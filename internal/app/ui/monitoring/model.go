package monitoring

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metroems/internal/app/logtail"
	"metroems/internal/app/telemetry"
	"metroems/internal/app/ui/components"
)

// series describes one telemetry chart
type series struct {
	key   string
	label string
	unit  string
	pick  func(telemetry.Sample) float64
}

var allSeries = []series{
	{key: "signal", label: "Signal", unit: "%", pick: func(s telemetry.Sample) float64 { return s.SignalStrength }},
	{key: "snr", label: "SNR", unit: "dB", pick: func(s telemetry.Sample) float64 { return s.SNR }},
	{key: "tx", label: "TX", unit: "Mbps", pick: func(s telemetry.Sample) float64 { return s.TxMbps }},
	{key: "rx", label: "RX", unit: "Mbps", pick: func(s telemetry.Sample) float64 { return s.RxMbps }},
}

// Model is the monitoring tab: a rolling telemetry window with charts and a short log tail
type Model struct {
	window *telemetry.Window
	tail   *logtail.Tail
	width  int
	height int
}

// NewModel creates the monitoring view with fresh buffers
func NewModel(windowSize, logLimit int) Model {
	return Model{
		window: telemetry.NewWindow(windowSize),
		tail:   logtail.NewTail(logLimit),
	}
}

// Window returns the telemetry buffer the sync engine writes to
func (m Model) Window() *telemetry.Window {
	return m.window
}

// Tail returns the log buffer the sync engine writes to
func (m Model) Tail() *logtail.Tail {
	return m.tail
}

// SetSize updates the content area dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the charts and the most recent log lines
func (m Model) View() string {
	samples := m.window.Snapshot()
	if len(samples) == 0 {
		return components.EmptyStateStyle.Render("Waiting for telemetry…")
	}

	last := samples[len(samples)-1]

	rows := make([]string, 0, len(allSeries)+components.MonitoringLogLines+3)
	for _, s := range allSeries {
		rows = append(rows, m.renderSeries(s, samples))
	}

	rows = append(rows, "", m.renderSource(last, len(samples)), "")
	rows = append(rows, m.renderLogs()...)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSeries(s series, samples []telemetry.Sample) string {
	values := make([]float64, len(samples))
	for i, sample := range samples {
		values[i] = s.pick(sample)
	}

	lo, hi := components.Bounds(values)
	current := values[len(values)-1]

	label := components.TitleStyle.Render(components.PadRight(s.label, components.MetricLabelWidth))
	value := components.PadRight(fmt.Sprintf("%.1f %s", current, s.unit), components.MetricValueWidth)
	chart := lipgloss.NewStyle().Foreground(components.MetricColors[s.key]).
		Render(components.Sparkline(values, m.chartWidth(), lo, hi))
	bounds := components.MutedStyle.Render(fmt.Sprintf(" %.1f–%.1f", lo, hi))

	return label + value + chart + bounds
}

func (m Model) renderSource(last telemetry.Sample, count int) string {
	text := fmt.Sprintf("%s • %d/%d samples • %s", last.Source, count, m.window.Cap(), last.Timestamp.Format("15:04:05"))

	if last.Source == telemetry.SourceLive {
		return components.MutedStyle.Render(text)
	}

	return components.SyntheticStyle.Render(text)
}

func (m Model) renderLogs() []string {
	entries := m.tail.Snapshot()
	if len(entries) > components.MonitoringLogLines {
		entries = entries[len(entries)-components.MonitoringLogLines:]
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, components.TitleStyle.Render("Recent logs"))

	if len(entries) == 0 {
		return append(lines, components.MutedStyle.Render("No log entries yet"))
	}

	for _, e := range entries {
		lines = append(lines, components.RenderEntry(e, m.width))
	}

	return lines
}

func (m Model) chartWidth() int {
	width := m.width - components.MetricLabelWidth - components.MetricValueWidth - 16
	if width < components.SparklineMinWidth {
		width = components.SparklineMinWidth
	}

	return min(width, m.window.Cap())
}

// Summary returns a one-line text of the latest reading, used by the header
func (m Model) Summary() string {
	last, ok := m.window.Last()
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%.0f%% • %.1f dB", last.SignalStrength, last.SNR)

	return b.String()
}
