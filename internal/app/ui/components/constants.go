package components

import "time"

// UI timing constants
const (
	// UITickInterval is the animation tick rate
	UITickInterval = 100 * time.Millisecond

	UITicksPerSecond = int(time.Second / UITickInterval)

	TipRotationTicks = 80
)

// RowHeight converts viewport rows to the pixel distances the follow controller works in
const RowHeight = 16

// Generic layout constants
const (
	HeaderHeight    = 2
	FooterHeight    = 3
	MinPanelHeight  = 6
	ContentPaddingX = 2
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Monitoring view constants
const (
	SparklineMinWidth  = 10
	MetricLabelWidth   = 10
	MetricValueWidth   = 12
	MonitoringLogLines = 8
)

// Logs view constants
const (
	LogTimeWidth         = 23
	LogLevelWidth        = 5
	DefaultViewportWidth = 80
)

// MBToGB converts megabytes for the footer memory readout
const MBToGB = 1024
