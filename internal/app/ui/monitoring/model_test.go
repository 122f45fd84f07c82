package monitoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"metroems/internal/app/logtail"
	"metroems/internal/app/telemetry"
)

func Test_NewModel(t *testing.T) {
	m := NewModel(60, 500)

	assert.Equal(t, 60, m.Window().Cap())
	assert.Equal(t, 500, m.Tail().Limit())
	assert.Equal(t, 0, m.Window().Len())
}

func Test_View_Empty(t *testing.T) {
	m := NewModel(60, 500)

	assert.Contains(t, m.View(), "Waiting for telemetry")
	assert.Empty(t, m.Summary())
}

func Test_View_WithData(t *testing.T) {
	m := NewModel(60, 200)
	m.SetSize(120, 30)

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		m.Window().Push(telemetry.Sample{
			Timestamp:      now.Add(time.Duration(i) * time.Second),
			SignalStrength: 70 + float64(i),
			SNR:            41,
			TxMbps:         130,
			RxMbps:         110,
			Source:         telemetry.SourceSynthetic,
		})
	}

	for i := 0; i < 12; i++ {
		m.Tail().Append(logtail.Entry{Time: now.Format(logtail.TimeFormat), Level: logtail.LevelInfo, Message: "Link stable"})
	}

	view := m.View()

	assert.Contains(t, view, "Signal")
	assert.Contains(t, view, "74.0 %")
	assert.Contains(t, view, "SNR")
	assert.Contains(t, view, "synthetic")
	assert.Contains(t, view, "5/60 samples")
	assert.Contains(t, view, "Recent logs")
	assert.Contains(t, view, "Link stable")
	assert.Equal(t, "74% • 41.0 dB", m.Summary())
}

func Test_View_NoLogs(t *testing.T) {
	m := NewModel(60, 200)
	m.Window().Push(telemetry.Sample{SignalStrength: 75, Source: telemetry.SourceLive})

	assert.Contains(t, m.View(), "No log entries yet")
}

func Test_ChartWidth(t *testing.T) {
	m := NewModel(60, 200)

	m.SetSize(0, 0)
	assert.Equal(t, 10, m.chartWidth())

	m.SetSize(500, 0)
	assert.Equal(t, 60, m.chartWidth())
}
