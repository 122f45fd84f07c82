package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metroems/internal/app/logtail"
)

func Test_RenderEntry(t *testing.T) {
	entry := logtail.Entry{Time: "2026-10-18 12:00:00", Level: logtail.LevelWarn, Message: "RSSI below optimal threshold"}

	t.Run("fits", func(t *testing.T) {
		line := RenderEntry(entry, 120)

		assert.Contains(t, line, "2026-10-18 12:00:00")
		assert.Contains(t, line, "WARN")
		assert.Contains(t, line, "RSSI below optimal threshold")
	})

	t.Run("cut to width", func(t *testing.T) {
		line := RenderEntry(entry, LogTimeWidth+LogLevelWidth+2+6)

		assert.Contains(t, line, "RSSI …")
		assert.NotContains(t, line, "threshold")
	})
}
