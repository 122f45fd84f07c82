package components

import (
	"metroems/internal/app/logtail"
)

// RenderEntry renders one log line as: <time> <LEVEL> <message>, cut to width cells
func RenderEntry(entry logtail.Entry, width int) string {
	line := TimestampStyle.Render(PadRight(entry.Time, LogTimeWidth)) + " " +
		LevelStyle(string(entry.Level)).Render(PadRight(string(entry.Level), LogLevelWidth)) + " "

	if width <= 0 {
		width = DefaultViewportWidth
	}

	room := width - LogTimeWidth - LogLevelWidth - 2

	return line + Truncate(entry.Message, room)
}
