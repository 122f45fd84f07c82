package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Attach to a session with ") + tipKey("metroems console 1"),
	tipDesc("Edit ") + tipKey("session.id") + tipDesc(" in metroems.yaml to switch sessions live"),
	tipDesc("Try the console offline with ") + tipKey("metroems demo-backend"),
	tipDesc("Press ") + tipKey("/") + tipDesc(" in the logs view to filter with a glob"),
	tipDesc("Scroll up to pause following, press ") + tipKey("G") + tipDesc(" to jump back"),
	tipDesc("Press ") + tipKey("ctrl+r") + tipDesc(" to clear the logs view"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}

// Tip returns the tip shown at the given tick, rotating every TipRotationTicks
func Tip(offset, tick int) string {
	if len(Tips) == 0 {
		return ""
	}

	return Tips[(offset+tick/TipRotationTicks)%len(Tips)]
}
