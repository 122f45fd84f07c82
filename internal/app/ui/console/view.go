package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"metroems/internal/app/ui/components"
	"metroems/internal/app/ui/navigation"
)

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(m.ui.width, m.renderTitle(), m.renderStatus()),
		m.renderDetails(),
		m.renderContent(),
		components.RenderFooter(m.ui.width, m.renderAppStats(), m.renderHelp(), m.renderTip()),
	)
}

// renderTitle renders the tab bar with the active view highlighted
func (m Model) renderTitle() string {
	current := m.navigator.CurrentView()

	tabs := make([]string, 0, 2)
	for _, view := range []navigation.View{navigation.ViewMonitoring, navigation.ViewLogs} {
		if view == current {
			tabs = append(tabs, components.TitleStyle.Render(view.String()))
		} else {
			tabs = append(tabs, components.MutedStyle.Render(view.String()))
		}
	}

	return strings.Join(tabs, components.MutedStyle.Render(" │ "))
}

// renderStatus renders the live indicator, connection label and operator
func (m Model) renderStatus() string {
	if m.state.establishing {
		return components.MutedStyle.Render("Connecting…")
	}

	label := components.DisconnectedStyle.Render(m.state.connection.String())
	indicator := m.ui.blink.Render(components.SyntheticStyle)

	if m.state.connection.IsConnected() {
		label = components.ConnectedStyle.Render(m.state.connection.String())
		indicator = m.ui.blink.Render(components.PulseStyle)
	}

	parts := []string{indicator + " " + label}

	if operator := m.renderOperator(); operator != "" {
		parts = append(parts, operator)
	}

	return strings.Join(parts, components.MutedStyle.Render(" • "))
}

// renderOperator shows who the bearer token belongs to
func (m Model) renderOperator() string {
	if !m.state.hasOperator || m.state.operator.Name == "" {
		return ""
	}

	op := m.state.operator
	text := op.Name
	if op.Role != "" {
		text = fmt.Sprintf("%s (%s)", op.Name, op.Role)
	}

	if op.Expired(time.Now()) {
		return components.NoticeStyle.Render(text + " token expired")
	}

	return components.MutedStyle.Render(text)
}

// renderDetails renders the device configuration line, replaced by notices when present
func (m Model) renderDetails() string {
	var line string

	switch {
	case m.state.notice != nil:
		line = components.NoticeStyle.Render(m.state.notice.Error())
	case m.state.reloadErr != nil:
		line = components.NoticeStyle.Render(fmt.Sprintf("config reload failed: %v", m.state.reloadErr))
	default:
		c := m.state.configuration
		fields := []string{c.SystemName, c.SSID, "ch " + c.Channel, c.Bandwidth, c.RadioMode}

		if c.IPAddress != "" {
			fields = append(fields, c.IPAddress)
		}

		if m.navigator.CurrentView() == navigation.ViewMonitoring {
			if summary := m.views.monitoring.Summary(); summary != "" {
				fields = append(fields, summary)
			}
		} else {
			fields = append(fields, m.views.logs.Status())
		}

		line = components.MutedStyle.Render(strings.Join(fields, " • "))
	}

	return components.RenderContent(components.Truncate(line, max(0, m.ui.width-2*components.ContentPaddingX)))
}

// renderContent renders the active view
func (m Model) renderContent() string {
	height := m.contentHeight()

	var content string
	if m.state.establishing {
		content = components.EmptyStateStyle.Render("Probing backend…")
	} else if m.navigator.CurrentView() == navigation.ViewLogs {
		content = m.views.logs.View()
	} else {
		content = m.views.monitoring.View()
	}

	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(content)
}

// renderAppStats renders the console's own CPU and memory usage
func (m Model) renderAppStats() string {
	if m.state.stats.CPU == 0 && m.state.stats.MEM == 0 {
		return ""
	}

	return fmt.Sprintf("cpu %s • mem %s", formatCPU(m.state.stats.CPU), formatMEM(m.state.stats.MEM))
}

// renderHelp renders the key bindings of the active view
func (m Model) renderHelp() string {
	if m.navigator.CurrentView() != navigation.ViewLogs {
		return m.ui.help.View(m.ui.keys)
	}

	keys := m.views.logs.Keys()
	if m.views.logs.Capturing() {
		return m.ui.help.ShortHelpView(keys.FilterHelp())
	}

	return m.ui.help.View(keys)
}

// renderTip returns the current rotating tip or empty string if tips disabled
func (m Model) renderTip() string {
	if !m.ui.showTips {
		return ""
	}

	return components.Tip(m.ui.tipOffset, m.ui.tickCounter)
}

// formatCPU formats a CPU percentage value
func formatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// formatMEM formats a memory value in MB or GB
func formatMEM(mem float64) string {
	if mem < components.MBToGB {
		return fmt.Sprintf("%.0fMB", mem)
	}

	return fmt.Sprintf("%.1fGB", mem/components.MBToGB)
}
