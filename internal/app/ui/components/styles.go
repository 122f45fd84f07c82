package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	HeaderStyle = lipgloss.NewStyle().
			MarginBottom(1)

	FooterStyle = lipgloss.NewStyle().
			MarginTop(1)

	FooterHelpStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	ContentStyle = lipgloss.NewStyle().
			Padding(0, ContentPaddingX)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(LogSeparatorColor)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// TimestampStyle for timestamp text
	TimestampStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(1)

	ConnectedStyle = lipgloss.NewStyle().
			Foreground(FgConnected).
			Bold(true)

	DisconnectedStyle = lipgloss.NewStyle().
				Foreground(FgError).
				Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(FgWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	InfoLevelStyle = lipgloss.NewStyle().
			Foreground(FgConnected)

	WarnLevelStyle = lipgloss.NewStyle().
			Foreground(FgWarning).
			Bold(true)

	ErrorLevelStyle = lipgloss.NewStyle().
			Foreground(FgError).
			Bold(true)

	SyntheticStyle = lipgloss.NewStyle().
			Foreground(FgSynthetic).
			Italic(true)

	PulseStyle = lipgloss.NewStyle().
			Foreground(FgConnected)
)

// LevelStyle returns the style for a log level label
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "WARN":
		return WarnLevelStyle
	case "ERROR":
		return ErrorLevelStyle
	default:
		return InfoLevelStyle
	}
}
