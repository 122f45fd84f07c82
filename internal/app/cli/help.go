package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"metroems/internal/config"
)

const commandColumn = 28

// examples shown below the command list of the root help
var examples = [][2]string{
	{config.AppName, "Open the console for the configured session"},
	{config.AppName + " console 42", "Attach to device session 42"},
	{config.AppName + " init --session 1", "Write " + config.FileName},
	{config.AppName + " demo-backend", "Serve a demo backend to attach to"},
}

// renderHelp renders usage, commands and flags of a command
func renderHelp(cmd *cobra.Command) string {
	sections := []string{RenderTitle()}

	sections = append(sections,
		sectionHeader.Render("Usage:"),
		bodyMedium.Render("  "+commandName.Render(cmd.UseLine())),
	)

	if commands := availableCommands(cmd); len(commands) > 0 {
		lines := make([]string, 0, len(commands))
		for _, sub := range commands {
			lines = append(lines, row(commandName, sub.Name(), sub.Short))
		}

		sections = append(sections, sectionHeader.Render("Commands:"), lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	if flags := strings.TrimRight(cmd.LocalFlags().FlagUsages(), "\n"); flags != "" {
		sections = append(sections, sectionHeader.Render("Flags:"), bodyMedium.Render(flags))
	}

	if !cmd.HasParent() {
		lines := make([]string, 0, len(examples))
		for _, example := range examples {
			lines = append(lines, row(exampleCode, example[0], example[1]))
		}

		sections = append(sections, sectionHeader.Render("Examples:"), lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func availableCommands(cmd *cobra.Command) []*cobra.Command {
	var commands []*cobra.Command

	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			commands = append(commands, sub)
		}
	}

	return commands
}

func row(style lipgloss.Style, name, description string) string {
	return bodyMedium.Render(fmt.Sprintf("  %s%s%s",
		style.Render(name),
		strings.Repeat(" ", max(1, commandColumn-lipgloss.Width(name))),
		description,
	))
}
