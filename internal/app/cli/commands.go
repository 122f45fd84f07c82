package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"metroems/internal/app/generator"
	"metroems/internal/config"
)

// initFlags holds flag values for the init command
type initFlags struct {
	force      bool
	dryRun     bool
	path       string
	backendURL string
	sessionID  string
}

// buildCommands assembles the command tree
func (c *cli) buildCommands() *cobra.Command {
	root := c.buildRootCommand()
	root.AddCommand(
		c.buildConsoleCommand(),
		c.buildInitCommand(),
		c.buildDemoBackendCommand(),
		c.buildVersionCommand(),
	)

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), renderHelp(cmd))
	})

	return root
}

// buildRootCommand creates the root command, which opens the console
func (c *cli) buildRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           config.AppName + " [session-id]",
		Short:         config.AppDescription,
		Long:          config.AppDescription + ".\nWithout a command the console opens; without a session id it runs on synthetic data.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConsole(cmd.Context(), firstArg(args))
		},
	}
}

// buildConsoleCommand creates the console subcommand
func (c *cli) buildConsoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "console [session-id]",
		Aliases: []string{"c"},
		Short:   "Open the monitoring console",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConsole(cmd.Context(), firstArg(args))
		},
	}
}

// buildInitCommand creates the init subcommand
func (c *cli) buildInitCommand() *cobra.Command {
	defaults := generator.DefaultOptions()

	var flags initFlags

	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate " + config.FileName + " template",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generator.Options{
				Path:       flags.path,
				BackendURL: flags.backendURL,
				SessionID:  flags.sessionID,
			}

			return c.runInit(opts, flags.force, flags.dryRun)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "d", false, "Print the template instead of writing it")
	cmd.Flags().StringVarP(&flags.path, "output", "o", defaults.Path, "Path of the generated file")
	cmd.Flags().StringVar(&flags.backendURL, "backend-url", defaults.BackendURL, "Device-session backend url")
	cmd.Flags().StringVar(&flags.sessionID, "session", defaults.SessionID, "Device session id to attach to")

	return cmd
}

// buildDemoBackendCommand creates the demo-backend subcommand
func (c *cli) buildDemoBackendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo-backend",
		Short: "Serve a demo device-session backend on " + c.cfg.Demo.Addr,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemoBackend(cmd.Context())
		},
	}
}

// buildVersionCommand creates the version subcommand
func (c *cli) buildVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVersion()
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
