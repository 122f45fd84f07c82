//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"metroems/internal/app/errors"
	"metroems/internal/app/generator"
	"metroems/internal/app/ui/wire"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// Backend is a long running server stopped by context cancellation
type Backend interface {
	Run(ctx context.Context) error
}

// Params contains the dependencies of the cli
type Params struct {
	fx.In

	Config    *config.Config
	UI        wire.UI
	Generator generator.Generator
	Backend   Backend
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	cfg        *config.Config
	ui         wire.UI
	generator  generator.Generator
	backend    Backend
	args       []string
	out        io.Writer
	errOut     io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance reading the process arguments
func NewCLI(p Params) CLI {
	return &cli{
		cfg:        p.Config,
		ui:         p.UI,
		generator:  p.Generator,
		backend:    p.Backend,
		args:       os.Args[1:],
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: stdoutIsTerminal,
		log:        p.Logger.WithComponent("CLI"),
	}
}

// Execute parses the arguments, runs the selected command and returns the exit code
func (c *cli) Execute() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := c.buildCommands()
	root.SetArgs(c.args)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintf(c.errOut, "%s %v\n", errorLabel.Render("Error:"), err)

		return 1, err
	}

	return 0, nil
}

// runConsole starts the TUI attached to the given session id, or the configured one when empty
func (c *cli) runConsole(ctx context.Context, sessionID string) error {
	if !c.isTerminal() {
		return errors.ErrNotATerminal
	}

	if sessionID == "" {
		sessionID = c.cfg.Session.ID
	}

	c.log.Debug().Msgf("Starting console for session '%s'", sessionID)

	program, err := c.ui(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("console exited: %w", err)
	}

	return nil
}

// runInit writes a metroems.yaml template
func (c *cli) runInit(opts generator.Options, force, dryRun bool) error {
	c.log.Debug().Msgf("Generating %s (force=%t, dry-run=%t)", opts.Path, force, dryRun)

	if err := c.generator.Generate(opts, force, dryRun); err != nil {
		return err
	}

	if !dryRun {
		fmt.Fprintf(c.out, "%s %s\n", successLabel.Render("Created"), opts.Path)
	}

	return nil
}

// runDemoBackend serves the demo boundary until interrupted
func (c *cli) runDemoBackend(ctx context.Context) error {
	c.log.Info().Msg("Starting demo backend")

	return c.backend.Run(ctx)
}

// runVersion prints the application title and version
func (c *cli) runVersion() error {
	fmt.Fprintln(c.out, RenderTitle())

	return nil
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}
