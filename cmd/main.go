package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"metroems/internal/app"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := createApp(cfg, isConsoleCommand(os.Args[1:]))
	application.Run()
}

// isConsoleCommand reports whether the arguments open the TUI, which owns the terminal
func isConsoleCommand(args []string) bool {
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "init", "i", "demo-backend", "version", "help", "--help", "-h":
		return false
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return false
		}
	}

	return true
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, console bool) *fx.App {
	var logOutput io.Writer
	if console {
		logOutput = logger.ConsoleOutput(cfg)
	}

	return fx.New(
		fx.WithLogger(createFxLogger(cfg, console)),
		fx.Supply(cfg, logger.Output{Writer: logOutput}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, console bool) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel && !console {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
