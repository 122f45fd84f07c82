package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"

	"metroems/internal/config"
	"metroems/internal/config/logger"
)

func Test_LoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, config.BackendURL, cfg.Backend.URL)
	assert.Equal(t, config.PollInterval, cfg.Poll.Interval)
}

func Test_CreateApp(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		console bool
	}{
		{name: "Creates app with info level logging and TUI", level: logger.InfoLevel, console: true},
		{name: "Creates app with debug level logging without TUI", level: logger.DebugLevel, console: false},
		{name: "Creates app with error level logging", level: logger.ErrorLevel, console: true},
		{name: "Creates app with warn level logging", level: logger.WarnLevel, console: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			app := createApp(cfg, tt.console)

			require.NotNil(t, app)
			assert.NoError(t, app.Err())
		})
	}
}

func Test_IsConsoleCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "No args opens the console", args: []string{}, expected: true},
		{name: "Session id opens the console", args: []string{"42"}, expected: true},
		{name: "Console command", args: []string{"console", "7"}, expected: true},
		{name: "Init", args: []string{"init", "--force"}, expected: false},
		{name: "Init alias", args: []string{"i"}, expected: false},
		{name: "Demo backend", args: []string{"demo-backend"}, expected: false},
		{name: "Version", args: []string{"version"}, expected: false},
		{name: "Help flag", args: []string{"--help"}, expected: false},
		{name: "Help for a subcommand", args: []string{"console", "-h"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isConsoleCommand(tt.args))
		})
	}
}

func Test_CreateFxLogger(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		console      bool
		expectedType interface{}
	}{
		{name: "Debug level returns console logger", level: logger.DebugLevel, expectedType: &fxevent.ConsoleLogger{}},
		{name: "Debug level in the console stays quiet", level: logger.DebugLevel, console: true, expectedType: fxevent.NopLogger},
		{name: "Info level returns nop logger", level: logger.InfoLevel, expectedType: fxevent.NopLogger},
		{name: "Warn level returns nop logger", level: logger.WarnLevel, expectedType: fxevent.NopLogger},
		{name: "Error level returns nop logger", level: logger.ErrorLevel, expectedType: fxevent.NopLogger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level

			loggerFunc := createFxLogger(cfg, tt.console)
			require.NotNil(t, loggerFunc)

			assert.IsType(t, tt.expectedType, loggerFunc())
		})
	}
}
