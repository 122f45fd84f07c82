package logger

import (
	"io"

	"go.uber.org/fx"

	"metroems/internal/config"
)

// Output is the destination of log events, a nil writer meaning stdout
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)
