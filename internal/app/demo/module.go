package demo

import (
	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the demo package
var Module = fx.Options(
	fx.Provide(NewServer),
)
