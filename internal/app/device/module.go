package device

import (
	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the device package
var Module = fx.Options(
	fx.Provide(NewClient),
)
