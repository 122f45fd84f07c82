package connection

import (
	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the connection package
var Module = fx.Options(
	fx.Provide(NewTracker),
)
