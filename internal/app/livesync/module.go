package livesync

import (
	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the livesync package
var Module = fx.Options(
	fx.Provide(NewEngine),
)
