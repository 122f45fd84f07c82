package synthetic

import (
	"go.uber.org/fx"
)

// Module provides the fx dependency injection options for the synthetic package
var Module = fx.Options(
	fx.Provide(NewGenerator),
)
