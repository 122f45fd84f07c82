package cli

import (
	"go.uber.org/fx"

	"metroems/internal/app/demo"
)

// Module provides the fx dependency injection options for the cli package
var Module = fx.Options(
	fx.Provide(
		NewCLI,
		func(server *demo.Server) Backend { return server },
	),
)
