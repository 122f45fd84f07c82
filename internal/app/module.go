package app

import (
	"go.uber.org/fx"

	"metroems/internal/app/cli"
	"metroems/internal/app/connection"
	"metroems/internal/app/demo"
	"metroems/internal/app/device"
	"metroems/internal/app/generator"
	"metroems/internal/app/livesync"
	"metroems/internal/app/monitor"
	"metroems/internal/app/synthetic"
	"metroems/internal/app/ui"
	"metroems/internal/app/watcher"
	"metroems/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	connection.Module,
	demo.Module,
	device.Module,
	generator.Module,
	livesync.Module,
	logger.Module,
	monitor.Module,
	synthetic.Module,
	ui.Module,
	watcher.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
