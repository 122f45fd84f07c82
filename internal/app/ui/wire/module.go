package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"metroems/internal/app/connection"
	"metroems/internal/app/livesync"
	"metroems/internal/app/monitor"
	"metroems/internal/app/ui/console"
	"metroems/internal/app/ui/navigation"
	"metroems/internal/app/watcher"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

// UI creates a Bubble Tea program for the console attached to a session id
type UI func(ctx context.Context, sessionID string) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	navigation.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Tracker   connection.Tracker
	Engine    *livesync.Engine
	Monitor   monitor.Monitor
	Watcher   watcher.Watcher
	Navigator navigation.Navigator
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context, sessionID string) (*tea.Program, error) {
		if err := params.Watcher.Start(ctx); err != nil {
			params.Logger.Warn().Err(err).Msg("Config watcher unavailable, session changes need a restart")
		}

		model := console.NewModel(ctx, sessionID, console.Deps{
			Config:    params.Config,
			Tracker:   params.Tracker,
			Engine:    params.Engine,
			Monitor:   params.Monitor,
			Watcher:   params.Watcher,
			Navigator: params.Navigator,
			Logger:    params.Logger,
		})

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
