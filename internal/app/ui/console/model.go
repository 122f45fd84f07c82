package console

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"metroems/internal/app/connection"
	"metroems/internal/app/device"
	"metroems/internal/app/livesync"
	"metroems/internal/app/monitor"
	"metroems/internal/app/poller"
	"metroems/internal/app/ui/components"
	"metroems/internal/app/ui/logs"
	"metroems/internal/app/ui/monitoring"
	"metroems/internal/app/ui/navigation"
	"metroems/internal/app/watcher"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

// Deps are the collaborators the console drives
type Deps struct {
	Config    *config.Config
	Tracker   connection.Tracker
	Engine    *livesync.Engine
	Monitor   monitor.Monitor
	Watcher   watcher.Watcher
	Navigator navigation.Navigator
	Logger    logger.Logger
}

// Model is the root bubbletea model hosting the monitoring and logs tabs
type Model struct {
	ctx       context.Context
	cfg       *config.Config
	tracker   connection.Tracker
	engine    *livesync.Engine
	monitor   monitor.Monitor
	watcher   watcher.Watcher
	navigator navigation.Navigator
	pollers   map[navigation.View]*poller.Scheduler

	state struct {
		sessionID     string
		seq           uint64
		establishing  bool
		loaded        bool
		connection    connection.State
		health        device.Health
		configuration device.Configuration
		notice        error
		reloadErr     error
		operator      device.Operator
		hasOperator   bool
		stats         monitor.Stats
	}

	views struct {
		monitoring monitoring.Model
		logs       logs.Model
	}

	ui struct {
		width       int
		height      int
		ready       bool
		tickCounter int
		showTips    bool
		tipOffset   int
		keys        components.KeyMap
		help        help.Model
		blink       *components.Blink
	}

	log logger.Logger
}

// NewModel creates the console for a session id, empty meaning demo mode
func NewModel(ctx context.Context, sessionID string, deps Deps) Model {
	log := deps.Logger.WithComponent("UI")

	m := Model{
		ctx:       ctx,
		cfg:       deps.Config,
		tracker:   deps.Tracker,
		engine:    deps.Engine,
		monitor:   deps.Monitor,
		watcher:   deps.Watcher,
		navigator: deps.Navigator,
		log:       log,
	}

	interval, timeout := deps.Config.Poll.Interval, deps.Config.Backend.Timeout
	idle := deps.Engine.Cycle(connection.Disconnected(), false, false)

	m.pollers = map[navigation.View]*poller.Scheduler{
		navigation.ViewMonitoring: poller.NewScheduler(ctx, navigation.ViewMonitoring.String(), interval, timeout, idle, log),
		navigation.ViewLogs:       poller.NewScheduler(ctx, navigation.ViewLogs.String(), interval, timeout, idle, log),
	}

	m.state.sessionID = sessionID
	m.state.establishing = true
	m.state.connection = connection.Disconnected()
	m.state.configuration = device.DefaultConfiguration()

	if op, err := device.ParseOperator(deps.Config.Backend.Token); err == nil {
		m.state.operator = op
		m.state.hasOperator = true
	}

	m.ui.showTips = true
	m.ui.tipOffset = rand.IntN(len(components.Tips)) //nolint:gosec // not security-critical
	m.ui.keys = components.DefaultKeyMap()
	m.ui.keys.SwitchView.SetHelp("tab", "logs")
	m.ui.help = help.New()
	m.ui.blink = components.NewBlink()

	m.views.monitoring = monitoring.NewModel(deps.Config.Telemetry.Window, deps.Config.Logs.DemoLimit)
	m.views.logs = logs.NewModel(deps.Config.Logs.DemoLimit, deps.Config.Logs.FollowThreshold, log)

	log.Debug().Msgf("Created console model for session '%s'", sessionID)

	return m
}

// Init establishes the connection and starts the background commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		establishCmd(m.ctx, m.tracker, m.state.seq, m.state.sessionID, nil),
		waitForChangeCmd(m.ctx, m.watcher.Changes()),
		monitor.Tick(m.ctx, m.monitor, config.StatsInterval),
		tickCmd(),
	)
}

// monitoringLimit is the tail size for the monitoring tab's recent logs
func (m Model) monitoringLimit() int {
	if m.state.connection.IsConnected() {
		return m.cfg.Logs.ConnectedLimit
	}

	return m.cfg.Logs.DemoLimit
}

// logsLimit is the tail size for the logs tab, unlimited while connected
func (m Model) logsLimit() int {
	if m.state.connection.IsConnected() {
		return m.cfg.Logs.FullLimit
	}

	return m.cfg.Logs.DemoLimit
}

// contentHeight is the space left for the active view
func (m Model) contentHeight() int {
	footer := components.FooterHeight
	if !m.ui.showTips {
		footer--
	}

	return max(components.MinPanelHeight, m.ui.height-components.HeaderHeight-footer)
}

// activate recreates the active view's buffers and restarts its scheduler; the other scheduler stops
func (m *Model) activate() tea.Cmd {
	current := m.navigator.CurrentView()

	for view, s := range m.pollers {
		if view != current {
			s.Stop()
		}
	}

	var cycle poller.Cycle

	switch current {
	case navigation.ViewLogs:
		m.views.logs = logs.NewModel(m.logsLimit(), m.cfg.Logs.FollowThreshold, m.log)
		m.views.logs.SetSize(m.ui.width, m.contentHeight())
		cycle = m.engine.Cycle(m.state.connection, false, true)
	default:
		m.views.monitoring = monitoring.NewModel(m.cfg.Telemetry.Window, m.monitoringLimit())
		m.views.monitoring.SetSize(m.ui.width, m.contentHeight())
		cycle = m.engine.Cycle(m.state.connection, true, true)
	}

	m.log.Debug().Msgf("Activated %s view (%s)", current, m.state.connection)

	return m.pollers[current].Restart(cycle)
}

// stopPolling halts every scheduler
func (m *Model) stopPolling() {
	for _, s := range m.pollers {
		s.Stop()
	}
}
