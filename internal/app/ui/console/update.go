package console

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"metroems/internal/app/connection"
	"metroems/internal/app/device"
	"metroems/internal/app/livesync"
	"metroems/internal/app/monitor"
	"metroems/internal/app/poller"
	"metroems/internal/app/ui/components"
	"metroems/internal/app/ui/navigation"
	"metroems/internal/app/watcher"
	"metroems/internal/config"
)

// Tick timing constants
const (
	tickInterval       = components.UITickInterval
	tickCounterMaximum = 1000000
)

// establishedMsg carries a connection result tagged with the request sequence
type establishedMsg struct {
	seq    uint64
	result connection.Result
}

// changeMsg wraps a config watcher change
type changeMsg watcher.Change

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.navigator.CurrentView() != navigation.ViewLogs {
			return m, nil
		}

		var cmd tea.Cmd

		m.views.logs, cmd = m.views.logs.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.ready = true
		m.resize()

		return m, nil

	case establishedMsg:
		return m.handleEstablished(msg)

	case poller.TickMsg:
		if s, ok := m.scheduler(msg.Name); ok {
			return m, s.HandleTick(msg)
		}

		return m, nil

	case poller.DoneMsg:
		return m.handleDone(msg), nil

	case changeMsg:
		return m.handleChange(watcher.Change(msg))

	case monitor.StatsMsg:
		if msg.Err != nil {
			m.log.Debug().Err(msg.Err).Msg("Failed to sample process stats")
		} else {
			m.state.stats = msg.Stats
		}

		return m, monitor.Tick(m.ctx, m.monitor, config.StatsInterval)

	case tickMsg:
		m.ui.tickCounter++
		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.ui.blink.Update()

		return m, tickCmd()
	}

	return m, nil
}

// handleKeyPress processes keyboard input; the logs view keeps keys while its filter is open
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		m.log.Warn().Msg("TUI: Force quit requested")
		m.stopPolling()

		return m, tea.Quit
	}

	current := m.navigator.CurrentView()
	capturing := current == navigation.ViewLogs && m.views.logs.Capturing()

	if !capturing {
		switch {
		case key.Matches(msg, m.ui.keys.Quit):
			m.log.Info().Msg("TUI: Quit requested")
			m.stopPolling()

			return m, tea.Quit

		case key.Matches(msg, m.ui.keys.SwitchView):
			m.navigator.Toggle()

			if m.state.establishing {
				return m, nil
			}

			return m, m.activate()

		case key.Matches(msg, m.ui.keys.ToggleTips):
			m.ui.showTips = !m.ui.showTips
			m.resize()

			return m, nil
		}
	}

	if current != navigation.ViewLogs {
		return m, nil
	}

	var cmd tea.Cmd

	m.views.logs, cmd = m.views.logs.Update(msg)

	return m, cmd
}

// handleEstablished applies the newest connection result and starts polling the active view
func (m Model) handleEstablished(msg establishedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.state.seq {
		m.log.Debug().Msgf("Ignoring stale connection result #%d", msg.seq)
		return m, nil
	}

	result := msg.result

	m.state.establishing = false
	m.state.connection = result.State
	m.state.health = result.Health
	m.state.configuration = result.Configuration
	m.state.notice = result.Notice

	if result.State.IsConnected() && result.Notice == nil {
		m.state.loaded = true
	}

	m.ui.blink.Start()

	return m, m.activate()
}

// handleDone applies a finished cycle to the active view's buffers
func (m Model) handleDone(msg poller.DoneMsg) Model {
	s, ok := m.scheduler(msg.Name)
	if !ok || !s.HandleDone(msg) {
		return m
	}

	result, ok := msg.Result.(livesync.Result)
	if !ok {
		return m
	}

	var outcome livesync.Outcome

	switch m.navigator.CurrentView() {
	case navigation.ViewLogs:
		outcome = m.engine.Apply(result, nil, m.views.logs.Tail())
		if outcome.Mutated() {
			m.views.logs.Refresh()
		}
	default:
		outcome = m.engine.Apply(result, m.views.monitoring.Window(), m.views.monitoring.Tail())
	}

	if outcome.Mutated() {
		m.ui.blink.Beat()
	}

	return m
}

// handleChange re-establishes the connection when the configured session id changes
func (m Model) handleChange(change watcher.Change) (tea.Model, tea.Cmd) {
	wait := waitForChangeCmd(m.ctx, m.watcher.Changes())

	if change.Err != nil {
		m.state.reloadErr = change.Err
		return m, wait
	}

	m.state.reloadErr = nil

	if change.Recovered || change.SessionID == m.state.sessionID {
		return m, wait
	}

	m.log.Info().Msgf("Switching from session '%s' to '%s'", m.state.sessionID, change.SessionID)

	var previous *device.Configuration
	if m.state.loaded {
		cfg := m.state.configuration
		previous = &cfg
	}

	m.stopPolling()
	m.state.seq++
	m.state.sessionID = change.SessionID
	m.state.establishing = true

	return m, tea.Batch(
		establishCmd(m.ctx, m.tracker, m.state.seq, change.SessionID, previous),
		wait,
	)
}

func (m *Model) resize() {
	height := m.contentHeight()

	m.views.monitoring.SetSize(m.ui.width, height)
	m.views.logs.SetSize(m.ui.width, height)
}

func (m Model) scheduler(name string) (*poller.Scheduler, bool) {
	for _, s := range m.pollers {
		if s.Name() == name {
			return s, true
		}
	}

	return nil, false
}

// establishCmd probes the boundary off the UI goroutine
func establishCmd(ctx context.Context, tracker connection.Tracker, seq uint64, sessionID string, previous *device.Configuration) tea.Cmd {
	return func() tea.Msg {
		return establishedMsg{seq: seq, result: tracker.Establish(ctx, sessionID, previous)}
	}
}

// waitForChangeCmd returns a command that waits for the next config change
func waitForChangeCmd(ctx context.Context, changes <-chan watcher.Change) tea.Cmd {
	return func() tea.Msg {
		select {
		case change := <-changes:
			return changeMsg(change)
		case <-ctx.Done():
			return nil
		}
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
