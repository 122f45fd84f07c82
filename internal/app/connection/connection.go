//go:generate mockgen -source=connection.go -destination=connection_mock.go -package=connection
package connection

import (
	"context"
	"fmt"
	"time"

	"metroems/internal/app/device"
	"metroems/internal/app/errors"
	"metroems/internal/config"
	"metroems/internal/config/logger"
)

// State is whether a remote session is usable.
// It is decided by Establish and never changed by poll cycle failures.
type State struct {
	sessionID string
	connected bool
}

// Disconnected returns the state without a usable session
func Disconnected() State {
	return State{}
}

// Connected returns the state bound to a session
func Connected(sessionID string) State {
	return State{sessionID: sessionID, connected: true}
}

// IsConnected reports whether a session is usable
func (s State) IsConnected() bool {
	return s.connected
}

// SessionID returns the bound session, empty when disconnected
func (s State) SessionID() string {
	return s.sessionID
}

// String returns the display label
func (s State) String() string {
	if !s.connected {
		return "Disconnected"
	}

	return fmt.Sprintf("Connected(%s)", s.sessionID)
}

// Result is the outcome of establishing a connection.
// Reason holds why the state stayed Disconnected after a probe.
type Result struct {
	State         State
	Health        device.Health
	Session       device.Session
	Configuration device.Configuration
	Notice        error
	Reason        error
}

// Tracker probes the boundary and resolves the session for a consuming view
type Tracker interface {
	Establish(ctx context.Context, sessionID string, previous *device.Configuration) Result
}

type tracker struct {
	client        device.Client
	healthTimeout time.Duration
	timeout       time.Duration
	log           logger.Logger
}

// NewTracker creates a connection tracker
func NewTracker(cfg *config.Config, client device.Client, log logger.Logger) Tracker {
	return &tracker{
		client:        client,
		healthTimeout: cfg.Backend.HealthTimeout,
		timeout:       cfg.Backend.Timeout,
		log:           log.WithComponent("CONNECTION"),
	}
}

// Establish runs a bounded health probe and, when healthy, loads the session.
// A session load failure keeps the connection and reports a notice instead.
func (t *tracker) Establish(ctx context.Context, sessionID string, previous *device.Configuration) Result {
	result := Result{
		State:         Disconnected(),
		Configuration: device.DefaultConfiguration(),
	}

	if previous != nil {
		result.Configuration = *previous
	}

	probeCtx, cancel := context.WithTimeout(ctx, t.healthTimeout)
	defer cancel()

	health, err := t.client.Health(probeCtx)
	if err != nil {
		result.Reason = err
		t.log.Info().Err(err).Msg("Backend unreachable, running on synthetic data")

		return result
	}

	result.Health = health

	if !health.Healthy() {
		result.Reason = fmt.Errorf("%w: status '%s'", errors.ErrBackendUnhealthy, health.Status)
		t.log.Info().Err(result.Reason).Msg("Backend unhealthy, running on synthetic data")

		return result
	}

	if sessionID == "" {
		t.log.Info().Msg("No session id, running on synthetic data")
		return result
	}

	result.State = Connected(sessionID)

	loadCtx, cancelLoad := context.WithTimeout(ctx, t.timeout)
	defer cancelLoad()

	session, err := t.client.Session(loadCtx, sessionID)
	if err != nil {
		result.Notice = fmt.Errorf("%w: %w", errors.ErrSessionLoad, err)
		t.log.Error().Err(err).Msgf("Failed to load session '%s'", sessionID)

		return result
	}

	result.Session = session

	configuration, err := t.client.Configuration(loadCtx, sessionID)
	if err != nil {
		result.Notice = fmt.Errorf("%w: %w", errors.ErrSessionLoad, err)
		t.log.Error().Err(err).Msgf("Failed to load configuration for session '%s'", sessionID)

		return result
	}

	result.Configuration = configuration

	t.log.Info().Msgf("Connected to session '%s'", sessionID)

	return result
}
