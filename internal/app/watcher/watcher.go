//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"metroems/internal/config"
	"metroems/internal/config/logger"
)

// Change reports a reloaded configuration whose session id differs from the last one seen.
// Recovered marks the first good reload after a failure that kept the same session id.
type Change struct {
	SessionID string
	Config    *config.Config
	Err       error
	Recovered bool
}

// Loader reads the configuration file at path
type Loader func(path string) (*config.Config, error)

// Watcher follows the configuration file and reports session id changes
type Watcher interface {
	Start(ctx context.Context) error
	Changes() <-chan Change
	Close()
}

type manager struct {
	path      string
	dir       string
	load      Loader
	matcher   Matcher
	debouncer Debouncer
	fsWatcher *fsnotify.Watcher
	changes   chan Change
	last      string
	failed    bool
	log       logger.Logger
	mu        sync.Mutex
	started   bool
	closed    bool
}

// NewWatcher creates a Watcher for metroems.yaml in the working directory
func NewWatcher(cfg *config.Config, log logger.Logger) (Watcher, error) {
	return NewWatcherFor(config.FileName, cfg.Session.ID, config.LoadFile, config.ConfigWatchDebounce, log)
}

// NewWatcherFor creates a Watcher for an explicit file, baseline session id, loader and debounce delay
func NewWatcherFor(path, sessionID string, load Loader, delay time.Duration, log logger.Logger) (Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	matcher, err := NewMatcher(filepath.Base(abs), config.EnvFile)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	m := &manager{
		path:      abs,
		dir:       filepath.Dir(abs),
		load:      load,
		matcher:   matcher,
		fsWatcher: fsw,
		changes:   make(chan Change, 1),
		last:      sessionID,
		log:       log.WithComponent("WATCHER"),
	}

	m.debouncer = NewDebouncer(delay, m.reload)

	return m, nil
}

// Start watches the directory holding the config file, so editors that replace the file are followed
func (m *manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.started {
		return nil
	}

	if err := m.fsWatcher.Add(m.dir); err != nil {
		return err
	}

	m.started = true
	m.log.Info().Msgf("Watching %s for session changes", m.path)

	go m.processEvents(ctx)

	return nil
}

// Changes delivers session id changes and reload failures
func (m *manager) Changes() <-chan Change {
	return m.changes
}

// Close stops watching and releases resources
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true
	m.debouncer.Stop()
	m.fsWatcher.Close()
}

func (m *manager) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			m.Close()
			return
		case event, ok := <-m.fsWatcher.Events:
			if !ok {
				return
			}

			m.handleEvent(event)
		case err, ok := <-m.fsWatcher.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (m *manager) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if filepath.Dir(event.Name) != m.dir {
		return
	}

	if name := filepath.Base(event.Name); m.matcher.Match(name) {
		m.debouncer.Trigger(name)
	}
}

func (m *manager) reload(names []string) {
	cfg, err := m.load(m.path)
	if err != nil {
		m.log.Warn().Err(err).Msgf("Failed to reload configuration after change to %v", names)

		m.mu.Lock()
		m.failed = true
		m.mu.Unlock()

		m.emit(Change{Err: err})

		return
	}

	m.mu.Lock()
	recovered := m.failed
	m.failed = false

	if cfg.Session.ID == m.last {
		m.mu.Unlock()

		if recovered {
			m.log.Info().Msg("Configuration reloaded after failure")
			m.emit(Change{SessionID: cfg.Session.ID, Config: cfg, Recovered: true})
		}

		return
	}

	m.last = cfg.Session.ID
	m.mu.Unlock()

	m.log.Info().Msgf("Session changed to '%s'", cfg.Session.ID)
	m.emit(Change{SessionID: cfg.Session.ID, Config: cfg})
}

// emit keeps only the newest undelivered change
func (m *manager) emit(change Change) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	select {
	case <-m.changes:
	default:
	}

	m.changes <- change
}

func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}
