package logger

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"metroems/internal/config"
)

const flushTimeout = 2 * time.Second

// SentryHook forwards error level events to Sentry
type SentryHook struct {
	capture func(level zerolog.Level, msg string)
}

// NewSentryHook initializes the Sentry client and returns a hook, or nil when no DSN is configured
func NewSentryHook(cfg *config.Config) *SentryHook {
	if cfg.Sentry.DSN == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     config.AppName + "@" + config.Version,
	})
	if err != nil {
		return nil
	}

	return &SentryHook{capture: captureMessage}
}

// Run implements zerolog.Hook
func (h *SentryHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if level < zerolog.ErrorLevel || msg == "" {
		return
	}

	h.capture(level, msg)
}

// Flush waits for buffered Sentry events to be delivered
func Flush() {
	sentry.Flush(flushTimeout)
}

func captureMessage(level zerolog.Level, msg string) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("level", level.String())
		sentry.CaptureMessage(msg)
	})
}
