package livesync

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"metroems/internal/app/connection"
	"metroems/internal/app/device"
	"metroems/internal/app/logtail"
	"metroems/internal/app/poller"
	"metroems/internal/app/synthetic"
	"metroems/internal/app/telemetry"
	"metroems/internal/config/logger"
)

// Fetch is the raw outcome of one boundary request
type Fetch struct {
	Raw []byte
	Err error
}

// Result is what one poll cycle brings back to the UI goroutine
type Result struct {
	State     connection.State
	Telemetry *Fetch
	Logs      *Fetch
}

// Outcome describes how an applied result changed the buffers
type Outcome struct {
	Sample     telemetry.Sample
	HasSample  bool
	LogsAdded  int
	LogsFailed bool
}

// Mutated reports whether any buffer changed
func (o Outcome) Mutated() bool {
	return o.HasSample || o.LogsAdded > 0
}

// Engine builds poll cycle bodies and applies their results to view buffers
type Engine struct {
	client    device.Client
	generator *synthetic.Generator
	now       func() time.Time
	log       logger.Logger
}

// NewEngine creates a sync engine
func NewEngine(client device.Client, generator *synthetic.Generator, log logger.Logger) *Engine {
	return NewEngineWithClock(client, generator, time.Now, log)
}

// NewEngineWithClock creates a sync engine with an explicit clock
func NewEngineWithClock(client device.Client, generator *synthetic.Generator, now func() time.Time, log logger.Logger) *Engine {
	return &Engine{
		client:    client,
		generator: generator,
		now:       now,
		log:       log.WithComponent("SYNC"),
	}
}

// Cycle returns the poll body for a view. Requests are only issued while connected;
// disconnected cycles return immediately and are filled from the generator on apply.
func (e *Engine) Cycle(state connection.State, withTelemetry, withLogs bool) poller.Cycle {
	client := e.client
	id := state.SessionID()

	return func(ctx context.Context) any {
		result := Result{State: state}
		if !state.IsConnected() {
			return result
		}

		var wg conc.WaitGroup

		if withTelemetry {
			result.Telemetry = &Fetch{}
			wg.Go(func() {
				result.Telemetry.Raw, result.Telemetry.Err = client.Telemetry(ctx, id)
			})
		}

		if withLogs {
			result.Logs = &Fetch{}
			wg.Go(func() {
				result.Logs.Raw, result.Logs.Err = client.Logs(ctx, id)
			})
		}

		wg.Wait()

		return result
	}
}

// Apply merges a cycle result into the view buffers; either buffer may be nil
func (e *Engine) Apply(result Result, window *telemetry.Window, tail *logtail.Tail) Outcome {
	var outcome Outcome

	if window != nil {
		outcome.Sample = e.ApplyTelemetry(result.State, result.Telemetry, window)
		outcome.HasSample = true
	}

	if tail != nil {
		outcome.LogsAdded, outcome.LogsFailed = e.ApplyLogs(result.State, result.Logs, tail)
	}

	return outcome
}

// ApplyTelemetry pushes exactly one sample: live, fallback or synthetic
func (e *Engine) ApplyTelemetry(state connection.State, fetch *Fetch, window *telemetry.Window) telemetry.Sample {
	var sample telemetry.Sample

	switch {
	case !state.IsConnected() || fetch == nil:
		sample = e.generator.Sample()
	case fetch.Err != nil:
		e.log.Debug().Err(fetch.Err).Msgf("Telemetry fetch failed for session '%s', using synthetic sample", state.SessionID())
		sample = e.generator.Fallback()
	default:
		prev, ok := window.Last()
		if !ok {
			prev = e.generator.Baseline()
		}

		sample = telemetry.Normalize(fetch.Raw, prev, e.now())
	}

	window.Push(sample)

	return sample
}

// ApplyLogs merges live entries, or appends one synthetic entry when disconnected.
// A failed live request adds nothing.
func (e *Engine) ApplyLogs(state connection.State, fetch *Fetch, tail *logtail.Tail) (int, bool) {
	switch {
	case !state.IsConnected() || fetch == nil:
		tail.Append(e.generator.Entry())
		return 1, false
	case fetch.Err != nil:
		e.log.Debug().Err(fetch.Err).Msgf("Log fetch failed for session '%s', no new entries", state.SessionID())
		return 0, true
	default:
		return tail.Merge(logtail.Normalize(fetch.Raw, e.now())), false
	}
}
