package poller

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"metroems/internal/config/logger"
)

// Cycle performs one fetch for the owning view and returns its result.
// It runs off the UI goroutine and must not touch view state.
type Cycle func(ctx context.Context) any

// TickMsg asks a scheduler to run its next cycle
type TickMsg struct {
	Name  string
	Epoch uint64
}

// DoneMsg carries the result of a finished cycle back to the UI goroutine
type DoneMsg struct {
	Name   string
	Epoch  uint64
	Result any
}

// Scheduler drives a fixed-interval cycle for one view.
// A tick arriving while a cycle is in flight is dropped, and results from a
// stopped or restarted scheduler are rejected by epoch.
type Scheduler struct {
	name     string
	ctx      context.Context
	interval time.Duration
	timeout  time.Duration
	cycle    Cycle
	log      logger.Logger

	epoch   uint64
	running bool
	busy    bool
	dropped int
}

// NewScheduler creates a stopped scheduler
func NewScheduler(ctx context.Context, name string, interval, timeout time.Duration, cycle Cycle, log logger.Logger) *Scheduler {
	return &Scheduler{
		name:     name,
		ctx:      ctx,
		interval: interval,
		timeout:  timeout,
		cycle:    cycle,
		log:      log,
	}
}

// Name returns the scheduler name carried by its messages
func (s *Scheduler) Name() string {
	return s.name
}

// Start begins a new run: one cycle immediately, then one per interval
func (s *Scheduler) Start() tea.Cmd {
	s.epoch++
	s.running = true
	s.busy = true

	s.log.Debug().Msgf("Scheduler '%s' started (epoch %d, interval %s)", s.name, s.epoch, s.interval)

	return tea.Batch(s.run(), s.tick())
}

// Restart replaces the cycle body and begins a new run, rejecting results of the previous one
func (s *Scheduler) Restart(cycle Cycle) tea.Cmd {
	s.cycle = cycle

	return s.Start()
}

// Stop halts further cycles; in-flight results will be rejected
func (s *Scheduler) Stop() {
	if !s.running {
		return
	}

	s.epoch++
	s.running = false
	s.busy = false

	s.log.Debug().Msgf("Scheduler '%s' stopped", s.name)
}

// Running reports whether the scheduler is active
func (s *Scheduler) Running() bool {
	return s.running
}

// Busy reports whether a cycle is in flight
func (s *Scheduler) Busy() bool {
	return s.busy
}

// Dropped returns how many ticks were skipped because a cycle was still in flight
func (s *Scheduler) Dropped() int {
	return s.dropped
}

// HandleTick schedules the next tick and runs a cycle unless one is in flight
func (s *Scheduler) HandleTick(msg TickMsg) tea.Cmd {
	if !s.owns(msg.Name, msg.Epoch) {
		return nil
	}

	next := s.tick()

	if s.busy {
		s.dropped++
		s.log.Debug().Msgf("Scheduler '%s' dropped tick, previous cycle still running", s.name)

		return next
	}

	s.busy = true

	return tea.Batch(s.run(), next)
}

// HandleDone reports whether a finished cycle's result should be applied
func (s *Scheduler) HandleDone(msg DoneMsg) bool {
	if !s.owns(msg.Name, msg.Epoch) {
		return false
	}

	s.busy = false

	return true
}

func (s *Scheduler) owns(name string, epoch uint64) bool {
	return s.running && name == s.name && epoch == s.epoch
}

func (s *Scheduler) run() tea.Cmd {
	var (
		name    = s.name
		epoch   = s.epoch
		parent  = s.ctx
		timeout = s.timeout
		cycle   = s.cycle
	)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		return DoneMsg{Name: name, Epoch: epoch, Result: cycle(ctx)}
	}
}

func (s *Scheduler) tick() tea.Cmd {
	name, epoch := s.name, s.epoch

	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{Name: name, Epoch: epoch}
	})
}
