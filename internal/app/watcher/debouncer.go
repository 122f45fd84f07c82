package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces bursts of change notifications into one callback
type Debouncer interface {
	Trigger(name string)
	Stop()
}

type debouncer struct {
	delay   time.Duration
	fire    func(names []string)
	mu      sync.Mutex
	names   map[string]struct{}
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a Debouncer that calls fire with the sorted set of names
// once no trigger arrived for delay
func NewDebouncer(delay time.Duration, fire func(names []string)) Debouncer {
	return &debouncer{
		delay: delay,
		fire:  fire,
		names: make(map[string]struct{}),
	}
}

// Trigger records a changed name and restarts the quiet period
func (d *debouncer) Trigger(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.names[name] = struct{}{}
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() { d.expire(gen) })
}

// Stop drops pending names; later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	clear(d.names)
}

// expire fires only for the latest trigger; a timer that lost the race with Stop or a
// newer Trigger sees an older generation and returns
func (d *debouncer) expire(gen uint64) {
	d.mu.Lock()

	if d.stopped || gen != d.gen || len(d.names) == 0 {
		d.mu.Unlock()
		return
	}

	batch := make([]string, 0, len(d.names))
	for name := range d.names {
		batch = append(batch, name)
	}

	clear(d.names)
	d.timer = nil
	d.mu.Unlock()

	slices.Sort(batch)
	d.fire(batch)
}
