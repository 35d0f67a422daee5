// Package controller holds the input and paging state machines that sit
// between a client and the upstream adapters.
package controller

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is the quiet period before a typed query is committed.
const DefaultDebounceDelay = 400 * time.Millisecond

// DebounceState is the phase of a Debouncer.
type DebounceState int

// Debouncer phases.
const (
	Idle DebounceState = iota
	Pending
	Committed
)

func (s DebounceState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Committed:
		return "committed"
	default:
		return "idle"
	}
}

// Debouncer delays a value until no newer value arrives for delay. Only the
// latest value is committed.
type Debouncer struct {
	delay  time.Duration
	commit func(string)

	mu         sync.Mutex
	state      DebounceState
	value      string
	deadline   time.Time
	timer      *time.Timer
	generation uint64
	stopped    bool
}

// NewDebouncer creates a Debouncer. A non-positive delay means DefaultDebounceDelay.
func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay, commit: commit}
}

// Input records a new value and restarts the quiet period.
func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.state = Pending
	d.value = value
	d.deadline = time.Now().Add(d.delay)
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire commits only if no Input or Stop happened since the timer was armed;
// a stopped timer can still have its func already running.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.generation {
		d.mu.Unlock()
		return
	}
	d.state = Committed
	d.timer = nil
	value := d.value
	d.mu.Unlock()

	if d.commit != nil {
		d.commit(value)
	}
}

// State reports the current phase, the latest value and, when pending, the deadline.
func (d *Debouncer) State() (DebounceState, string, time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Pending {
		return d.state, d.value, time.Time{}
	}
	return d.state, d.value, d.deadline
}

// Stop cancels any pending commit. No commit fires afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.state == Pending {
		d.state = Idle
	}
}
