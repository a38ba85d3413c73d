// Package timerloop runs the cooperative frame loop: a single goroutine
// alternates between timer-driven frame callbacks and dispatched input
// events, so the game state they share never needs locking.
package timerloop

import (
	"time"

	"badge.team/fastlife/hal"
)

// Loop implements hal.Timers. Input readers hand their events to Dispatch
// from other goroutines; the loop goroutine runs them between frames.
type Loop struct {
	base   time.Duration
	events chan func()
	stop   chan struct{}
}

// NewLoop returns a loop ready to schedule a frame callback.
func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), 16),
		stop:   make(chan struct{}),
	}
}

// Begin records the base dispatch period. The actual frame cadence comes
// from the delays the frame callback returns.
func (l *Loop) Begin(basePeriodMS int) {
	l.base = time.Duration(basePeriodMS) * time.Millisecond
}

// Dispatch queues fn to run on the loop goroutine between frames. It is
// safe to call from any goroutine and drops the event if the loop has
// been stopped.
func (l *Loop) Dispatch(fn func()) {
	select {
	case l.events <- fn:
	case <-l.stop:
	}
}

// Stop ends a running New loop.
func (l *Loop) Stop() {
	close(l.stop)
}

// New invokes f after periodMS and then repeatedly after whatever delay f
// returns, interleaving dispatched events while waiting. It blocks until
// Stop is called.
func (l *Loop) New(periodMS int, f hal.Frame) {
	timer := time.NewTimer(time.Duration(periodMS) * time.Millisecond)
	defer timer.Stop()
	for {
		select {
		case <-l.stop:
			return
		case fn := <-l.events:
			fn()
		case <-timer.C:
			next := f()
			timer.Reset(time.Duration(next) * time.Millisecond)
		}
	}
}
