package testutil

import (
	"sync"
	"time"

	"github.com/iudanet/folioadmin/internal/clock"
)

// ManualScheduler records scheduled callbacks and runs them only when Fire is called.
// Safe for concurrent use.
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*ManualTimer
}

// ManualTimer is a pending callback created by ManualScheduler.
type ManualTimer struct {
	f       func()
	Delay   time.Duration
	stopped bool
	fired   bool
}

var _ clock.Scheduler = (*ManualScheduler)(nil)

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualHandle{s: s, t: &ManualTimer{f: f, Delay: d}}
	s.timers = append(s.timers, t.t)
	return t
}

// Scheduled returns the number of callbacks ever scheduled.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Pending returns the number of callbacks neither fired nor stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Delays returns the delays of all scheduled callbacks in order.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, 0, len(s.timers))
	for _, t := range s.timers {
		out = append(out, t.Delay)
	}
	return out
}

// FireAll runs every pending callback, including stopped ones when includeStopped is set.
// Running stopped callbacks simulates a timer that raced its Stop call.
func (s *ManualScheduler) FireAll(includeStopped bool) {
	s.mu.Lock()
	var run []func()
	for _, t := range s.timers {
		if t.fired || (t.stopped && !includeStopped) {
			continue
		}
		t.fired = true
		run = append(run, t.f)
	}
	s.mu.Unlock()

	for _, f := range run {
		f()
	}
}

type manualHandle struct {
	s *ManualScheduler
	t *ManualTimer
}

func (h *manualHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.t.fired || h.t.stopped {
		return false
	}
	h.t.stopped = true
	return true
}
