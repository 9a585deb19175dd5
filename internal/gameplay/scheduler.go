package gameplay

import (
	"cmp"
	"slices"
	"time"
)

// TickScheduler is a Scheduler driven by explicit time advances instead of
// goroutines. The host calls Advance once per simulation tick, and due callbacks
// run synchronously inside that call, so the controller never sees concurrency.
type TickScheduler struct {
	now     time.Duration
	seq     uint64
	pending []timer
}

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewTickScheduler creates an empty scheduler at time zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// After schedules fn to run once delay has elapsed.
// Callbacks due at the same time run in the order they were scheduled.
func (s *TickScheduler) After(delay time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, timer{at: s.now + max(delay, 0), seq: s.seq, fn: fn})
	slices.SortStableFunc(s.pending, func(a, b timer) int {
		if c := cmp.Compare(a.at, b.at); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
}

// Advance moves time forward and runs every callback that became due.
// Each callback sees Now() at its own due time, so a callback scheduled from
// inside another one is timed from that due time and runs in this same
// Advance if it falls inside the window.
// Returns the number of callbacks run.
func (s *TickScheduler) Advance(dt time.Duration) int {
	target := s.now + max(dt, 0)
	fired := 0
	for len(s.pending) > 0 && s.pending[0].at <= target {
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.now = max(s.now, t.at)
		t.fn()
		fired++
	}
	s.now = target
	return fired
}

// Pending returns the number of callbacks waiting to run.
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}

// Now returns the scheduler's current time.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

var _ Scheduler = (*TickScheduler)(nil)
