package scheduler

import (
	"subway-simulation/internal/domain"
	"subway-simulation/internal/ports"
	"sync"
	"time"
)

type manualTimer struct {
	at time.Time
	fn func()
}

// ManualScheduler is a virtual-time EventLoopScheduler for tests.
// Time only moves on Advance, which runs due callbacks synchronously.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	next   domain.TimerHandle
	timers map[domain.TimerHandle]manualTimer
}

func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		now:    start,
		timers: make(map[domain.TimerHandle]manualTimer),
	}
}

func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *ManualScheduler) Arm(d time.Duration, fn func()) domain.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.timers[s.next] = manualTimer{at: s.now.Add(d), fn: fn}
	return s.next
}

func (s *ManualScheduler) Cancel(h domain.TimerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.timers, h)
}

// Fired never delivers; Advance runs callbacks itself.
func (s *ManualScheduler) Fired() <-chan ports.Firing { return nil }

func (s *ManualScheduler) Dispatch(f ports.Firing) bool {
	s.mu.Lock()
	_, ok := s.timers[f.Handle]
	delete(s.timers, f.Handle)
	s.mu.Unlock()

	if ok {
		f.Run()
	}
	return ok
}

// Advance moves the clock forward by d, firing due timers in deadline
// order (ties in arming order). Callbacks observe Now() at their own
// deadline and may arm further timers, which fire too if due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	deadline := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		h, t, ok := s.earliestDue(deadline)
		if !ok {
			s.now = deadline
			s.mu.Unlock()
			return
		}
		delete(s.timers, h)
		s.now = t.at
		s.mu.Unlock()

		t.fn()
	}
}

// Pending is the number of armed, unfired timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Deadline of a pending timer.
func (s *ManualScheduler) Deadline(h domain.TimerHandle) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[h]
	return t.at, ok
}

func (s *ManualScheduler) earliestDue(deadline time.Time) (domain.TimerHandle, manualTimer, bool) {
	var (
		best   domain.TimerHandle
		bestT  manualTimer
		picked bool
	)
	for h, t := range s.timers {
		if t.at.After(deadline) {
			continue
		}
		// Tie-breaker keeps arming order when deadlines are equal.
		if !picked || t.at.Before(bestT.at) || (t.at.Equal(bestT.at) && h < best) {
			best, bestT, picked = h, t, true
		}
	}
	return best, bestT, picked
}
