package scheduler

import (
	"subway-simulation/internal/domain"
	"subway-simulation/internal/ports"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// LoopScheduler implements EventLoopScheduler on wall-clock timers.
//
// An expired timer does not run its callback. It queues a Firing on Fired()
// and the owning loop runs it through Dispatch, so callbacks never
// interleave with command processing. A timer that is cancelled after it
// expired but before it was dispatched is dropped by Dispatch.
//
// The scheduler is safe for concurrent use.
type LoopScheduler struct {
	mu     sync.Mutex
	next   domain.TimerHandle
	timers map[domain.TimerHandle]*time.Timer
	fired  chan ports.Firing
	done   chan struct{}
	once   sync.Once
	logger logrus.FieldLogger
}

func NewLoopScheduler(logger logrus.FieldLogger) *LoopScheduler {
	return &LoopScheduler{
		timers: make(map[domain.TimerHandle]*time.Timer),
		// At most one journey timer is live, so a small buffer never blocks.
		fired:  make(chan ports.Firing, 4),
		done:   make(chan struct{}),
		logger: logger,
	}
}

func (s *LoopScheduler) Now() time.Time { return time.Now() }

func (s *LoopScheduler) Arm(d time.Duration, fn func()) domain.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(d, func() {
		select {
		case s.fired <- ports.Firing{Handle: h, Run: fn}:
		case <-s.done:
		}
	})
	s.logger.WithFields(logrus.Fields{"timer": h, "dur": d}).Debug("timer armed")

	return h
}

func (s *LoopScheduler) Cancel(h domain.TimerHandle) {
	if h == 0 {
		return
	}

	s.mu.Lock()
	t, ok := s.timers[h]
	delete(s.timers, h)
	s.mu.Unlock()

	if ok {
		t.Stop()
		s.logger.WithField("timer", h).Debug("timer cancelled")
	}
}

func (s *LoopScheduler) Fired() <-chan ports.Firing { return s.fired }

func (s *LoopScheduler) Dispatch(f ports.Firing) bool {
	s.mu.Lock()
	_, ok := s.timers[f.Handle]
	delete(s.timers, f.Handle)
	s.mu.Unlock()

	if !ok {
		s.logger.WithField("timer", f.Handle).Debug("stale timer dropped")
		return false
	}

	f.Run()
	return true
}

func (s *LoopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close stops every pending timer and releases blocked deliveries.
func (s *LoopScheduler) Close() {
	s.once.Do(func() {
		s.mu.Lock()
		for h, t := range s.timers {
			t.Stop()
			delete(s.timers, h)
		}
		s.mu.Unlock()
		close(s.done)
	})
}
