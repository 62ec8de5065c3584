package ports

import (
	"subway-simulation/internal/domain"
	"time"
)

// Contract for arming and cancelling one-shot deferred callbacks.
type Scheduler interface {
	// Current time on the scheduler's clock.
	Now() time.Time
	// Arrange for fn to run once after d. Never returns the zero handle.
	Arm(d time.Duration, fn func()) domain.TimerHandle
	// Cancel a pending callback. Unknown, fired, or zero handles are a no-op.
	Cancel(h domain.TimerHandle)
}

// An expired timer waiting to be run on the command loop.
type Firing struct {
	Handle domain.TimerHandle
	Run    func()
}

// Scheduler whose callbacks are delivered to a single consuming loop
// instead of running on the timer's own goroutine.
type EventLoopScheduler interface {
	Scheduler
	// Expired timers, in expiry order.
	Fired() <-chan Firing
	// Run f if its handle is still pending. Must be called from the loop.
	Dispatch(f Firing) bool
	// Number of armed timers not yet dispatched or cancelled.
	Pending() int
}
