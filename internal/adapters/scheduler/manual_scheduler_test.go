package scheduler

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestManualSchedulerFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	s := NewManualScheduler(start)

	var got []string
	s.Arm(300*time.Millisecond, func() { got = append(got, "c") })
	s.Arm(100*time.Millisecond, func() { got = append(got, "a") })
	s.Arm(200*time.Millisecond, func() { got = append(got, "b") })

	s.Advance(250 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("fired mismatch (-want +got):\n%s", diff)
	}
	if s.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", s.Pending())
	}

	s.Advance(50 * time.Millisecond)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Fatalf("fired mismatch (-want +got):\n%s", diff)
	}
	if want := start.Add(300 * time.Millisecond); !s.Now().Equal(want) {
		t.Fatalf("now = %v, want %v", s.Now(), want)
	}
}

func TestManualSchedulerCallbackSeesOwnDeadline(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	s := NewManualScheduler(start)

	var seen []time.Time
	s.Arm(100*time.Millisecond, func() {
		seen = append(seen, s.Now())
		s.Arm(100*time.Millisecond, func() { seen = append(seen, s.Now()) })
	})

	s.Advance(time.Second)

	want := []time.Time{start.Add(100 * time.Millisecond), start.Add(200 * time.Millisecond)}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("callback times mismatch (-want +got):\n%s", diff)
	}
}

func TestManualSchedulerCancel(t *testing.T) {
	s := NewManualScheduler(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))

	fired := false
	h := s.Arm(time.Second, func() { fired = true })
	s.Cancel(h)
	// Repeated, zero and unknown handles are all no-ops.
	s.Cancel(h)
	s.Cancel(0)
	s.Cancel(h + 100)

	s.Advance(2 * time.Second)
	if fired {
		t.Fatal("cancelled timer fired")
	}
	if s.Pending() != 0 {
		t.Fatalf("pending = %d, want 0", s.Pending())
	}
}
