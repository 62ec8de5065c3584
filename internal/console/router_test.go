package console

import (
	"context"
	"io"
	"subway-simulation/internal/adapters/scheduler"
	"subway-simulation/internal/domain"
	"subway-simulation/internal/services"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestRouter(t *testing.T) (Handler, *services.TransitClock, *scheduler.ManualScheduler) {
	t.Helper()
	sched := scheduler.NewManualScheduler(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))
	clock := services.NewTransitClock(domain.DefaultConfig(), sched, NewPrinter(io.Discard), quietLogger())
	return NewRouter(clock, quietLogger()), clock, sched
}

type step struct {
	line string
	want Outcome
}

func runSteps(t *testing.T, h Handler, steps []step) {
	t.Helper()
	for _, s := range steps {
		got := h.Handle(context.Background(), Parse(s.line))
		if diff := cmp.Diff(s.want, got); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", s.line, diff)
		}
	}
}

func lines(l ...string) Outcome { return Outcome{Lines: l} }

const invalid = "ERROR Invalid command"

func TestRouterConfiguringPhase(t *testing.T) {
	h, clock, _ := newTestRouter(t)

	runSteps(t, h, []step{
		{"SET Stations 10", lines("STATIONS 10")},
		{"set stations 0.5", lines("ERROR Invalid number of stations")},
		{"set start_station 20", lines("ERROR Invalid start station; start station must be between 1 and 10, inclusive")},
		{"set start_station 3", Outcome{}},
		{"set rate -1", lines("ERROR Invalid rate")},
		{"set rate 2", Outcome{}},
		{"set subway_speed -0.7", lines("ERROR Invalid subway speed")},
		{"set subway_speed 0.5", Outcome{}},
		{"set rate", lines(invalid)},
		{"set rate fast", lines(invalid)},
		{"set rate inf", lines(invalid)},
		{"set subway_speed infinity", lines(invalid)},
		{"set stations 1e20", lines("ERROR Invalid number of stations")},
		{"goto 3", lines(invalid)},
		{"start 5", lines(invalid)},
		{"stop 1", lines(invalid)},
		{"", lines(invalid)},
		{"set bogus 1", lines(invalid)},
	})

	if !clock.Configuring() {
		t.Fatal("left configuring phase without start")
	}
	cfg := clock.Config()
	if cfg.LineLength != 10 || cfg.StartStation != 3 || cfg.TimeRate != 2 || cfg.TravelSpeed != 0.5 {
		t.Fatalf("config = %+v", cfg)
	}

	runSteps(t, h, []step{{"start", lines("At 3")}})
	if clock.Configuring() {
		t.Fatal("still configuring after start")
	}
}

func TestRouterRunningPhase(t *testing.T) {
	h, clock, sched := newTestRouter(t)
	runSteps(t, h, []step{
		{"set stations 10", lines("STATIONS 10")},
		{"start", lines("At 1")},
	})

	runSteps(t, h, []step{
		{"start", lines(invalid)},
		{"set stations 5", lines(invalid)},
		{"set subway_speed 1", lines(invalid)},
		{"goto", lines(invalid)},
		{"goto 1", lines("At 1")},
		{"goto 20", lines("ERROR Invalid station")},
		{"goto 0", lines("ERROR Invalid station")},
		{"set rate 0", lines("ERROR Invalid rate")},
		{"goto inf", lines(invalid)},
		{"set rate infinity", lines(invalid)},
		{"goto 4", Outcome{}},
		{"set rate 4", Outcome{}},
	})

	if sched.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", sched.Pending())
	}
	sched.Advance(time.Second)
	if clock.CurrentStation() != 4 {
		t.Fatalf("current station = %d, want 4", clock.CurrentStation())
	}

	runSteps(t, h, []step{{"STOP", Outcome{Stop: true}}})
}

func TestRouterStopWhileConfiguring(t *testing.T) {
	h, _, _ := newTestRouter(t)
	runSteps(t, h, []step{{"stop", Outcome{Stop: true}}})
}
