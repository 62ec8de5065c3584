package domain

import (
	"math"
	"time"
)

// TimerHandle identifies an armed deferred callback. Zero means none.
type TimerHandle uint64

// JourneyState is the mutable state of the running phase.
//
// CurrentStation is only authoritative while the train is idle. A train
// in motion is reported at its origin until the leg completes; its
// position is never interpolated.
type JourneyState struct {
	CurrentStation int
	TargetStation  int
	InMotion       bool
	// When the current leg's timer was last (re)armed.
	LegStart time.Time
	// Simulated time units left to arrival as of LegStart. Rate
	// independent, so a rate change only alters its real-time projection.
	Remaining    float64
	PendingTimer TimerHandle
}

// SimToReal projects simulated time units onto real time at the given rate.
func SimToReal(sim, rate float64, unit time.Duration) time.Duration {
	return time.Duration(math.Round(sim * float64(unit) / rate))
}

// RealToSim converts real elapsed time at the given rate to simulated units.
func RealToSim(d time.Duration, rate float64, unit time.Duration) float64 {
	return float64(d) * rate / float64(unit)
}

// LegDuration is the real time a leg takes: unit / (speed * rate).
// speed and rate must be positive.
func LegDuration(speed, rate float64, unit time.Duration) time.Duration {
	return SimToReal(1/speed, rate, unit)
}

// Depart starts a leg toward target and returns its real duration.
func (j *JourneyState) Depart(target int, speed, rate float64, unit time.Duration, now time.Time) time.Duration {
	j.TargetStation = target
	j.InMotion = true
	j.LegStart = now
	j.Remaining = 1 / speed
	return SimToReal(j.Remaining, rate, unit)
}

// Retarget re-expresses the rest of the leg at newRate.
//
// Real time elapsed since LegStart is charged at oldRate, the simulated
// remainder is kept, and its projection at newRate is returned. LegStart
// moves to now. Consecutive calls compose because only Remaining carries
// over between them.
func (j *JourneyState) Retarget(now time.Time, oldRate, newRate float64, unit time.Duration) time.Duration {
	elapsed := now.Sub(j.LegStart)
	if elapsed < 0 {
		elapsed = 0
	}

	j.Remaining -= RealToSim(elapsed, oldRate, unit)
	// A leg whose timer expired but has not been dispatched yet.
	if j.Remaining < 0 {
		j.Remaining = 0
	}
	j.LegStart = now

	return SimToReal(j.Remaining, newRate, unit)
}

// RemainingReal is the real time left on the leg as of LegStart.
func (j *JourneyState) RemainingReal(rate float64, unit time.Duration) time.Duration {
	if !j.InMotion {
		return 0
	}
	return SimToReal(j.Remaining, rate, unit)
}

// Arrive completes the leg and returns the station reached.
func (j *JourneyState) Arrive() int {
	j.CurrentStation = j.TargetStation
	j.TargetStation = 0
	j.InMotion = false
	j.Remaining = 0
	j.PendingTimer = 0
	return j.CurrentStation
}
