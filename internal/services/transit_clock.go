package services

import (
	"fmt"
	"subway-simulation/internal/domain"
	"subway-simulation/internal/ports"
	"time"

	"github.com/sirupsen/logrus"
)

// TransitClock is the single-train state machine.
//
// It holds the line configuration and at most one in-flight journey. The
// only asynchronous effect is the journey timer, armed through the
// injected Scheduler; arming always cancels the previous timer first.
//
// TransitClock is not safe for concurrent use. Commands and timer
// callbacks must be delivered from a single goroutine.
type TransitClock struct {
	scheduler   ports.Scheduler
	announcer   ports.Announcer
	logger      logrus.FieldLogger
	cfg         domain.Config
	journey     domain.JourneyState
	configuring bool
}

func NewTransitClock(
	cfg domain.Config,
	scheduler ports.Scheduler,
	announcer ports.Announcer,
	logger logrus.FieldLogger,
) *TransitClock {
	if cfg.TimeUnit <= 0 {
		cfg.TimeUnit = domain.DefaultTimeUnit
	}

	return &TransitClock{
		scheduler:   scheduler,
		announcer:   announcer,
		logger:      logger,
		cfg:         cfg,
		journey:     domain.JourneyState{CurrentStation: cfg.StartStation},
		configuring: true,
	}
}

// Configure sets one configuration field. The returned confirmation line
// is empty unless the field has one. The caller enforces the phase.
func (c *TransitClock) Configure(field domain.Field, value float64) (string, error) {
	switch field {
	case domain.FieldRate:
		if value <= 0 || !domain.IsFinite(value) {
			return "", domain.ErrInvalidRate
		}
		c.cfg.TimeRate = value

	case domain.FieldStations:
		if value <= 0 || value > domain.MaxLineLength || !domain.IsInteger(value) {
			return "", domain.ErrInvalidStationCount
		}
		c.cfg.LineLength = int(value)
		return fmt.Sprintf("STATIONS %d", c.cfg.LineLength), nil

	case domain.FieldStartStation:
		if !c.cfg.HasStation(value) {
			return "", domain.NewInvalidStartStation(c.cfg.LineLength)
		}
		c.cfg.StartStation = int(value)
		c.journey.CurrentStation = c.cfg.StartStation

	case domain.FieldSubwaySpeed:
		if value < 0 || !domain.IsFinite(value) {
			return "", domain.ErrInvalidSpeed
		}
		c.cfg.TravelSpeed = value

	default:
		return "", domain.ErrInvalidCommand
	}

	return "", nil
}

// BeginRunning leaves the configuring phase and returns the station the
// train starts at.
func (c *TransitClock) BeginRunning() int {
	c.journey.CurrentStation = c.cfg.StartStation
	c.configuring = false

	c.logger.WithFields(logrus.Fields{
		"stations": c.cfg.LineLength,
		"start":    c.cfg.StartStation,
		"rate":     c.cfg.TimeRate,
		"speed":    c.cfg.TravelSpeed,
	}).Info("simulation running")

	return c.journey.CurrentStation
}

// Run executes a running-phase command. The returned line is empty unless
// the command has an immediate answer.
func (c *TransitClock) Run(cmd domain.Command, value float64) (string, error) {
	switch cmd {
	case domain.CommandGoto:
		return c.goTo(value)
	case domain.CommandRate:
		return "", c.setRate(value)
	default:
		return "", domain.ErrInvalidCommand
	}
}

func (c *TransitClock) goTo(value float64) (string, error) {
	if !c.cfg.HasStation(value) {
		return "", domain.ErrInvalidStation
	}
	target := int(value)

	// No journey. A leg already under way keeps running.
	if target == c.journey.CurrentStation {
		return fmt.Sprintf("At %d", target), nil
	}

	if c.cfg.TravelSpeed == 0 {
		return "", domain.ErrNotMoving
	}

	c.cancelPending()
	d := c.journey.Depart(target, c.cfg.TravelSpeed, c.cfg.TimeRate, c.cfg.TimeUnit, c.scheduler.Now())
	c.arm(d)

	c.logger.WithFields(logrus.Fields{
		"from":   c.journey.CurrentStation,
		"target": target,
		"dur":    d,
	}).Debug("leg started")

	return "", nil
}

func (c *TransitClock) setRate(value float64) error {
	if value <= 0 || !domain.IsFinite(value) {
		return domain.ErrInvalidRate
	}

	if c.journey.InMotion {
		c.cancelPending()
		oldRate := c.cfg.TimeRate
		d := c.journey.Retarget(c.scheduler.Now(), oldRate, value, c.cfg.TimeUnit)
		c.arm(d)

		c.logger.WithFields(logrus.Fields{
			"old_rate":  oldRate,
			"new_rate":  value,
			"remaining": d,
		}).Debug("leg retargeted")
	}

	c.cfg.TimeRate = value
	return nil
}

func (c *TransitClock) arm(d time.Duration) {
	var h domain.TimerHandle
	h = c.scheduler.Arm(d, func() { c.arrive(h) })
	c.journey.PendingTimer = h
}

func (c *TransitClock) arrive(h domain.TimerHandle) {
	if h != c.journey.PendingTimer || !c.journey.InMotion {
		return
	}

	station := c.journey.Arrive()
	c.logger.WithField("station", station).Debug("leg completed")
	c.announcer.Announce(fmt.Sprintf("At %d", station))
}

func (c *TransitClock) cancelPending() {
	if c.journey.PendingTimer == 0 {
		return
	}
	c.scheduler.Cancel(c.journey.PendingTimer)
	c.journey.PendingTimer = 0
}

func (c *TransitClock) abandon() {
	c.cancelPending()
	c.journey.InMotion = false
	c.journey.TargetStation = 0
	c.journey.Remaining = 0
}

// Close releases the journey timer. The train stays where it was last
// reported. Safe to call more than once.
func (c *TransitClock) Close() {
	c.abandon()
}

func (c *TransitClock) Config() domain.Config { return c.cfg }

func (c *TransitClock) Journey() domain.JourneyState { return c.journey }

func (c *TransitClock) Configuring() bool { return c.configuring }

func (c *TransitClock) CurrentStation() int { return c.journey.CurrentStation }
