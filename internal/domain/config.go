package domain

import (
	"math"
	"time"
)

// Configuration of a single-line simulation.
// Every field except TimeRate is frozen once the simulation is running.
type Config struct {
	LineLength   int
	StartStation int
	TimeRate     float64
	TravelSpeed  float64
	// Real-time length of one simulated time unit at rate 1.
	TimeUnit time.Duration
}

const (
	DefaultLineLength   = 4
	DefaultStartStation = 1
	DefaultTimeRate     = 1
	DefaultTravelSpeed  = 0.5
	DefaultTimeUnit     = time.Second

	// Longest line that fits a station number in every int size.
	MaxLineLength = math.MaxInt32
)

func DefaultConfig() Config {
	return Config{
		LineLength:   DefaultLineLength,
		StartStation: DefaultStartStation,
		TimeRate:     DefaultTimeRate,
		TravelSpeed:  DefaultTravelSpeed,
		TimeUnit:     DefaultTimeUnit,
	}
}

// HasStation reports whether v names a station on the line.
func (c Config) HasStation(v float64) bool {
	return IsInteger(v) && v >= 1 && v <= float64(c.LineLength)
}
