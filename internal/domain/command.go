package domain

import "math"

// Field selects a configuration parameter.
type Field int

const (
	FieldRate Field = iota + 1
	FieldStations
	FieldStartStation
	FieldSubwaySpeed
)

func (f Field) String() string {
	switch f {
	case FieldRate:
		return "rate"
	case FieldStations:
		return "stations"
	case FieldStartStation:
		return "start_station"
	case FieldSubwaySpeed:
		return "subway_speed"
	default:
		return "unknown"
	}
}

// Command selects a running-phase operation.
type Command int

const (
	CommandGoto Command = iota + 1
	CommandRate
)

func (c Command) String() string {
	switch c {
	case CommandGoto:
		return "goto"
	case CommandRate:
		return "rate"
	default:
		return "unknown"
	}
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// IsInteger reports whether v is a finite whole number.
func IsInteger(v float64) bool {
	return IsFinite(v) && v == math.Trunc(v)
}
