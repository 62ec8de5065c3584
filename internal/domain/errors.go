package domain

import "fmt"

// ErrorKind classifies a rejected configure or run request.
type ErrorKind int

const (
	InvalidCommand ErrorKind = iota + 1
	InvalidRate
	InvalidStationCount
	InvalidStartStation
	InvalidSpeed
	InvalidStation
	NotMoving
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCommand:
		return "InvalidCommand"
	case InvalidRate:
		return "InvalidRate"
	case InvalidStationCount:
		return "InvalidStationCount"
	case InvalidStartStation:
		return "InvalidStartStation"
	case InvalidSpeed:
		return "InvalidSpeed"
	case InvalidStation:
		return "InvalidStation"
	case NotMoving:
		return "NotMoving"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a validation failure. Its message is the exact line shown to
// the operator. Two errors match under errors.Is when their kinds match.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidCommand      = &Error{Kind: InvalidCommand, msg: "ERROR Invalid command"}
	ErrInvalidRate         = &Error{Kind: InvalidRate, msg: "ERROR Invalid rate"}
	ErrInvalidStationCount = &Error{Kind: InvalidStationCount, msg: "ERROR Invalid number of stations"}
	ErrInvalidSpeed        = &Error{Kind: InvalidSpeed, msg: "ERROR Invalid subway speed"}
	ErrInvalidStation      = &Error{Kind: InvalidStation, msg: "ERROR Invalid station"}
	ErrNotMoving           = &Error{Kind: NotMoving, msg: "ERROR Subway is not moving"}

	// Match-only sentinel; use NewInvalidStartStation to build one.
	ErrInvalidStartStation = &Error{Kind: InvalidStartStation, msg: "ERROR Invalid start station"}
)

func NewInvalidStartStation(lineLength int) *Error {
	return &Error{
		Kind: InvalidStartStation,
		msg: fmt.Sprintf(
			"ERROR Invalid start station; start station must be between 1 and %d, inclusive",
			lineLength,
		),
	}
}
