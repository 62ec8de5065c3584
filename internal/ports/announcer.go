package ports

// Port: a sink for operator-facing lines ("At 3", "STATIONS 10", "ERROR ...").
type Announcer interface {
	Announce(line string)
}
