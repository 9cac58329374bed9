package model

// EventKind identifies the type of a worker notification
type EventKind int

const (
	EventProgress EventKind = iota
	EventFinished
	EventError
	EventDone
)

// String returns the lowercase name of the event kind
func (k EventKind) String() string {
	switch k {
	case EventProgress:
		return "progress"
	case EventFinished:
		return "finished"
	case EventError:
		return "error"
	case EventDone:
		return "done"
	default:
		return "unknown"
	}
}

// Event is one line of text emitted by the background worker. It is consumed
// immediately by the display and not retained.
type Event struct {
	Kind EventKind
	Text string
}
