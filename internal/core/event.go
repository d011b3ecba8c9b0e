package core

// Event is a notable occurrence during a tick, shaped for structured logging.
type Event struct {
	Msg     string
	KeyVals []any // Alternating key, value pairs
}

// NewEvent creates an event with the given message and key/value pairs.
func NewEvent(msg string, keyvals ...any) Event {
	return Event{Msg: msg, KeyVals: keyvals}
}
