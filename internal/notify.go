package internal

// Event identifies a state change announced to subscribers.
type Event int

const (
	// EventSessions fires after any repository mutation.
	EventSessions Event = iota
	// EventTranscript fires after any active transcript mutation.
	EventTranscript
)

// Hub fans state-change events out to subscribers. It replaces the
// implicit re-render a browser UI gets for free: the shell subscribes
// once and redraws whatever the event touches.
//
// Subscribers run synchronously on the mutating goroutine and must not
// mutate the repository or transcript from inside a callback.
type Hub struct {
	subs []func(Event)
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{}
}

// Subscribe registers fn for all future events.
func (h *Hub) Subscribe(fn func(Event)) {
	h.subs = append(h.subs, fn)
}

func (h *Hub) publish(e Event) {
	if h == nil {
		return
	}
	for _, fn := range h.subs {
		fn(e)
	}
}
