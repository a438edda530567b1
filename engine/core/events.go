package core

// Event represents a board event
type Event struct {
	Type    EventType
	Payload interface{}
}

type EventType uint16

const (
	EvtMapChanged EventType = iota
	EvtPathfindingUpdated
	EvtRangeUpdated
	EvtActorPlaced
	EvtActorRemoved
	EvtMoveStarted
	EvtMoveComplete
	EvtAttackResolved
	EvtOutOfRange
)

var eventNames = [...]string{
	EvtMapChanged:         "map-changed",
	EvtPathfindingUpdated: "pathfinding-updated",
	EvtRangeUpdated:       "range-updated",
	EvtActorPlaced:        "actor-placed",
	EvtActorRemoved:       "actor-removed",
	EvtMoveStarted:        "move-started",
	EvtMoveComplete:       "move-complete",
	EvtAttackResolved:     "attack-resolved",
	EvtOutOfRange:         "out-of-range",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners. Emit only queues; handlers run on Dispatch,
// so a handler may emit further events, which are delivered in the same Dispatch call.
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(t EventType, payload interface{}) {
	eb.queue = append(eb.queue, Event{Type: t, Payload: payload})
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int { return len(eb.queue) }

// Dispatch processes all queued events, including ones queued by handlers
func (eb *EventBus) Dispatch() {
	for i := 0; i < len(eb.queue); i++ {
		e := eb.queue[i]
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}
	eb.queue = eb.queue[:0]
}
