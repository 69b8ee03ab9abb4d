package engine

import "github.com/lumenfall/stardrift/event"

// EventHandler processes specific event types
// Systems implement this to receive routed events synchronously during
// the dispatch phase, before system updates run
type EventHandler interface {
	HandleEvent(ev event.GameEvent)
	EventTypes() []event.EventType
}

// EventRouter dispatches queued events to registered handlers
//
//   - Single-threaded dispatch: no concurrency issues with world mutation
//   - Multiple handlers may register for the same event type
//   - Handlers are invoked in registration order
//   - All pending events are consumed before updates run
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes them in FIFO order
// Must be called once per tick, before system updates
func (r *EventRouter) DispatchAll() {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// HandlerCount returns the number of handlers for the given type
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
