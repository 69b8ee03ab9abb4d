package event

import (
	"sync/atomic"

	"github.com/lumenfall/stardrift/parameter"
)

// EventQueue is a lock-free MPSC ring buffer for simulation events
// Thread-safety:
//   - Push: lock-free CAS, multiple producers OK (async loader completion)
//   - Consume: single consumer (the tick loop)
//   - Published flags prevent reading partially written slots
//
// Overflow: oldest events are overwritten when full
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push adds an event using CAS with published flags. O(1) amortized
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := eq.tail.Load()
		nextTail := currentTail + 1

		if eq.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			eq.events[idx] = ev
			eq.published[idx].Store(true) // MUST follow the write

			// Advance head if overwriting unread events
			currentHead := eq.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				eq.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer design; checks published flags for safety
func (eq *EventQueue) Consume() []GameEvent {
	currentHead := eq.head.Load()
	currentTail := eq.tail.Load()

	if currentTail == currentHead {
		return nil
	}

	available := currentTail - currentHead
	if available > parameter.EventQueueSize {
		available = parameter.EventQueueSize
		currentHead = currentTail - parameter.EventQueueSize
	}

	result := make([]GameEvent, 0, available)
	for i := currentHead; i < currentTail; i++ {
		idx := i & parameter.EventBufferMask
		if !eq.published[idx].Load() {
			break
		}
		result = append(result, eq.events[idx])
		eq.published[idx].Store(false)
	}

	eq.head.Store(currentHead + uint64(len(result)))
	return result
}

// Len returns the number of pending events (approximate under concurrency)
func (eq *EventQueue) Len() int {
	return int(eq.tail.Load() - eq.head.Load())
}
