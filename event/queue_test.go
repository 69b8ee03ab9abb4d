package event

import (
	"sync"
	"testing"

	"github.com/lumenfall/stardrift/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventNotification, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at position %d, got %d", i, i, ev.Frame)
		}
	}

	if got := q.Consume(); got != nil {
		t.Errorf("Expected empty queue, got %d events", len(got))
	}
}

func TestQueueLen(t *testing.T) {
	q := NewEventQueue()

	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
	q.Push(GameEvent{Type: EventNotification})
	q.Push(GameEvent{Type: EventNotification})
	if q.Len() != 2 {
		t.Errorf("Expected 2 pending, got %d", q.Len())
	}
	q.Consume()
	if q.Len() != 0 {
		t.Errorf("Expected drained queue, got %d", q.Len())
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()

	total := parameter.EventQueueSize + 100
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventNotification, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if got := events[len(events)-1].Frame; got != int64(total-1) {
		t.Errorf("Expected newest event frame %d, got %d", total-1, got)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventNotification})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	if len(events) != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, len(events))
	}
}
