package engine

import (
	"testing"

	"github.com/lumenfall/stardrift/event"
)

func TestSchedulerReleasesOnlyDue(t *testing.T) {
	s := NewScheduler()
	q := event.NewEventQueue()

	s.Schedule(2.0, event.GameEvent{Type: event.EventDeathComplete})
	s.Schedule(4.0, event.GameEvent{Type: event.EventRespawn})

	s.Release(1.0, q, 60)
	if got := q.Consume(); got != nil {
		t.Fatalf("Expected nothing due at t=1, got %d events", len(got))
	}

	s.Release(2.0, q, 120)
	events := q.Consume()
	if len(events) != 1 || events[0].Type != event.EventDeathComplete {
		t.Fatalf("Expected one death-complete at t=2, got %v", events)
	}
	if events[0].Frame != 120 {
		t.Errorf("Expected release frame 120, got %d", events[0].Frame)
	}
	if s.Pending() != 1 {
		t.Errorf("Expected 1 still pending, got %d", s.Pending())
	}

	s.Release(10.0, q, 600)
	events = q.Consume()
	if len(events) != 1 || events[0].Type != event.EventRespawn {
		t.Fatalf("Expected respawn at t=10, got %v", events)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected drained scheduler, got %d pending", s.Pending())
	}
}

func TestSchedulerStableOrderAtSameDue(t *testing.T) {
	s := NewScheduler()
	q := event.NewEventQueue()

	for i := 0; i < 4; i++ {
		s.Schedule(1.0, event.GameEvent{Type: event.EventNotification, Payload: i})
	}

	s.Release(1.0, q, 1)
	events := q.Consume()
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Payload.(int) != i {
			t.Errorf("Expected insertion order preserved, got %v at %d", ev.Payload, i)
		}
	}
}

func TestSchedulerOutOfOrderScheduling(t *testing.T) {
	s := NewScheduler()
	q := event.NewEventQueue()

	s.Schedule(5.0, event.GameEvent{Type: event.EventRespawn})
	s.Schedule(1.0, event.GameEvent{Type: event.EventDeathComplete})

	s.Release(6.0, q, 1)
	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Type != event.EventDeathComplete || events[1].Type != event.EventRespawn {
		t.Errorf("Expected due-time order, got %v then %v", events[0].Type, events[1].Type)
	}
}
