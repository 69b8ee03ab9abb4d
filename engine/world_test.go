package engine

import (
	"testing"
	"time"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/event"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	e := core.Entity(1)

	s.SetComponent(e, 42)
	if v, ok := s.GetComponent(e); !ok || v != 42 {
		t.Errorf("Expected 42, got %v ok=%v", v, ok)
	}

	s.SetComponent(e, 7) // update, not duplicate
	if got := s.CountEntities(); got != 1 {
		t.Errorf("Expected 1 entity after update, got %d", got)
	}

	s.RemoveEntity(e)
	if s.HasEntity(e) {
		t.Error("Expected entity removed")
	}
	if got := s.CountEntities(); got != 0 {
		t.Errorf("Expected empty store, got %d", got)
	}
}

func TestStoreIterationCopySurvivesRemoval(t *testing.T) {
	s := NewStore[int]()
	for i := 1; i <= 5; i++ {
		s.SetComponent(core.Entity(i), i)
	}

	for _, e := range s.GetAllEntities() {
		s.RemoveEntity(e)
	}

	if got := s.CountEntities(); got != 0 {
		t.Errorf("Expected all entities removed mid-iteration, got %d", got)
	}
}

func TestDestroyEntityClearsAllStores(t *testing.T) {
	w := NewWorld(1, nil)
	e := w.CreateEntity()

	w.Components.Kinetic.SetComponent(e, core.Kinetic{X: 1})
	w.Components.Ship.SetComponent(e, component.ShipComponent{Hull: 10})

	w.DestroyEntity(e)

	if w.Components.Kinetic.HasEntity(e) || w.Components.Ship.HasEntity(e) {
		t.Error("Expected all components removed")
	}
}

type orderProbe struct {
	name     string
	priority int
	calls    *[]string
	handled  *[]string
}

func (p *orderProbe) Name() string  { return p.name }
func (p *orderProbe) Priority() int { return p.priority }
func (p *orderProbe) Update()       { *p.calls = append(*p.calls, p.name) }
func (p *orderProbe) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}
func (p *orderProbe) HandleEvent(ev event.GameEvent) {
	*p.handled = append(*p.handled, p.name)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld(1, nil)
	var calls, handled []string

	w.AddSystem(&orderProbe{name: "late", priority: 90, calls: &calls, handled: &handled})
	w.AddSystem(&orderProbe{name: "early", priority: 10, calls: &calls, handled: &handled})
	w.AddSystem(&orderProbe{name: "mid", priority: 50, calls: &calls, handled: &handled})

	w.Step(time.Second / 60)

	want := []string{"early", "mid", "late"}
	if len(calls) != 3 {
		t.Fatalf("Expected 3 updates, got %d", len(calls))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Expected %s at position %d, got %s", want[i], i, calls[i])
		}
	}
}

func TestEventsDispatchedBeforeUpdates(t *testing.T) {
	w := NewWorld(1, nil)
	var calls, handled []string

	w.AddSystem(&orderProbe{name: "probe", priority: 10, calls: &calls, handled: &handled})

	w.PushEvent(event.EventGameReset, nil)
	w.Step(time.Second / 60)

	if len(handled) != 1 {
		t.Fatalf("Expected event handled once, got %d", len(handled))
	}
	if len(calls) != 1 {
		t.Fatalf("Expected one update, got %d", len(calls))
	}
}

func TestScheduledEventDeliveredAtDueTick(t *testing.T) {
	w := NewWorld(1, nil)
	var calls, handled []string

	w.AddSystem(&orderProbe{name: "probe", priority: 10, calls: &calls, handled: &handled})

	w.ScheduleEvent(0.45, event.EventGameReset, nil)

	for i := 0; i < 4; i++ { // 0.4s, not yet due
		w.Step(100 * time.Millisecond)
	}
	if len(handled) != 0 {
		t.Fatal("Expected scheduled event held until due")
	}

	w.Step(100 * time.Millisecond) // 0.5s, past due
	if len(handled) != 1 {
		t.Errorf("Expected delivery at the due tick, got %d", len(handled))
	}
}

func TestTimeResourceAdvances(t *testing.T) {
	w := NewWorld(1, nil)

	w.Step(100 * time.Millisecond)
	w.Step(100 * time.Millisecond)

	tr := w.Resources.Time
	if tr.Frame != 2 {
		t.Errorf("Expected frame 2, got %d", tr.Frame)
	}
	if diff := tr.Elapsed - 0.2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected elapsed 0.2, got %v", tr.Elapsed)
	}
}
