package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/status"
	"github.com/lumenfall/stardrift/vmath"
)

// System is the per-tick update unit. Systems run in Priority order
// (lower first) and may also implement EventHandler to receive routed
// events before updates run
type System interface {
	Name() string
	Priority() int
	Update()
}

// World owns all entities, components, resources and systems
// Strictly single-threaded per tick: entities are exclusively owned by
// the tick for its duration; the only cross-goroutine traffic is the
// event queue and the loader completion flag
type World struct {
	mu           sync.Mutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resources

	Scheduler *Scheduler

	router  *EventRouter
	systems []System
}

// NewWorld creates a world with initialized stores and resources
func NewWorld(seed uint64, log *zap.SugaredLogger) *World {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	w := &World{
		nextEntityID: 1,
	}
	initComponentStores(w)

	w.Resources.Status = status.NewRegistry()
	w.Resources.Rng = vmath.NewFastRand(seed)
	w.Resources.Log = log
	w.Resources.Events = event.NewEventQueue()
	w.Scheduler = NewScheduler()
	w.router = NewEventRouter(w.Resources.Events)

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.allStores {
		s.RemoveEntity(e)
	}
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.Components.allStores {
		s.Clear()
	}
}

// AddSystem registers a system, keeping the list sorted by priority,
// and wires its event subscriptions if it is an EventHandler
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion-ordered bubble; N is small
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}

	if h, ok := system.(EventHandler); ok {
		w.router.Register(h)
	}
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.Resources.Time.Frame,
	})
}

// ScheduleEvent queues an event for delivery once the given simulated
// time has elapsed; delivery happens at a tick boundary
func (w *World) ScheduleEvent(delay float64, t event.EventType, payload any) {
	w.Scheduler.Schedule(w.Resources.Time.Elapsed+delay, event.GameEvent{
		Type:    t,
		Payload: payload,
	})
}

// Step advances the simulation one tick: time bookkeeping, due deferred
// events, event dispatch, then every system in priority order
func (w *World) Step(dt time.Duration) {
	tr := &w.Resources.Time
	tr.DeltaTime = dt
	tr.Elapsed += dt.Seconds()
	tr.Frame++

	w.Scheduler.Release(tr.Elapsed, w.Resources.Events, tr.Frame)
	w.router.DispatchAll()

	for _, system := range w.systems {
		system.Update()
	}
}
