package system

import (
	"sync/atomic"

	"github.com/lumenfall/stardrift/content"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
)

// ContentSystem swaps in system content generated off-tick. It runs
// first each tick so the rest of the frame sees a consistent world
type ContentSystem struct {
	world  *engine.World
	loader *content.Loader

	statLoads *atomic.Int64

	enabled bool
}

func NewContentSystem(world *engine.World, loader *content.Loader) *ContentSystem {
	s := &ContentSystem{
		world:  world,
		loader: loader,
	}
	s.Init()
	return s
}

func (s *ContentSystem) Init() {
	s.enabled = true
	s.statLoads = s.world.Resources.Status.Ints.Get("content.loads")
}

func (s *ContentSystem) Name() string {
	return "content"
}

func (s *ContentSystem) Priority() int {
	return parameter.PriorityContent
}

func (s *ContentSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ContentSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ContentSystem) Update() {
	if !s.enabled {
		return
	}

	plan, ok := s.loader.TakePlan()
	if !ok {
		return
	}

	content.Apply(s.world, plan)
	s.statLoads.Add(1)
}
