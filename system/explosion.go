package system

import (
	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
)

// ExplosionSystem tracks short-lived explosion effect entities for the
// render layer. Damage is applied by the resolver at spawn time; these
// entities carry only position, radius and age
type ExplosionSystem struct {
	world *engine.World

	enabled bool
}

func NewExplosionSystem(world *engine.World) *ExplosionSystem {
	s := &ExplosionSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *ExplosionSystem) Init() {
	s.enabled = true
}

func (s *ExplosionSystem) Name() string {
	return "explosion"
}

func (s *ExplosionSystem) Priority() int {
	return parameter.PriorityExplosion
}

func (s *ExplosionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventExplosionSpawn,
	}
}

func (s *ExplosionSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventExplosionSpawn:
		if payload, ok := ev.Payload.(*event.ExplosionSpawnPayload); ok {
			e := s.world.CreateEntity()
			s.world.Components.Explosion.SetComponent(e, component.ExplosionComponent{
				X:        payload.X,
				Y:        payload.Y,
				Radius:   payload.Radius,
				Duration: parameter.ExplosionDuration,
			})
		}
	}
}

func (s *ExplosionSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()

	entities := s.world.Components.Explosion.GetAllEntities()
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		ex, ok := s.world.Components.Explosion.GetComponent(e)
		if !ok {
			continue
		}
		ex.Age += dt
		if ex.Age >= ex.Duration {
			s.world.DestroyEntity(e)
			continue
		}
		s.world.Components.Explosion.SetComponent(e, ex)
	}
}
