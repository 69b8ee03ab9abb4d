package system

import (
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
)

// ShieldSystem performs per-tick shield upkeep: hit timers, recharge per
// layer behavior, adaptive bonus decay, and sectional regeneration
// Mitigation itself runs inside the resolver during damage application
type ShieldSystem struct {
	world *engine.World

	enabled bool
}

func NewShieldSystem(world *engine.World) *ShieldSystem {
	s := &ShieldSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *ShieldSystem) Init() {
	s.enabled = true
}

func (s *ShieldSystem) Name() string {
	return "shield"
}

func (s *ShieldSystem) Priority() int {
	return parameter.PriorityShield
}

func (s *ShieldSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *ShieldSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *ShieldSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()

	for _, e := range s.world.Components.Shield.GetAllEntities() {
		stack, ok := s.world.Components.Shield.GetComponent(e)
		if !ok {
			continue
		}
		stack.Recharge(dt)

		// Holding the shield control drains power to skip the post-hit
		// recharge delay on the player's stack. Ablative layers are
		// unaffected; they never recharge
		if e == s.world.Resources.Player.Entity && s.world.Resources.Input.Shield {
			if ship, ok := s.world.Components.Ship.GetComponent(e); ok && ship.Power > 0 {
				for i := range stack.Layers {
					layer := &stack.Layers[i]
					if layer.TimeSinceHit < layer.RechargeDelay {
						layer.TimeSinceHit = layer.RechargeDelay
					}
				}
				ship.Power -= parameter.ShieldBoostPowerRate * dt
				if ship.Power < 0 {
					ship.Power = 0
				}
				s.world.Components.Ship.SetComponent(e, ship)
			}
		}

		s.world.Components.Shield.SetComponent(e, stack)
	}

	for _, e := range s.world.Components.Sectional.GetAllEntities() {
		sectional, ok := s.world.Components.Sectional.GetComponent(e)
		if !ok {
			continue
		}
		sectional.Recharge(parameter.SectionRechargeRate, dt)
		s.world.Components.Sectional.SetComponent(e, sectional)
	}
}
