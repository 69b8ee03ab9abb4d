package system

import (
	"sync/atomic"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
)

// DeathSystem owns the kill -> death sequence -> removal -> respawn
// chain. Kills arrive as events from the resolver; removal and respawn
// are deferred through the world scheduler so the death sequence plays
// out before the entity disappears
type DeathSystem struct {
	world *engine.World

	// pending guards against double-scheduling a death sequence for the
	// same entity within one tick's event batch
	pending map[core.Entity]bool

	// respawn state captured from the player ship at removal time
	respawnShip      component.ShipComponent
	respawnShield    component.ShieldStackComponent
	respawnSectional component.SectionalShieldComponent
	respawnWeapon    component.WeaponComponent
	hasSectional     bool

	statDeaths *atomic.Int64

	enabled bool
}

func NewDeathSystem(world *engine.World) *DeathSystem {
	s := &DeathSystem{
		world: world,
	}
	s.Init()
	return s
}

func (s *DeathSystem) Init() {
	s.enabled = true
	s.pending = make(map[core.Entity]bool)
	s.statDeaths = s.world.Resources.Status.Ints.Get("player.deaths")
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventShipKilled,
		event.EventDeathComplete,
		event.EventRespawn,
	}
}

func (s *DeathSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventShipKilled:
		if payload, ok := ev.Payload.(*event.ShipKilledPayload); ok {
			s.onShipKilled(payload)
		}
	case event.EventDeathComplete:
		if payload, ok := ev.Payload.(*event.LifecyclePayload); ok {
			s.onDeathComplete(payload.Entity)
		}
	case event.EventRespawn:
		if payload, ok := ev.Payload.(*event.LifecyclePayload); ok {
			s.onRespawn(payload.Entity)
		}
	}
}

func (s *DeathSystem) Update() {}

func (s *DeathSystem) onShipKilled(payload *event.ShipKilledPayload) {
	if s.pending[payload.Entity] {
		return
	}
	s.pending[payload.Entity] = true

	player := &s.world.Resources.Player
	if payload.ByPlayer {
		player.Score += payload.Score
		player.Kills++
	}
	if payload.Entity == player.Entity {
		player.Deaths++
		s.statDeaths.Add(1)
		s.world.PushEvent(event.EventNotification, &event.NotificationPayload{
			Message: "ship destroyed",
		})
	}

	s.world.ScheduleEvent(parameter.DeathSequenceDelay,
		event.EventDeathComplete, &event.LifecyclePayload{Entity: payload.Entity})

	s.world.Resources.Log.Debugw("death sequence started",
		"entity", payload.Entity,
		"by_player", payload.ByPlayer)
}

func (s *DeathSystem) onDeathComplete(e core.Entity) {
	delete(s.pending, e)

	player := &s.world.Resources.Player
	if e == player.Entity && !player.Respawning {
		s.captureRespawnState(e)
		player.Respawning = true
		s.world.ScheduleEvent(parameter.RespawnDelay,
			event.EventRespawn, &event.LifecyclePayload{Entity: e})
	}

	s.world.DestroyEntity(e)
}

// captureRespawnState snapshots the player loadout before the entity is
// torn down so the respawned ship comes back with the same fit
func (s *DeathSystem) captureRespawnState(e core.Entity) {
	if ship, ok := s.world.Components.Ship.GetComponent(e); ok {
		s.respawnShip = ship
	}
	if shield, ok := s.world.Components.Shield.GetComponent(e); ok {
		s.respawnShield = shield
	}
	s.respawnSectional, s.hasSectional = s.world.Components.Sectional.GetComponent(e)
	if weapon, ok := s.world.Components.Weapon.GetComponent(e); ok {
		s.respawnWeapon = weapon
	}
}

func (s *DeathSystem) onRespawn(_ core.Entity) {
	player := &s.world.Resources.Player
	if !player.Respawning {
		return
	}
	player.Respawning = false

	anchorX, anchorY := s.starPosition()

	e := s.world.CreateEntity()

	ship := s.respawnShip
	ship.Hull = ship.MaxHull
	ship.Fuel = ship.MaxFuel
	ship.Dying = false
	ship.WarpActive = false
	ship.WarpCharge = 0
	ship.RotVel = 0
	s.world.Components.Ship.SetComponent(e, ship)

	shield := s.respawnShield
	for i := range shield.Layers {
		layer := &shield.Layers[i]
		layer.Strength = layer.MaxStrength
		layer.TimeSinceHit = layer.RechargeDelay
		layer.AdaptiveBonus = 0
		layer.RepeatHits = 0
	}
	s.world.Components.Shield.SetComponent(e, shield)

	if s.hasSectional {
		sectional := s.respawnSectional
		for i := range sectional.Sections {
			sectional.Sections[i].Strength = sectional.Sections[i].MaxStrength
		}
		s.world.Components.Sectional.SetComponent(e, sectional)
	}

	weapon := s.respawnWeapon
	weapon.CooldownLeft = 0
	weapon.MiningTarget = core.None
	weapon.MiningProgress = 0
	s.world.Components.Weapon.SetComponent(e, weapon)

	s.world.Components.Kinetic.SetComponent(e, core.Kinetic{
		X: anchorX + parameter.RespawnOffset,
		Y: anchorY,
	})

	player.Entity = e

	s.world.Resources.Log.Infow("player respawned", "entity", e)
	s.world.PushEvent(event.EventNotification, &event.NotificationPayload{
		Message: "respawned",
	})
}

func (s *DeathSystem) starPosition() (float64, float64) {
	for _, e := range s.world.Components.Body.GetAllEntities() {
		body, ok := s.world.Components.Body.GetComponent(e)
		if !ok || !body.Star {
			continue
		}
		if k, ok := s.world.Components.Kinetic.GetComponent(e); ok {
			return k.X, k.Y
		}
	}
	return 0, 0
}
