package system

import (
	"math"
	"sync/atomic"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
	"github.com/lumenfall/stardrift/physics"
	"github.com/lumenfall/stardrift/vmath"
)

// MotionSystem advances position/velocity for ships and celestial bodies
// each tick: control impulses, warp ramp, orbit maintenance, drag, the
// dual speed caps, and numeric-validity recovery
type MotionSystem struct {
	world *engine.World

	statCorrections *atomic.Int64
	statOrbitCancel *atomic.Int64

	// warn once per session when celestial updates degrade
	circularFallback bool

	enabled bool
}

func NewMotionSystem(world *engine.World) *MotionSystem {
	s := &MotionSystem{
		world: world,
	}

	s.statCorrections = world.Resources.Status.Ints.Get("physics.corrections")
	s.statOrbitCancel = world.Resources.Status.Ints.Get("physics.orbit_cancelled")

	s.Init()
	return s
}

func (s *MotionSystem) Init() {
	s.statCorrections.Store(0)
	s.statOrbitCancel.Store(0)
	s.circularFallback = false
	s.enabled = true
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *MotionSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *MotionSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()
	anchorX, anchorY := s.starAnchor()

	s.updatePlayerControl(dt)

	for _, e := range s.world.Components.Ship.GetAllEntities() {
		s.updateShip(e, dt, anchorX, anchorY)
	}

	s.updateBodies(dt)
}

// starAnchor returns the primary star position, the known-good recovery
// point for corrupted positions
func (s *MotionSystem) starAnchor() (float64, float64) {
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

// updatePlayerControl applies input impulses, the warp ramp, weapon fire
// and mining to the player ship. Manual thrust or brake cancels orbit
func (s *MotionSystem) updatePlayerControl(dt float64) {
	playerEntity := s.world.Resources.Player.Entity
	ship, ok := s.world.Components.Ship.GetComponent(playerEntity)
	if !ok || ship.Dying {
		return
	}
	k, ok := s.world.Components.Kinetic.GetComponent(playerEntity)
	if !ok {
		return
	}

	input := s.world.Resources.Input

	// Turn input feeds rotational velocity; damping happens in updateShip
	ship.RotVel += input.Rotation * parameter.PlayerTurnRate * dt

	manual := false
	if input.Thrust && ship.Fuel > 0 {
		physics.Thrust(&k, ship.Rotation, parameter.ThrustForce, ship.Mass)
		ship.Fuel -= parameter.ThrustFuelRate * dt
		manual = true
	}
	if input.Reverse && ship.Fuel > 0 {
		physics.Thrust(&k, ship.Rotation+math.Pi, parameter.ReverseForce, ship.Mass)
		ship.Fuel -= parameter.ThrustFuelRate * dt
		manual = true
	}
	if input.Brake {
		physics.Brake(&k, parameter.BrakeFactor, dt)
		manual = true
	}
	if manual && s.world.Components.Orbit.HasEntity(playerEntity) {
		s.cancelOrbit(playerEntity, "manual control")
	}

	// Warp ramp: charge builds while held; at full charge a large forward
	// impulse lands every tick until the drive deactivates
	if input.Warp && ship.Fuel > 0 {
		ship.WarpActive = true
		ship.WarpCharge += parameter.WarpChargeRate * dt
		if ship.WarpCharge >= 1.0 {
			ship.WarpCharge = 1.0
			physics.Thrust(&k, ship.Rotation, parameter.WarpForce, ship.Mass)
			ship.Fuel -= parameter.WarpFuelRate * dt
		}
	} else {
		ship.WarpActive = false
		ship.WarpCharge = 0
	}
	if ship.Fuel < 0 {
		ship.Fuel = 0
	}

	s.updatePlayerWeapon(playerEntity, &ship, &k, dt)

	s.world.Components.Ship.SetComponent(playerEntity, ship)
	s.world.Components.Kinetic.SetComponent(playerEntity, k)
}

func (s *MotionSystem) updatePlayerWeapon(playerEntity core.Entity, ship *component.ShipComponent, k *core.Kinetic, dt float64) {
	weapon, ok := s.world.Components.Weapon.GetComponent(playerEntity)
	if !ok {
		return
	}

	if weapon.CooldownLeft > 0 {
		weapon.CooldownLeft -= dt
	}

	input := s.world.Resources.Input
	if input.Firing && weapon.CooldownLeft <= 0 {
		dirX, dirY := math.Cos(ship.Rotation), math.Sin(ship.Rotation)
		s.world.PushEvent(event.EventProjectileSpawn, &event.ProjectileSpawnPayload{
			X:          k.X + dirX*ship.Radius,
			Y:          k.Y + dirY*ship.Radius,
			VelX:       k.VelX + dirX*weapon.ProjSpeed,
			VelY:       k.VelY + dirY*weapon.ProjSpeed,
			Damage:     weapon.ProjDamage,
			DamageType: weapon.DamageType,
			Life:       weapon.ProjLife,
			Mass:       weapon.ProjMass,
			Friendly:   true,
			Owner:      playerEntity,
		})
		weapon.CooldownLeft = weapon.Cooldown
	}

	s.updateMining(&weapon, k, dt)

	s.world.Components.Weapon.SetComponent(playerEntity, weapon)
}

// updateMining runs the mining beam against the nearest asteroid in range
func (s *MotionSystem) updateMining(weapon *component.WeaponComponent, k *core.Kinetic, dt float64) {
	if !s.world.Resources.Input.Mining {
		weapon.MiningTarget = core.None
		weapon.MiningProgress = 0
		return
	}

	target := core.None
	bestSq := parameter.MiningRange * parameter.MiningRange
	for _, e := range s.world.Components.Obstacle.GetAllEntities() {
		obs, ok := s.world.Components.Obstacle.GetComponent(e)
		if !ok || obs.Kind != component.ObstacleAsteroid {
			continue
		}
		rock, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}
		if d := vmath.DistSq(k.X, k.Y, rock.X, rock.Y); d < bestSq {
			bestSq = d
			target = e
		}
	}

	if target == core.None {
		weapon.MiningTarget = core.None
		weapon.MiningProgress = 0
		return
	}

	if target != weapon.MiningTarget {
		weapon.MiningTarget = target
		weapon.MiningProgress = 0
	}
	weapon.MiningProgress += dt
	if weapon.MiningProgress < parameter.MiningDuration {
		return
	}

	// Mining complete: grant yield, notify the UI layer, consume the rock
	if obs, ok := s.world.Components.Obstacle.GetComponent(target); ok {
		player := s.world.Resources.Player.Entity
		if ship, ok := s.world.Components.Ship.GetComponent(player); ok {
			ship.Fuel += obs.Yield
			if ship.Fuel > ship.MaxFuel {
				ship.Fuel = ship.MaxFuel
			}
			s.world.Components.Ship.SetComponent(player, ship)
		}
		s.world.PushEvent(event.EventNotification, &event.NotificationPayload{
			Message: "mining complete",
		})
		s.world.Resources.Status.Ints.Get("mining.completed").Add(1)
		s.world.DestroyEntity(target)
	}
	weapon.MiningTarget = core.None
	weapon.MiningProgress = 0
}

func (s *MotionSystem) updateShip(e core.Entity, dt, anchorX, anchorY float64) {
	ship, ok := s.world.Components.Ship.GetComponent(e)
	if !ok {
		return
	}
	k, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	// Rotational damping applies before velocity feeds rotation
	damp := 1 - parameter.RotationDamping*dt
	if damp < 0 {
		damp = 0
	}
	ship.RotVel *= damp
	ship.Rotation = vmath.WrapAngle(ship.Rotation + ship.RotVel*dt)
	if !vmath.IsFinite(ship.Rotation) || !vmath.IsFinite(ship.RotVel) {
		ship.Rotation = 0
		ship.RotVel = 0
		s.statCorrections.Add(1)
		s.world.Resources.Log.Warnw("rotation corrupted, reset", "entity", e)
	}

	s.maintainOrbit(e, &k, dt)

	speedBefore := vmath.Magnitude(k.VelX, k.VelY)

	physics.Integrate(&k, dt)
	physics.ApplyDrag(&k, parameter.ShipDrag, dt)

	// Context ceiling first, absolute ceiling after; both rescale the
	// vector so heading is preserved. The context ceiling binds only
	// self-propelled flight: velocity already past it (knockback, warp
	// residue) bleeds off through drag instead of snapping down
	ctxCeiling := parameter.MaxSpeed
	if ship.Faction == component.FactionHostile {
		ctxCeiling = parameter.Profile(ship.Class).MaxSpeed
	}
	if ship.WarpActive && ship.WarpCharge >= 1.0 {
		ctxCeiling = parameter.WarpMaxSpeed
	}
	if speedBefore <= ctxCeiling {
		physics.CapSpeed(&k.VelX, &k.VelY, ctxCeiling)
	}
	physics.CapSpeed(&k.VelX, &k.VelY, parameter.AbsoluteMaxSpeed)

	if r := physics.Sanitize(&k, anchorX, anchorY); r.VelocityReset || r.PositionReset {
		s.statCorrections.Add(1)
		s.world.Resources.Log.Warnw("kinetic corrupted, recovered",
			"entity", e,
			"velocity_reset", r.VelocityReset,
			"position_reset", r.PositionReset,
		)
	}

	s.world.Components.Ship.SetComponent(e, ship)
	s.world.Components.Kinetic.SetComponent(e, k)
}

// maintainOrbit blends velocity toward the circular-orbit tangential
// velocity, cancelling when the geometry drifts out of the stable band
func (s *MotionSystem) maintainOrbit(e core.Entity, k *core.Kinetic, dt float64) {
	orbit, ok := s.world.Components.Orbit.GetComponent(e)
	if !ok {
		return
	}
	body, ok := s.world.Components.Body.GetComponent(orbit.Body)
	if !ok {
		s.cancelOrbit(e, "body gone")
		return
	}
	bodyK, ok := s.world.Components.Kinetic.GetComponent(orbit.Body)
	if !ok {
		s.cancelOrbit(e, "body gone")
		return
	}

	dist := vmath.Magnitude(k.X-bodyK.X, k.Y-bodyK.Y)
	if dist > body.Radius*parameter.OrbitCancelOuterMult {
		s.cancelOrbit(e, "drifted out")
		return
	}
	if dist < body.Radius*parameter.OrbitCancelInnerMult {
		// Division instability territory
		s.cancelOrbit(e, "too close")
		return
	}

	if !physics.OrbitBlend(k, bodyK.X, bodyK.Y, parameter.GravityConst, body.Mass, parameter.OrbitBlendRate, dt) {
		s.cancelOrbit(e, "invalid geometry")
	}
}

func (s *MotionSystem) cancelOrbit(e core.Entity, reason string) {
	s.world.Components.Orbit.RemoveEntity(e)
	s.statOrbitCancel.Add(1)
	s.world.Resources.Log.Debugw("orbit cancelled", "entity", e, "reason", reason)
}

// updateBodies advances celestial bodies along their orbital elements,
// falling back to the circular formula if the elliptical update degrades
func (s *MotionSystem) updateBodies(dt float64) {
	for _, e := range s.world.Components.Body.GetAllEntities() {
		body, ok := s.world.Components.Body.GetComponent(e)
		if !ok || body.Star || body.Parent == core.None {
			continue
		}
		parentK, ok := s.world.Components.Kinetic.GetComponent(body.Parent)
		if !ok {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		body.OrbitAngle = vmath.WrapAngle(body.OrbitAngle + body.AngularSpeed*dt)

		r := physics.EllipticalRadius(body.OrbitRadius, body.Eccentricity, body.OrbitAngle)
		if !vmath.IsFinite(r) || r <= 0 {
			r = body.OrbitRadius
			if !s.circularFallback {
				s.circularFallback = true
				s.world.Resources.Log.Warnw("celestial update degraded to circular orbit", "entity", e)
			}
		}

		k.X = parentK.X + math.Cos(body.OrbitAngle)*r
		k.Y = parentK.Y + math.Sin(body.OrbitAngle)*r

		s.world.Components.Body.SetComponent(e, body)
		s.world.Components.Kinetic.SetComponent(e, k)
	}
}
