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
	"github.com/lumenfall/stardrift/status"
)

// ProjectileSystem is the collision and damage resolver: it owns the
// projectile list, mine arming and proximity detonation, piercing and
// explosive semantics, shield mitigation, momentum transfer, and kill
// bookkeeping. A projectile is removed at most once per tick and never
// revisited after removal
type ProjectileSystem struct {
	world *engine.World

	statShots  *atomic.Int64
	statHits   *atomic.Int64
	statKills  *atomic.Int64
	statDamage *status.AtomicFloat

	enabled bool
}

func NewProjectileSystem(world *engine.World) *ProjectileSystem {
	s := &ProjectileSystem{
		world: world,
	}

	s.statShots = world.Resources.Status.Ints.Get("combat.shots_fired")
	s.statHits = world.Resources.Status.Ints.Get("combat.hits")
	s.statKills = world.Resources.Status.Ints.Get("combat.kills")
	s.statDamage = world.Resources.Status.Floats.Get("combat.damage_dealt")

	s.Init()
	return s
}

func (s *ProjectileSystem) Init() {
	s.statShots.Store(0)
	s.statHits.Store(0)
	s.statKills.Store(0)
	s.statDamage.Set(0)
	s.enabled = true
}

func (s *ProjectileSystem) Name() string {
	return "projectile"
}

func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

func (s *ProjectileSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventProjectileSpawn,
		event.EventGameReset,
	}
}

func (s *ProjectileSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if !s.enabled {
		return
	}

	if ev.Type == event.EventProjectileSpawn {
		if p, ok := ev.Payload.(*event.ProjectileSpawnPayload); ok {
			s.spawn(p)
		}
	}
}

func (s *ProjectileSystem) spawn(p *event.ProjectileSpawnPayload) {
	e := s.world.CreateEntity()
	s.world.Components.Kinetic.SetComponent(e, core.Kinetic{
		X: p.X, Y: p.Y,
		VelX: p.VelX, VelY: p.VelY,
	})
	s.world.Components.Projectile.SetComponent(e, component.ProjectileComponent{
		Damage:          p.Damage,
		DamageType:      p.DamageType,
		Life:            p.Life,
		Mass:            p.Mass,
		Friendly:        p.Friendly,
		Piercing:        p.Piercing,
		Explosive:       p.Explosive,
		BlastRadius:     p.BlastRadius,
		Mine:            p.Mine,
		ArmingTimer:     p.ArmingTimer,
		ProximityRadius: p.ProximityRadius,
		Owner:           p.Owner,
	})
	if p.Friendly {
		s.statShots.Add(1)
	}
}

func (s *ProjectileSystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()

	// Reverse index order: iteration removes its current element, and a
	// removed projectile must never be referenced again this tick
	entities := s.world.Components.Projectile.GetAllEntities()
	for i := len(entities) - 1; i >= 0; i-- {
		s.updateProjectile(entities[i], dt)
	}
}

func (s *ProjectileSystem) updateProjectile(e core.Entity, dt float64) {
	proj, ok := s.world.Components.Projectile.GetComponent(e)
	if !ok {
		return
	}
	k, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return
	}

	proj.HitThisTick = proj.HitThisTick[:0]

	// 1. Mine handling: extra friction, arming, proximity detonation
	if proj.Mine {
		physics.ApplyDrag(&k, parameter.MineFriction, dt)
		if proj.ArmingTimer > 0 {
			proj.ArmingTimer -= dt
		} else if s.anyInProximity(&proj, &k) {
			s.detonate(e, &proj, &k)
			return
		}
	}

	// 2. Integrate and age
	physics.Integrate(&k, dt)
	proj.Life -= dt
	if proj.Life <= 0 {
		s.world.DestroyEntity(e)
		return
	}

	// 3. Collision against the relevant target set, in fixed category
	// priority order; checking stops at the first category that hits
	removed := s.resolveCollisions(e, &proj, &k)
	if removed {
		return
	}

	s.world.Components.Projectile.SetComponent(e, proj)
	s.world.Components.Kinetic.SetComponent(e, k)
}

// anyInProximity reports whether an opposing ship sits inside the mine's
// proximity radius. The first one found triggers; one detonation per mine
func (s *ProjectileSystem) anyInProximity(proj *component.ProjectileComponent, k *core.Kinetic) bool {
	for _, target := range s.world.Components.Ship.GetAllEntities() {
		ship, ok := s.world.Components.Ship.GetComponent(target)
		if !ok || ship.Dying || !s.opposes(proj, ship.Faction) {
			continue
		}
		tk, ok := s.world.Components.Kinetic.GetComponent(target)
		if !ok {
			continue
		}
		if physics.Overlap(k.X, k.Y, tk.X, tk.Y, proj.ProximityRadius) {
			return true
		}
	}
	return false
}

func (s *ProjectileSystem) opposes(proj *component.ProjectileComponent, f component.Faction) bool {
	if proj.Friendly {
		return f == component.FactionHostile
	}
	return f == component.FactionPlayer
}

// detonate applies area damage once, emits exactly one explosion, and
// removes the projectile
func (s *ProjectileSystem) detonate(e core.Entity, proj *component.ProjectileComponent, k *core.Kinetic) {
	s.applyAreaDamage(k.X, k.Y, proj.BlastRadius, proj.Damage, proj.Friendly)
	s.world.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{
		X: k.X, Y: k.Y, Radius: proj.BlastRadius,
	})
	s.world.Resources.Camera.AddShake(parameter.ShakeOnExplosion)
	s.world.DestroyEntity(e)
}

// applyAreaDamage hits every opposing entity within radius with
// explosive-type damage, routed through shields for ships
func (s *ProjectileSystem) applyAreaDamage(x, y, radius, damage float64, friendly bool) {
	for _, target := range s.world.Components.Ship.GetAllEntities() {
		ship, ok := s.world.Components.Ship.GetComponent(target)
		if !ok || ship.Dying {
			continue
		}
		if friendly != (ship.Faction == component.FactionHostile) {
			continue
		}
		tk, ok := s.world.Components.Kinetic.GetComponent(target)
		if !ok {
			continue
		}
		if !physics.Overlap(x, y, tk.X, tk.Y, radius+ship.Radius) {
			continue
		}
		hitAngle := math.Atan2(tk.Y-y, tk.X-x)
		s.applyShipDamage(target, damage, core.DamageExplosive, hitAngle, friendly)
	}

	if !friendly {
		return
	}
	for _, target := range s.world.Components.Obstacle.GetAllEntities() {
		obs, ok := s.world.Components.Obstacle.GetComponent(target)
		if !ok {
			continue
		}
		tk, ok := s.world.Components.Kinetic.GetComponent(target)
		if !ok {
			continue
		}
		if !physics.Overlap(x, y, tk.X, tk.Y, radius+obs.Radius) {
			continue
		}
		s.applyObstacleDamage(target, obs, damage)
	}
}

// resolveCollisions tests the projectile against its target categories
// in fixed priority order (ships, asteroids, comets, stations). Returns
// true if the projectile was removed
func (s *ProjectileSystem) resolveCollisions(e core.Entity, proj *component.ProjectileComponent, k *core.Kinetic) bool {
	if hit, removed := s.collideShips(e, proj, k); hit || removed {
		return removed
	}
	if !proj.Friendly {
		return false
	}
	for _, kind := range [...]component.ObstacleKind{
		component.ObstacleAsteroid,
		component.ObstacleComet,
		component.ObstacleStation,
	} {
		if hit, removed := s.collideObstacles(e, proj, k, kind); hit || removed {
			return removed
		}
	}
	return false
}

// collideShips resolves the projectile against opposing ships. Piercing
// projectiles continue through remaining ships this tick but never hit
// the same entity twice
func (s *ProjectileSystem) collideShips(e core.Entity, proj *component.ProjectileComponent, k *core.Kinetic) (hitAny, removed bool) {
	for _, target := range s.world.Components.Ship.GetAllEntities() {
		ship, ok := s.world.Components.Ship.GetComponent(target)
		if !ok || ship.Dying || !s.opposes(proj, ship.Faction) {
			continue
		}
		if proj.AlreadyHit(target) {
			continue
		}
		tk, ok := s.world.Components.Kinetic.GetComponent(target)
		if !ok {
			continue
		}
		if !physics.Overlap(k.X, k.Y, tk.X, tk.Y, ship.Radius) {
			continue
		}

		if proj.Explosive {
			// No direct damage: convert the hit into an area detonation
			s.detonate(e, proj, k)
			return true, true
		}

		hitAngle := math.Atan2(k.Y-tk.Y, k.X-tk.X)
		s.applyShipDamage(target, proj.Damage, proj.DamageType, hitAngle, proj.Friendly)
		physics.ApplyHitImpulse(&tk, k.VelX, k.VelY, proj.Mass, ship.Mass, &physics.DirectHit, s.world.Resources.Rng)
		s.world.Components.Kinetic.SetComponent(target, tk)

		proj.HitThisTick = append(proj.HitThisTick, target)
		hitAny = true
		if proj.Friendly {
			s.statHits.Add(1)
		}
		s.world.Resources.Camera.AddShake(parameter.ShakeOnHit)

		if !proj.Piercing {
			s.world.DestroyEntity(e)
			return true, true
		}
	}
	return hitAny, false
}

func (s *ProjectileSystem) collideObstacles(e core.Entity, proj *component.ProjectileComponent, k *core.Kinetic, kind component.ObstacleKind) (hitAny, removed bool) {
	for _, target := range s.world.Components.Obstacle.GetAllEntities() {
		obs, ok := s.world.Components.Obstacle.GetComponent(target)
		if !ok || obs.Kind != kind {
			continue
		}
		if proj.AlreadyHit(target) {
			continue
		}
		tk, ok := s.world.Components.Kinetic.GetComponent(target)
		if !ok {
			continue
		}
		if !physics.Overlap(k.X, k.Y, tk.X, tk.Y, obs.Radius) {
			continue
		}

		if proj.Explosive {
			s.detonate(e, proj, k)
			return true, true
		}

		s.applyObstacleDamage(target, obs, proj.Damage)

		proj.HitThisTick = append(proj.HitThisTick, target)
		hitAny = true
		s.statHits.Add(1)

		if !proj.Piercing {
			s.world.DestroyEntity(e)
			return true, true
		}
	}
	return hitAny, false
}

// applyShipDamage routes damage through the target's shield model and
// applies the remainder to hull. Death marking happens here exactly
// once, guarded by the Dying flag
func (s *ProjectileSystem) applyShipDamage(target core.Entity, damage float64, dtype core.DamageType, hitAngle float64, byPlayer bool) {
	ship, ok := s.world.Components.Ship.GetComponent(target)
	if !ok || ship.Dying {
		return
	}

	remaining := damage
	if sectional, ok := s.world.Components.Sectional.GetComponent(target); ok {
		remaining = sectional.Absorb(remaining, dtype, hitAngle, ship.Rotation)
		s.world.Components.Sectional.SetComponent(target, sectional)
	} else if stack, ok := s.world.Components.Shield.GetComponent(target); ok {
		remaining = stack.Absorb(remaining, dtype, s.world.Resources.Rng)
		s.world.Components.Shield.SetComponent(target, stack)
	}

	ship.Hull -= remaining
	if byPlayer {
		s.statDamage.Add(damage)
	}

	if ship.Hull <= 0 {
		ship.Dying = true
		tk, _ := s.world.Components.Kinetic.GetComponent(target)
		s.world.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{
			X: tk.X, Y: tk.Y, Radius: ship.Radius * 3,
		})
		s.world.PushEvent(event.EventShipKilled, &event.ShipKilledPayload{
			Entity:   target,
			ByPlayer: byPlayer,
			Score:    ship.ScoreValue,
		})
		if byPlayer {
			s.statKills.Add(1)
		}
		s.world.Resources.Camera.AddShake(parameter.ShakeOnExplosion)
	}

	s.world.Components.Ship.SetComponent(target, ship)
}

// applyObstacleDamage hits bare hull; obstacles carry no shields
func (s *ProjectileSystem) applyObstacleDamage(target core.Entity, obs component.ObstacleComponent, damage float64) {
	obs.Hull -= damage
	s.statDamage.Add(damage)

	if obs.Hull > 0 {
		s.world.Components.Obstacle.SetComponent(target, obs)
		return
	}

	tk, _ := s.world.Components.Kinetic.GetComponent(target)
	s.world.PushEvent(event.EventExplosionSpawn, &event.ExplosionSpawnPayload{
		X: tk.X, Y: tk.Y, Radius: obs.Radius * 2,
	})
	s.world.PushEvent(event.EventNotification, &event.NotificationPayload{
		Message: obs.Kind.String() + " destroyed",
	})
	s.world.Resources.Player.Score += obs.ScoreValue
	s.world.DestroyEntity(target)
}
