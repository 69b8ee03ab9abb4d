package system

import (
	"math"
	"sync/atomic"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/event"
	"github.com/lumenfall/stardrift/parameter"
	"github.com/lumenfall/stardrift/vmath"
)

// AISystem drives the hostile behavior machine once per tick, producing
// acceleration and fire intents consumed by the integrator and resolver
// on the following tick. Transitions are a pure function of hull
// fraction, distance to the player, and the per-ship timer
type AISystem struct {
	world *engine.World

	statShots *atomic.Int64

	enabled bool
}

func NewAISystem(world *engine.World) *AISystem {
	s := &AISystem{
		world: world,
	}

	s.statShots = world.Resources.Status.Ints.Get("ai.shots_fired")

	s.Init()
	return s
}

func (s *AISystem) Init() {
	s.statShots.Store(0)
	s.enabled = true
}

func (s *AISystem) Name() string {
	return "ai"
}

func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

func (s *AISystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

func (s *AISystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

func (s *AISystem) Update() {
	if !s.enabled {
		return
	}

	dt := s.world.Resources.Time.DeltaTime.Seconds()

	// The target handle is validated every tick, never assumed live
	targetEntity, targetK, hasTarget := s.liveTarget()

	for _, e := range s.world.Components.AI.GetAllEntities() {
		ai, ok := s.world.Components.AI.GetComponent(e)
		if !ok {
			continue
		}
		ship, ok := s.world.Components.Ship.GetComponent(e)
		if !ok || ship.Dying {
			continue
		}
		k, ok := s.world.Components.Kinetic.GetComponent(e)
		if !ok {
			continue
		}

		profile := parameter.Profile(ship.Class)

		ai.Timer += dt
		if ai.FireCooldown > 0 {
			ai.FireCooldown -= dt
		}
		if hasTarget {
			ai.Target = targetEntity
		} else {
			ai.Target = core.None
		}

		if profile.Swarms {
			ai.State = component.AISwarm
			s.runSwarm(e, &k, targetK, hasTarget)
		} else {
			if !hasTarget {
				// No live target: remain in patrol, silently
				if ai.State != component.AIPatrol {
					ai.State = component.AIPatrol
					ai.Timer = 0
				}
				s.runPatrol(&ai, &ship, &k, profile, dt)
			} else {
				dist := vmath.Magnitude(targetK.X-k.X, targetK.Y-k.Y)
				s.transition(&ai, &ship, profile, dist)

				switch ai.State {
				case component.AIPatrol:
					s.runPatrol(&ai, &ship, &k, profile, dt)
				case component.AIApproach:
					s.runApproach(&ship, &k, &targetK, profile, dt)
				case component.AIEngage:
					s.runEngage(e, &ai, &ship, &k, &targetK, profile, dt, dist)
				case component.AIEvade:
					s.runEvade(&ai, &ship, &k, &targetK, profile, dt)
				}
			}
		}

		s.world.Components.AI.SetComponent(e, ai)
		s.world.Components.Ship.SetComponent(e, ship)
		s.world.Components.Kinetic.SetComponent(e, k)
	}
}

// liveTarget resolves the player handle, requiring a living ship
func (s *AISystem) liveTarget() (core.Entity, core.Kinetic, bool) {
	e := s.world.Resources.Player.Entity
	ship, ok := s.world.Components.Ship.GetComponent(e)
	if !ok || ship.Dying {
		return core.None, core.Kinetic{}, false
	}
	k, ok := s.world.Components.Kinetic.GetComponent(e)
	if !ok {
		return core.None, core.Kinetic{}, false
	}
	return e, k, true
}

// transition computes the next state from hull fraction and distance
func (s *AISystem) transition(ai *component.AIComponent, ship *component.ShipComponent, profile *parameter.HostileProfile, dist float64) {
	prev := ai.State
	hullFrac := ship.HullFraction()

	next := prev
	switch {
	case prev == component.AIEvade:
		// Exit requires both the timer and hull recovery gates
		if ai.Timer > parameter.EvadeRecoverTime && hullFrac > parameter.EvadeRecoverHull {
			next = component.AIEngage
		}
	case hullFrac < profile.EvadeThreshold:
		next = component.AIEvade
	case dist > parameter.DetectionRange:
		next = component.AIPatrol
	case dist <= parameter.EngageRange:
		next = component.AIEngage
	default:
		next = component.AIApproach
	}

	if next != prev {
		ai.State = next
		ai.Timer = 0
	}
}

func (s *AISystem) runPatrol(ai *component.AIComponent, ship *component.ShipComponent, k *core.Kinetic, profile *parameter.HostileProfile, dt float64) {
	ai.PatrolPhase = vmath.WrapAngle(ai.PatrolPhase + 0.5*dt)
	wx := ai.AnchorX + math.Cos(ai.PatrolPhase)*parameter.PatrolRadius
	wy := ai.AnchorY + math.Sin(ai.PatrolPhase)*parameter.PatrolRadius

	dx, dy := vmath.Normalize2D(wx-k.X, wy-k.Y)
	k.AccelX += dx * parameter.PatrolAccel
	k.AccelY += dy * parameter.PatrolAccel

	s.face(ship, math.Atan2(dy, dx), profile.TurnRate*dt)
}

func (s *AISystem) runApproach(ship *component.ShipComponent, k *core.Kinetic, targetK *core.Kinetic, profile *parameter.HostileProfile, dt float64) {
	dx, dy := vmath.Normalize2D(targetK.X-k.X, targetK.Y-k.Y)
	k.AccelX += dx * parameter.ApproachAccel
	k.AccelY += dy * parameter.ApproachAccel
	s.face(ship, math.Atan2(dy, dx), profile.TurnRate*dt)
}

// runEngage strafes perpendicular to the line of sight, holds distance
// near 70% of engage range, aims with lead prediction, and fires when
// the cooldown has elapsed
func (s *AISystem) runEngage(
	e core.Entity,
	ai *component.AIComponent,
	ship *component.ShipComponent,
	k *core.Kinetic,
	targetK *core.Kinetic,
	profile *parameter.HostileProfile,
	dt, dist float64,
) {
	losX, losY := vmath.Normalize2D(targetK.X-k.X, targetK.Y-k.Y)

	// Alternate strafe direction on a timer
	ai.StrafeTimer -= dt
	if ai.StrafeTimer <= 0 {
		if ai.StrafeSign >= 0 {
			ai.StrafeSign = -1
		} else {
			ai.StrafeSign = 1
		}
		ai.StrafeTimer = parameter.StrafeInterval
	}
	px, py := vmath.Perpendicular(losX, losY)
	k.AccelX += px * ai.StrafeSign * parameter.StrafeAccel
	k.AccelY += py * ai.StrafeSign * parameter.StrafeAccel

	// Hold distance band around 70% of engage range
	hold := parameter.EngageRange * parameter.EngageHoldFraction
	band := hold * parameter.EngageHoldBand
	if dist < hold-band {
		k.AccelX -= losX * parameter.ApproachAccel
		k.AccelY -= losY * parameter.ApproachAccel
	} else if dist > hold+band {
		k.AccelX += losX * parameter.ApproachAccel
		k.AccelY += losY * parameter.ApproachAccel
	}

	// Lead prediction: aim where the target will be when the round arrives
	aimX, aimY := LeadTarget(k.X, k.Y, targetK.X, targetK.Y, targetK.VelX, targetK.VelY, profile.ProjSpeed)
	aimAngle := math.Atan2(aimY-k.Y, aimX-k.X)
	s.face(ship, aimAngle, profile.TurnRate*dt)

	if ai.FireCooldown <= 0 {
		spread := s.world.Resources.Rng.Range(-profile.Spread, profile.Spread)
		angle := aimAngle + spread
		dirX, dirY := math.Cos(angle), math.Sin(angle)

		s.world.PushEvent(event.EventProjectileSpawn, &event.ProjectileSpawnPayload{
			X:          k.X + dirX*ship.Radius,
			Y:          k.Y + dirY*ship.Radius,
			VelX:       k.VelX + dirX*profile.ProjSpeed,
			VelY:       k.VelY + dirY*profile.ProjSpeed,
			Damage:     profile.ProjDamage,
			DamageType: core.DamageKinetic,
			Life:       profile.ProjLife,
			Mass:       profile.ProjMass,
			Friendly:   false,
			Owner:      e,
		})
		ai.FireCooldown = profile.FireCooldown
		s.statShots.Add(1)
	}
}

// runEvade flees directly away from the player with a sinusoidal jink
func (s *AISystem) runEvade(ai *component.AIComponent, ship *component.ShipComponent, k *core.Kinetic, targetK *core.Kinetic, profile *parameter.HostileProfile, dt float64) {
	fleeX, fleeY := vmath.Normalize2D(k.X-targetK.X, k.Y-targetK.Y)
	if fleeX == 0 && fleeY == 0 {
		fleeX = 1
	}
	k.AccelX += fleeX * parameter.EvadeAccel
	k.AccelY += fleeY * parameter.EvadeAccel

	jink := math.Sin(ai.Timer*parameter.EvadeJinkFreq) * parameter.EvadeJinkAccel
	px, py := vmath.Perpendicular(fleeX, fleeY)
	k.AccelX += px * jink
	k.AccelY += py * jink

	s.face(ship, math.Atan2(fleeY, fleeX), profile.TurnRate*dt)
}

// runSwarm computes classic flocking for hive ships: cohesion toward the
// local centroid, inverse-distance separation, velocity alignment, plus
// a constant pull toward the player — all summed as acceleration
func (s *AISystem) runSwarm(e core.Entity, k *core.Kinetic, targetK core.Kinetic, hasTarget bool) {
	var (
		cx, cy float64 // centroid accumulator
		ax, ay float64 // alignment accumulator
		sx, sy float64 // separation accumulator
		count  int
	)

	cohesionSq := parameter.SwarmCohesionRadius * parameter.SwarmCohesionRadius
	sepSq := parameter.SwarmSeparationRadius * parameter.SwarmSeparationRadius

	for _, other := range s.world.Components.AI.GetAllEntities() {
		if other == e {
			continue
		}
		otherShip, ok := s.world.Components.Ship.GetComponent(other)
		if !ok || otherShip.Dying || !parameter.Profile(otherShip.Class).Swarms {
			continue
		}
		otherK, ok := s.world.Components.Kinetic.GetComponent(other)
		if !ok {
			continue
		}

		dSq := vmath.DistSq(k.X, k.Y, otherK.X, otherK.Y)
		if dSq > cohesionSq {
			continue
		}

		cx += otherK.X
		cy += otherK.Y
		ax += otherK.VelX
		ay += otherK.VelY
		count++

		if dSq < sepSq && dSq > 0 {
			// Inverse-distance repulsion
			d := math.Sqrt(dSq)
			sx += (k.X - otherK.X) / d / d
			sy += (k.Y - otherK.Y) / d / d
		}
	}

	if count > 0 {
		cx = cx/float64(count) - k.X
		cy = cy/float64(count) - k.Y
		k.AccelX += cx * parameter.SwarmCohesionWeight
		k.AccelY += cy * parameter.SwarmCohesionWeight

		ax = ax/float64(count) - k.VelX
		ay = ay/float64(count) - k.VelY
		k.AccelX += ax * parameter.SwarmAlignmentWeight
		k.AccelY += ay * parameter.SwarmAlignmentWeight

		k.AccelX += sx * parameter.SwarmSeparationWeight
		k.AccelY += sy * parameter.SwarmSeparationWeight
	}

	if hasTarget {
		dx, dy := vmath.Normalize2D(targetK.X-k.X, targetK.Y-k.Y)
		k.AccelX += dx * parameter.SwarmPlayerPull
		k.AccelY += dy * parameter.SwarmPlayerPull
	}
}

// face turns the ship toward target by at most maxStep radians
func (s *AISystem) face(ship *component.ShipComponent, target, maxStep float64) {
	ship.Rotation = vmath.TurnToward(ship.Rotation, target, maxStep)
}

// LeadTarget predicts the intercept aim point from projectile speed and
// current target velocity: predicted = pos + vel * dist / projSpeed
func LeadTarget(fromX, fromY, tx, ty, tvx, tvy, projSpeed float64) (float64, float64) {
	if projSpeed <= 0 {
		return tx, ty
	}
	dist := vmath.Magnitude(tx-fromX, ty-fromY)
	t := dist / projSpeed
	return tx + tvx*t, ty + tvy*t
}
