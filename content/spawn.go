package content

import (
	"math"

	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/parameter"
)

// Apply instantiates a system plan into the world. Existing system
// content (bodies, hostiles, obstacles, projectiles, explosions) is
// torn down first; the player entity survives the swap
func Apply(w *engine.World, plan SystemPlan) {
	clearSystemEntities(w)

	star := w.CreateEntity()
	w.Components.Kinetic.SetComponent(star, core.Kinetic{})
	w.Components.Body.SetComponent(star, component.BodyComponent{
		Mass:     plan.Star.Mass,
		Radius:   plan.Star.Radius,
		Star:     true,
		StarType: plan.StarType,
	})

	for _, p := range plan.Planets {
		e := w.CreateEntity()
		w.Components.Body.SetComponent(e, component.BodyComponent{
			Mass:         p.Mass,
			Radius:       p.Radius,
			Parent:       star,
			OrbitRadius:  p.OrbitRadius,
			OrbitAngle:   p.OrbitAngle,
			AngularSpeed: p.AngularSpeed,
			Eccentricity: p.Eccentricity,
		})
		w.Components.Kinetic.SetComponent(e, core.Kinetic{
			X: math.Cos(p.OrbitAngle) * p.OrbitRadius,
			Y: math.Sin(p.OrbitAngle) * p.OrbitRadius,
		})
	}

	for _, h := range plan.Hostiles {
		SpawnHostile(w, h.Class, h.X, h.Y)
	}

	for _, o := range plan.Obstacles {
		e := w.CreateEntity()
		w.Components.Kinetic.SetComponent(e, core.Kinetic{
			X: o.X, Y: o.Y,
			VelX: o.VelX, VelY: o.VelY,
		})
		w.Components.Obstacle.SetComponent(e, component.ObstacleComponent{
			Kind:       o.Kind,
			Hull:       o.Hull,
			Radius:     o.Radius,
			ScoreValue: o.Score,
			Yield:      o.Yield,
		})
	}

	w.Resources.Log.Infow("system content applied",
		"system", plan.Index,
		"planets", len(plan.Planets),
		"hostiles", len(plan.Hostiles),
		"obstacles", len(plan.Obstacles))
}

// SpawnHostile creates one hostile ship of the given class at x, y
// The spawn point becomes the patrol anchor
func SpawnHostile(w *engine.World, class parameter.HostileClass, x, y float64) core.Entity {
	profile := parameter.Profile(class)

	e := w.CreateEntity()
	w.Components.Kinetic.SetComponent(e, core.Kinetic{X: x, Y: y})

	ship := component.ShipComponent{
		Faction:    component.FactionHostile,
		Class:      class,
		Hull:       profile.Hull,
		MaxHull:    profile.Hull,
		Mass:       profile.Mass,
		Radius:     profile.Radius,
		Rotation:   0,
		ScoreValue: profile.ScoreValue,
	}
	w.Components.Ship.SetComponent(e, ship)

	state := component.AIPatrol
	if profile.Swarms {
		state = component.AISwarm
	}
	w.Components.AI.SetComponent(e, component.AIComponent{
		State:       state,
		AnchorX:     x,
		AnchorY:     y,
		PatrolPhase: math.Atan2(y, x),
		StrafeSign:  1,
	})

	// Heavies carry a plain shield layer; lighter classes fly bare
	if class == parameter.ClassHeavy {
		w.Components.Shield.SetComponent(e, component.ShieldStackComponent{
			Layers: []component.ShieldLayer{
				{
					Strength:      80,
					MaxStrength:   80,
					Resistance:    [core.DamageTypeCount]float64{1.0, 1.0, 1.0},
					RechargeRate:  4,
					RechargeDelay: 3,
					TimeSinceHit:  10,
				},
			},
		})
	}

	return e
}

// SpawnPlayer creates the player ship near the star with its default
// loadout. sectional selects the quadrant shield variant over the
// layered stack
func SpawnPlayer(w *engine.World, sectional bool) core.Entity {
	e := w.CreateEntity()

	w.Components.Kinetic.SetComponent(e, core.Kinetic{
		X: parameter.RespawnOffset,
	})

	w.Components.Ship.SetComponent(e, component.ShipComponent{
		Faction: component.FactionPlayer,
		Hull:    100,
		MaxHull: 100,
		Fuel:    100,
		MaxFuel: 100,
		Power:   100,
		Mass:    300,
		Radius:  16,
	})

	w.Components.Weapon.SetComponent(e, component.WeaponComponent{
		Cooldown:   0.25,
		ProjSpeed:  800,
		ProjDamage: 12,
		ProjLife:   2.0,
		ProjMass:   1.0,
		DamageType: core.DamageKinetic,
	})

	if sectional {
		var sections [4]component.SectionState
		for i := range sections {
			sections[i] = component.SectionState{
				Strength:    50,
				MaxStrength: 50,
				Multiplier:  0.8,
			}
		}
		w.Components.Sectional.SetComponent(e, component.SectionalShieldComponent{
			Sections:   sections,
			Modulation: [core.DamageTypeCount]float64{1.0, 1.0, 1.0},
		})
	} else {
		w.Components.Shield.SetComponent(e, component.ShieldStackComponent{
			Layers: []component.ShieldLayer{
				{
					Strength:      40,
					MaxStrength:   40,
					Resistance:    [core.DamageTypeCount]float64{0.9, 0.7, 1.1},
					RechargeRate:  3,
					Behavior:      component.ShieldRegenerative,
				},
				{
					Strength:      60,
					MaxStrength:   60,
					Resistance:    [core.DamageTypeCount]float64{1.0, 1.0, 0.8},
					RechargeRate:  6,
					RechargeDelay: 3,
					TimeSinceHit:  10,
				},
			},
		})
	}

	w.Resources.Player.Entity = e
	return e
}

// clearSystemEntities removes everything except the player ship and its
// attached components
func clearSystemEntities(w *engine.World) {
	player := w.Resources.Player.Entity

	for _, e := range w.Components.Body.GetAllEntities() {
		w.DestroyEntity(e)
	}
	for _, e := range w.Components.Obstacle.GetAllEntities() {
		w.DestroyEntity(e)
	}
	for _, e := range w.Components.Projectile.GetAllEntities() {
		w.DestroyEntity(e)
	}
	for _, e := range w.Components.Explosion.GetAllEntities() {
		w.DestroyEntity(e)
	}
	for _, e := range w.Components.Ship.GetAllEntities() {
		if e == player {
			continue
		}
		w.DestroyEntity(e)
	}
}
