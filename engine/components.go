package engine

import (
	"github.com/lumenfall/stardrift/component"
	"github.com/lumenfall/stardrift/core"
)

// ComponentStore holds all typed component stores
// Explicitly typed for compile-time safety; no reflection
type ComponentStore struct {
	Kinetic     *Store[core.Kinetic]
	Ship        *Store[component.ShipComponent]
	Projectile  *Store[component.ProjectileComponent]
	Shield      *Store[component.ShieldStackComponent]
	Sectional   *Store[component.SectionalShieldComponent]
	AI          *Store[component.AIComponent]
	Body        *Store[component.BodyComponent]
	Obstacle    *Store[component.ObstacleComponent]
	Orbit       *Store[component.OrbitComponent]
	Weapon      *Store[component.WeaponComponent]
	Explosion   *Store[component.ExplosionComponent]

	allStores []AnyStore
}

func initComponentStores(w *World) {
	c := &w.Components
	c.Kinetic = NewStore[core.Kinetic]()
	c.Ship = NewStore[component.ShipComponent]()
	c.Projectile = NewStore[component.ProjectileComponent]()
	c.Shield = NewStore[component.ShieldStackComponent]()
	c.Sectional = NewStore[component.SectionalShieldComponent]()
	c.AI = NewStore[component.AIComponent]()
	c.Body = NewStore[component.BodyComponent]()
	c.Obstacle = NewStore[component.ObstacleComponent]()
	c.Orbit = NewStore[component.OrbitComponent]()
	c.Weapon = NewStore[component.WeaponComponent]()
	c.Explosion = NewStore[component.ExplosionComponent]()

	c.allStores = []AnyStore{
		c.Kinetic, c.Ship, c.Projectile, c.Shield, c.Sectional,
		c.AI, c.Body, c.Obstacle, c.Orbit, c.Weapon, c.Explosion,
	}
}
