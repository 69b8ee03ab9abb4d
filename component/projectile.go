package component

import "github.com/lumenfall/stardrift/core"

// ProjectileComponent holds damage and lifecycle state for one projectile
// Position/velocity live in the entity's Kinetic component; the resolver
// integrates projectiles itself so ordering against detonation is exact
type ProjectileComponent struct {
	Damage     float64
	DamageType core.DamageType
	Life       float64 // seconds remaining; monotonically decreases
	Mass       float64
	Friendly   bool

	// Piercing projectiles continue through targets instead of being consumed
	Piercing bool
	// Explosive projectiles skip direct damage and detonate on contact
	Explosive   bool
	BlastRadius float64

	// Mine behavior: decelerates, arms after a delay, detonates on proximity
	Mine            bool
	ArmingTimer     float64
	ProximityRadius float64

	Owner core.Entity

	// Entities already damaged by this projectile in the current tick;
	// a piercing projectile never hits the same entity twice per tick
	// even when target categories overlap
	HitThisTick []core.Entity
}

// AlreadyHit reports whether e was damaged by this projectile this tick
func (p *ProjectileComponent) AlreadyHit(e core.Entity) bool {
	for _, h := range p.HitThisTick {
		if h == e {
			return true
		}
	}
	return false
}
