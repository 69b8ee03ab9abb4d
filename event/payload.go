package event

import "github.com/lumenfall/stardrift/core"

// ProjectileSpawnPayload describes a projectile to be created
type ProjectileSpawnPayload struct {
	X, Y       float64
	VelX, VelY float64
	Damage     float64
	DamageType core.DamageType
	Life       float64
	Mass       float64
	Friendly   bool

	Piercing  bool
	Explosive bool
	// Explosion radius for explosive projectiles and mines
	BlastRadius float64

	Mine            bool
	ArmingTimer     float64
	ProximityRadius float64

	Owner core.Entity
}

// ExplosionSpawnPayload describes a visual explosion for the render layer
type ExplosionSpawnPayload struct {
	X, Y   float64
	Radius float64
}

// ShipKilledPayload reports a hull-zero ship awaiting its death sequence
type ShipKilledPayload struct {
	Entity   core.Entity
	ByPlayer bool
	Score    int64
}

// LifecyclePayload carries the entity for deferred death/respawn events
type LifecyclePayload struct {
	Entity core.Entity
}

// SceneTransitionPayload announces a region change
type SceneTransitionPayload struct {
	From, To    string
	SystemIndex int
}

// NotificationPayload is a discrete UI message
type NotificationPayload struct {
	Message string
}
