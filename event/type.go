package event

// EventType identifies a simulation event
type EventType int

const (
	// EventGameReset requests all systems to reinitialize session state
	// Trigger: world setup, respawn into a fresh session
	// Consumer: every system | Payload: nil
	EventGameReset EventType = iota

	// EventProjectileSpawn requests creation of a projectile entity
	// Trigger: AI fire decision, player fire input
	// Consumer: ProjectileSystem | Payload: *ProjectileSpawnPayload
	EventProjectileSpawn

	// EventExplosionSpawn requests a visual explosion entity
	// Trigger: detonations, ship deaths
	// Consumer: ExplosionSystem | Payload: *ExplosionSpawnPayload
	EventExplosionSpawn

	// EventShipKilled signals a ship's hull reached zero this tick
	// Trigger: ProjectileSystem damage resolution
	// Consumer: DeathSystem | Payload: *ShipKilledPayload
	EventShipKilled

	// EventDeathComplete fires when a death sequence finishes
	// Trigger: scheduler, DeathSequenceDelay after EventShipKilled
	// Consumer: DeathSystem | Payload: *LifecyclePayload
	EventDeathComplete

	// EventRespawn fires when the player respawn delay elapses
	// Trigger: scheduler, RespawnDelay after player death completes
	// Consumer: DeathSystem | Payload: *LifecyclePayload
	EventRespawn

	// EventSceneTransition announces a region state change
	// Trigger: SceneSystem boundary crossing
	// Consumer: UI/notification layer | Payload: *SceneTransitionPayload
	EventSceneTransition

	// EventNotification carries a discrete message for the UI layer
	// Trigger: pickups, mining completion, discoveries
	// Consumer: UI/notification layer | Payload: *NotificationPayload
	EventNotification
)

// GameEvent is a single queued simulation event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
