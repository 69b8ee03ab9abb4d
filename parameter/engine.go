package parameter

// Engine internals
const (
	// EventQueueSize must be a power of two for mask indexing
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)

// Lifecycle timing
const (
	// Death sequence completes, and the player respawns, this long after
	// the triggering condition
	DeathSequenceDelay = 2.0
	RespawnDelay       = 2.0

	// Respawned ships appear this far from the star, outside its radius
	RespawnOffset = 600.0

	ExplosionDuration = 0.8
	MiningDuration    = 3.0
	MiningRange       = 160.0
)
