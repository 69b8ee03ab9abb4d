package component

import "github.com/lumenfall/stardrift/core"

// AIState is the hostile behavior machine state
type AIState uint8

const (
	AIPatrol AIState = iota
	AIApproach
	AIEngage
	AIEvade
	AISwarm
)

func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "patrol"
	case AIApproach:
		return "approach"
	case AIEngage:
		return "engage"
	case AIEvade:
		return "evade"
	case AISwarm:
		return "swarm"
	}
	return "unknown"
}

// AIComponent is the per-hostile behavior blackboard
// Target is a handle, not an owned reference: it is validated for
// liveness each tick before use and dropped when the ship dies
type AIComponent struct {
	State AIState
	Timer float64 // seconds in current state

	Target core.Entity

	// Patrol anchor: the fixed virtual point the ship circles
	AnchorX, AnchorY float64
	PatrolPhase      float64

	// Engage strafing
	StrafeSign  float64 // +1 or -1
	StrafeTimer float64

	// Weapon
	FireCooldown float64
}
