package parameter

// Scene transition tuning
const (
	// Cooldown reset on every transition; blocks re-fire at the boundary
	TransitionCooldown = 2.0
	// Player velocity is scaled down, not zeroed, across a transition
	TransitionVelocityScale = 0.3

	// Entry placement distance from a system's star when arriving from
	// interstellar space
	SystemEntryRadius = 9000.0

	// Interstellar-space distance covered per world unit of velocity
	InterstellarSpeedScale = 0.02

	// Radius of a system bubble on the interstellar map
	SystemBubbleRadius = 40.0

	// Offset from a system's galaxy coordinates applied along the exit angle
	InterstellarExitOffset = 50.0
)

// SystemBoundary returns the star-type-dependent distance from the primary
// star at which a ship leaves the system
func SystemBoundary(starType int) float64 {
	switch starType {
	case 0: // red dwarf
		return 9500.0
	case 1: // yellow main sequence
		return 12000.0
	case 2: // blue giant
		return 16000.0
	default:
		return 12000.0
	}
}
