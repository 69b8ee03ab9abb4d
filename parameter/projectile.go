package parameter

// Projectile behavior tuning
const (
	// Mines decelerate much harder than drag alone
	MineFriction = 1.4

	// Camera shake intensities fed to the render layer
	ShakeOnHit       = 0.08
	ShakeOnExplosion = 0.35
)
