package parameter

// Kinematics tuning (world units, seconds, radians)
const (
	// Speed ceilings; both rescale the velocity vector, preserving heading
	MaxSpeed         = 400.0  // context ceiling, normal flight
	WarpMaxSpeed     = 3000.0 // context ceiling while warp is active
	AbsoluteMaxSpeed = 1500.0 // hard ceiling applied after the context cap

	// Linear drag applied to ships each tick (fraction of velocity per second)
	ShipDrag = 0.15

	// Rotational velocity decay factor per second
	RotationDamping = 2.5
	// Player manual turn acceleration (rad/s^2 equivalent applied as rate)
	PlayerTurnRate = 3.2

	// Control impulses, scaled by 1/mass
	ThrustForce  = 90000.0
	ReverseForce = 42000.0
	// Brake removes this fraction of velocity per second
	BrakeFactor = 1.8

	// Fuel drained per second of thrust
	ThrustFuelRate = 1.5

	// Warp drive
	WarpChargeRate = 0.5 // charge per second; impulses start at 1.0
	WarpForce      = 600000.0
	WarpFuelRate   = 6.0

	// Simplified gravitational constant for orbital speed: v = sqrt(G*M/r)
	GravityConst = 50.0

	// Orbit maintenance
	OrbitBlendRate       = 2.0  // velocity blend toward tangential, per second
	OrbitCancelOuterMult = 10.0 // cancel when r > 10x body radius
	OrbitCancelInnerMult = 1.5  // cancel when r < 1.5x body radius
)
