package parameter

// Hostile behavior tuning
const (
	DetectionRange = 1200.0
	EngageRange    = 500.0
	// Hold distance near this fraction of engage range while engaging
	EngageHoldFraction = 0.7
	// Tolerance band around the hold distance before advancing/retreating
	EngageHoldBand = 0.08

	// Strafe direction flips on this interval while engaging
	StrafeInterval = 1.8
	StrafeAccel    = 260.0
	ApproachAccel  = 220.0
	PatrolAccel    = 90.0
	PatrolRadius   = 180.0
	EvadeAccel     = 300.0

	// Evade exit gate: timer AND hull recovery must both pass
	EvadeRecoverTime = 4.0
	EvadeRecoverHull = 0.6
	// Sinusoidal jink while fleeing
	EvadeJinkFreq  = 3.0
	EvadeJinkAccel = 140.0

	// Swarm flocking (hive class only)
	SwarmCohesionRadius   = 200.0
	SwarmSeparationRadius = 50.0
	SwarmCohesionWeight   = 1.2
	SwarmSeparationWeight = 90.0
	SwarmAlignmentWeight  = 0.8
	SwarmPlayerPull       = 70.0
)
