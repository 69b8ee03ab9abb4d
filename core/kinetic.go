package core

// Kinetic holds translational state for any moving entity
// Positions and velocities are world units and world units per second
type Kinetic struct {
	X, Y       float64
	VelX, VelY float64
	// AccelX and AccelY are consumed and cleared by the integrator each tick
	AccelX, AccelY float64
}
