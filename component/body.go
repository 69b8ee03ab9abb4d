package component

import "github.com/lumenfall/stardrift/core"

// BodyComponent is a celestial body: the system star or an orbiting body
// Non-star bodies advance along their orbital elements each tick
type BodyComponent struct {
	Mass   float64
	Radius float64

	Star     bool
	StarType int // indexes the system boundary table

	// Orbital elements around Parent (unused for the star)
	Parent       core.Entity
	OrbitRadius  float64 // semi-major axis
	OrbitAngle   float64
	AngularSpeed float64 // radians per second
	Eccentricity float64
}
