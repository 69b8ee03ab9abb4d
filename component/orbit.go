package component

import "github.com/lumenfall/stardrift/core"

// OrbitComponent marks a ship holding orbit around a body
// Presence means orbit maintenance is active; the integrator removes it
// when the pilot thrusts manually or the geometry becomes unstable
type OrbitComponent struct {
	Body core.Entity
}
