package physics

import (
	"math"

	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/vmath"
)

// OrbitalSpeed returns the tangential speed for a circular orbit:
// v = sqrt(G*M / r). Returns 0 for degenerate geometry
func OrbitalSpeed(gravity, mass, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return math.Sqrt(gravity * mass / radius)
}

// OrbitBlend smoothly steers velocity toward the tangential velocity of a
// circular orbit around (cx, cy). blend is the convergence rate per
// second. Returns false when the geometry or orbital speed is invalid,
// in which case the caller must cancel orbit mode
func OrbitBlend(k *core.Kinetic, cx, cy, gravity, mass, blend, dt float64) bool {
	dx := k.X - cx
	dy := k.Y - cy
	dist := vmath.Magnitude(dx, dy)
	if dist <= 0 {
		return false
	}

	speed := OrbitalSpeed(gravity, mass, dist)
	if !vmath.IsFinite(speed) || speed <= 0 {
		return false
	}

	// Tangent perpendicular to the radial vector; keep the rotation
	// direction the current velocity already favors
	tx, ty := vmath.Perpendicular(dx/dist, dy/dist)
	if vmath.Dot(k.VelX, k.VelY, tx, ty) < 0 {
		tx, ty = -tx, -ty
	}

	t := vmath.Clamp(blend*dt, 0, 1)
	k.VelX = vmath.Lerp(k.VelX, tx*speed, t)
	k.VelY = vmath.Lerp(k.VelY, ty*speed, t)
	return true
}

// EllipticalRadius evaluates r = a(1-e^2) / (1 + e*cos(theta))
// Degenerate elements can yield non-finite output; callers fall back to
// the circular formula when that happens
func EllipticalRadius(semiMajor, eccentricity, angle float64) float64 {
	return semiMajor * (1 - eccentricity*eccentricity) / (1 + eccentricity*math.Cos(angle))
}
