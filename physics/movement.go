package physics

import (
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed by rescaling
// the whole vector, preserving heading. Returns true if clamped
func CapSpeed(velX, velY *float64, maxSpeed float64) bool {
	magSq := vmath.MagnitudeSq(*velX, *velY)
	if magSq <= maxSpeed*maxSpeed {
		return false
	}
	mag := vmath.Magnitude(*velX, *velY)
	if mag == 0 {
		return false
	}
	scale := maxSpeed / mag
	*velX *= scale
	*velY *= scale
	return true
}

// SanitizeResult reports which kinetic components were corrupted
type SanitizeResult struct {
	VelocityReset bool
	PositionReset bool
}

// Sanitize recovers a kinetic from NaN/Infinity corruption: velocity
// components reset to zero, position snaps to the anchor (the system's
// primary star). A position reset also zeroes velocity to avoid repeat
// corruption on the next integration
func Sanitize(k *core.Kinetic, anchorX, anchorY float64) SanitizeResult {
	var r SanitizeResult

	if !vmath.IsFinite(k.VelX) || !vmath.IsFinite(k.VelY) {
		k.VelX = 0
		k.VelY = 0
		r.VelocityReset = true
	}
	if !vmath.IsFinite(k.AccelX) || !vmath.IsFinite(k.AccelY) {
		k.AccelX = 0
		k.AccelY = 0
		r.VelocityReset = true
	}
	if !vmath.IsFinite(k.X) || !vmath.IsFinite(k.Y) {
		k.X = anchorX
		k.Y = anchorY
		k.VelX = 0
		k.VelY = 0
		r.PositionReset = true
	}
	return r
}
