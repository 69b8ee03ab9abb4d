package physics

import (
	"math"

	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/vmath"
)

// Overlap tests a point against a circle using squared distances,
// avoiding the square root on the hot path
func Overlap(px, py, cx, cy, radius float64) bool {
	return vmath.DistSq(px, py, cx, cy) <= radius*radius
}

// HitProfile defines momentum transfer for a direct projectile hit
type HitProfile struct {
	// ImpulseScale converts projectile mass to impulse magnitude
	ImpulseScale float64
	// AngleVariance adds random spread to the knockback direction
	AngleVariance float64
}

// ApplyHitImpulse transfers projectile momentum to the target's velocity,
// proportional to projectile mass and inversely to target mass
func ApplyHitImpulse(
	target *core.Kinetic,
	dirX, dirY float64,
	projMass, targetMass float64,
	profile *HitProfile,
	rng *vmath.FastRand,
) {
	if targetMass <= 0 {
		return
	}
	nx, ny := vmath.Normalize2D(dirX, dirY)
	if nx == 0 && ny == 0 {
		nx = 1
	}

	if profile.AngleVariance > 0 && rng != nil {
		spread := rng.Range(-profile.AngleVariance, profile.AngleVariance)
		cosS, sinS := math.Cos(spread), math.Sin(spread)
		nx, ny = nx*cosS-ny*sinS, nx*sinS+ny*cosS
	}

	mag := profile.ImpulseScale * projMass / targetMass
	ApplyImpulse(target, nx*mag, ny*mag)
}

// DirectHit is the default momentum-transfer profile for projectile hits
var DirectHit = HitProfile{
	ImpulseScale:  40.0,
	AngleVariance: 0.08,
}
