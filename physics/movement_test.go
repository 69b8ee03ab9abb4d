package physics

import (
	"math"
	"testing"

	"github.com/lumenfall/stardrift/core"
)

func TestCapSpeedRescalesPreservingHeading(t *testing.T) {
	// Magnitude 2000 at an arbitrary heading rescales to exactly 1500
	angle := 0.73
	velX := math.Cos(angle) * 2000
	velY := math.Sin(angle) * 2000

	clamped := CapSpeed(&velX, &velY, 1500)

	if !clamped {
		t.Fatal("Expected clamp to trigger")
	}
	mag := math.Hypot(velX, velY)
	if math.Abs(mag-1500) > 1e-9 {
		t.Errorf("Expected magnitude 1500, got %v", mag)
	}
	if got := math.Atan2(velY, velX); math.Abs(got-angle) > 1e-9 {
		t.Errorf("Expected heading %v preserved, got %v", angle, got)
	}
}

func TestCapSpeedUnderLimit(t *testing.T) {
	velX, velY := 300.0, 200.0

	if CapSpeed(&velX, &velY, 1500) {
		t.Error("Expected no clamp under the limit")
	}
	if velX != 300 || velY != 200 {
		t.Errorf("Expected velocity unchanged, got (%v, %v)", velX, velY)
	}
}

func TestSanitizeVelocity(t *testing.T) {
	k := core.Kinetic{X: 10, Y: 20, VelX: math.NaN(), VelY: 5}

	r := Sanitize(&k, 100, 200)

	if !r.VelocityReset || r.PositionReset {
		t.Errorf("Expected velocity-only reset, got %+v", r)
	}
	if k.VelX != 0 || k.VelY != 0 {
		t.Errorf("Expected zero velocity, got (%v, %v)", k.VelX, k.VelY)
	}
	if k.X != 10 || k.Y != 20 {
		t.Errorf("Expected position untouched, got (%v, %v)", k.X, k.Y)
	}
}

func TestSanitizePositionSnapsToAnchor(t *testing.T) {
	k := core.Kinetic{X: math.Inf(1), Y: 20, VelX: 50, VelY: 5}

	r := Sanitize(&k, 100, 200)

	if !r.PositionReset {
		t.Errorf("Expected position reset, got %+v", r)
	}
	if k.X != 100 || k.Y != 200 {
		t.Errorf("Expected position at anchor, got (%v, %v)", k.X, k.Y)
	}
	if k.VelX != 0 || k.VelY != 0 {
		t.Errorf("Expected velocity zeroed with position, got (%v, %v)", k.VelX, k.VelY)
	}
}

func TestSanitizeClean(t *testing.T) {
	k := core.Kinetic{X: 1, Y: 2, VelX: 3, VelY: 4}

	r := Sanitize(&k, 0, 0)

	if r.VelocityReset || r.PositionReset {
		t.Errorf("Expected no reset on clean kinetic, got %+v", r)
	}
}

func TestIntegrateConsumesAcceleration(t *testing.T) {
	k := core.Kinetic{VelX: 10, AccelX: 100}

	Integrate(&k, 0.5)

	if math.Abs(k.VelX-60) > 1e-9 {
		t.Errorf("Expected velocity 60, got %v", k.VelX)
	}
	if math.Abs(k.X-30) > 1e-9 {
		t.Errorf("Expected position 30, got %v", k.X)
	}
	if k.AccelX != 0 || k.AccelY != 0 {
		t.Errorf("Expected acceleration cleared, got (%v, %v)", k.AccelX, k.AccelY)
	}
}

func TestApplyDragNeverReverses(t *testing.T) {
	k := core.Kinetic{VelX: 100}

	ApplyDrag(&k, 10, 1.0) // f would be -9 without the clamp

	if k.VelX != 0 {
		t.Errorf("Expected velocity clamped to 0, got %v", k.VelX)
	}
}
