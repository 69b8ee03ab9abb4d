package physics

import (
	"math"
	"testing"

	"github.com/lumenfall/stardrift/core"
)

func TestOrbitalSpeed(t *testing.T) {
	got := OrbitalSpeed(50, 2.0e6, 1000)
	want := math.Sqrt(50 * 2.0e6 / 1000)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := OrbitalSpeed(50, 2.0e6, 0); got != 0 {
		t.Errorf("Expected 0 for degenerate radius, got %v", got)
	}
}

func TestOrbitBlendConverges(t *testing.T) {
	k := core.Kinetic{X: 1000, VelY: 10}

	for i := 0; i < 600; i++ {
		if !OrbitBlend(&k, 0, 0, 50, 2.0e6, 2.0, 1.0/60) {
			t.Fatal("Expected valid geometry")
		}
	}

	dist := math.Hypot(k.X, k.Y)
	want := OrbitalSpeed(50, 2.0e6, dist)
	speed := math.Hypot(k.VelX, k.VelY)
	if math.Abs(speed-want)/want > 0.05 {
		t.Errorf("Expected speed near %v, got %v", want, speed)
	}
}

func TestOrbitBlendPreservesRotationDirection(t *testing.T) {
	// Ship east of the star moving north: counter-clockwise
	k := core.Kinetic{X: 1000, VelY: 50}

	if !OrbitBlend(&k, 0, 0, 50, 2.0e6, 2.0, 1.0/60) {
		t.Fatal("Expected valid geometry")
	}
	if k.VelY <= 0 {
		t.Errorf("Expected counter-clockwise motion kept, got VelY %v", k.VelY)
	}
}

func TestOrbitBlendInvalidGeometry(t *testing.T) {
	// Ship exactly at the center: distance zero
	k := core.Kinetic{}

	if OrbitBlend(&k, 0, 0, 50, 2.0e6, 2.0, 1.0/60) {
		t.Error("Expected failure at zero distance")
	}

	// Non-finite orbital speed from corrupt mass
	k = core.Kinetic{X: 1000}
	if OrbitBlend(&k, 0, 0, 50, math.Inf(1), 2.0, 1.0/60) {
		t.Error("Expected failure on non-finite orbital speed")
	}
}

func TestEllipticalRadius(t *testing.T) {
	// Circular orbit: radius equals the semi-major axis everywhere
	for _, angle := range []float64{0, 1, math.Pi} {
		if got := EllipticalRadius(500, 0, angle); math.Abs(got-500) > 1e-9 {
			t.Errorf("Expected 500 at angle %v, got %v", angle, got)
		}
	}

	// Periapsis and apoapsis for e = 0.5
	if got := EllipticalRadius(500, 0.5, 0); math.Abs(got-250) > 1e-9 {
		t.Errorf("Expected periapsis 250, got %v", got)
	}
	if got := EllipticalRadius(500, 0.5, math.Pi); math.Abs(got-750) > 1e-9 {
		t.Errorf("Expected apoapsis 750, got %v", got)
	}
}
