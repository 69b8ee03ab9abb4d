package vmath

import (
	"math"
	"testing"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"Just under pi", 3.0, 3.0},
		{"Past pi wraps negative", 4.0, 4.0 - 2*math.Pi},
		{"Negative past -pi wraps positive", -4.0, -4.0 + 2*math.Pi},
		{"Full turn", 2 * math.Pi, 0},
		{"Many turns", 10 * math.Pi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTurnTowardShortestPath(t *testing.T) {
	// From just below +pi to just above -pi: the short way crosses the seam
	current := math.Pi - 0.1
	target := -math.Pi + 0.1

	got := TurnToward(current, target, 0.05)
	if ShortestAngle(current, got) < 0 {
		t.Errorf("Expected rotation through the seam, got %v", got)
	}
}

func TestTurnTowardClampsStep(t *testing.T) {
	got := TurnToward(0, 1.0, 0.25)
	if math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Expected step clamped to 0.25, got %v", got)
	}

	got = TurnToward(0, 0.1, 0.25)
	if math.Abs(got-0.1) > 1e-12 {
		t.Errorf("Expected snap within step, got %v", got)
	}
}

func TestNormalize2D(t *testing.T) {
	x, y := Normalize2D(3, 4)
	if math.Abs(x-0.6) > 1e-12 || math.Abs(y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", x, y)
	}

	x, y = Normalize2D(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("Expected zero vector unchanged, got (%v, %v)", x, y)
	}
}

func TestFinite(t *testing.T) {
	if !IsFinite(1.5) || IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Error("Expected finite check to reject NaN and Inf only")
	}
	if got := Finite(math.NaN(), 7); got != 7 {
		t.Errorf("Expected fallback 7, got %v", got)
	}
	if got := Finite(2.5, 7); got != 2.5 {
		t.Errorf("Expected value passed through, got %v", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(123)
	b := NewFastRand(123)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestFastRandRanges(t *testing.T) {
	rng := NewFastRand(9)
	for i := 0; i < 1000; i++ {
		if v := rng.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
		if n := rng.Intn(10); n < 0 || n >= 10 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if a := rng.Angle(); a < -math.Pi || a >= math.Pi {
			t.Fatalf("Angle out of range: %v", a)
		}
	}
}
