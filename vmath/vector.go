package vmath

import "math"

// --- 2D vector helpers ---

func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

func DistSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Normalize2D returns the unit vector, or (0,0) for the zero vector
func Normalize2D(x, y float64) (float64, float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}

// Perpendicular returns the vector rotated 90 degrees counter-clockwise
func Perpendicular(x, y float64) (float64, float64) {
	return -y, x
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
