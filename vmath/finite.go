package vmath

import "math"

// IsFinite reports whether f is neither NaN nor an infinity
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Finite returns f if finite, otherwise fallback
func Finite(f, fallback float64) float64 {
	if IsFinite(f) {
		return f
	}
	return fallback
}
