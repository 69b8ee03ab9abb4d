package vmath

import "math"

// WrapAngle normalizes an angle to [-Pi, Pi)
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// ShortestAngle returns the signed smallest rotation from 'from' to 'to'
func ShortestAngle(from, to float64) float64 {
	return WrapAngle(to - from)
}

// TurnToward rotates 'current' toward 'target' by at most maxStep radians
// Rotation always takes the shortest path, never an instantaneous snap
func TurnToward(current, target, maxStep float64) float64 {
	delta := ShortestAngle(current, target)
	if math.Abs(delta) <= maxStep {
		return WrapAngle(target)
	}
	if delta > 0 {
		return WrapAngle(current + maxStep)
	}
	return WrapAngle(current - maxStep)
}
