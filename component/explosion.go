package component

// ExplosionComponent is a short-lived visual marker for the render layer
// Area damage is applied once at spawn by the resolver; this entity only
// ages out
type ExplosionComponent struct {
	X, Y     float64
	Radius   float64
	Age      float64
	Duration float64
}
