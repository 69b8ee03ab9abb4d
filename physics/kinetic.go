package physics

import (
	"math"

	"github.com/lumenfall/stardrift/core"
)

// Integrate performs physics integration: v = v + a*dt; p = p + v*dt
// Acceleration is consumed and cleared; it is a per-tick intent
func Integrate(k *core.Kinetic, dt float64) {
	k.VelX += k.AccelX * dt
	k.VelY += k.AccelY * dt
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
	k.AccelX = 0
	k.AccelY = 0
}

// ApplyImpulse adds a velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx, vy float64) {
	k.VelX += vx
	k.VelY += vy
}

// ApplyDrag removes drag*dt of the velocity, clamped so it never reverses
func ApplyDrag(k *core.Kinetic, drag, dt float64) {
	f := 1 - drag*dt
	if f < 0 {
		f = 0
	}
	k.VelX *= f
	k.VelY *= f
}

// Thrust accumulates acceleration along a heading, scaled by mass
func Thrust(k *core.Kinetic, heading, force, mass float64) {
	if mass <= 0 {
		return
	}
	a := force / mass
	k.AccelX += math.Cos(heading) * a
	k.AccelY += math.Sin(heading) * a
}

// Brake decelerates against the current velocity by factor*dt
func Brake(k *core.Kinetic, factor, dt float64) {
	f := 1 - factor*dt
	if f < 0 {
		f = 0
	}
	k.VelX *= f
	k.VelY *= f
}
