package component

import "github.com/lumenfall/stardrift/parameter"

// Faction separates projectile target sets
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionHostile
)

// ShipComponent holds hull, resources and flight state for one ship
type ShipComponent struct {
	Faction Faction
	Class   parameter.HostileClass // hostile only

	Hull    float64
	MaxHull float64
	Fuel    float64
	MaxFuel float64
	Power   float64

	Mass   float64
	Radius float64

	Rotation float64 // heading, radians
	RotVel   float64 // radians per second

	// Dying is the one-shot death guard: set when hull reaches zero,
	// prevents re-entering the death sequence while it plays out
	Dying bool

	// Warp drive state
	WarpActive bool
	WarpCharge float64 // impulses apply once this reaches 1.0

	ScoreValue int64
}

// HullFraction returns hull as a fraction of maximum, clamped to [0, 1]
func (s *ShipComponent) HullFraction() float64 {
	if s.MaxHull <= 0 {
		return 0
	}
	f := s.Hull / s.MaxHull
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
