package component

import (
	"math"

	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/vmath"
)

// ShieldSection names a quadrant of the sectional shield envelope
type ShieldSection uint8

const (
	SectionFront ShieldSection = iota
	SectionRight
	SectionRear
	SectionLeft
)

// SectionState is one independent quadrant of shield capacity
type SectionState struct {
	Strength    float64
	MaxStrength float64
	Multiplier  float64 // absorption cost multiplier for this section
}

// SectionalShieldComponent is the optional sectional shield mode: damage
// routes to one of four quadrants by hit angle relative to ship heading,
// with a global modulation reweighting damage-type costs uniformly
type SectionalShieldComponent struct {
	Sections   [4]SectionState
	Modulation [core.DamageTypeCount]float64
}

// SectionForAngle picks the quadrant struck by a hit arriving from
// hitAngle (world frame) against a ship facing heading
func SectionForAngle(hitAngle, heading float64) ShieldSection {
	rel := vmath.WrapAngle(hitAngle - heading)
	switch {
	case math.Abs(rel) <= math.Pi/4:
		return SectionFront
	case math.Abs(rel) >= 3*math.Pi/4:
		return SectionRear
	case rel > 0:
		return SectionLeft
	default:
		return SectionRight
	}
}

// Absorb routes damage into the struck section and returns what reaches
// the hull. Cost = damage * section multiplier * modulation for the type
func (s *SectionalShieldComponent) Absorb(damage float64, dtype core.DamageType, hitAngle, heading float64) float64 {
	sec := &s.Sections[SectionForAngle(hitAngle, heading)]
	if sec.Strength <= 0 {
		return damage
	}

	mod := s.Modulation[dtype]
	if mod <= 0 {
		mod = 1
	}
	cost := sec.Multiplier * mod
	if cost <= 0 {
		cost = 1
	}

	absorbed := damage * cost
	if absorbed > sec.Strength {
		absorbed = sec.Strength
	}
	sec.Strength -= absorbed

	remaining := damage - absorbed/cost
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Recharge regenerates every section at rate, clamped to capacity
func (s *SectionalShieldComponent) Recharge(rate, dt float64) {
	for i := range s.Sections {
		sec := &s.Sections[i]
		sec.Strength += rate * dt
		if sec.Strength > sec.MaxStrength {
			sec.Strength = sec.MaxStrength
		}
	}
}
