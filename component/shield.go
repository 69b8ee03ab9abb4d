package component

import (
	"github.com/lumenfall/stardrift/core"
	"github.com/lumenfall/stardrift/parameter"
	"github.com/lumenfall/stardrift/vmath"
)

// ShieldBehavior selects a layer's special handling
type ShieldBehavior uint8

const (
	ShieldPlain ShieldBehavior = iota
	// ShieldAblative never recharges; must be repaired externally
	ShieldAblative
	// ShieldAdaptive gains resistance against repeated damage types
	ShieldAdaptive
	// ShieldPhase may fully negate a hit instead of absorbing it
	ShieldPhase
	// ShieldRegenerative recharges continuously, ignoring recent hits
	ShieldRegenerative
)

// ShieldLayer is one unit in a ship's ordered defensive stack
// Resistance is an absorption cost multiplier per damage type: absorbing
// D damage costs D*resistance strength, so lower values resist better.
// Zero means the type is fully resisted (blocked at 1:1 strength cost)
type ShieldLayer struct {
	Strength    float64
	MaxStrength float64

	Resistance [core.DamageTypeCount]float64

	RechargeRate  float64
	RechargeDelay float64
	TimeSinceHit  float64

	Behavior    ShieldBehavior
	PhaseChance float64

	// Adaptive memory
	LastType      core.DamageType
	RepeatHits    int
	AdaptiveBonus float64
}

// ShieldStackComponent is a ship's ordered shield-layer stack
// Owned exclusively by one ship, never shared
type ShieldStackComponent struct {
	Layers []ShieldLayer
}

// Absorb passes damage through the stack in order and returns what reaches
// the hull. Layer state (strength, hit timers, adaptive memory) is mutated
// in place. rng drives phase negation rolls
func (s *ShieldStackComponent) Absorb(damage float64, dtype core.DamageType, rng *vmath.FastRand) float64 {
	remaining := damage

	for i := range s.Layers {
		if remaining <= 0 {
			break
		}
		layer := &s.Layers[i]

		// Phase roll: success negates the entire remaining hit
		if layer.Behavior == ShieldPhase {
			layer.TimeSinceHit = 0
			if rng != nil && rng.Float64() < layer.PhaseChance {
				return 0
			}
			// Failed roll: phase layers absorb nothing, damage passes on
			continue
		}

		if layer.Strength <= 0 {
			continue
		}

		res := layer.Resistance[dtype]
		if layer.Behavior == ShieldAdaptive {
			res *= 1 - layer.adaptiveBonusFor(dtype)
			layer.recordHit(dtype)
		}
		layer.TimeSinceHit = 0

		if res <= 0 {
			// Fully resisted type: block at 1:1 strength cost
			absorbed := remaining
			if absorbed > layer.Strength {
				absorbed = layer.Strength
			}
			layer.Strength -= absorbed
			remaining -= absorbed
			continue
		}

		absorbed := remaining * res
		if absorbed > layer.Strength {
			absorbed = layer.Strength
		}
		layer.Strength -= absorbed
		remaining -= absorbed / res
		if remaining < 0 {
			remaining = 0
		}
	}

	return remaining
}

// adaptiveBonusFor returns the active bonus if the two most recent hits
// share the incoming damage type
func (l *ShieldLayer) adaptiveBonusFor(dtype core.DamageType) float64 {
	if l.RepeatHits >= 2 && l.LastType == dtype {
		return l.AdaptiveBonus
	}
	return 0
}

func (l *ShieldLayer) recordHit(dtype core.DamageType) {
	if l.LastType == dtype {
		l.RepeatHits++
		if l.RepeatHits >= 2 {
			l.AdaptiveBonus += parameter.AdaptiveBonusStep
			if l.AdaptiveBonus > parameter.AdaptiveBonusCap {
				l.AdaptiveBonus = parameter.AdaptiveBonusCap
			}
		}
		return
	}
	l.LastType = dtype
	l.RepeatHits = 1
	l.AdaptiveBonus = 0
}

// Recharge advances layer timers by dt seconds and regenerates strength
// per behavior: ablative never, regenerative always, others only after
// the post-hit delay has elapsed
func (s *ShieldStackComponent) Recharge(dt float64) {
	for i := range s.Layers {
		layer := &s.Layers[i]
		layer.TimeSinceHit += dt

		if layer.AdaptiveBonus > 0 {
			layer.AdaptiveBonus -= parameter.AdaptiveDecayRate * dt
			if layer.AdaptiveBonus < 0 {
				layer.AdaptiveBonus = 0
			}
		}

		switch layer.Behavior {
		case ShieldAblative:
			continue
		case ShieldRegenerative:
			layer.Strength += layer.RechargeRate * dt
		default:
			if layer.TimeSinceHit > layer.RechargeDelay {
				layer.Strength += layer.RechargeRate * dt
			}
		}

		if layer.Strength > layer.MaxStrength {
			layer.Strength = layer.MaxStrength
		}
		if layer.Strength < 0 {
			layer.Strength = 0
		}
	}
}
