package component

import "github.com/lumenfall/stardrift/core"

// WeaponComponent is the player's primary weapon state
// Hostile weapons are driven by class profiles in the AI controller
type WeaponComponent struct {
	CooldownLeft float64
	Cooldown     float64

	ProjSpeed  float64
	ProjDamage float64
	ProjLife   float64
	ProjMass   float64
	DamageType core.DamageType

	// Mining beam progress toward the current obstacle
	MiningTarget   core.Entity
	MiningProgress float64
}
