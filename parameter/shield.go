package parameter

// Shield stack tuning
const (
	// Adaptive layers gain resistance against repeated damage types up to
	// this bonus, decaying linearly when not reinforced
	AdaptiveBonusCap   = 0.5
	AdaptiveBonusStep  = 0.15
	AdaptiveDecayRate  = 0.1 // bonus lost per second
	DefaultPhaseChance = 0.25

	// Sectional mode: capacity share per section of total stack strength
	SectionCount        = 4
	SectionRechargeRate = 4.0

	// Power drained per second while the shield boost control is held
	ShieldBoostPowerRate = 2.0
)
