package typing

// DefaultHealthModifier is the per-level growth factor for enemy health.
const DefaultHealthModifier = 0.1

// ScalingPolicy maps a level change to an enemy's new maximum health.
//
// Growth compounds: each call rescales off the enemy's current maximum, so an
// enemy that survives several level-ups grows multiplicatively.
type ScalingPolicy struct {
	Modifier float64
}

// DefaultScaling returns the standard 10%-per-level policy.
func DefaultScaling() ScalingPolicy {
	return ScalingPolicy{Modifier: DefaultHealthModifier}
}

// Rescale returns floor(current * (1 + Modifier*level)), never below 1.
func (p ScalingPolicy) Rescale(current, level int) int {
	next := int(float64(current) * (1 + p.Modifier*float64(level)))
	if next < 1 {
		next = 1
	}
	return next
}
