// Package rules holds the fixed constant tables the Cost Model and MEDEVAC
// Chain Builder score against: acuity weights, scarcity stewardship
// penalties, mismatch/deficit penalties, the resource-stress exponent, and
// the NATO timeline budgets. These are never runtime-overridden — they are
// a fixed registry, not an operational tuning surface (see
// internal/shared/config for the knobs that are).
package rules

import "github.com/attendite/transferengine/internal/transfer/domain"

// Registry is a compile-time constant table. Default returns the one and
// only set this engine uses; it exists as a function rather than package
// vars so callers have a single explicit entry point to pass around.
type Registry struct {
	AcuityWeights       map[domain.AcuityLevel]float64
	UnknownAcuityWeight float64
	ScarcityPenalties   map[domain.CapabilityKey]float64

	CapabilityMismatchPenalty float64
	ResourceDeficitPenalty    float64
	ResourceStressExponent    float64

	Role1BudgetMinutes float64
	Role2BudgetMinutes float64
}

// Default returns the engine's fixed Rules Registry.
func Default() Registry {
	return Registry{
		AcuityWeights: map[domain.AcuityLevel]float64{
			domain.AcuityDead:      0,
			domain.AcuityExpectant: 80,
			domain.AcuityImmediate: 100,
			domain.AcuityDelayed:   50,
			domain.AcuityMinimal:   10,
		},
		UnknownAcuityWeight: 50,
		ScarcityPenalties: map[domain.CapabilityKey]float64{
			domain.CapabilityBurn:          500,
			domain.CapabilityPediatric:     500,
			domain.CapabilityNeurosurgical: 400,
			domain.CapabilityCardiac:       300,
			domain.CapabilityObstetric:     200,
			domain.CapabilityOphthalmology: 150,
		},
		CapabilityMismatchPenalty: 10000,
		ResourceDeficitPenalty:    5000,
		ResourceStressExponent:    2.0,
		Role1BudgetMinutes:        60,
		Role2BudgetMinutes:        120,
	}
}

// AcuityWeight returns the weight for an acuity level, falling back to
// UnknownAcuityWeight for anything not in the table (e.g. an unnormalized
// legacy tag that NormalizeAcuity didn't recognize).
func (r Registry) AcuityWeight(a domain.AcuityLevel) float64 {
	if w, ok := r.AcuityWeights[a]; ok {
		return w
	}
	return r.UnknownAcuityWeight
}

// ScarcityPenalty returns the stewardship penalty for a capability, zero
// for anything not in the table.
func (r Registry) ScarcityPenalty(c domain.CapabilityKey) float64 {
	return r.ScarcityPenalties[c]
}
