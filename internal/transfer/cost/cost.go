// Package cost implements the scalar objective the MCI/PHE optimizer and
// MEDEVAC Chain Builder both score candidates with: time-to-care weighted
// by acuity, capability mismatch, scarcity stewardship, and resource
// stress.
package cost

import (
	"math"

	"github.com/attendite/transferengine/internal/transfer/domain"
	"github.com/attendite/transferengine/internal/transfer/feasibility"
	"github.com/attendite/transferengine/internal/transfer/rules"
)

// Options controls optional, non-default cost behavior.
type Options struct {
	// EnableAcuityLevelAffinity subtracts AcuityLevelScore from the
	// returned cost. Off by default so Compute matches the documented
	// formula exactly.
	EnableAcuityLevelAffinity bool
}

// Compute returns the cost of assigning patient p to facility f given
// travel time etaMinutes.
func Compute(reg rules.Registry, p *domain.Patient, f *domain.Facility, etaMinutes float64, opts Options) float64 {
	c := etaMinutes * reg.AcuityWeight(p.Acuity)

	missing := feasibility.MissingCapabilities(p, f)
	c += reg.CapabilityMismatchPenalty * float64(len(missing))

	for _, cap := range feasibility.UnneededScarceCapabilities(p, f) {
		c += reg.ScarcityPenalty(cap)
	}

	deficit := false
	for res, required := range p.RequiredMedicalResources {
		if required <= 0 {
			continue
		}
		capacity := f.MedicalResources[res]
		if required > capacity {
			deficit = true
		}
		denom := float64(capacity)
		if denom < 1 {
			denom = 1
		}
		utilization := float64(required) / denom
		if utilization > 1 {
			utilization = 1
		}
		c += 100 * math.Pow(utilization, reg.ResourceStressExponent)
	}
	if deficit {
		c += reg.ResourceDeficitPenalty
	}

	if opts.EnableAcuityLevelAffinity {
		c -= AcuityLevelScore(p.Acuity, f.Level)
	}

	return c
}

// AcuityLevelScore returns a small positive affinity score when a
// patient's acuity matches the facility's role tier: Immediate patients at
// a level-1 (Role 3, definitive care) facility, Delayed at level 2, Minimal
// at level 3. Zero otherwise. Compute subtracts this from cost when
// Options.EnableAcuityLevelAffinity is set.
func AcuityLevelScore(a domain.AcuityLevel, level int) float64 {
	const affinityScore = 25.0

	switch a {
	case domain.AcuityImmediate:
		if level == 1 {
			return affinityScore
		}
	case domain.AcuityDelayed:
		if level == 2 {
			return affinityScore
		}
	case domain.AcuityMinimal:
		if level == 3 {
			return affinityScore
		}
	}
	return 0
}
