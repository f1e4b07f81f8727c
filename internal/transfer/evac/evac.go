// Package evac builds a NATO AJP-4.10 style MEDEVAC chain: a sequential
// greedy Role 1 -> Role 2 -> Role 3 walk with zero lookahead, honoring the
// 60/120-minute cumulative timeline budgets and the patient's survival
// window.
package evac

import (
	"sort"

	"github.com/attendite/transferengine/internal/transfer/cost"
	"github.com/attendite/transferengine/internal/transfer/domain"
	"github.com/attendite/transferengine/internal/transfer/geo"
	"github.com/attendite/transferengine/internal/transfer/rules"
)

// tier describes one role in the chain: its label, the facility level it
// draws from, and its cumulative time budget.
type tier struct {
	role   domain.Role
	level  int
	budget func(survivalWindowMinutes float64) float64
}

func tiers(reg rules.Registry) []tier {
	return []tier{
		{role: domain.Role1, level: 3, budget: func(float64) float64 { return reg.Role1BudgetMinutes }},
		{role: domain.Role2, level: 2, budget: func(float64) float64 { return reg.Role2BudgetMinutes }},
		{role: domain.Role3, level: 1, budget: func(sw float64) float64 { return sw }},
	}
}

// Allower bounds how many per-tier hop searches a chain build may attempt
// per second. A nil Allower imposes no bound.
type Allower interface {
	Allow() bool
}

// Result is the outcome of one chain-build attempt.
type Result struct {
	Viable                bool
	Chain                 []domain.EvacuationHop
	TotalTimeMinutes      float64
	SurvivalWindowMinutes float64
}

// BuildChain runs the sequential greedy construction described above. It
// never mutates facilities; remaining candidates are tracked by id.
func BuildChain(
	reg rules.Registry,
	patient *domain.Patient,
	facilities []*domain.Facility,
	survivalWindowMinutes float64,
	mode domain.TransportMode,
	copts cost.Options,
	gov Allower,
) Result {
	used := map[string]bool{}
	origin := *patient.Location
	cumulative := 0.0
	var chain []domain.EvacuationHop

	for _, t := range tiers(reg) {
		if gov != nil && !gov.Allow() {
			return Result{Viable: false, SurvivalWindowMinutes: survivalWindowMinutes}
		}

		candidates := make([]*domain.Facility, 0)
		for _, f := range facilities {
			if used[f.FacilityID] || f.Level != t.level {
				continue
			}
			candidates = append(candidates, f)
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].FacilityID < candidates[j].FacilityID })

		budget := t.budget(survivalWindowMinutes)

		type scored struct {
			facility *domain.Facility
			eta      float64
			cost     float64
		}
		var survivors []scored
		for _, f := range candidates {
			eta := geo.ETAMinutes(origin, f.Location, mode)
			if cumulative+eta > budget {
				continue
			}
			survivors = append(survivors, scored{facility: f, eta: eta, cost: cost.Compute(reg, patient, f, eta, copts)})
		}

		if len(survivors) == 0 {
			return Result{Viable: false, SurvivalWindowMinutes: survivalWindowMinutes}
		}

		sort.Slice(survivors, func(i, j int) bool {
			a, b := survivors[i], survivors[j]
			if a.cost != b.cost {
				return a.cost < b.cost
			}
			if a.eta != b.eta {
				return a.eta < b.eta
			}
			return a.facility.FacilityID < b.facility.FacilityID
		})

		chosen := survivors[0]
		cumulative += chosen.eta
		chain = append(chain, domain.EvacuationHop{
			Role:               t.role,
			Level:              t.level,
			FacilityID:         chosen.facility.FacilityID,
			FacilityName:       chosen.facility.Name,
			ETAMinutes:         chosen.eta,
			CumulativeTime:     cumulative,
			TimelineCompliance: true,
		})
		used[chosen.facility.FacilityID] = true
		origin = chosen.facility.Location
	}

	return Result{
		Viable:                true,
		Chain:                 chain,
		TotalTimeMinutes:      cumulative,
		SurvivalWindowMinutes: survivalWindowMinutes,
	}
}

// Compliance derives the top-level NATO compliance flags from a completed
// chain's cumulative times.
func Compliance(reg rules.Registry, chain []domain.EvacuationHop, survivalWindowMinutes float64) domain.NatoCompliance {
	var c domain.NatoCompliance
	for _, hop := range chain {
		switch hop.Role {
		case domain.Role1:
			c.Role1Compliant = hop.CumulativeTime <= reg.Role1BudgetMinutes
		case domain.Role2:
			c.Role2Compliant = hop.CumulativeTime <= reg.Role2BudgetMinutes
		case domain.Role3:
			c.SurvivalCompliant = hop.CumulativeTime <= survivalWindowMinutes
		}
	}
	return c
}
