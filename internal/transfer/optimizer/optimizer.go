// Package optimizer formulates and solves the MCI/PHE binary assignment
// problem: choose the facility minimizing the Cost Model's objective,
// subject to a caller-supplied exclusion set used to enumerate
// alternatives. For the engine's single-patient API an exhaustive scan
// over facilities is an equivalent, and explicitly permitted,
// implementation of the underlying binary ILP.
package optimizer

import (
	"context"
	"sort"

	"github.com/attendite/transferengine/internal/transfer/cost"
	"github.com/attendite/transferengine/internal/transfer/domain"
	"github.com/attendite/transferengine/internal/transfer/geo"
	"github.com/attendite/transferengine/internal/transfer/rules"
)

// Candidate is a scored (patient, facility) pair.
type Candidate struct {
	Facility   *domain.Facility
	ETAMinutes float64
	Cost       float64
}

// Result is the outcome of one solve pass: C1 (assignment) is always
// satisfiable as long as at least one non-excluded facility exists and the
// patient has a location, so Infeasible here means the exclusion set has
// consumed every candidate or the patient location is absent.
type Result struct {
	Status domain.SolverStatus
	Best   *Candidate
}

// Solve scans every facility not present in excluded, scores it with the
// Cost Model, and returns the minimum-cost candidate under the mandatory
// tie-break (cost, then ETA, then lexicographic facility_id).
//
// ctx's deadline is checked between facility evaluations. If it expires
// before any candidate has been evaluated, Solve returns SolverUnknown. If
// it expires after at least one candidate has been scored, Solve returns
// SolverFeasible with the best candidate found so far rather than
// continuing to scan.
func Solve(
	ctx context.Context,
	reg rules.Registry,
	patient *domain.Patient,
	facilities []*domain.Facility,
	excluded map[string]bool,
	mode domain.TransportMode,
	copts cost.Options,
) Result {
	ordered := make([]*domain.Facility, 0, len(facilities))
	for _, f := range facilities {
		if excluded[f.FacilityID] {
			continue
		}
		ordered = append(ordered, f)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].FacilityID < ordered[j].FacilityID })

	if len(ordered) == 0 {
		return Result{Status: domain.SolverInfeasible}
	}

	var best *Candidate
	for _, f := range ordered {
		select {
		case <-ctx.Done():
			if best == nil {
				return Result{Status: domain.SolverUnknown}
			}
			return Result{Status: domain.SolverFeasible, Best: best}
		default:
		}

		if patient.Location == nil {
			continue
		}
		eta := geo.ETAMinutes(*patient.Location, f.Location, mode)
		c := cost.Compute(reg, patient, f, eta, copts)
		cand := &Candidate{Facility: f, ETAMinutes: eta, Cost: c}

		if best == nil || isBetter(cand, best) {
			best = cand
		}
	}

	if best == nil {
		return Result{Status: domain.SolverInfeasible}
	}
	return Result{Status: domain.SolverOptimal, Best: best}
}

// isBetter applies the mandatory tie-break: lower cost, then lower ETA,
// then lexicographically smaller facility_id.
func isBetter(a, b *Candidate) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.ETAMinutes != b.ETAMinutes {
		return a.ETAMinutes < b.ETAMinutes
	}
	return a.Facility.FacilityID < b.Facility.FacilityID
}

// Alternatives re-solves up to maxAlternatives additional times, each time
// excluding the previously chosen facility, stopping early on
// SolverInfeasible. Each successful re-solve contributes one alternative,
// ordered best-first.
func Alternatives(
	ctx context.Context,
	reg rules.Registry,
	patient *domain.Patient,
	facilities []*domain.Facility,
	primary *Candidate,
	maxAlternatives int,
	mode domain.TransportMode,
	copts cost.Options,
) []Candidate {
	excluded := map[string]bool{primary.Facility.FacilityID: true}

	var alts []Candidate
	for i := 0; i < maxAlternatives; i++ {
		res := Solve(ctx, reg, patient, facilities, excluded, mode, copts)
		if res.Status != domain.SolverOptimal && res.Status != domain.SolverFeasible {
			break
		}
		alts = append(alts, *res.Best)
		excluded[res.Best.Facility.FacilityID] = true
	}
	return alts
}
