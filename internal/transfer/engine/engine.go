// Package engine wires the decision components — slack/survival
// classification, the MCI/PHE optimizer, and the MEDEVAC chain builder —
// behind a single entry point, Decide.
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/attendite/transferengine/internal/transfer/domain"
	"github.com/attendite/transferengine/internal/transfer/evac"
	"github.com/attendite/transferengine/internal/transfer/optimizer"
	"github.com/attendite/transferengine/internal/transfer/rules"
	"github.com/attendite/transferengine/internal/transfer/survival"
)

// Decide is the engine's single public operation. It is pure and
// reentrant: it holds no cross-call state and is safe to call
// concurrently on disjoint inputs. Every outcome — success or forfeit —
// comes back as a TransferDecision; Decide never returns a Go error for a
// business-logic outcome.
func Decide(
	ctx context.Context,
	patient *domain.Patient,
	facilities []*domain.Facility,
	incidentType domain.IncidentType,
	currentTime int64,
	opts Options,
) domain.TransferDecision {
	start := time.Now()
	reg := rules.Default()
	recorder := opts.recorder()

	decision := decide(ctx, reg, patient, facilities, incidentType, currentTime, opts)
	decision.TraceID = uuid.New().String()
	decision.Reasoning = reasoningFor(decision.ReasoningCode)

	recorder.RecordDecision(string(incidentType), string(decision.ReasoningCode), string(decision.Action))
	if decision.SolverStatus != "" {
		recorder.RecordSolverStatus(string(decision.SolverStatus))
	}
	recorder.ObserveDecisionDuration(time.Since(start))

	return decision
}

func decide(
	ctx context.Context,
	reg rules.Registry,
	patient *domain.Patient,
	facilities []*domain.Facility,
	incidentType domain.IncidentType,
	currentTime int64,
	opts Options,
) domain.TransferDecision {
	classification := survival.Classify(patient, currentTime)
	if classification.Forfeit {
		return forfeit(classification.ReasoningCode)
	}

	if len(facilities) == 0 {
		return forfeit(domain.ReasonNoFacilitiesAvailable)
	}

	switch incidentType {
	case domain.IncidentMEDEVAC:
		return decideMedevac(reg, patient, facilities, classification.SurvivalWindowMinutes, opts)
	default:
		return decideMCIorPHE(ctx, reg, patient, facilities, classification.SurvivalWindowMinutes, opts)
	}
}

func forfeit(code domain.ReasoningCode) domain.TransferDecision {
	return domain.TransferDecision{
		Action:        domain.ActionForfeit,
		ReasoningCode: code,
	}
}

func decideMCIorPHE(
	ctx context.Context,
	reg rules.Registry,
	patient *domain.Patient,
	facilities []*domain.Facility,
	survivalWindowMinutes float64,
	opts Options,
) domain.TransferDecision {
	deadline := opts.Engine.Solver.Deadline()
	if deadline <= 0 {
		deadline = 5 * time.Second
	}
	solveCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	mode := opts.transportMode()
	copts := opts.costOptions()

	res := optimizer.Solve(solveCtx, reg, patient, facilities, nil, mode, copts)
	if res.Status == domain.SolverUnknown || res.Status == domain.SolverInfeasible {
		d := forfeit(domain.ReasonNoFacilitiesAvailable)
		d.SolverStatus = res.Status
		return d
	}

	best := res.Best
	if best.ETAMinutes > survivalWindowMinutes {
		return forfeit(domain.ReasonDeadOnArrival)
	}

	maxAlts := opts.Engine.Solver.MaxAlternatives
	var alts []optimizer.Candidate
	excluded := map[string]bool{best.Facility.FacilityID: true}
	for i := 0; i < maxAlts; i++ {
		if !opts.Governor.Allow() {
			break
		}
		alt := optimizer.Solve(solveCtx, reg, patient, facilities, excluded, mode, copts)
		if alt.Status != domain.SolverOptimal && alt.Status != domain.SolverFeasible {
			break
		}
		alts = append(alts, *alt.Best)
		excluded[alt.Best.Facility.FacilityID] = true
	}

	alternatives := make([]domain.Destination, 0, len(alts))
	for _, a := range alts {
		alternatives = append(alternatives, toDestination(a))
	}

	destination := toDestination(*best)
	return domain.TransferDecision{
		Action:        domain.ActionTransfer,
		ReasoningCode: domain.ReasonTransferOptimal,
		Destination:   &destination,
		Alternatives:  alternatives,
		SolverStatus:  res.Status,
	}
}

func toDestination(c optimizer.Candidate) domain.Destination {
	return domain.Destination{
		FacilityID:   c.Facility.FacilityID,
		FacilityName: c.Facility.Name,
		ETAMinutes:   c.ETAMinutes,
	}
}

func decideMedevac(
	reg rules.Registry,
	patient *domain.Patient,
	facilities []*domain.Facility,
	survivalWindowMinutes float64,
	opts Options,
) domain.TransferDecision {
	mode := opts.transportMode()
	copts := opts.costOptions()

	result := evac.BuildChain(reg, patient, facilities, survivalWindowMinutes, mode, copts, opts.Governor)
	if !result.Viable {
		return forfeit(domain.ReasonNoViableChain)
	}
	if result.TotalTimeMinutes > survivalWindowMinutes {
		return forfeit(domain.ReasonDeadOnArrival)
	}

	compliance := evac.Compliance(reg, result.Chain, survivalWindowMinutes)
	return domain.TransferDecision{
		Action:                domain.ActionTransfer,
		ReasoningCode:         domain.ReasonEvacuationChainOptimal,
		EvacuationChain:       result.Chain,
		TotalTimeMinutes:      result.TotalTimeMinutes,
		SurvivalWindowMinutes: result.SurvivalWindowMinutes,
		NatoCompliance:        &compliance,
	}
}
