// Package survival derives a patient's survival window from their
// predicted death timestamp and classifies early-exit viability before any
// optimizer or chain builder runs.
package survival

import (
	"math"

	"github.com/attendite/transferengine/internal/transfer/domain"
)

// WindowMinutes returns the minutes remaining until predicted death,
// floored at zero. A nil timestamp means no hard deadline, reported as
// +Inf.
func WindowMinutes(predictedDeathTimestamp *int64, currentTime int64) float64 {
	if predictedDeathTimestamp == nil {
		return math.Inf(1)
	}
	remaining := float64(*predictedDeathTimestamp-currentTime) / 60
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Classification is the outcome of the early-exit viability check.
type Classification struct {
	// Forfeit is true when the patient cannot proceed to the optimizer or
	// chain builder at all.
	Forfeit               bool
	ReasoningCode         domain.ReasoningCode
	SurvivalWindowMinutes float64
}

// Classify runs the deceased/expired-window/no-location checks in their
// documented order.
func Classify(p *domain.Patient, currentTime int64) Classification {
	window := WindowMinutes(p.PredictedDeathTimestamp, currentTime)

	if p.Deceased || p.Acuity == domain.AcuityDead {
		return Classification{Forfeit: true, ReasoningCode: domain.ReasonPatientDeceased, SurvivalWindowMinutes: window}
	}
	if window <= 0 {
		return Classification{Forfeit: true, ReasoningCode: domain.ReasonPatientDeceased, SurvivalWindowMinutes: window}
	}
	if p.Location == nil {
		return Classification{Forfeit: true, ReasoningCode: domain.ReasonNoLocation, SurvivalWindowMinutes: window}
	}
	return Classification{Forfeit: false, SurvivalWindowMinutes: window}
}
