package survival

import (
	"math"
	"testing"

	"github.com/attendite/transferengine/internal/transfer/domain"
)

func TestWindowMinutesNoTimestampIsInfinite(t *testing.T) {
	if w := WindowMinutes(nil, 1000); !math.IsInf(w, 1) {
		t.Errorf("expected +Inf, got %f", w)
	}
}

func TestWindowMinutesFlooredAtZero(t *testing.T) {
	currentTime := int64(1_000_000)
	past := currentTime - 1
	if w := WindowMinutes(&past, currentTime); w != 0 {
		t.Errorf("expected 0, got %f", w)
	}
}

func TestClassifyDeceasedAlwaysForfeitsRegardlessOfOtherInputs(t *testing.T) {
	currentTime := int64(1_000_000)
	future := currentTime + 7200

	tests := []struct {
		name     string
		deceased bool
		acuity   domain.AcuityLevel
		location *domain.GeoPoint
	}{
		{"deceased flag with healthy acuity and location", true, domain.AcuityMinimal, &domain.GeoPoint{}},
		{"dead acuity with deceased false", false, domain.AcuityDead, &domain.GeoPoint{}},
		{"both, no location", true, domain.AcuityDead, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.Patient{
				PatientID:               "P1",
				Acuity:                  tt.acuity,
				Deceased:                tt.deceased,
				Location:                tt.location,
				PredictedDeathTimestamp: &future,
			}
			c := Classify(p, currentTime)
			if !c.Forfeit || c.ReasoningCode != domain.ReasonPatientDeceased {
				t.Errorf("expected PATIENT_DECEASED forfeit, got forfeit=%v code=%s", c.Forfeit, c.ReasoningCode)
			}
		})
	}
}

func TestClassifyExpiredWindowScenarioS2(t *testing.T) {
	currentTime := int64(1_000_000)
	expired := currentTime - 1

	p := &domain.Patient{
		PatientID:               "P1",
		Acuity:                  domain.AcuityImmediate,
		Location:                &domain.GeoPoint{Latitude: 43.6532, Longitude: -79.3832},
		PredictedDeathTimestamp: &expired,
	}

	c := Classify(p, currentTime)
	if !c.Forfeit || c.ReasoningCode != domain.ReasonPatientDeceased {
		t.Errorf("expected PATIENT_DECEASED forfeit, got forfeit=%v code=%s", c.Forfeit, c.ReasoningCode)
	}
}

func TestClassifyNoLocation(t *testing.T) {
	currentTime := int64(1_000_000)
	future := currentTime + 7200

	p := &domain.Patient{
		PatientID:               "P1",
		Acuity:                  domain.AcuityImmediate,
		Location:                nil,
		PredictedDeathTimestamp: &future,
	}

	c := Classify(p, currentTime)
	if !c.Forfeit || c.ReasoningCode != domain.ReasonNoLocation {
		t.Errorf("expected NO_LOCATION forfeit, got forfeit=%v code=%s", c.Forfeit, c.ReasoningCode)
	}
}

func TestClassifyProceedsWhenViable(t *testing.T) {
	currentTime := int64(1_000_000)
	future := currentTime + 7200

	p := &domain.Patient{
		PatientID:               "P1",
		Acuity:                  domain.AcuityImmediate,
		Location:                &domain.GeoPoint{Latitude: 43.6532, Longitude: -79.3832},
		PredictedDeathTimestamp: &future,
	}

	c := Classify(p, currentTime)
	if c.Forfeit {
		t.Errorf("expected to proceed, got forfeit code=%s", c.ReasoningCode)
	}
	if c.SurvivalWindowMinutes != 120 {
		t.Errorf("expected 120 minutes, got %f", c.SurvivalWindowMinutes)
	}
}
