package rules

import (
	"testing"

	"github.com/attendite/transferengine/internal/transfer/domain"
)

func TestAcuityWeightKnownAndUnknown(t *testing.T) {
	reg := Default()

	tests := []struct {
		acuity domain.AcuityLevel
		want   float64
	}{
		{domain.AcuityDead, 0},
		{domain.AcuityImmediate, 100},
		{domain.AcuityDelayed, 50},
		{domain.AcuityMinimal, 10},
		{domain.AcuityExpectant, 80},
		{"Something unrecognized", 50},
	}

	for _, tt := range tests {
		if got := reg.AcuityWeight(tt.acuity); got != tt.want {
			t.Errorf("AcuityWeight(%s) = %f, want %f", tt.acuity, got, tt.want)
		}
	}
}

func TestScarcityPenalty(t *testing.T) {
	reg := Default()

	tests := []struct {
		cap  domain.CapabilityKey
		want float64
	}{
		{domain.CapabilityBurn, 500},
		{domain.CapabilityPediatric, 500},
		{domain.CapabilityNeurosurgical, 400},
		{domain.CapabilityCardiac, 300},
		{domain.CapabilityObstetric, 200},
		{domain.CapabilityOphthalmology, 150},
		{domain.CapabilityTraumaCenter, 0},
	}

	for _, tt := range tests {
		if got := reg.ScarcityPenalty(tt.cap); got != tt.want {
			t.Errorf("ScarcityPenalty(%s) = %f, want %f", tt.cap, got, tt.want)
		}
	}
}

func TestFixedPenaltiesAndBudgets(t *testing.T) {
	reg := Default()

	if reg.CapabilityMismatchPenalty != 10000 {
		t.Errorf("CapabilityMismatchPenalty = %f, want 10000", reg.CapabilityMismatchPenalty)
	}
	if reg.ResourceDeficitPenalty != 5000 {
		t.Errorf("ResourceDeficitPenalty = %f, want 5000", reg.ResourceDeficitPenalty)
	}
	if reg.ResourceStressExponent != 2.0 {
		t.Errorf("ResourceStressExponent = %f, want 2.0", reg.ResourceStressExponent)
	}
	if reg.Role1BudgetMinutes != 60 {
		t.Errorf("Role1BudgetMinutes = %f, want 60", reg.Role1BudgetMinutes)
	}
	if reg.Role2BudgetMinutes != 120 {
		t.Errorf("Role2BudgetMinutes = %f, want 120", reg.Role2BudgetMinutes)
	}
}
