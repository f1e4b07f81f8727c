package domain

import "testing"

func TestNewPatientValidation(t *testing.T) {
	tests := []struct {
		name        string
		patientID   string
		resources   map[ResourceKey]int
		expectError bool
	}{
		{"empty id", "", nil, true},
		{"negative resource", "P1", map[ResourceKey]int{ResourceWard: -1}, true},
		{"valid", "P1", map[ResourceKey]int{ResourceWard: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPatient(tt.patientID, AcuityImmediate, nil, nil, nil, tt.resources, false)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestNewPatientNormalizesLegacyAcuity(t *testing.T) {
	p, err := NewPatient("P1", "Critical", nil, nil, nil, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Acuity != AcuityImmediate {
		t.Errorf("expected normalized acuity Immediate, got %s", p.Acuity)
	}
}

func TestNewPatientDefaultsNilMapsToEmpty(t *testing.T) {
	p, err := NewPatient("P1", AcuityMinimal, nil, nil, nil, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RequiredMedicalCapabilities == nil || p.RequiredMedicalResources == nil {
		t.Error("expected non-nil maps")
	}
}
