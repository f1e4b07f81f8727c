package domain

import "testing"

func TestNewFacilityValidation(t *testing.T) {
	tests := []struct {
		name        string
		facilityID  string
		level       int
		expectError bool
	}{
		{"empty id", "", 1, true},
		{"level too low", "F1", 0, true},
		{"level too high", "F1", 4, true},
		{"valid", "F1", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFacility(tt.facilityID, "Test Facility", tt.level, GeoPoint{}, nil, nil)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
