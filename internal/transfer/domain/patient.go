package domain

import (
	"github.com/attendite/transferengine/internal/shared/errors"
)

// Patient is the subset of a triaged patient record the decision engine
// consumes. Every other field the upstream triage pipeline produces is
// ignored by the core.
type Patient struct {
	PatientID                   string                 `json:"patient_id"`
	Acuity                      AcuityLevel            `json:"acuity"`
	Location                    *GeoPoint              `json:"location,omitempty"`
	PredictedDeathTimestamp     *int64                 `json:"predicted_death_timestamp,omitempty"`
	RequiredMedicalCapabilities map[CapabilityKey]bool `json:"required_medical_capabilities"`
	RequiredMedicalResources    map[ResourceKey]int    `json:"required_medical_resources"`
	Deceased                    bool                   `json:"deceased"`
}

// NewPatient validates and constructs a Patient. Acuity is normalized
// against the legacy-tag table before any other field is set.
func NewPatient(
	patientID string,
	acuity AcuityLevel,
	location *GeoPoint,
	predictedDeathTimestamp *int64,
	requiredCapabilities map[CapabilityKey]bool,
	requiredResources map[ResourceKey]int,
	deceased bool,
) (*Patient, error) {
	if patientID == "" {
		return nil, errors.Field("patient_id", "required")
	}

	caps := requiredCapabilities
	if caps == nil {
		caps = map[CapabilityKey]bool{}
	}
	resources := requiredResources
	if resources == nil {
		resources = map[ResourceKey]int{}
	}
	for k, v := range resources {
		if v < 0 {
			return nil, errors.Field("required_medical_resources", "negative count for "+string(k))
		}
	}

	return &Patient{
		PatientID:                   patientID,
		Acuity:                      NormalizeAcuity(acuity),
		Location:                    location,
		PredictedDeathTimestamp:     predictedDeathTimestamp,
		RequiredMedicalCapabilities: caps,
		RequiredMedicalResources:    resources,
		Deceased:                    deceased,
	}, nil
}
