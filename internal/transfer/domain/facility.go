package domain

import (
	"github.com/attendite/transferengine/internal/shared/errors"
)

// Facility is a candidate destination the decision engine may assign a
// patient to. Level 1 is Role 3 definitive care, level 2 is Role 2, level 3
// is Role 1 forward care.
type Facility struct {
	FacilityID       string                 `json:"facility_id"`
	Name             string                 `json:"name"`
	Level            int                    `json:"level"`
	Location         GeoPoint               `json:"location"`
	Capabilities     map[CapabilityKey]bool `json:"capabilities"`
	MedicalResources map[ResourceKey]int    `json:"medical_resources"`
}

// NewFacility validates and constructs a Facility.
func NewFacility(
	facilityID, name string,
	level int,
	location GeoPoint,
	capabilities map[CapabilityKey]bool,
	medicalResources map[ResourceKey]int,
) (*Facility, error) {
	if facilityID == "" {
		return nil, errors.Field("facility_id", "required")
	}
	if level < 1 || level > 3 {
		return nil, errors.Field("level", "must be one of {1,2,3}")
	}

	caps := capabilities
	if caps == nil {
		caps = map[CapabilityKey]bool{}
	}
	resources := medicalResources
	if resources == nil {
		resources = map[ResourceKey]int{}
	}
	for k, v := range resources {
		if v < 0 {
			return nil, errors.Field("medical_resources", "negative count for "+string(k))
		}
	}

	return &Facility{
		FacilityID:       facilityID,
		Name:             name,
		Level:            level,
		Location:         location,
		Capabilities:     caps,
		MedicalResources: resources,
	}, nil
}
