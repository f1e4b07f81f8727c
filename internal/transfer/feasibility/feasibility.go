// Package feasibility provides the boolean capability and resource checks
// used to prefer compliant facilities. Neither predicate drops a facility
// from the MCI/PHE optimizer on its own — the Cost Model turns their
// violations into soft penalties instead.
package feasibility

import "github.com/attendite/transferengine/internal/transfer/domain"

// CapabilitiesMatch reports whether facility f has every capability
// patient p requires.
func CapabilitiesMatch(p *domain.Patient, f *domain.Facility) bool {
	for cap, required := range p.RequiredMedicalCapabilities {
		if !required {
			continue
		}
		if !f.Capabilities[cap] {
			return false
		}
	}
	return true
}

// ResourcesSufficient reports whether facility f's remaining capacity
// covers every resource patient p requires.
func ResourcesSufficient(p *domain.Patient, f *domain.Facility) bool {
	for res, required := range p.RequiredMedicalResources {
		if required <= 0 {
			continue
		}
		if f.MedicalResources[res] < required {
			return false
		}
	}
	return true
}

// MissingCapabilities returns the set of capabilities patient p requires
// that facility f does not have.
func MissingCapabilities(p *domain.Patient, f *domain.Facility) []domain.CapabilityKey {
	var missing []domain.CapabilityKey
	for cap, required := range p.RequiredMedicalCapabilities {
		if required && !f.Capabilities[cap] {
			missing = append(missing, cap)
		}
	}
	return missing
}

// UnneededScarceCapabilities returns the capabilities facility f offers
// that patient p does not require — the stewardship cost term's input.
func UnneededScarceCapabilities(p *domain.Patient, f *domain.Facility) []domain.CapabilityKey {
	var unneeded []domain.CapabilityKey
	for cap, has := range f.Capabilities {
		if !has {
			continue
		}
		if !p.RequiredMedicalCapabilities[cap] {
			unneeded = append(unneeded, cap)
		}
	}
	return unneeded
}
