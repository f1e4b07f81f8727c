package engine

import "github.com/attendite/transferengine/internal/transfer/domain"

// reasoningTemplates holds the free-text summary attached to each
// reasoning code. The engine treats narration as a deterministic
// derivation of the code, not a generated explanation — see Design Note on
// textual reasoning being out of scope for the core.
var reasoningTemplates = map[domain.ReasoningCode]string{
	domain.ReasonEvacuationChainOptimal: "MEDEVAC chain constructed across Role 1, Role 2, and Role 3 within the cumulative timeline budget.",
	domain.ReasonTransferOptimal:        "Optimal single-destination assignment under capability, resource, and cost constraints.",
	domain.ReasonPatientDeceased:        "Patient is deceased or has no remaining survival window; no transfer is possible.",
	domain.ReasonDeadOnArrival:          "Best available assignment or chain exceeds the patient's survival window.",
	domain.ReasonNoFacilitiesAvailable:  "No facility could be assigned; the candidate set was empty or exhausted.",
	domain.ReasonNoViableChain:          "No facility satisfied the timeline budget for one or more MEDEVAC roles.",
	domain.ReasonNoLocation:             "Patient location is absent; travel time cannot be computed.",
}

func reasoningFor(code domain.ReasoningCode) string {
	if text, ok := reasoningTemplates[code]; ok {
		return text
	}
	return string(code)
}
