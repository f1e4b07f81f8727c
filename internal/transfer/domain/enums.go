package domain

// AcuityLevel is the SALT triage tag attached to a patient. It is the
// closed alphabet the Cost Model and MEDEVAC Chain Builder key off of.
type AcuityLevel string

const (
	AcuityDead      AcuityLevel = "Dead"
	AcuityExpectant AcuityLevel = "Expectant"
	AcuityImmediate AcuityLevel = "Immediate"
	AcuityDelayed   AcuityLevel = "Delayed"
	AcuityMinimal   AcuityLevel = "Minimal"
)

// legacyAcuity maps pre-SALT tags onto their canonical SALT equivalents.
var legacyAcuity = map[AcuityLevel]AcuityLevel{
	"Critical":  AcuityImmediate,
	"Severe":    AcuityDelayed,
	"Minor":     AcuityMinimal,
	"Deceased":  AcuityDead,
	"Undefined": AcuityDelayed,
}

// NormalizeAcuity canonicalizes a legacy acuity tag to its SALT equivalent.
// Tags already in the SALT alphabet pass through unchanged; anything else
// passes through unchanged too, leaving rules.AcuityWeight to fall back to
// its unknown-acuity default.
func NormalizeAcuity(a AcuityLevel) AcuityLevel {
	if canon, ok := legacyAcuity[a]; ok {
		return canon
	}
	return a
}

// CapabilityKey is one of the closed set of medical capabilities a facility
// may offer and a patient may require.
type CapabilityKey string

const (
	CapabilityTraumaCenter  CapabilityKey = "trauma_center"
	CapabilityNeurosurgical CapabilityKey = "neurosurgical"
	CapabilityOrthopedic    CapabilityKey = "orthopedic"
	CapabilityOphthalmology CapabilityKey = "ophthalmology"
	CapabilityBurn          CapabilityKey = "burn"
	CapabilityPediatric     CapabilityKey = "pediatric"
	CapabilityObstetric     CapabilityKey = "obstetric"
	CapabilityCardiac       CapabilityKey = "cardiac"
	CapabilityThoracic      CapabilityKey = "thoracic"
	CapabilityVascular      CapabilityKey = "vascular"
	CapabilityENT           CapabilityKey = "ent"
	CapabilityHepatobiliary CapabilityKey = "hepatobiliary"
)

// ResourceKey is one of the closed set of countable medical resources a
// facility tracks capacity for.
type ResourceKey string

const (
	ResourceWard                    ResourceKey = "ward"
	ResourceOrdinaryICU             ResourceKey = "ordinary_icu"
	ResourceOperatingRoom           ResourceKey = "operating_room"
	ResourceVentilator              ResourceKey = "ventilator"
	ResourcePRBCUnit                ResourceKey = "prbc_unit"
	ResourceIsolation               ResourceKey = "isolation"
	ResourceDecontaminationUnit     ResourceKey = "decontamination_unit"
	ResourceCTScanner               ResourceKey = "ct_scanner"
	ResourceOxygenCylinder          ResourceKey = "oxygen_cylinder"
	ResourceInterventionalRadiology ResourceKey = "interventional_radiology"
)

// IncidentType selects which dispatch path the orchestrator takes.
type IncidentType string

const (
	IncidentMCI     IncidentType = "MCI"
	IncidentPHE     IncidentType = "PHE"
	IncidentMEDEVAC IncidentType = "MEDEVAC"
)

// TransportMode selects the travel-speed assumption used by geo.ETA.
type TransportMode string

const (
	TransportGround TransportMode = "Ground"
	TransportAir    TransportMode = "Air"
)

// SolverStatus is the terminal status of an MCI/PHE optimizer solve.
type SolverStatus string

const (
	SolverOptimal    SolverStatus = "OPTIMAL"
	SolverFeasible   SolverStatus = "FEASIBLE"
	SolverInfeasible SolverStatus = "INFEASIBLE"
	SolverUnknown    SolverStatus = "UNKNOWN"
)

// Action is the top-level disposition of a TransferDecision.
type Action string

const (
	ActionTransfer Action = "Transfer"
	ActionForfeit  Action = "Forfeit"
)

// ReasoningCode is the closed taxonomy of structured outcomes. Decide never
// returns a Go error for a business-logic outcome; it returns one of these.
type ReasoningCode string

const (
	ReasonEvacuationChainOptimal ReasoningCode = "EVACUATION_CHAIN_OPTIMAL"
	ReasonTransferOptimal        ReasoningCode = "TRANSFER_OPTIMAL"
	ReasonPatientDeceased        ReasoningCode = "PATIENT_DECEASED"
	ReasonDeadOnArrival          ReasoningCode = "DEAD_ON_ARRIVAL"
	ReasonNoFacilitiesAvailable  ReasoningCode = "NO_FACILITIES_AVAILABLE"
	ReasonNoViableChain          ReasoningCode = "NO_VIABLE_CHAIN"
	ReasonNoLocation             ReasoningCode = "NO_LOCATION"
)

// Role is a NATO AJP-4.10 echelon label attached to a MEDEVAC chain hop.
type Role string

const (
	Role1 Role = "Role 1"
	Role2 Role = "Role 2"
	Role3 Role = "Role 3"
)
