// Package models defines the canonical source-record shapes and the derived
// Case and WorkflowStatus types. Source structs carry the field names the
// backing stores deliver; the ingest package maps every legacy alias onto
// these fields exactly once, so nothing downstream does fallback lookups.
package models

// Prospect is the root aggregate as delivered by the data source. One
// prospect may hold zero or many instructions and zero or many unconverted
// deals, so prospects are not unique per case.
type Prospect struct {
	ProspectID            string                 `json:"ProspectId"`
	FirstName             string                 `json:"FirstName,omitempty"`
	LastName              string                 `json:"LastName,omitempty"`
	Deals                 []Deal                 `json:"Deals,omitempty"`
	Instructions          []Instruction          `json:"Instructions,omitempty"`
	JointClients          []JointClient          `json:"JointClients,omitempty"`
	Documents             []Document             `json:"Documents,omitempty"`
	RiskAssessments       []RiskAssessment       `json:"RiskAssessments,omitempty"`
	IdentityVerifications []IdentityVerification `json:"IdentityVerifications,omitempty"`
}

// Deal is a pitched piece of work. InstructionRef is empty while the deal is
// an unconverted pitch.
type Deal struct {
	DealID             int           `json:"DealId"`
	InstructionRef     string        `json:"InstructionRef,omitempty"`
	Status             string        `json:"Status,omitempty"`
	ServiceDescription string        `json:"ServiceDescription,omitempty"`
	Amount             float64       `json:"Amount,omitempty"`
	AreaOfWork         string        `json:"AreaOfWork,omitempty"`
	PitchedBy          string        `json:"PitchedBy,omitempty"`
	PitchedDate        string        `json:"PitchedDate,omitempty"`
	LeadClientEmail    string        `json:"LeadClientEmail,omitempty"`
	JointClients       []JointClient `json:"JointClients,omitempty"`
	// Instruction is the deal-embedded copy of the converted instruction,
	// redundantly nested by the source. Its nested verification and risk
	// records participate in reconciliation; the copy itself never wins over
	// the prospect-level instruction.
	Instruction *Instruction `json:"Instruction,omitempty"`
}

// Instruction is a converted deal, keyed by InstructionRef.
type Instruction struct {
	InstructionRef       string `json:"InstructionRef"`
	Title                string `json:"Title,omitempty"`
	FirstName            string `json:"FirstName,omitempty"`
	LastName             string `json:"LastName,omitempty"`
	CompanyName          string `json:"CompanyName,omitempty"`
	Email                string `json:"Email,omitempty"`
	Phone                string `json:"Phone,omitempty"`
	DOB                  string `json:"DOB,omitempty"`
	PassportNumber       string `json:"PassportNumber,omitempty"`
	DriversLicenseNumber string `json:"DriversLicenseNumber,omitempty"`
	PaymentResult        string `json:"PaymentResult,omitempty"`
	PaymentAmount        float64 `json:"PaymentAmount,omitempty"`
	Stage                string `json:"Stage,omitempty"`
	SubmissionDate       string `json:"SubmissionDate,omitempty"`
	// MatterRef is set once a matter has been opened for this instruction.
	MatterRef string `json:"MatterRef,omitempty"`

	Documents             []Document             `json:"Documents,omitempty"`
	RiskAssessments       []RiskAssessment       `json:"RiskAssessments,omitempty"`
	IdentityVerifications []IdentityVerification `json:"IdentityVerifications,omitempty"`
}

// JointClient is a client record attached to exactly one deal.
type JointClient struct {
	DealID       int    `json:"DealId"`
	ClientEmail  string `json:"ClientEmail"`
	FirstName    string `json:"FirstName,omitempty"`
	LastName     string `json:"LastName,omitempty"`
	HasSubmitted bool   `json:"HasSubmitted"`
	Lead         bool   `json:"Lead"`
}

// Document is an uploaded file reference. DocumentID is zero when the source
// never assigned one; identity then falls back to (FileName, UploadedAt).
type Document struct {
	DocumentID     int    `json:"DocumentId,omitempty"`
	InstructionRef string `json:"InstructionRef,omitempty"`
	FileName       string `json:"FileName,omitempty"`
	BlobURL        string `json:"BlobUrl,omitempty"`
	UploadedAt     string `json:"UploadedAt,omitempty"`
	Status         string `json:"Status,omitempty"`
}

// RiskAssessment is keyed by MatterID, which equals the InstructionRef of
// the assessed instruction.
type RiskAssessment struct {
	MatterID             string `json:"MatterId"`
	RiskAssessmentResult string `json:"RiskAssessmentResult,omitempty"`
	RiskScore            int    `json:"RiskScore,omitempty"`
	RiskAssessor         string `json:"RiskAssessor,omitempty"`
	ComplianceDate       string `json:"ComplianceDate,omitempty"`
}

// IdentityVerification is one electronic ID check performed by the
// third-party provider, keyed by InstructionRef.
type IdentityVerification struct {
	InternalID                int    `json:"InternalId"`
	InstructionRef            string `json:"InstructionRef"`
	ClientEmail               string `json:"ClientEmail,omitempty"`
	CheckID                   string `json:"CheckId,omitempty"`
	EIDStatus                 string `json:"EIDStatus,omitempty"`
	EIDOverallResult          string `json:"EIDOverallResult,omitempty"`
	EIDCheckedDate            string `json:"EIDCheckedDate,omitempty"`
	CheckResult               string `json:"CheckResult,omitempty"`
	PEPAndSanctionsResult     string `json:"PEPAndSanctionsCheckResult,omitempty"`
	AddressVerificationResult string `json:"AddressVerificationResult,omitempty"`
	EIDRawResponse            string `json:"EIDRawResponse,omitempty"`
}
