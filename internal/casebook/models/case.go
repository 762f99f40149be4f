package models

import "strconv"

// PitchKeyPrefix marks the synthetic key of a case built from an unconverted
// deal. Pitch cases never carry an instruction, risk assessment, or identity
// verification.
const PitchKeyPrefix = "pitch:"

// Case is the canonical, deduplicated unit of work: one instruction (or one
// unconverted deal) together with every related record. Cases are rebuilt
// from source data on every reconciliation and never persisted.
type Case struct {
	Ref                   string                 `json:"Ref"`
	ProspectID            string                 `json:"ProspectId,omitempty"`
	Instruction           *Instruction           `json:"Instruction,omitempty"`
	Deals                 []Deal                 `json:"Deals,omitempty"`
	JointClients          []JointClient          `json:"JointClients,omitempty"`
	Documents             []Document             `json:"Documents,omitempty"`
	RiskAssessment        *RiskAssessment        `json:"RiskAssessment,omitempty"`
	IdentityVerifications []IdentityVerification `json:"IdentityVerifications,omitempty"`
}

// PitchKey derives the synthetic case key for an unconverted deal.
func PitchKey(dealID int) string {
	return PitchKeyPrefix + strconv.Itoa(dealID)
}

// IsPitch reports whether the case was built from an unconverted deal.
func (c *Case) IsPitch() bool {
	return c.Instruction == nil
}

// MatterLinked reports whether a matter has been opened for this case.
func (c *Case) MatterLinked() bool {
	return c.Instruction != nil && c.Instruction.MatterRef != ""
}

// LatestVerification returns the most recent identity verification, or nil.
// Reconciliation preserves source order with the newest record first.
func (c *Case) LatestVerification() *IdentityVerification {
	if len(c.IdentityVerifications) == 0 {
		return nil
	}
	return &c.IdentityVerifications[0]
}

// AnnotatedCase pairs a case with its derived workflow status. This is the
// shape the presentation layer consumes; it is plain data, safe to serialize.
type AnnotatedCase struct {
	Case
	Workflow WorkflowStatus `json:"Workflow"`
}
