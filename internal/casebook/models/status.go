package models

// The status dimensions are closed variant types constructed only by the
// workflow package. Call sites compare constants, never raw source strings,
// so lower-casing happens in exactly one place.

// IdentityStatus tracks the proof-of-identity dimension.
type IdentityStatus string

const (
	IdentityPending  IdentityStatus = "pending"
	IdentityReceived IdentityStatus = "received"
	IdentityReview   IdentityStatus = "review"
	IdentityComplete IdentityStatus = "complete"
)

// PaymentStatus tracks the payment dimension.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentComplete PaymentStatus = "complete"
	PaymentFailed   PaymentStatus = "failed"
)

// DocumentStatus tracks the supporting-documents dimension.
type DocumentStatus string

const (
	DocumentsPending  DocumentStatus = "pending"
	DocumentsComplete DocumentStatus = "complete"
)

// RiskStatus tracks the risk-assessment dimension.
type RiskStatus string

const (
	RiskPending  RiskStatus = "pending"
	RiskComplete RiskStatus = "complete"
	RiskFlagged  RiskStatus = "flagged"
)

// MatterStatus tracks readiness to open the formal matter record.
type MatterStatus string

const (
	MatterPending  MatterStatus = "pending"
	MatterReady    MatterStatus = "ready"
	MatterComplete MatterStatus = "complete"
)

// NextAction is the single required action offered for a case. The ordering
// of candidates is fixed by the workflow package; see workflow.Derive.
type NextAction string

const (
	ActionVerifyID   NextAction = "verify_id"
	ActionAssessRisk NextAction = "assess_risk"
	ActionOpenMatter NextAction = "open_matter"
	ActionDraftCCL   NextAction = "draft_ccl"
	ActionComplete   NextAction = "complete"
	// ActionAll is a selector value meaning "do not filter by action".
	ActionAll NextAction = "all"
)

// WorkflowStatus is the full derived status of one case: four independent
// dimensions, the matter gate, and the single next required action. It is
// recomputed fresh on every derivation, never mutated in place.
type WorkflowStatus struct {
	Identity   IdentityStatus `json:"Identity"`
	Payment    PaymentStatus  `json:"Payment"`
	Documents  DocumentStatus `json:"Documents"`
	Risk       RiskStatus     `json:"Risk"`
	Matter     MatterStatus   `json:"Matter"`
	NextAction NextAction     `json:"NextAction"`
}
