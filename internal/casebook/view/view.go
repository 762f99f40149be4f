// Package view filters and groups annotated cases for the dashboard tabs.
//
// Pure domain logic - no I/O. Selection never mutates its input; every call
// returns a fresh slice.
package view

import (
	"strings"

	"instructhub/internal/casebook/models"
)

// Tab identifies a dashboard view.
type Tab string

const (
	TabPitches Tab = "pitches"
	TabClients Tab = "clients"
	TabRisk    Tab = "risk"
)

// Pitch sub-filters. An empty filter means both.
const (
	FilterOpen   = "open"
	FilterClosed = "closed"
)

// RiskBucket splits the risk view into work left to do and work done.
type RiskBucket string

const (
	BucketOutstanding RiskBucket = "outstanding"
	BucketCompleted   RiskBucket = "completed"
)

// Selector names one dashboard view: the tab plus its optional sub-filter.
type Selector struct {
	Tab    Tab
	Filter string            // pitch sub-filter: open, closed, or empty
	Action models.NextAction // clients filter; empty or ActionAll means all
}

// Select returns the cases visible under the given selector. Pitches and
// clients partition the case list: a case with no instruction is only ever a
// pitch, a case with one is only ever a client.
func Select(cases []models.AnnotatedCase, sel Selector) []models.AnnotatedCase {
	out := make([]models.AnnotatedCase, 0, len(cases))
	for i := range cases {
		c := &cases[i]
		switch sel.Tab {
		case TabPitches:
			if c.IsPitch() && matchesPitchFilter(c, sel.Filter) {
				out = append(out, *c)
			}
		case TabClients:
			if !c.IsPitch() && matchesAction(c, sel.Action) {
				out = append(out, *c)
			}
		default:
			out = append(out, *c)
		}
	}
	return out
}

// A pitch is open while its deal has not been closed; status comparison is
// case-insensitive because the source stores both spellings.
func matchesPitchFilter(c *models.AnnotatedCase, filter string) bool {
	if filter == "" {
		return true
	}
	closed := false
	for i := range c.Deals {
		if strings.EqualFold(c.Deals[i].Status, "closed") {
			closed = true
			break
		}
	}
	if filter == FilterClosed {
		return closed
	}
	return !closed
}

func matchesAction(c *models.AnnotatedCase, action models.NextAction) bool {
	if action == "" || action == models.ActionAll {
		return true
	}
	return c.Workflow.NextAction == action
}

// RiskRecord is one row of the risk view: either a risk assessment or an
// identity verification, flattened to a single shape. Which bucket a record
// lands in is decided by the fields it carries, not by where it came from.
type RiskRecord struct {
	InstructionRef       string `json:"InstructionRef"`
	RiskAssessmentResult string `json:"RiskAssessmentResult,omitempty"`
	RiskScore            int    `json:"RiskScore,omitempty"`
	RiskAssessor         string `json:"RiskAssessor,omitempty"`
	ComplianceDate       string `json:"ComplianceDate,omitempty"`

	CheckID                   string `json:"CheckId,omitempty"`
	EIDStatus                 string `json:"EIDStatus,omitempty"`
	EIDOverallResult          string `json:"EIDOverallResult,omitempty"`
	EIDCheckedDate            string `json:"EIDCheckedDate,omitempty"`
	CheckResult               string `json:"CheckResult,omitempty"`
	PEPAndSanctionsResult     string `json:"PEPAndSanctionsCheckResult,omitempty"`
	AddressVerificationResult string `json:"AddressVerificationResult,omitempty"`
}

// IsIdentity classifies the record by the presence of identity-check fields.
func (r *RiskRecord) IsIdentity() bool {
	return r.CheckID != "" || r.EIDStatus != "" || r.EIDCheckedDate != "" ||
		r.CheckResult != "" || r.PEPAndSanctionsResult != "" || r.AddressVerificationResult != ""
}

// Completed reports whether the record represents finished, passed work,
// using the same vocabulary as the status derivation.
func (r *RiskRecord) Completed() bool {
	if r.IsIdentity() {
		switch strings.ToLower(r.EIDOverallResult) {
		case "passed", "pass":
			return true
		}
		return false
	}
	switch strings.ToLower(r.RiskAssessmentResult) {
	case "low", "low risk", "pass", "approved":
		return true
	}
	return false
}

// GroupedRisk is every risk and identity record for one instruction.
type GroupedRisk struct {
	InstructionRef string       `json:"InstructionRef"`
	Risk           []RiskRecord `json:"Risk,omitempty"`
	Identity       []RiskRecord `json:"Identity,omitempty"`
}

// CollectRiskRecords flattens the risk assessments and identity checks of
// every non-pitch case into view rows.
func CollectRiskRecords(cases []models.AnnotatedCase) []RiskRecord {
	var out []RiskRecord
	for i := range cases {
		c := &cases[i]
		if ra := c.RiskAssessment; ra != nil {
			out = append(out, RiskRecord{
				InstructionRef:       c.Ref,
				RiskAssessmentResult: ra.RiskAssessmentResult,
				RiskScore:            ra.RiskScore,
				RiskAssessor:         ra.RiskAssessor,
				ComplianceDate:       ra.ComplianceDate,
			})
		}
		for _, v := range c.IdentityVerifications {
			out = append(out, RiskRecord{
				InstructionRef:            c.Ref,
				CheckID:                   v.CheckID,
				EIDStatus:                 v.EIDStatus,
				EIDOverallResult:          v.EIDOverallResult,
				EIDCheckedDate:            v.EIDCheckedDate,
				CheckResult:               v.CheckResult,
				PEPAndSanctionsResult:     v.PEPAndSanctionsResult,
				AddressVerificationResult: v.AddressVerificationResult,
			})
		}
	}
	return out
}

// SelectRisk narrows records to one instruction and one bucket. Empty
// arguments mean no restriction.
func SelectRisk(records []RiskRecord, instructionRef string, bucket RiskBucket) []RiskRecord {
	out := make([]RiskRecord, 0, len(records))
	for i := range records {
		r := records[i]
		if instructionRef != "" && r.InstructionRef != instructionRef {
			continue
		}
		switch bucket {
		case BucketOutstanding:
			if r.Completed() {
				continue
			}
		case BucketCompleted:
			if !r.Completed() {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// GroupByInstruction merges records sharing an instruction reference into one
// group, bucketed by record shape. Group order follows first appearance.
func GroupByInstruction(records []RiskRecord) []GroupedRisk {
	index := make(map[string]int)
	var groups []GroupedRisk
	for _, r := range records {
		i, ok := index[r.InstructionRef]
		if !ok {
			i = len(groups)
			index[r.InstructionRef] = i
			groups = append(groups, GroupedRisk{InstructionRef: r.InstructionRef})
		}
		if r.IsIdentity() {
			groups[i].Identity = append(groups[i].Identity, r)
		} else {
			groups[i].Risk = append(groups[i].Risk, r)
		}
	}
	return groups
}
