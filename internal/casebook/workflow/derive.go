// Package workflow derives a case's per-dimension statuses and its single
// next required action.
//
// Pure domain logic - no I/O. Absent data maps to the most conservative
// status, never to an error: a derivation is always total.
package workflow

import (
	"strings"

	"instructhub/internal/casebook/models"
)

// Derive computes the full workflow status for one case. Each dimension is
// independent; NextAction is resolved last from the fixed compliance order.
func Derive(c *models.Case) models.WorkflowStatus {
	ws := models.WorkflowStatus{
		Identity:  identityStatus(c),
		Payment:   paymentStatus(c),
		Documents: documentStatus(c),
		Risk:      riskStatus(c),
	}
	ws.Matter = matterStatus(c, ws)
	ws.NextAction = nextAction(c, ws)
	return ws
}

// identityStatus orders the outcomes deliberately: a submitted-but-unchecked
// proof is Received (needs processing), a checked-but-unpassed proof is
// Review (needs a human), and only a checked-and-passed proof is Complete.
func identityStatus(c *models.Case) models.IdentityStatus {
	proofPresent := c.Instruction != nil &&
		(c.Instruction.PassportNumber != "" || c.Instruction.DriversLicenseNumber != "")

	eid := c.LatestVerification()
	if eid == nil || strings.ToLower(eid.EIDStatus) == "pending" {
		if proofPresent {
			return models.IdentityReceived
		}
		return models.IdentityPending
	}

	switch strings.ToLower(eid.EIDOverallResult) {
	case "passed", "pass":
		return models.IdentityComplete
	}
	return models.IdentityReview
}

func paymentStatus(c *models.Case) models.PaymentStatus {
	if c.Instruction == nil {
		return models.PaymentPending
	}
	switch strings.ToLower(c.Instruction.PaymentResult) {
	case "successful":
		return models.PaymentComplete
	case "failed":
		return models.PaymentFailed
	}
	return models.PaymentPending
}

func documentStatus(c *models.Case) models.DocumentStatus {
	if len(c.Documents) > 0 {
		return models.DocumentsComplete
	}
	return models.DocumentsPending
}

func riskStatus(c *models.Case) models.RiskStatus {
	if c.RiskAssessment == nil {
		return models.RiskPending
	}
	switch strings.ToLower(c.RiskAssessment.RiskAssessmentResult) {
	case "low", "low risk", "pass", "approved":
		return models.RiskComplete
	}
	return models.RiskFlagged
}

func matterStatus(c *models.Case, ws models.WorkflowStatus) models.MatterStatus {
	anyClosed := false
	allClosed := len(c.Deals) > 0
	for i := range c.Deals {
		if strings.EqualFold(c.Deals[i].Status, "closed") {
			anyClosed = true
		} else {
			allClosed = false
		}
	}

	if anyClosed && c.MatterLinked() {
		return models.MatterComplete
	}
	if allClosed &&
		ws.Payment == models.PaymentComplete &&
		ws.Documents == models.DocumentsComplete &&
		ws.Identity == models.IdentityComplete &&
		ws.Risk == models.RiskComplete {
		return models.MatterReady
	}
	return models.MatterPending
}

// nextAction encodes the firm's required compliance sequence: identity before
// risk before matter before drafting. First match wins; do not reorder.
func nextAction(c *models.Case, ws models.WorkflowStatus) models.NextAction {
	switch {
	case ws.Matter == models.MatterComplete:
		return models.ActionDraftCCL
	case ws.Identity != models.IdentityComplete:
		return models.ActionVerifyID
	case ws.Risk == models.RiskPending:
		return models.ActionAssessRisk
	case ws.Matter == models.MatterReady && !c.MatterLinked():
		return models.ActionOpenMatter
	case c.MatterLinked():
		return models.ActionDraftCCL
	}
	return models.ActionComplete
}

// Annotate derives the workflow status for every case in a snapshot.
func Annotate(cases []models.Case) []models.AnnotatedCase {
	out := make([]models.AnnotatedCase, len(cases))
	for i := range cases {
		out[i] = models.AnnotatedCase{
			Case:     cases[i],
			Workflow: Derive(&cases[i]),
		}
	}
	return out
}
