// Package reconcile joins the redundantly-nested source records into one
// canonical Case per instruction or pending pitch.
//
// Pure domain logic - no I/O. Everything here is deterministic in the input
// slice: the same prospects always produce the same cases in the same order.
package reconcile

import (
	"strconv"
	"strings"

	"instructhub/internal/casebook/models"
)

// Reconcile builds the deduplicated case list from raw prospects. The second
// return value counts cases dropped because another case already claimed the
// same key; callers surface it as a data-quality signal.
//
// Duplicate resolution is first-seen-wins at every level, iterating
// prospect-level records before instruction-level before deal-level. That
// ordering is what makes reconciliation idempotent, so it must not change.
func Reconcile(prospects []models.Prospect) ([]models.Case, int) {
	cases := make([]models.Case, 0, len(prospects))
	seen := make(map[string]struct{})
	dropped := 0

	add := func(c models.Case) {
		if _, dup := seen[c.Ref]; dup {
			dropped++
			return
		}
		seen[c.Ref] = struct{}{}
		cases = append(cases, c)
	}

	for i := range prospects {
		p := &prospects[i]

		refs := make(map[string]struct{}, len(p.Instructions))
		for j := range p.Instructions {
			refs[p.Instructions[j].InstructionRef] = struct{}{}
		}

		for j := range p.Instructions {
			add(instructionCase(p, &p.Instructions[j]))
		}

		// A deal with no reference, or a reference matching no instruction on
		// this prospect, is still a pitch.
		for j := range p.Deals {
			d := &p.Deals[j]
			if _, converted := refs[d.InstructionRef]; d.InstructionRef != "" && converted {
				continue
			}
			add(pitchCase(p, d))
		}
	}

	return cases, dropped
}

func instructionCase(p *models.Prospect, inst *models.Instruction) models.Case {
	ref := inst.InstructionRef
	c := models.Case{
		Ref:         ref,
		ProspectID:  p.ProspectID,
		Instruction: inst,
	}

	for i := range p.Deals {
		if p.Deals[i].InstructionRef == ref {
			c.Deals = append(c.Deals, p.Deals[i])
		}
	}

	c.JointClients = gatherJointClients(p, c.Deals)
	c.Documents = gatherDocuments(p, inst, ref)
	c.RiskAssessment = gatherRiskAssessment(p, inst, c.Deals, ref)
	c.IdentityVerifications = gatherVerifications(p, inst, c.Deals, ref)
	return c
}

// pitchCase builds a case for an unconverted deal. Pitches never carry an
// instruction, risk assessment, or identity verification.
func pitchCase(p *models.Prospect, d *models.Deal) models.Case {
	c := models.Case{
		Ref:        models.PitchKey(d.DealID),
		ProspectID: p.ProspectID,
		Deals:      []models.Deal{*d},
	}
	c.JointClients = gatherJointClients(p, c.Deals)
	return c
}

// gatherJointClients merges prospect-level and deal-level joint clients for
// the case's deals, then appends each deal's lead-client email as a synthetic
// lead record. Prospect-level entries are kept only when their DealId matches
// one of the case's deals; a prospect's other deals must not leak in.
func gatherJointClients(p *models.Prospect, deals []models.Deal) []models.JointClient {
	dealIDs := make(map[int]struct{}, len(deals))
	for i := range deals {
		dealIDs[deals[i].DealID] = struct{}{}
	}

	var out []models.JointClient
	seen := make(map[string]struct{})
	add := func(jc models.JointClient) {
		if jc.ClientEmail == "" {
			return
		}
		key := strings.ToLower(jc.ClientEmail) + "|" + strconv.Itoa(jc.DealID)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, jc)
	}

	for _, jc := range p.JointClients {
		if _, ok := dealIDs[jc.DealID]; ok {
			add(jc)
		}
	}
	for i := range deals {
		for _, jc := range deals[i].JointClients {
			add(jc)
		}
	}
	for i := range deals {
		d := &deals[i]
		if d.LeadClientEmail == "" {
			continue
		}
		add(models.JointClient{
			DealID:      d.DealID,
			ClientEmail: d.LeadClientEmail,
			Lead:        true,
		})
	}
	return out
}

func gatherDocuments(p *models.Prospect, inst *models.Instruction, ref string) []models.Document {
	var out []models.Document
	seen := make(map[string]struct{})
	add := func(doc models.Document) {
		if doc.InstructionRef != ref {
			return
		}
		key := documentKey(doc)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, doc)
	}

	for _, doc := range p.Documents {
		add(doc)
	}
	for _, doc := range inst.Documents {
		add(doc)
	}
	return out
}

// documentKey is DocumentId when the source assigned one, otherwise the
// (FileName, UploadedAt) pair.
func documentKey(doc models.Document) string {
	if doc.DocumentID != 0 {
		return "id:" + strconv.Itoa(doc.DocumentID)
	}
	return "file:" + doc.FileName + "|" + doc.UploadedAt
}

func gatherRiskAssessment(p *models.Prospect, inst *models.Instruction, deals []models.Deal, ref string) *models.RiskAssessment {
	pick := func(list []models.RiskAssessment) *models.RiskAssessment {
		for i := range list {
			if list[i].MatterID == ref {
				return &list[i]
			}
		}
		return nil
	}

	if ra := pick(p.RiskAssessments); ra != nil {
		return ra
	}
	if ra := pick(inst.RiskAssessments); ra != nil {
		return ra
	}
	for i := range deals {
		if emb := deals[i].Instruction; emb != nil {
			if ra := pick(emb.RiskAssessments); ra != nil {
				return ra
			}
		}
	}
	return nil
}

func gatherVerifications(p *models.Prospect, inst *models.Instruction, deals []models.Deal, ref string) []models.IdentityVerification {
	var out []models.IdentityVerification
	seen := make(map[int]struct{})
	add := func(v models.IdentityVerification) {
		if v.InstructionRef != ref {
			return
		}
		if _, dup := seen[v.InternalID]; dup {
			return
		}
		seen[v.InternalID] = struct{}{}
		out = append(out, v)
	}

	for _, v := range p.IdentityVerifications {
		add(v)
	}
	for _, v := range inst.IdentityVerifications {
		add(v)
	}
	for i := range deals {
		if emb := deals[i].Instruction; emb != nil {
			for _, v := range emb.IdentityVerifications {
				add(v)
			}
		}
	}
	return out
}
