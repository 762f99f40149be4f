package models

import "slices"

// Clone returns a deep copy of the prospect, nested slices included. Stores
// hand clones to callers so a published snapshot never aliases store-owned
// memory; later mutations through the store cannot reach it.
func (p Prospect) Clone() Prospect {
	out := p
	out.Deals = cloneDeals(p.Deals)
	out.Instructions = cloneInstructions(p.Instructions)
	out.JointClients = slices.Clone(p.JointClients)
	out.Documents = slices.Clone(p.Documents)
	out.RiskAssessments = slices.Clone(p.RiskAssessments)
	out.IdentityVerifications = slices.Clone(p.IdentityVerifications)
	return out
}

// Clone returns a deep copy of the instruction and its nested records.
func (i Instruction) Clone() Instruction {
	out := i
	out.Documents = slices.Clone(i.Documents)
	out.RiskAssessments = slices.Clone(i.RiskAssessments)
	out.IdentityVerifications = slices.Clone(i.IdentityVerifications)
	return out
}

func cloneDeals(deals []Deal) []Deal {
	if deals == nil {
		return nil
	}
	out := slices.Clone(deals)
	for i := range out {
		out[i].JointClients = slices.Clone(out[i].JointClients)
		if out[i].Instruction != nil {
			emb := out[i].Instruction.Clone()
			out[i].Instruction = &emb
		}
	}
	return out
}

func cloneInstructions(list []Instruction) []Instruction {
	if list == nil {
		return nil
	}
	out := make([]Instruction, len(list))
	for i := range list {
		out[i] = list[i].Clone()
	}
	return out
}
