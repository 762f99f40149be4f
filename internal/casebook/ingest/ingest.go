// Package ingest normalizes raw prospect documents into the canonical
// models.Prospect shape. The backing stores grew several spellings for the
// same field over time; the alias tables below are the only place those
// spellings exist. Everything downstream of ingest sees one shape.
package ingest

import (
	"encoding/json"

	"instructhub/internal/casebook/models"
	dErrors "instructhub/pkg/domain-errors"
)

// Alias tables, canonical name first. Order matters: the first key present
// in the document wins.
var (
	aliasProspectID     = []string{"ProspectId", "prospectId", "ProspectID"}
	aliasInstructionRef = []string{"InstructionRef", "instructionRef", "MatterId", "matterId"}
	aliasDealID         = []string{"DealId", "dealId", "DealID"}
	aliasClientEmail    = []string{"ClientEmail", "clientEmail", "Email", "email"}
	aliasLeadEmail      = []string{"LeadClientEmail", "leadClientEmail", "ClientEmail"}
	aliasFirstName      = []string{"FirstName", "firstName"}
	aliasLastName       = []string{"LastName", "lastName", "Surname", "surname"}
	aliasStatus         = []string{"Status", "status"}
	aliasHasSubmitted   = []string{"HasSubmitted", "hasSubmitted", "SubmissionConfirmed"}
	aliasLead           = []string{"Lead", "lead", "IsLead"}
	aliasDocumentID     = []string{"DocumentId", "documentId", "Id"}
	aliasFileName       = []string{"FileName", "fileName"}
	aliasUploadedAt     = []string{"UploadedAt", "uploadedAt", "UploadedDate"}
	aliasInternalID     = []string{"InternalId", "internalId", "Id"}
)

// Prospects decodes a JSON array of raw prospect documents.
func Prospects(raw []byte) ([]models.Prospect, error) {
	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "undecodable prospect payload")
	}
	out := make([]models.Prospect, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Prospect(doc))
	}
	return out, nil
}

// Prospect maps one raw document onto the canonical shape. Absent and null
// fields stay zero-valued; absence is data here, never an error.
func Prospect(doc map[string]any) models.Prospect {
	p := models.Prospect{
		ProspectID: str(doc, aliasProspectID...),
		FirstName:  str(doc, aliasFirstName...),
		LastName:   str(doc, aliasLastName...),
	}
	for _, d := range objs(doc, "Deals", "deals") {
		p.Deals = append(p.Deals, deal(d))
	}
	for _, i := range objs(doc, "Instructions", "instructions") {
		p.Instructions = append(p.Instructions, instruction(i))
	}
	for _, j := range objs(doc, "JointClients", "jointClients", "joinedClients") {
		p.JointClients = append(p.JointClients, jointClient(j))
	}
	for _, d := range objs(doc, "Documents", "documents") {
		p.Documents = append(p.Documents, document(d))
	}
	for _, r := range objs(doc, "RiskAssessments", "riskAssessments", "Compliance") {
		p.RiskAssessments = append(p.RiskAssessments, riskAssessment(r))
	}
	for _, v := range objs(doc, "IdentityVerifications", "idVerifications", "EIDChecks") {
		p.IdentityVerifications = append(p.IdentityVerifications, identityVerification(v))
	}
	return p
}

func deal(doc map[string]any) models.Deal {
	d := models.Deal{
		DealID:             integer(doc, aliasDealID...),
		InstructionRef:     str(doc, "InstructionRef", "instructionRef"),
		Status:             str(doc, aliasStatus...),
		ServiceDescription: str(doc, "ServiceDescription", "serviceDescription"),
		Amount:             number(doc, "Amount", "amount"),
		AreaOfWork:         str(doc, "AreaOfWork", "areaOfWork"),
		PitchedBy:          str(doc, "PitchedBy", "pitchedBy"),
		PitchedDate:        str(doc, "PitchedDate", "pitchedDate"),
		LeadClientEmail:    str(doc, aliasLeadEmail...),
	}
	for _, j := range objs(doc, "JointClients", "jointClients") {
		d.JointClients = append(d.JointClients, jointClient(j))
	}
	if emb, ok := obj(doc, "Instruction", "instruction"); ok {
		i := instruction(emb)
		d.Instruction = &i
	}
	return d
}

func instruction(doc map[string]any) models.Instruction {
	i := models.Instruction{
		InstructionRef:       str(doc, aliasInstructionRef...),
		Title:                str(doc, "Title", "title"),
		FirstName:            str(doc, aliasFirstName...),
		LastName:             str(doc, aliasLastName...),
		CompanyName:          str(doc, "CompanyName", "companyName"),
		Email:                str(doc, aliasClientEmail...),
		Phone:                str(doc, "Phone", "phone"),
		DOB:                  str(doc, "DOB", "dob", "DateOfBirth"),
		PassportNumber:       str(doc, "PassportNumber", "passportNumber"),
		DriversLicenseNumber: str(doc, "DriversLicenseNumber", "driversLicenseNumber", "DriversLicenceNumber"),
		PaymentResult:        str(doc, "PaymentResult", "paymentResult"),
		PaymentAmount:        number(doc, "PaymentAmount", "paymentAmount"),
		Stage:                str(doc, "Stage", "stage"),
		SubmissionDate:       str(doc, "SubmissionDate", "submissionDate"),
		MatterRef:            str(doc, "MatterRef", "matterRef", "MatterNumber"),
	}
	for _, d := range objs(doc, "Documents", "documents") {
		i.Documents = append(i.Documents, document(d))
	}
	for _, r := range objs(doc, "RiskAssessments", "riskAssessments") {
		i.RiskAssessments = append(i.RiskAssessments, riskAssessment(r))
	}
	for _, v := range objs(doc, "IdentityVerifications", "idVerifications") {
		i.IdentityVerifications = append(i.IdentityVerifications, identityVerification(v))
	}
	return i
}

func jointClient(doc map[string]any) models.JointClient {
	return models.JointClient{
		DealID:       integer(doc, aliasDealID...),
		ClientEmail:  str(doc, aliasClientEmail...),
		FirstName:    str(doc, aliasFirstName...),
		LastName:     str(doc, aliasLastName...),
		HasSubmitted: boolean(doc, aliasHasSubmitted...),
		Lead:         boolean(doc, aliasLead...),
	}
}

func document(doc map[string]any) models.Document {
	return models.Document{
		DocumentID:     integer(doc, aliasDocumentID...),
		InstructionRef: str(doc, aliasInstructionRef...),
		FileName:       str(doc, aliasFileName...),
		BlobURL:        str(doc, "BlobUrl", "blobUrl"),
		UploadedAt:     str(doc, aliasUploadedAt...),
		Status:         str(doc, aliasStatus...),
	}
}

func riskAssessment(doc map[string]any) models.RiskAssessment {
	return models.RiskAssessment{
		MatterID:             str(doc, "MatterId", "matterId", "InstructionRef"),
		RiskAssessmentResult: str(doc, "RiskAssessmentResult", "riskAssessmentResult", "Result"),
		RiskScore:            integer(doc, "RiskScore", "riskScore"),
		RiskAssessor:         str(doc, "RiskAssessor", "riskAssessor"),
		ComplianceDate:       str(doc, "ComplianceDate", "complianceDate"),
	}
}

func identityVerification(doc map[string]any) models.IdentityVerification {
	return models.IdentityVerification{
		InternalID:                integer(doc, aliasInternalID...),
		InstructionRef:            str(doc, aliasInstructionRef...),
		ClientEmail:               str(doc, aliasClientEmail...),
		CheckID:                   str(doc, "CheckId", "checkId"),
		EIDStatus:                 str(doc, "EIDStatus", "eidStatus"),
		EIDOverallResult:          str(doc, "EIDOverallResult", "eidOverallResult", "OverallResult"),
		EIDCheckedDate:            str(doc, "EIDCheckedDate", "eidCheckedDate"),
		CheckResult:               str(doc, "CheckResult", "checkResult"),
		PEPAndSanctionsResult:     str(doc, "PEPAndSanctionsCheckResult", "pepResult", "PEPResult"),
		AddressVerificationResult: str(doc, "AddressVerificationResult", "addressResult"),
		EIDRawResponse:            str(doc, "EIDRawResponse", "eidRawResponse", "RawResponse"),
	}
}

// str returns the first non-empty string among the aliased keys.
func str(doc map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := doc[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// integer returns the first numeric value among the aliased keys. JSON
// numbers decode as float64; string-typed numerics are not accepted.
func integer(doc map[string]any, keys ...string) int {
	for _, k := range keys {
		if v, ok := doc[k].(float64); ok {
			return int(v)
		}
	}
	return 0
}

func number(doc map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := doc[k].(float64); ok {
			return v
		}
	}
	return 0
}

func boolean(doc map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := doc[k].(bool); ok {
			return v
		}
	}
	return false
}

func obj(doc map[string]any, keys ...string) (map[string]any, bool) {
	for _, k := range keys {
		if v, ok := doc[k].(map[string]any); ok {
			return v, true
		}
	}
	return nil, false
}

func objs(doc map[string]any, keys ...string) []map[string]any {
	for _, k := range keys {
		list, ok := doc[k].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}
