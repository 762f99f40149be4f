package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "instructhub/pkg/domain-errors"
)

func TestProspects_AliasMapping(t *testing.T) {
	raw := []byte(`[
		{
			"prospectId": "27367",
			"firstName": "Ada",
			"Surname": "Lovelace",
			"deals": [
				{
					"dealId": 101,
					"instructionRef": "HLX-1",
					"status": "closed",
					"Amount": 1500.5,
					"leadClientEmail": "lead@example.com",
					"jointClients": [
						{"dealId": 101, "email": "joint@example.com", "SubmissionConfirmed": true}
					],
					"instruction": {"matterId": "HLX-1"}
				}
			],
			"Instructions": [
				{
					"MatterId": "HLX-1",
					"email": "client@example.com",
					"DriversLicenceNumber": "D456",
					"paymentResult": "successful"
				}
			],
			"documents": [
				{"Id": 7, "instructionRef": "HLX-1", "fileName": "engagement.pdf", "UploadedDate": "2025-06-01"}
			],
			"Compliance": [
				{"matterId": "HLX-1", "Result": "Low Risk", "riskScore": 3}
			],
			"EIDChecks": [
				{"Id": 9, "matterId": "HLX-1", "eidStatus": "completed", "OverallResult": "Review"}
			]
		}
	]`)

	prospects, err := Prospects(raw)
	require.NoError(t, err)
	require.Len(t, prospects, 1)

	p := prospects[0]
	assert.Equal(t, "27367", p.ProspectID)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "Lovelace", p.LastName)

	require.Len(t, p.Deals, 1)
	d := p.Deals[0]
	assert.Equal(t, 101, d.DealID)
	assert.Equal(t, "HLX-1", d.InstructionRef)
	assert.Equal(t, 1500.5, d.Amount)
	assert.Equal(t, "lead@example.com", d.LeadClientEmail)
	require.Len(t, d.JointClients, 1)
	assert.Equal(t, "joint@example.com", d.JointClients[0].ClientEmail)
	assert.True(t, d.JointClients[0].HasSubmitted)
	require.NotNil(t, d.Instruction)
	assert.Equal(t, "HLX-1", d.Instruction.InstructionRef)

	require.Len(t, p.Instructions, 1)
	inst := p.Instructions[0]
	assert.Equal(t, "HLX-1", inst.InstructionRef)
	assert.Equal(t, "client@example.com", inst.Email)
	assert.Equal(t, "D456", inst.DriversLicenseNumber)
	assert.Equal(t, "successful", inst.PaymentResult)

	require.Len(t, p.Documents, 1)
	assert.Equal(t, 7, p.Documents[0].DocumentID)
	assert.Equal(t, "2025-06-01", p.Documents[0].UploadedAt)

	require.Len(t, p.RiskAssessments, 1)
	assert.Equal(t, "Low Risk", p.RiskAssessments[0].RiskAssessmentResult)
	assert.Equal(t, 3, p.RiskAssessments[0].RiskScore)

	require.Len(t, p.IdentityVerifications, 1)
	assert.Equal(t, 9, p.IdentityVerifications[0].InternalID)
	assert.Equal(t, "Review", p.IdentityVerifications[0].EIDOverallResult)
}

func TestProspects_FirstAliasWins(t *testing.T) {
	raw := []byte(`[
		{"ProspectId": "canonical", "prospectId": "legacy"}
	]`)

	prospects, err := Prospects(raw)
	require.NoError(t, err)
	assert.Equal(t, "canonical", prospects[0].ProspectID)
}

func TestProspects_AbsentFieldsAreZero(t *testing.T) {
	prospects, err := Prospects([]byte(`[{}]`))
	require.NoError(t, err)
	require.Len(t, prospects, 1)
	assert.Empty(t, prospects[0].ProspectID)
	assert.Empty(t, prospects[0].Deals)
}

func TestProspects_Undecodable(t *testing.T) {
	_, err := Prospects([]byte(`{"not":"an array"}`))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
