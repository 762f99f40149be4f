package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"instructhub/internal/audit"
	"instructhub/internal/casebook/models"
	"instructhub/internal/casebook/namecache"
	"instructhub/internal/casebook/store/mocks"
	"instructhub/internal/casebook/view"
	dErrors "instructhub/pkg/domain-errors"
	"instructhub/pkg/secrets"
	"instructhub/pkg/testutil"
)

type captureSink struct {
	events []audit.Event
}

func (c *captureSink) Enqueue(event audit.Event) {
	c.events = append(c.events, event)
}

func sourceProspects() []models.Prospect {
	return []models.Prospect{
		{
			ProspectID: "27367",
			Deals: []models.Deal{
				{DealID: 101, InstructionRef: "HLX-1", Status: "closed"},
				{DealID: 102, Status: "open"},
			},
			Instructions: []models.Instruction{
				{
					InstructionRef: "HLX-1",
					Email:          "client@example.com",
					FirstName:      "Ada",
					LastName:       "Lovelace",
					PassportNumber: "P123",
					PaymentResult:  "successful",
				},
			},
			RiskAssessments: []models.RiskAssessment{
				{MatterID: "HLX-1", RiskAssessmentResult: "Low Risk"},
			},
			IdentityVerifications: []models.IdentityVerification{
				{
					InternalID:       1,
					InstructionRef:   "HLX-1",
					EIDStatus:        "completed",
					EIDOverallResult: "Review",
					EIDRawResponse: `{"checkStatuses":[{"result":{"result":"review"},` +
						`"sourceResults":{"rule":"Address Match","results":[]}}]}`,
				},
			},
		},
	}
}

func TestSnapshot(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	svc := New(st)

	annotated, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, annotated, 2)
	assert.Equal(t, "HLX-1", annotated[0].Ref)
	assert.Equal(t, models.ActionVerifyID, annotated[0].Workflow.NextAction)
	assert.Equal(t, models.PitchKey(102), annotated[1].Ref)
}

func TestSnapshot_RebuildsNameCache(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	names := namecache.New(5 * time.Minute)
	svc := New(st, WithNameCache(names))

	_, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	name, ok := names.Lookup(ctx, "client@example.com")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)
}

func TestCases_SelectorApplied(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil).Times(2)

	svc := New(st)

	pitches, err := svc.Cases(ctx, view.Selector{Tab: view.TabPitches, Filter: view.FilterOpen})
	require.NoError(t, err)
	require.Len(t, pitches, 1)
	assert.True(t, pitches[0].IsPitch())

	clients, err := svc.Cases(ctx, view.Selector{Tab: view.TabClients})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "HLX-1", clients[0].Ref)
}

func TestGroupedRisk(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	svc := New(st)

	groups, err := svc.GroupedRisk(ctx, "HLX-1", "")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Risk, 1)
	assert.Len(t, groups[0].Identity, 1)
}

func TestVerificationFailures(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	svc := New(st)

	failures, err := svc.VerificationFailures(ctx, "HLX-1")
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "Address Match", failures[0].Check)
}

func TestApproveVerification(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)
	st.EXPECT().SetEIDResult(gomock.Any(), "HLX-1", "verified", "Passed").Return(nil)

	sink := &captureSink{}
	svc := New(st, WithEventSink(sink))

	require.NoError(t, svc.ApproveVerification(ctx, "HLX-1"))

	require.Len(t, sink.events, 1)
	assert.Equal(t, audit.ActionVerificationApproved, sink.events[0].Action)
	assert.Equal(t, "HLX-1", sink.events[0].InstructionRef)
}

func TestApproveVerification_NotAwaitingReview(t *testing.T) {
	ctx := testutil.Context(t)
	prospects := sourceProspects()
	prospects[0].IdentityVerifications[0].EIDOverallResult = "Passed"
	prospects[0].IdentityVerifications[0].EIDRawResponse = ""

	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(prospects, nil)

	svc := New(st)

	err := svc.ApproveVerification(ctx, "HLX-1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestApproveVerification_UnknownCase(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	svc := New(st)

	err := svc.ApproveVerification(ctx, "HLX-MISSING")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestOverrideVerification_RequiresReason(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)

	svc := New(st)

	err := svc.OverrideVerification(ctx, "HLX-1", "")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestOverrideVerification(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)
	st.EXPECT().SetEIDResult(gomock.Any(), "HLX-1", "verified", "Passed").Return(nil)

	sink := &captureSink{}
	svc := New(st, WithEventSink(sink))

	require.NoError(t, svc.OverrideVerification(ctx, "HLX-1", "manual passport inspection"))

	require.Len(t, sink.events, 1)
	assert.Equal(t, audit.ActionVerificationOverridden, sink.events[0].Action)
	assert.Equal(t, "manual passport inspection", sink.events[0].Detail["reason"])
}

func TestRequestDocuments(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	sink := &captureSink{}
	svc := New(st, WithEventSink(sink))

	token, err := svc.RequestDocuments(ctx, "HLX-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, audit.ActionDocumentsRequested, event.Action)
	// The audit trail carries only the hash, never the token itself.
	assert.NotContains(t, event.Detail, "upload_token")
	require.NoError(t, secrets.Verify(token, event.Detail["upload_token_hash"]))
}

func TestRequestDocuments_PitchRejected(t *testing.T) {
	ctx := testutil.Context(t)
	ctrl := gomock.NewController(t)
	st := mocks.NewMockProspectStore(ctrl)
	st.EXPECT().Prospects(gomock.Any()).Return(sourceProspects(), nil)

	svc := New(st)

	_, err := svc.RequestDocuments(ctx, models.PitchKey(102))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
