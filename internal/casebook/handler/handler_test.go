package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"instructhub/internal/casebook/handler"
	"instructhub/internal/casebook/handler/mocks"
	"instructhub/internal/casebook/models"
	"instructhub/internal/casebook/verification"
	"instructhub/internal/casebook/view"
	dErrors "instructhub/pkg/domain-errors"
)

func setup(t *testing.T) (*mocks.MockService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)

	r := chi.NewRouter()
	handler.New(svc, slog.Default()).Register(r)
	return svc, r
}

func TestGetCases(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().
		Cases(gomock.Any(), view.Selector{
			Tab:    view.TabClients,
			Action: models.ActionVerifyID,
		}).
		Return([]models.AnnotatedCase{
			{Case: models.Case{Ref: "HLX-1", Instruction: &models.Instruction{InstructionRef: "HLX-1"}}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cases?tab=clients&action=verify_id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Cases []models.AnnotatedCase `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Cases, 1)
	assert.Equal(t, "HLX-1", body.Cases[0].Ref)
}

func TestGetRisk(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().
		GroupedRisk(gomock.Any(), "HLX-1", view.BucketOutstanding).
		Return([]view.GroupedRisk{{InstructionRef: "HLX-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/risk?instructionRef=HLX-1&bucket=outstanding", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "HLX-1")
}

func TestGetVerificationFailures(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().
		VerificationFailures(gomock.Any(), "HLX-1").
		Return([]verification.Failure{
			{Check: "Address Match", Reason: "No trace", Code: "ADDR01"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/verify-id/HLX-1/failures", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADDR01")
}

func TestPostApprove(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().ApproveVerification(gomock.Any(), "HLX-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-id/HLX-1/approve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "approved")
}

func TestPostApprove_Conflict(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().
		ApproveVerification(gomock.Any(), "HLX-1").
		Return(dErrors.New(dErrors.CodeConflict, "verification is not awaiting review"))

	req := httptest.NewRequest(http.MethodPost, "/api/verify-id/HLX-1/approve", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "not awaiting review")
}

func TestPostOverride(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().
		OverrideVerification(gomock.Any(), "HLX-1", "manual passport inspection").
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-id/HLX-1/override",
		strings.NewReader(`{"reason":"manual passport inspection"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPostOverride_BadBody(t *testing.T) {
	_, r := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-id/HLX-1/override",
		strings.NewReader("{"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostRequestDocuments(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().RequestDocuments(gomock.Any(), "HLX-1").Return("tok-123", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/verify-id/HLX-1/request-documents", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UploadToken string `json:"uploadToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tok-123", body.UploadToken)
}

func TestErrorMapping(t *testing.T) {
	svc, r := setup(t)

	svc.EXPECT().
		RequestDocuments(gomock.Any(), "missing").
		Return("", dErrors.New(dErrors.CodeNotFound, "case not found"))

	req := httptest.NewRequest(http.MethodPost, "/api/verify-id/missing/request-documents", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}
