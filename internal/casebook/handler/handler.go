// Package handler exposes the casebook over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"instructhub/internal/casebook/models"
	"instructhub/internal/casebook/verification"
	"instructhub/internal/casebook/view"
	"instructhub/internal/platform/middleware"
	dErrors "instructhub/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

// Service is the casebook surface the handler needs.
type Service interface {
	Cases(ctx context.Context, sel view.Selector) ([]models.AnnotatedCase, error)
	GroupedRisk(ctx context.Context, instructionRef string, bucket view.RiskBucket) ([]view.GroupedRisk, error)
	VerificationFailures(ctx context.Context, instructionRef string) ([]verification.Failure, error)
	ApproveVerification(ctx context.Context, instructionRef string) error
	OverrideVerification(ctx context.Context, instructionRef, reason string) error
	RequestDocuments(ctx context.Context, instructionRef string) (string, error)
}

// Handler serves the casebook API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the casebook routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/cases", h.getCases)
	r.Get("/api/risk", h.getRisk)
	r.Route("/api/verify-id/{instructionRef}", func(r chi.Router) {
		r.Get("/failures", h.getVerificationFailures)
		r.Post("/approve", h.postApprove)
		r.Post("/override", h.postOverride)
		r.Post("/request-documents", h.postRequestDocuments)
	})
}

func (h *Handler) getCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel := view.Selector{
		Tab:    view.Tab(q.Get("tab")),
		Filter: q.Get("filter"),
		Action: models.NextAction(q.Get("action")),
	}

	cases, err := h.service.Cases(r.Context(), sel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"cases": cases})
}

func (h *Handler) getRisk(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	groups, err := h.service.GroupedRisk(r.Context(), q.Get("instructionRef"), view.RiskBucket(q.Get("bucket")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

func (h *Handler) getVerificationFailures(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "instructionRef")

	failures, err := h.service.VerificationFailures(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if failures == nil {
		failures = []verification.Failure{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"failures": failures})
}

func (h *Handler) postApprove(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "instructionRef")

	if err := h.service.ApproveVerification(r.Context(), ref); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"status": "approved"})
}

func (h *Handler) postOverride(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "instructionRef")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, r, dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	if err := h.service.OverrideVerification(r.Context(), ref, body.Reason); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"status": "overridden"})
}

func (h *Handler) postRequestDocuments(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "instructionRef")

	token, err := h.service.RequestDocuments(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":      "requested",
		"uploadToken": token,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := dErrors.CodeOf(err)
	status := dErrors.ToHTTPStatus(code)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()))
	}

	message := "internal server error"
	if status < http.StatusInternalServerError {
		var de *dErrors.Error
		if errors.As(err, &de) {
			message = de.Message
		}
	}
	h.writeJSON(w, status, map[string]any{
		"error": message,
		"code":  string(code),
	})
}
