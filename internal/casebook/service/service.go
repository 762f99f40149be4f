// Package service owns the case snapshot lifecycle and the collaborator
// actions reviewers take against instructions. All case data is recomputed
// from the current source snapshot on every call; nothing derived is ever
// persisted.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"instructhub/internal/audit"
	"instructhub/internal/casebook/models"
	"instructhub/internal/casebook/namecache"
	"instructhub/internal/casebook/reconcile"
	"instructhub/internal/casebook/store"
	"instructhub/internal/casebook/verification"
	"instructhub/internal/casebook/view"
	"instructhub/internal/casebook/workflow"
	"instructhub/internal/platform/metrics"
	"instructhub/internal/platform/middleware"
	dErrors "instructhub/pkg/domain-errors"
	"instructhub/pkg/secrets"
)

// EventSink receives audit events. Enqueue must not block.
type EventSink interface {
	Enqueue(event audit.Event)
}

// Service coordinates reconciliation, status derivation, and reviewer
// actions.
type Service struct {
	store   store.ProspectStore
	names   *namecache.Cache
	logger  *slog.Logger
	metrics *metrics.Metrics
	events  EventSink
	tracer  trace.Tracer
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithNameCache(names *namecache.Cache) Option {
	return func(s *Service) { s.names = names }
}

func WithEventSink(sink EventSink) Option {
	return func(s *Service) { s.events = sink }
}

// New creates a Service reading from the given store.
func New(st store.ProspectStore, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: slog.Default(),
		tracer: otel.Tracer("instructhub/casebook"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot rebuilds the full annotated case list from current source data.
func (s *Service) Snapshot(ctx context.Context) ([]models.AnnotatedCase, error) {
	ctx, span := s.tracer.Start(ctx, "casebook.Snapshot")
	defer span.End()
	start := time.Now()

	prospects, err := s.store.Prospects(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load prospects")
	}

	cases, dropped := reconcile.Reconcile(prospects)

	var annotated []models.AnnotatedCase
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		annotated = workflow.Annotate(cases)
		return nil
	})
	if s.names != nil {
		g.Go(func() error {
			s.names.Rebuild(gctx, cases)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SnapshotsBuilt.Inc()
		s.metrics.SnapshotDuration.Observe(time.Since(start).Seconds())
		s.metrics.CasesReconciled.Set(float64(len(cases)))
		s.metrics.DuplicateCaseKeys.Add(float64(dropped))
	}
	if dropped > 0 {
		s.logger.WarnContext(ctx, "duplicate case keys dropped",
			"count", dropped,
			"request_id", middleware.GetRequestID(ctx))
	}
	span.SetAttributes(
		attribute.Int("casebook.cases", len(annotated)),
		attribute.Int("casebook.duplicates_dropped", dropped),
	)
	return annotated, nil
}

// Cases returns the cases visible under one dashboard selector.
func (s *Service) Cases(ctx context.Context, sel view.Selector) ([]models.AnnotatedCase, error) {
	annotated, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return view.Select(annotated, sel), nil
}

// GroupedRisk returns the risk view: every risk and identity record grouped
// by instruction, optionally scoped and bucketed.
func (s *Service) GroupedRisk(ctx context.Context, instructionRef string, bucket view.RiskBucket) ([]view.GroupedRisk, error) {
	annotated, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	records := view.CollectRiskRecords(annotated)
	return view.GroupByInstruction(view.SelectRisk(records, instructionRef, bucket)), nil
}

// VerificationFailures parses the latest provider payload held against the
// instruction into review reasons.
func (s *Service) VerificationFailures(ctx context.Context, instructionRef string) ([]verification.Failure, error) {
	eid, err := s.latestVerification(ctx, instructionRef)
	if err != nil {
		return nil, err
	}
	if eid.EIDRawResponse == "" {
		return nil, nil
	}
	failures := verification.ParseFailures(eid.EIDRawResponse)
	if s.metrics != nil && len(failures) == 1 && failures[0] == verification.ParseError {
		s.metrics.ParseFailures.Inc()
	}
	return failures, nil
}

// ApproveVerification marks a review-flagged identity check as passed.
func (s *Service) ApproveVerification(ctx context.Context, instructionRef string) error {
	eid, err := s.latestVerification(ctx, instructionRef)
	if err != nil {
		return err
	}

	var failures []verification.Failure
	if eid.EIDRawResponse != "" {
		failures = verification.ParseFailures(eid.EIDRawResponse)
	}
	if !verification.RequiresReview(eid.EIDOverallResult, failures) {
		return dErrors.New(dErrors.CodeConflict, "verification is not awaiting review")
	}

	if err := s.store.SetEIDResult(ctx, instructionRef, "verified", "Passed"); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.VerificationsApproved.Inc()
	}
	s.emit(audit.NewEvent(audit.ActionVerificationApproved, actor(ctx), instructionRef, nil))
	s.logger.InfoContext(ctx, "verification approved",
		"instruction_ref", instructionRef,
		"request_id", middleware.GetRequestID(ctx))
	return nil
}

// OverrideVerification forces an identity check to passed regardless of its
// current state. A reason is mandatory; it goes into the audit trail.
func (s *Service) OverrideVerification(ctx context.Context, instructionRef, reason string) error {
	if reason == "" {
		return dErrors.New(dErrors.CodeValidation, "override reason is required")
	}
	if _, err := s.latestVerification(ctx, instructionRef); err != nil {
		return err
	}

	if err := s.store.SetEIDResult(ctx, instructionRef, "verified", "Passed"); err != nil {
		return err
	}

	s.emit(audit.NewEvent(audit.ActionVerificationOverridden, actor(ctx), instructionRef,
		map[string]string{"reason": reason}))
	s.logger.WarnContext(ctx, "verification overridden",
		"instruction_ref", instructionRef,
		"reason", reason,
		"request_id", middleware.GetRequestID(ctx))
	return nil
}

// RequestDocuments asks the client for additional documents and returns the
// one-shot upload token for the request. Only its hash is retained in the
// audit trail.
func (s *Service) RequestDocuments(ctx context.Context, instructionRef string) (string, error) {
	c, err := s.findCase(ctx, instructionRef)
	if err != nil {
		return "", err
	}
	if c.IsPitch() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "pitch has no instruction to request documents for")
	}

	token, err := secrets.Generate()
	if err != nil {
		return "", err
	}
	tokenHash, err := secrets.Hash(token)
	if err != nil {
		return "", err
	}

	client := c.Instruction.Email
	if s.names != nil {
		if name, ok := s.names.Lookup(ctx, client); ok {
			client = name
		}
	}

	if s.metrics != nil {
		s.metrics.DocumentRequestsSent.Inc()
	}
	s.emit(audit.NewEvent(audit.ActionDocumentsRequested, actor(ctx), instructionRef,
		map[string]string{
			"client":            client,
			"upload_token_hash": tokenHash,
		}))
	s.logger.InfoContext(ctx, "additional documents requested",
		"instruction_ref", instructionRef,
		"request_id", middleware.GetRequestID(ctx))
	return token, nil
}

func (s *Service) findCase(ctx context.Context, ref string) (*models.AnnotatedCase, error) {
	annotated, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range annotated {
		if annotated[i].Ref == ref {
			return &annotated[i], nil
		}
	}
	return nil, dErrors.New(dErrors.CodeNotFound, "case not found")
}

func (s *Service) latestVerification(ctx context.Context, ref string) (*models.IdentityVerification, error) {
	c, err := s.findCase(ctx, ref)
	if err != nil {
		return nil, err
	}
	eid := c.LatestVerification()
	if eid == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "no identity verification recorded for case")
	}
	return eid, nil
}

func (s *Service) emit(event audit.Event) {
	if s.events != nil {
		s.events.Enqueue(event)
	}
}

func actor(ctx context.Context) string {
	if id := middleware.GetUserID(ctx); id != "" {
		return id
	}
	return "unknown"
}
