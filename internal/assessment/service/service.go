// Package service orchestrates audit sessions: catalogue lookups, the
// response ledger, and report finalization. All scoring logic lives in
// the engine package; this layer owns lifecycle, persistence, and
// telemetry.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"conforma/internal/assessment/catalogue"
	"conforma/internal/assessment/engine"
	"conforma/internal/assessment/metrics"
	"conforma/internal/assessment/models"
	"conforma/internal/assessment/ports"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
	"conforma/pkg/platform/audit"
	"conforma/pkg/requestcontext"
)

// Type aliases for shared interfaces.
type (
	SessionStore   = ports.SessionStore
	ResultStore    = ports.ResultStore
	AuditPublisher = ports.AuditPublisher
)

type Service struct {
	catalogue      catalogue.Provider
	sessions       SessionStore
	results        ResultStore
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	tracer         trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func New(provider catalogue.Provider, sessions SessionStore, results ResultStore, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("catalogue provider is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if results == nil {
		return nil, fmt.Errorf("result store is required")
	}

	svc := &Service{
		catalogue: provider,
		sessions:  sessions,
		results:   results,
		tracer:    otel.Tracer("conforma/assessment"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// ListFrameworks returns the registered framework catalogue.
func (s *Service) ListFrameworks(_ context.Context) []catalogue.Framework {
	return s.catalogue.Frameworks()
}

// ListQuestions returns the checklist for a framework in presentation
// order. Unknown frameworks yield an empty checklist, not an error.
func (s *Service) ListQuestions(_ context.Context, frameworkID id.FrameworkID) []models.AuditQuestion {
	return s.catalogue.Questions(frameworkID)
}

// StartSession opens a new audit session. A session for an unknown
// framework is allowed: it is a valid zero-question audit.
func (s *Service) StartSession(ctx context.Context, frameworkID id.FrameworkID) (*models.Session, error) {
	now := requestcontext.Now(ctx)
	session := &models.Session{
		ID:          id.NewSessionID(),
		FrameworkID: frameworkID,
		AuditorID:   requestcontext.AuditorID(ctx),
		State:       models.StateNotStarted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create session")
	}

	if s.metrics != nil {
		s.metrics.SessionsStarted.WithLabelValues(frameworkID.String()).Inc()
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		Action:      audit.ActionSessionStarted,
		SessionID:   session.ID,
		FrameworkID: frameworkID,
		AuditorID:   session.AuditorID,
	}, "framework_id", frameworkID)

	return session, nil
}

// GetSession retrieves a session by ID.
func (s *Service) GetSession(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to get session")
	}
	if session == nil {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}
	return session, nil
}

// RecordResponse upserts the auditor's answer for one question. The
// ledger accepts any question ID without validating it against the
// framework: navigating back and forth produces transiently inconsistent
// states, and the engine validates the full snapshot at finalization.
// Completed sessions are terminal and reject further answers.
func (s *Service) RecordResponse(ctx context.Context, sessionID id.SessionID, response models.AuditResponse) error {
	if !response.Status.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput, "invalid response status")
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if !session.State.CanRecord() {
		return dErrors.Newf(dErrors.CodeConflict, "session %s is completed; start a new session to re-audit", sessionID)
	}

	if err := s.sessions.PutResponse(ctx, sessionID, response); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record response")
	}

	if session.State == models.StateNotStarted {
		if err := s.sessions.UpdateSessionState(ctx, sessionID, models.StateInProgress, requestcontext.Now(ctx)); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update session state")
		}
	}

	if s.metrics != nil {
		s.metrics.ResponsesRecorded.Inc()
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		Action:      audit.ActionResponseRecorded,
		SessionID:   sessionID,
		FrameworkID: session.FrameworkID,
		AuditorID:   session.AuditorID,
	}, "question_id", response.QuestionID, "status", response.Status)
	return nil
}

// Progress reports how many checklist questions have been answered.
// Responses outside the framework's question set are not counted.
func (s *Service) Progress(ctx context.Context, sessionID id.SessionID) (*models.Progress, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions := s.catalogue.Questions(session.FrameworkID)
	responses, err := s.sessions.Responses(ctx, sessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load responses")
	}

	known := make(map[id.QuestionID]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}
	answered := 0
	for _, r := range responses {
		if known[r.QuestionID] {
			answered++
		}
	}

	return &models.Progress{Answered: answered, Total: len(questions)}, nil
}

// Finalize snapshots the ledger, composes the audit result, persists it,
// and marks the session completed. The session state machine is linear:
// completed is terminal, so finalizing twice is a conflict. Engine
// errors (an orphaned response) abort the call with no partial result
// and leave the session open for correction.
//
// If a stored result already exists for an open session, a prior attempt
// persisted it and then failed to complete the session; Finalize resumes
// by completing the session against that result instead of re-composing.
func (s *Service) Finalize(ctx context.Context, sessionID id.SessionID) (*models.AuditResult, error) {
	ctx, span := s.tracer.Start(ctx, "assessment.Finalize",
		trace.WithAttributes(attribute.String("session_id", sessionID.String())))
	defer span.End()

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.StateCompleted {
		return nil, dErrors.Newf(dErrors.CodeConflict, "session %s is already finalized", sessionID)
	}

	now := requestcontext.Now(ctx)

	// A prior Finalize may have persisted the result and then failed to
	// mark the session completed. Resume from the stored result instead
	// of re-composing into the one-result-per-session constraint.
	result, err := s.results.GetResultBySession(ctx, sessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check for existing result")
	}
	if result == nil {
		questions := s.catalogue.Questions(session.FrameworkID)
		responses, err := s.sessions.Responses(ctx, sessionID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to snapshot responses")
		}

		result, err = engine.Compose(session.FrameworkID, questions, responses, now)
		if err != nil {
			s.logError(ctx, "report composition failed", sessionID, err)
			return nil, err
		}
		result.ID = id.NewResultID()
		result.SessionID = session.ID
		result.AuditorID = session.AuditorID

		if err := s.results.SaveResult(ctx, result); err != nil {
			s.logError(ctx, "failed to persist audit result", sessionID, err)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist audit result")
		}
	}

	if err := s.sessions.UpdateSessionState(ctx, sessionID, models.StateCompleted, now); err != nil {
		s.logError(ctx, "failed to complete session", sessionID, err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to complete session")
	}

	span.SetAttributes(
		attribute.String("framework_id", session.FrameworkID.String()),
		attribute.Int("score", result.Score),
		attribute.Int("non_conformities", len(result.NonConformities)),
	)

	if s.metrics != nil {
		s.metrics.AuditsCompleted.WithLabelValues(session.FrameworkID.String()).Inc()
		s.metrics.AuditScore.Observe(float64(result.Score))
		for _, nc := range result.NonConformities {
			s.metrics.NonConformities.WithLabelValues(nc.Severity.String()).Inc()
		}
	}
	ports.LogAudit(ctx, s.logger, s.auditPublisher, audit.Event{
		Action:          audit.ActionAuditCompleted,
		SessionID:       session.ID,
		FrameworkID:     session.FrameworkID,
		AuditorID:       session.AuditorID,
		Score:           result.Score,
		NonConformities: len(result.NonConformities),
	}, "framework_id", session.FrameworkID, "score", result.Score)

	return result, nil
}

// GetResult retrieves a finalized audit result by ID.
func (s *Service) GetResult(ctx context.Context, resultID id.ResultID) (*models.AuditResult, error) {
	result, err := s.results.GetResult(ctx, resultID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to get result")
	}
	if result == nil {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "result %s not found", resultID)
	}
	return result, nil
}

func (s *Service) logError(ctx context.Context, msg string, sessionID id.SessionID, err error) {
	if s.logger == nil {
		return
	}
	s.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"session_id", sessionID,
		"error", err,
	)
}
