// Package ports defines shared interfaces for the assessment module.
// Interfaces are placed here when consumed by multiple packages to avoid duplication.
package ports

import (
	"context"
	"log/slog"
	"time"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	"conforma/pkg/platform/audit"
	"conforma/pkg/requestcontext"
)

// AuditPublisher emits audit events for compliance-relevant operations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// SessionStore persists audit sessions and their response ledgers.
//
// The ledger holds at most one response per question; PutResponse is an
// idempotent upsert so an auditor can revise an answer before
// finalization. The store performs no validation against the framework's
// question set: mid-session states are expected to be transiently
// inconsistent, and validation happens in the engine at finalization.
type SessionStore interface {
	// CreateSession stores a new session.
	CreateSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a session, or nil if it does not exist.
	GetSession(ctx context.Context, sessionID id.SessionID) (*models.Session, error)

	// UpdateSessionState transitions a session's lifecycle state.
	UpdateSessionState(ctx context.Context, sessionID id.SessionID, state models.SessionState, updatedAt time.Time) error

	// PutResponse upserts the auditor's answer for one question,
	// overwriting any prior answer.
	PutResponse(ctx context.Context, sessionID id.SessionID, response models.AuditResponse) error

	// GetResponse retrieves the current answer for one question, or nil
	// if the question has not been answered.
	GetResponse(ctx context.Context, sessionID id.SessionID, questionID id.QuestionID) (*models.AuditResponse, error)

	// Responses returns a snapshot of all answers, sorted by question ID
	// so snapshots are deterministic.
	Responses(ctx context.Context, sessionID id.SessionID) ([]models.AuditResponse, error)
}

// ResultStore persists finalized audit results.
type ResultStore interface {
	// SaveResult stores an immutable audit result.
	SaveResult(ctx context.Context, result *models.AuditResult) error

	// GetResult retrieves a result by ID, or nil if it does not exist.
	GetResult(ctx context.Context, resultID id.ResultID) (*models.AuditResult, error)

	// GetResultBySession retrieves the result produced by finalizing a
	// session, or nil if the session was never finalized.
	GetResultBySession(ctx context.Context, sessionID id.SessionID) (*models.AuditResult, error)
}

// LogAudit is a shared helper for recording audit events across the
// assessment services. It logs to the structured logger and emits to the
// audit publisher if one is configured. Emission is fail-open: report
// generation must not be blocked by telemetry.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, event audit.Event, attrs ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		event.RequestID = requestID
	}
	event.ClientIP = requestcontext.ClientIP(ctx)
	event.Browser = requestcontext.Browser(ctx)

	if logger != nil {
		args := append(attrs,
			"event", event.Action,
			"session_id", event.SessionID,
			"request_id", event.RequestID,
			"log_type", "audit",
		)
		logger.InfoContext(ctx, event.Action, args...)
	}

	if publisher == nil {
		return
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", event.Action, "error", err)
	}
}
