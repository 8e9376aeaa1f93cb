// Package audit defines the audit-event model shared by publishers and
// consumers. Events capture key actions from domain logic; keep the model
// transport-agnostic so sinks can fan out.
package audit

import (
	"time"

	id "conforma/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing downstream.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance.
	// These require long retention (finalized audit outcomes).
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for operational visibility.
	// These can be sampled or aggregated with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key audit-session actions.
type Event struct {
	Category    EventCategory  `json:"category"`
	Timestamp   time.Time      `json:"timestamp"`
	SessionID   id.SessionID   `json:"session_id"`
	FrameworkID id.FrameworkID `json:"framework_id,omitempty"`
	AuditorID   id.AuditorID   `json:"auditor_id,omitempty"`
	Action      string         `json:"action"`
	// Score and finding counts are only set for audit_completed events.
	Score           int    `json:"score,omitempty"`
	NonConformities int    `json:"non_conformities,omitempty"`
	RequestID       string `json:"request_id,omitempty"`
	ClientIP        string `json:"client_ip,omitempty"`
	Browser         string `json:"browser,omitempty"`
}

// Action names. Category is derived from the action so emitters cannot
// misclassify an event.
const (
	ActionSessionStarted   = "session_started"
	ActionResponseRecorded = "response_recorded"
	ActionAuditCompleted   = "audit_completed"
)

var actionCategories = map[string]EventCategory{
	ActionSessionStarted:   CategoryOperations,
	ActionResponseRecorded: CategoryOperations,
	ActionAuditCompleted:   CategoryCompliance,
}

// CategoryFor returns the category for an action, defaulting to
// operations for unknown actions.
func CategoryFor(action string) EventCategory {
	if c, ok := actionCategories[action]; ok {
		return c
	}
	return CategoryOperations
}
