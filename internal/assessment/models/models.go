// Package models defines the assessment domain model: catalogue
// questions, auditor responses, derived non-conformities, and the
// finalized audit result.
package models

import (
	"time"

	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

// Severity classifies a checklist question's compliance weight.
// Closed set so remediation-template dispatch stays exhaustive.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// IsValid checks if the severity is one of the supported enum values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}

// ResponseStatus is the auditor's verdict on a single checklist question.
type ResponseStatus string

const (
	StatusCompliant     ResponseStatus = "compliant"
	StatusNonCompliant  ResponseStatus = "non-compliant"
	StatusNotApplicable ResponseStatus = "not-applicable"
)

// ParseResponseStatus constructs a ResponseStatus from external input.
//
// Usage: call from handlers when parsing requests.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseResponseStatus(s string) (ResponseStatus, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "response status cannot be empty")
	}
	status := ResponseStatus(s)
	if !status.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid response status: must be 'compliant', 'non-compliant', or 'not-applicable'")
	}
	return status, nil
}

// IsValid checks if the response status is one of the supported enum values.
func (s ResponseStatus) IsValid() bool {
	switch s {
	case StatusCompliant, StatusNonCompliant, StatusNotApplicable:
		return true
	}
	return false
}

// String returns the string representation.
func (s ResponseStatus) String() string {
	return string(s)
}

// SessionState tracks the audit session lifecycle. The machine is
// linear: not-started -> in-progress -> completed, with completed
// terminal. A restart is a brand-new session, never a reopened one.
type SessionState string

const (
	StateNotStarted SessionState = "not-started"
	StateInProgress SessionState = "in-progress"
	StateCompleted  SessionState = "completed"
)

// CanRecord reports whether the session still accepts responses.
func (s SessionState) CanRecord() bool {
	return s == StateNotStarted || s == StateInProgress
}

// AuditQuestion is one checklist item. Immutable catalogue data, created
// at build time, never mutated at runtime.
type AuditQuestion struct {
	ID               id.QuestionID  `json:"id"`
	FrameworkID      id.FrameworkID `json:"framework_id"`
	Text             string         `json:"text"`
	ClauseReference  string         `json:"clause_reference,omitempty"`
	Severity         Severity       `json:"severity"`
	ExpectedEvidence []string       `json:"expected_evidence,omitempty"`
}

// AuditResponse is the auditor's current answer to one question. The
// ledger holds at most one response per question; revisiting a question
// overwrites, it does not append.
type AuditResponse struct {
	QuestionID id.QuestionID  `json:"question_id"`
	Status     ResponseStatus `json:"status"`
	Comment    string         `json:"comment,omitempty"`
	Evidence   string         `json:"evidence,omitempty"`
}

// Session is one auditor's pass over one framework's checklist.
type Session struct {
	ID          id.SessionID   `json:"id"`
	FrameworkID id.FrameworkID `json:"framework_id"`
	AuditorID   id.AuditorID   `json:"auditor_id,omitempty"`
	State       SessionState   `json:"state"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NonConformity is a failed checklist item with its remediation note.
// Derived on every report generation, never stored independently of the
// AuditResult that produced it.
type NonConformity struct {
	QuestionID      id.QuestionID `json:"question_id"`
	Severity        Severity      `json:"severity"`
	Description     string        `json:"description"`
	Recommendation  string        `json:"recommendation"`
	ClauseReference string        `json:"clause_reference,omitempty"`
}

// ScoreSummary carries per-status counts and the conformity percentage.
// Score is defined relative to applicable questions only; when no
// question is applicable the score is 0 by definition, never NaN.
type ScoreSummary struct {
	Total         int `json:"total"`
	Compliant     int `json:"compliant"`
	NonCompliant  int `json:"non_compliant"`
	NotApplicable int `json:"not_applicable"`
	Applicable    int `json:"applicable"`
	ScorePercent  int `json:"score_percent"`
}

// AuditResult is the immutable outcome of a finalized session.
type AuditResult struct {
	ID                 id.ResultID     `json:"id"`
	SessionID          id.SessionID    `json:"session_id"`
	FrameworkID        id.FrameworkID  `json:"framework_id"`
	AuditorID          id.AuditorID    `json:"auditor_id,omitempty"`
	CompletedAt        time.Time       `json:"completed_at"`
	TotalQuestions     int             `json:"total_questions"`
	CompliantCount     int             `json:"compliant_count"`
	NonCompliantCount  int             `json:"non_compliant_count"`
	NotApplicableCount int             `json:"not_applicable_count"`
	Score              int             `json:"score"`
	NonConformities    []NonConformity `json:"non_conformities"`
	NarrativeSummary   string          `json:"narrative_summary"`
	Recommendations    []string        `json:"recommendations"`
}

// Progress reports how much of a session's checklist has been answered.
// The engine itself never requires completeness; callers decide whether
// to finalize an incomplete audit.
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}
