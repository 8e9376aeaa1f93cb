// Package domain defines typed identifiers shared across modules.
//
// Distinct Go types keep session, result, and framework identifiers from
// being mixed up at compile time. Construct via the Parse* helpers at
// trust boundaries; direct casting bypasses validation.
package domain

import (
	"github.com/google/uuid"

	dErrors "conforma/pkg/domain-errors"
)

// SessionID identifies a single audit session.
type SessionID uuid.UUID

// ResultID identifies a finalized audit result.
type ResultID uuid.UUID

// NewSessionID generates a fresh session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.New())
}

// NewResultID generates a fresh result identifier.
func NewResultID() ResultID {
	return ResultID(uuid.New())
}

// ParseSessionID constructs a SessionID from external input.
// Errors: CodeInvalidInput when the value is empty, malformed, or nil.
func ParseSessionID(s string) (SessionID, error) {
	u, err := parseUUID(s, "session id")
	return SessionID(u), err
}

// ParseResultID constructs a ResultID from external input.
// Errors: CodeInvalidInput when the value is empty, malformed, or nil.
func ParseResultID(s string) (ResultID, error) {
	u, err := parseUUID(s, "result id")
	return ResultID(u), err
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", what)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s", what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be nil", what)
	}
	return u, nil
}

func (id SessionID) String() string { return uuid.UUID(id).String() }
func (id SessionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the canonical UUID form. Defined types do not
// inherit uuid.UUID's marshaling, so JSON would otherwise emit a byte
// array.
func (id SessionID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *SessionID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id ResultID) String() string { return uuid.UUID(id).String() }
func (id ResultID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id ResultID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *ResultID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// FrameworkID names a regulatory checklist (e.g. "quality-9001").
// Unknown framework IDs are valid: they resolve to a zero-question
// catalogue, not an error, so frameworks can be added incrementally.
type FrameworkID string

// ParseFrameworkID constructs a FrameworkID from external input.
// Errors: CodeInvalidInput only when the value is empty.
func ParseFrameworkID(s string) (FrameworkID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "framework id cannot be empty")
	}
	return FrameworkID(s), nil
}

func (id FrameworkID) String() string { return string(id) }

// QuestionID identifies a checklist question. Unique within a framework,
// not globally.
type QuestionID string

// ParseQuestionID constructs a QuestionID from external input.
// Errors: CodeInvalidInput only when the value is empty.
func ParseQuestionID(s string) (QuestionID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "question id cannot be empty")
	}
	return QuestionID(s), nil
}

func (id QuestionID) String() string { return string(id) }

// AuditorID identifies the person conducting the audit. A string rather
// than a UUID to support external identity schemes (JWT subjects, LDAP
// DNs).
type AuditorID string

func (id AuditorID) String() string { return string(id) }
