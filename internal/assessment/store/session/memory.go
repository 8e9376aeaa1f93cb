// Package session provides response-ledger stores. The memory store
// backs tests and single-node development; the Redis store lets sessions
// survive restarts in shared deployments.
package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

type sessionRecord struct {
	session   models.Session
	responses map[id.QuestionID]models.AuditResponse
}

// InMemorySessionStore keeps sessions and their ledgers in process
// memory. Each session owns its own response map, so concurrent audits
// of different frameworks are fully independent.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[id.SessionID]*sessionRecord
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[id.SessionID]*sessionRecord),
	}
}

func (s *InMemorySessionStore) CreateSession(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return dErrors.Newf(dErrors.CodeConflict, "session %s already exists", session.ID)
	}
	s.sessions[session.ID] = &sessionRecord{
		session:   *session,
		responses: make(map[id.QuestionID]models.AuditResponse),
	}
	return nil
}

func (s *InMemorySessionStore) GetSession(_ context.Context, sessionID id.SessionID) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}
	session := rec.session
	return &session, nil
}

func (s *InMemorySessionStore) UpdateSessionState(_ context.Context, sessionID id.SessionID, state models.SessionState, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.sessions[sessionID]
	if !exists {
		return dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}
	rec.session.State = state
	rec.session.UpdatedAt = updatedAt
	return nil
}

// PutResponse overwrites any prior answer for the question. Upsert, not
// append: the ledger holds the auditor's current answer only.
func (s *InMemorySessionStore) PutResponse(_ context.Context, sessionID id.SessionID, response models.AuditResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.sessions[sessionID]
	if !exists {
		return dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}
	rec.responses[response.QuestionID] = response
	return nil
}

func (s *InMemorySessionStore) GetResponse(_ context.Context, sessionID id.SessionID, questionID id.QuestionID) (*models.AuditResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.sessions[sessionID]
	if !exists {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}
	response, answered := rec.responses[questionID]
	if !answered {
		return nil, nil
	}
	return &response, nil
}

func (s *InMemorySessionStore) Responses(_ context.Context, sessionID id.SessionID) ([]models.AuditResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.sessions[sessionID]
	if !exists {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}

	responses := make([]models.AuditResponse, 0, len(rec.responses))
	for _, response := range rec.responses {
		responses = append(responses, response)
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].QuestionID < responses[j].QuestionID
	})
	return responses, nil
}
