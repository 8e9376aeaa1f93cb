// Package result provides audit-result stores. Results are immutable
// once written; stores only ever insert and read.
package result

import (
	"context"
	"sync"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

// InMemoryResultStore keeps finalized results in process memory.
type InMemoryResultStore struct {
	mu        sync.RWMutex
	results   map[id.ResultID]*models.AuditResult
	bySession map[id.SessionID]id.ResultID
}

func NewInMemoryResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{
		results:   make(map[id.ResultID]*models.AuditResult),
		bySession: make(map[id.SessionID]id.ResultID),
	}
}

func (s *InMemoryResultStore) SaveResult(_ context.Context, result *models.AuditResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[result.ID]; exists {
		return dErrors.Newf(dErrors.CodeConflict, "result %s already exists", result.ID)
	}
	if _, exists := s.bySession[result.SessionID]; exists {
		return dErrors.Newf(dErrors.CodeConflict, "session %s already has a result", result.SessionID)
	}

	copied := *result
	s.results[result.ID] = &copied
	s.bySession[result.SessionID] = result.ID
	return nil
}

func (s *InMemoryResultStore) GetResult(_ context.Context, resultID id.ResultID) (*models.AuditResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.results[resultID]
	if !exists {
		return nil, nil
	}
	copied := *result
	return &copied, nil
}

func (s *InMemoryResultStore) GetResultBySession(_ context.Context, sessionID id.SessionID) (*models.AuditResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resultID, exists := s.bySession[sessionID]
	if !exists {
		return nil, nil
	}
	copied := *s.results[resultID]
	return &copied, nil
}
