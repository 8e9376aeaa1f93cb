package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

// RedisSessionStore keeps the session record as a JSON string and the
// response ledger as a hash keyed by question ID, so upserting an answer
// is a single HSET. Both keys share the same TTL, refreshed on write.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds a Redis-backed session store. A zero TTL
// means sessions never expire.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID id.SessionID) string {
	return "conforma:session:" + sessionID.String()
}

func responsesKey(sessionID id.SessionID) string {
	return sessionKey(sessionID) + ":responses"
}

func (s *RedisSessionStore) CreateSession(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ok, err := s.client.SetNX(ctx, sessionKey(session.ID), payload, s.ttl).Result()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "create session")
	}
	if !ok {
		return dErrors.Newf(dErrors.CodeConflict, "session %s already exists", session.ID)
	}
	return nil
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "get session")
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "unmarshal session")
	}
	return &session, nil
}

func (s *RedisSessionStore) UpdateSessionState(ctx context.Context, sessionID id.SessionID, state models.SessionState, updatedAt time.Time) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}

	session.State = state
	session.UpdatedAt = updatedAt

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "update session state")
	}
	return nil
}

func (s *RedisSessionStore) PutResponse(ctx context.Context, sessionID id.SessionID, response models.AuditResponse) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, responsesKey(sessionID), response.QuestionID.String(), payload)
	if s.ttl > 0 {
		pipe.Expire(ctx, responsesKey(sessionID), s.ttl)
		pipe.Expire(ctx, sessionKey(sessionID), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "put response")
	}
	return nil
}

func (s *RedisSessionStore) GetResponse(ctx context.Context, sessionID id.SessionID, questionID id.QuestionID) (*models.AuditResponse, error) {
	payload, err := s.client.HGet(ctx, responsesKey(sessionID), questionID.String()).Bytes()
	if err == redis.Nil {
		// Distinguish an unanswered question from a missing session.
		session, serr := s.GetSession(ctx, sessionID)
		if serr != nil {
			return nil, serr
		}
		if session == nil {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
		}
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "get response")
	}

	var response models.AuditResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "unmarshal response")
	}
	return &response, nil
}

func (s *RedisSessionStore) Responses(ctx context.Context, sessionID id.SessionID) ([]models.AuditResponse, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "session %s not found", sessionID)
	}

	raw, err := s.client.HGetAll(ctx, responsesKey(sessionID)).Result()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list responses")
	}

	responses := make([]models.AuditResponse, 0, len(raw))
	for _, payload := range raw {
		var response models.AuditResponse
		if err := json.Unmarshal([]byte(payload), &response); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "unmarshal response")
		}
		responses = append(responses, response)
	}
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].QuestionID < responses[j].QuestionID
	})
	return responses, nil
}
