//go:build integration

package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"conforma/internal/assessment/models"
	"conforma/internal/assessment/store/session"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
	"conforma/pkg/testutil/containers"
)

type RedisSessionStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *session.RedisSessionStore
}

func TestRedisSessionStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisSessionStoreSuite))
}

func (s *RedisSessionStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = session.NewRedisSessionStore(s.redis.Client, time.Hour)
}

func (s *RedisSessionStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func makeSession() *models.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.Session{
		ID:          id.NewSessionID(),
		FrameworkID: "quality-9001",
		AuditorID:   "auditor-1",
		State:       models.StateNotStarted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *RedisSessionStoreSuite) TestSessionRoundTrip() {
	ctx := context.Background()
	sess := makeSession()
	s.Require().NoError(s.store.CreateSession(ctx, sess))

	got, err := s.store.GetSession(ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(sess.ID, got.ID)
	s.Equal(sess.FrameworkID, got.FrameworkID)
	s.Equal(models.StateNotStarted, got.State)
}

func (s *RedisSessionStoreSuite) TestCreateSessionTwiceConflicts() {
	ctx := context.Background()
	sess := makeSession()
	s.Require().NoError(s.store.CreateSession(ctx, sess))

	err := s.store.CreateSession(ctx, sess)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *RedisSessionStoreSuite) TestMissingSessionReturnsNil() {
	got, err := s.store.GetSession(context.Background(), id.NewSessionID())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *RedisSessionStoreSuite) TestUpdateSessionState() {
	ctx := context.Background()
	sess := makeSession()
	s.Require().NoError(s.store.CreateSession(ctx, sess))

	later := sess.UpdatedAt.Add(time.Minute)
	s.Require().NoError(s.store.UpdateSessionState(ctx, sess.ID, models.StateInProgress, later))

	got, err := s.store.GetSession(ctx, sess.ID)
	s.Require().NoError(err)
	s.Equal(models.StateInProgress, got.State)
	s.True(got.UpdatedAt.Equal(later))
}

func (s *RedisSessionStoreSuite) TestResponseLedgerUpsert() {
	ctx := context.Background()
	sess := makeSession()
	s.Require().NoError(s.store.CreateSession(ctx, sess))

	s.Require().NoError(s.store.PutResponse(ctx, sess.ID, models.AuditResponse{
		QuestionID: "q9001-02",
		Status:     models.StatusNonCompliant,
		Comment:    "no disposition records",
	}))
	s.Require().NoError(s.store.PutResponse(ctx, sess.ID, models.AuditResponse{
		QuestionID: "q9001-01",
		Status:     models.StatusCompliant,
	}))
	// Revisit: the ledger keeps the latest answer only.
	s.Require().NoError(s.store.PutResponse(ctx, sess.ID, models.AuditResponse{
		QuestionID: "q9001-02",
		Status:     models.StatusCompliant,
	}))

	got, err := s.store.GetResponse(ctx, sess.ID, "q9001-02")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(models.StatusCompliant, got.Status)
	s.Empty(got.Comment)

	responses, err := s.store.Responses(ctx, sess.ID)
	s.Require().NoError(err)
	s.Require().Len(responses, 2)
	// Snapshot order is by question ID.
	s.Equal(id.QuestionID("q9001-01"), responses[0].QuestionID)
	s.Equal(id.QuestionID("q9001-02"), responses[1].QuestionID)
}

func (s *RedisSessionStoreSuite) TestUnansweredQuestionReturnsNil() {
	ctx := context.Background()
	sess := makeSession()
	s.Require().NoError(s.store.CreateSession(ctx, sess))

	got, err := s.store.GetResponse(ctx, sess.ID, "q9001-01")
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *RedisSessionStoreSuite) TestLedgerOnMissingSession() {
	ctx := context.Background()

	err := s.store.PutResponse(ctx, id.NewSessionID(), models.AuditResponse{
		QuestionID: "q9001-01",
		Status:     models.StatusCompliant,
	})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.store.Responses(ctx, id.NewSessionID())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
