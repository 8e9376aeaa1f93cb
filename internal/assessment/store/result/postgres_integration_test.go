//go:build integration

package result_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"conforma/internal/assessment/models"
	"conforma/internal/assessment/store/result"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
	"conforma/pkg/testutil/containers"
)

type PostgresResultStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *result.PostgresResultStore
}

func TestPostgresResultStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresResultStoreSuite))
}

func (s *PostgresResultStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = result.NewPostgresResultStore(s.postgres.Pool)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresResultStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_results"))
}

func sampleResult() *models.AuditResult {
	return &models.AuditResult{
		ID:                 id.NewResultID(),
		SessionID:          id.NewSessionID(),
		FrameworkID:        "pharma-distribution",
		AuditorID:          "auditor-7",
		CompletedAt:        time.Now().UTC().Truncate(time.Microsecond),
		TotalQuestions:     10,
		CompliantCount:     7,
		NonCompliantCount:  1,
		NotApplicableCount: 1,
		Score:              78,
		NonConformities: []models.NonConformity{
			{
				QuestionID:      "gdp-02",
				Severity:        models.SeverityCritical,
				Description:     "Temperature-controlled storage is not monitored",
				Recommendation:  "Immediate action required",
				ClauseReference: "Ch. 3.2.1",
			},
		},
		NarrativeSummary: "Conformity score 78% (Satisfactory compliance).",
		Recommendations:  []string{"URGENT", "follow-up"},
	}
}

func (s *PostgresResultStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	want := sampleResult()
	s.Require().NoError(s.store.SaveResult(ctx, want))

	got, err := s.store.GetResult(ctx, want.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(want.Score, got.Score)
	s.Equal(want.FrameworkID, got.FrameworkID)
	s.Equal(want.NonConformities, got.NonConformities)
	s.Equal(want.Recommendations, got.Recommendations)
	s.WithinDuration(want.CompletedAt, got.CompletedAt, time.Millisecond)

	bySession, err := s.store.GetResultBySession(ctx, want.SessionID)
	s.Require().NoError(err)
	s.Require().NotNil(bySession)
	s.Equal(want.ID, bySession.ID)
}

func (s *PostgresResultStoreSuite) TestMissingResultReturnsNil() {
	ctx := context.Background()

	got, err := s.store.GetResult(ctx, id.NewResultID())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *PostgresResultStoreSuite) TestOneResultPerSession() {
	ctx := context.Background()
	first := sampleResult()
	s.Require().NoError(s.store.SaveResult(ctx, first))

	second := sampleResult()
	second.SessionID = first.SessionID
	err := s.store.SaveResult(ctx, second)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
