package result

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

func newResult() *models.AuditResult {
	return &models.AuditResult{
		ID:                 id.NewResultID(),
		SessionID:          id.NewSessionID(),
		FrameworkID:        "quality-9001",
		AuditorID:          "auditor-1",
		CompletedAt:        time.Now(),
		TotalQuestions:     10,
		CompliantCount:     6,
		NonCompliantCount:  2,
		NotApplicableCount: 2,
		Score:              75,
		NonConformities: []models.NonConformity{
			{QuestionID: "q9001-02", Severity: models.SeverityCritical, Description: "x", Recommendation: "y"},
		},
		NarrativeSummary: "Conformity score 75% (Satisfactory compliance).",
		Recommendations:  []string{"a", "b"},
	}
}

func TestInMemoryResultStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a result", func(t *testing.T) {
		store := NewInMemoryResultStore()
		result := newResult()
		require.NoError(t, store.SaveResult(ctx, result))

		got, err := store.GetResult(ctx, result.ID)
		require.NoError(t, err)
		assert.Equal(t, result, got)

		bySession, err := store.GetResultBySession(ctx, result.SessionID)
		require.NoError(t, err)
		assert.Equal(t, result, bySession)
	})

	t.Run("missing results return nil", func(t *testing.T) {
		store := NewInMemoryResultStore()

		got, err := store.GetResult(ctx, id.NewResultID())
		require.NoError(t, err)
		assert.Nil(t, got)

		bySession, err := store.GetResultBySession(ctx, id.NewSessionID())
		require.NoError(t, err)
		assert.Nil(t, bySession)
	})

	t.Run("results are immutable once written", func(t *testing.T) {
		store := NewInMemoryResultStore()
		result := newResult()
		require.NoError(t, store.SaveResult(ctx, result))

		// Mutating the caller's copy must not affect the stored value.
		result.Score = 0

		got, err := store.GetResult(ctx, result.ID)
		require.NoError(t, err)
		assert.Equal(t, 75, got.Score)
	})

	t.Run("one result per session", func(t *testing.T) {
		store := NewInMemoryResultStore()
		first := newResult()
		require.NoError(t, store.SaveResult(ctx, first))

		second := newResult()
		second.SessionID = first.SessionID
		err := store.SaveResult(ctx, second)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})
}
