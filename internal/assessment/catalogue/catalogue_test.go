package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conforma/internal/assessment/models"
)

func TestStatic_Questions(t *testing.T) {
	provider := NewStatic()

	t.Run("returns empty slice for unknown framework", func(t *testing.T) {
		// Unknown frameworks are a valid zero-question case, not a failure.
		questions := provider.Questions("future-framework-2030")
		require.NotNil(t, questions)
		assert.Empty(t, questions)
	})

	t.Run("order is deterministic", func(t *testing.T) {
		first := provider.Questions("quality-9001")
		second := provider.Questions("quality-9001")
		assert.Equal(t, first, second)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		questions := provider.Questions("quality-9001")
		require.NotEmpty(t, questions)
		questions[0].Text = "mutated"

		assert.NotEqual(t, "mutated", provider.Questions("quality-9001")[0].Text)
	})

	t.Run("question IDs are unique within each framework", func(t *testing.T) {
		for _, fw := range provider.Frameworks() {
			seen := map[string]bool{}
			for _, q := range provider.Questions(fw.ID) {
				assert.False(t, seen[q.ID.String()], "duplicate question id %s in %s", q.ID, fw.ID)
				seen[q.ID.String()] = true
			}
		}
	})

	t.Run("every question carries a valid severity and framework id", func(t *testing.T) {
		for _, fw := range provider.Frameworks() {
			for _, q := range provider.Questions(fw.ID) {
				assert.True(t, q.Severity.IsValid(), "question %s", q.ID)
				assert.Equal(t, fw.ID, q.FrameworkID, "question %s", q.ID)
				assert.NotEmpty(t, q.Text, "question %s", q.ID)
			}
		}
	})
}

func TestStatic_Frameworks(t *testing.T) {
	provider := NewStatic()
	frameworks := provider.Frameworks()

	ids := make([]string, 0, len(frameworks))
	for _, fw := range frameworks {
		ids = append(ids, fw.ID.String())
		assert.Equal(t, len(provider.Questions(fw.ID)), fw.QuestionCount)
	}
	assert.Equal(t, []string{"environmental-14001", "pharma-distribution", "quality-9001", "safety-45001"}, ids)
}

func TestQuality9001_SeverityMix(t *testing.T) {
	// The quality framework is the canonical 10-question checklist used in
	// scoring examples: 3 critical, 4 major, 3 minor.
	questions := NewStatic().Questions("quality-9001")
	require.Len(t, questions, 10)

	counts := map[models.Severity]int{}
	for _, q := range questions {
		counts[q.Severity]++
	}
	assert.Equal(t, 3, counts[models.SeverityCritical])
	assert.Equal(t, 4, counts[models.SeverityMajor])
	assert.Equal(t, 3, counts[models.SeverityMinor])
}
