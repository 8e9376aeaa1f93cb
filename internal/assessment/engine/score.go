// Package engine implements the assessment pipeline as pure functions
// over immutable snapshots: Score -> Classify -> Synthesize -> Compose.
// No I/O, no shared state; callers supply the clock.
package engine

import (
	"math"

	"conforma/internal/assessment/models"
)

// Score counts responses by status and derives the conformity
// percentage. Unanswered questions contribute to none of the counters:
// the engine scores whatever is present, and completeness enforcement is
// the caller's concern.
//
// The score is defined relative to applicable questions only. When every
// question is not-applicable (or there are no questions), the score is 0
// by definition rather than NaN.
func Score(questions []models.AuditQuestion, responses []models.AuditResponse) models.ScoreSummary {
	summary := models.ScoreSummary{Total: len(questions)}

	for _, response := range responses {
		switch response.Status {
		case models.StatusCompliant:
			summary.Compliant++
		case models.StatusNonCompliant:
			summary.NonCompliant++
		case models.StatusNotApplicable:
			summary.NotApplicable++
		}
	}

	summary.Applicable = summary.Total - summary.NotApplicable
	if summary.Applicable > 0 {
		// Round half up to the nearest integer.
		summary.ScorePercent = int(math.Floor(float64(summary.Compliant)/float64(summary.Applicable)*100 + 0.5))
	}

	return summary
}
