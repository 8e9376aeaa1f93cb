package engine

import (
	"fmt"
	"strings"
	"time"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
)

// Score-band labels for the narrative summary.
const (
	BandExcellent    = "Excellent compliance"
	BandSatisfactory = "Satisfactory compliance"
	BandInsufficient = "Insufficient compliance"
	BandCritical     = "Critical compliance failure"
)

// BandLabel maps a conformity score to its interpretation band.
func BandLabel(score int) string {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 75:
		return BandSatisfactory
	case score >= 50:
		return BandInsufficient
	default:
		return BandCritical
	}
}

// Compose runs the full pipeline over a response snapshot and assembles
// the audit result. Pure given its inputs and the supplied clock; the
// caller stamps identifiers and persists the value.
//
// Classification errors abort the call with no partial result.
func Compose(frameworkID id.FrameworkID, questions []models.AuditQuestion, responses []models.AuditResponse, now time.Time) (*models.AuditResult, error) {
	nonConformities, err := Classify(questions, responses)
	if err != nil {
		return nil, err
	}

	summary := Score(questions, responses)
	recommendations := Synthesize(nonConformities)

	return &models.AuditResult{
		FrameworkID:        frameworkID,
		CompletedAt:        now,
		TotalQuestions:     summary.Total,
		CompliantCount:     summary.Compliant,
		NonCompliantCount:  summary.NonCompliant,
		NotApplicableCount: summary.NotApplicable,
		Score:              summary.ScorePercent,
		NonConformities:    nonConformities,
		NarrativeSummary:   narrative(frameworkID, summary, nonConformities),
		Recommendations:    recommendations,
	}, nil
}

// narrative renders the human-readable summary: band interpretation,
// counts by status, and a severity breakdown when findings exist. The
// degenerate cases (no criteria defined, nothing applicable) are called
// out explicitly instead of reporting a misleading 0% band.
func narrative(frameworkID id.FrameworkID, summary models.ScoreSummary, nonConformities []models.NonConformity) string {
	if summary.Total == 0 {
		return fmt.Sprintf("No audit criteria are defined for framework %q; no assessment was performed.", frameworkID)
	}

	var b strings.Builder

	switch {
	case summary.Applicable == 0 && summary.NotApplicable > 0:
		fmt.Fprintf(&b, "No applicable criteria were evaluated: all %d answered questions were marked not applicable. Conformity score is 0%% by definition.",
			summary.NotApplicable)
	case summary.Applicable == 0:
		b.WriteString("No applicable criteria were evaluated. Conformity score is 0% by definition.")
	default:
		fmt.Fprintf(&b, "Conformity score %d%% (%s).", summary.ScorePercent, BandLabel(summary.ScorePercent))
	}

	fmt.Fprintf(&b, " Of %d questions: %d compliant, %d non-compliant, %d not applicable.",
		summary.Total, summary.Compliant, summary.NonCompliant, summary.NotApplicable)

	if answered := summary.Compliant + summary.NonCompliant + summary.NotApplicable; answered < summary.Total {
		fmt.Fprintf(&b, " %d questions were not answered and are excluded from the score.", summary.Total-answered)
	}

	if len(nonConformities) > 0 {
		counts := map[models.Severity]int{}
		for _, nc := range nonConformities {
			counts[nc.Severity]++
		}
		fmt.Fprintf(&b, " Non-conformities by severity: %d critical, %d major, %d minor.",
			counts[models.SeverityCritical], counts[models.SeverityMajor], counts[models.SeverityMinor])
	}

	return b.String()
}
