package engine

import "conforma/internal/assessment/models"

// Aggregated CAPA recommendation lines. The synthesizer produces a
// small, bounded action list rather than one CAPA record per finding;
// per-finding tracking would extend this list, not replace it.
const (
	RecommendationUrgentCritical = "URGENT: critical non-conformities identified. Assign a CAPA owner immediately and begin containment."
	RecommendationMajorCAPA      = "Open CAPA records with root-cause analysis for all major non-conformities."
	RecommendationCrossAnalysis  = "Perform a cross-analysis of the findings to identify common root causes."
	RecommendationFollowUpAudit  = "Schedule a follow-up audit within 3 months to verify remediation."
	RecommendationTraining       = "Plan targeted refresher training for the teams affected by the findings."
)

// crossAnalysisThreshold is the finding count at which a systemic
// root-cause review is recommended. Heuristic, but fixed.
const crossAnalysisThreshold = 5

// Synthesize derives the ordered action list from the non-conformity
// set. The urgent-critical line, when present, is always first; the two
// closing lines (follow-up audit, training) are always last and always
// present, even for a clean audit.
func Synthesize(nonConformities []models.NonConformity) []string {
	var hasCritical, hasMajor bool
	for _, nc := range nonConformities {
		switch nc.Severity {
		case models.SeverityCritical:
			hasCritical = true
		case models.SeverityMajor:
			hasMajor = true
		}
	}

	recommendations := []string{}
	if hasCritical {
		recommendations = append(recommendations, RecommendationUrgentCritical)
	}
	if hasMajor {
		recommendations = append(recommendations, RecommendationMajorCAPA)
	}
	if len(nonConformities) >= crossAnalysisThreshold {
		recommendations = append(recommendations, RecommendationCrossAnalysis)
	}

	return append(recommendations, RecommendationFollowUpAudit, RecommendationTraining)
}
