package engine

import (
	"fmt"
	"strings"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

// Classify extracts one NonConformity per non-compliant response,
// carrying the question's severity and clause reference and attaching a
// severity-keyed remediation note. Output order follows the checklist's
// presentation order so reports read top to bottom.
//
// Every response must resolve to a question in the supplied set. An
// orphaned response is a caller contract violation and fails the whole
// classification with CodeInvalidInput: silently dropping a reported
// finding would understate risk.
func Classify(questions []models.AuditQuestion, responses []models.AuditResponse) ([]models.NonConformity, error) {
	byQuestion := make(map[id.QuestionID]models.AuditQuestion, len(questions))
	for _, question := range questions {
		byQuestion[question.ID] = question
	}

	byResponse := make(map[id.QuestionID]models.AuditResponse, len(responses))
	for _, response := range responses {
		if _, ok := byQuestion[response.QuestionID]; !ok {
			return nil, dErrors.Newf(dErrors.CodeInvalidInput,
				"response references question %q which is not in the framework's question set", response.QuestionID)
		}
		byResponse[response.QuestionID] = response
	}

	nonConformities := []models.NonConformity{}
	for _, question := range questions {
		response, answered := byResponse[question.ID]
		if !answered || response.Status != models.StatusNonCompliant {
			continue
		}
		nonConformities = append(nonConformities, models.NonConformity{
			QuestionID:      question.ID,
			Severity:        question.Severity,
			Description:     question.Text,
			Recommendation:  remediationFor(question),
			ClauseReference: question.ClauseReference,
		})
	}

	return nonConformities, nil
}

// remediationFor renders the deterministic remediation template for a
// failed question, keyed on severity.
func remediationFor(question models.AuditQuestion) string {
	switch question.Severity {
	case models.SeverityCritical:
		note := "Immediate action required: contain the affected process and correct within 7 days."
		if len(question.ExpectedEvidence) > 0 {
			note += fmt.Sprintf(" Evidence checklist: %s.", strings.Join(question.ExpectedEvidence, "; "))
		}
		return note
	case models.SeverityMajor:
		return "Open a corrective action with an assigned owner and close within 30 days."
	default:
		return "Address at the next scheduled review; no immediate compliance impact."
	}
}
