// Package catalogue holds the versioned audit checklist catalogue.
//
// The catalogue is data, not code: scoring, classification, and
// synthesis never branch on a framework identifier, so new frameworks
// are added by appending records to the data file.
package catalogue

import (
	"sort"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
)

// Framework describes one registered checklist.
type Framework struct {
	ID            id.FrameworkID `json:"id"`
	Name          string         `json:"name"`
	Version       string         `json:"version"`
	QuestionCount int            `json:"question_count"`
}

// Provider yields checklist questions per framework.
type Provider interface {
	// Frameworks lists registered frameworks in stable order.
	Frameworks() []Framework

	// Questions returns the checklist for a framework in stable
	// presentation order. Unknown frameworks yield an empty slice, not
	// an error: a zero-question audit is a valid degenerate case.
	Questions(frameworkID id.FrameworkID) []models.AuditQuestion
}

// Static serves the build-time catalogue defined in data.go.
type Static struct {
	frameworks map[id.FrameworkID]frameworkRecord
	order      []id.FrameworkID
}

type frameworkRecord struct {
	name      string
	version   string
	questions []models.AuditQuestion
}

// NewStatic builds the static provider from the embedded records.
func NewStatic() *Static {
	s := &Static{frameworks: make(map[id.FrameworkID]frameworkRecord)}
	for _, fw := range registeredFrameworks {
		s.frameworks[fw.id] = frameworkRecord{
			name:      fw.name,
			version:   fw.version,
			questions: fw.questions,
		}
		s.order = append(s.order, fw.id)
	}
	sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })
	return s
}

// Frameworks lists registered frameworks sorted by ID.
func (s *Static) Frameworks() []Framework {
	out := make([]Framework, 0, len(s.order))
	for _, fwID := range s.order {
		rec := s.frameworks[fwID]
		out = append(out, Framework{
			ID:            fwID,
			Name:          rec.name,
			Version:       rec.version,
			QuestionCount: len(rec.questions),
		})
	}
	return out
}

// Questions returns a copy of the framework's checklist so callers can
// never mutate catalogue data.
func (s *Static) Questions(frameworkID id.FrameworkID) []models.AuditQuestion {
	rec, ok := s.frameworks[frameworkID]
	if !ok {
		return []models.AuditQuestion{}
	}
	return append([]models.AuditQuestion{}, rec.questions...)
}
