package handler

import (
	"conforma/internal/assessment/catalogue"
	"conforma/internal/assessment/models"
)

// List envelopes keep the top-level JSON an object so the payloads can
// grow fields without breaking clients.
type frameworkListResponse struct {
	Frameworks []catalogue.Framework `json:"frameworks"`
}

type questionListResponse struct {
	FrameworkID string                 `json:"framework_id"`
	Questions   []models.AuditQuestion `json:"questions"`
}

// Sessions, progress, and results serialize their domain models
// directly; the models carry wire-ready json tags.
