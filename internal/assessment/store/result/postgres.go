package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"conforma/internal/assessment/models"
	id "conforma/pkg/domain"
	dErrors "conforma/pkg/domain-errors"
)

// PostgresResultStore persists finalized results. Non-conformities and
// recommendations are stored as JSONB: they are read back whole for
// report rendering, never queried field-by-field.
type PostgresResultStore struct {
	pool *pgxpool.Pool
}

func NewPostgresResultStore(pool *pgxpool.Pool) *PostgresResultStore {
	return &PostgresResultStore{pool: pool}
}

// EnsureSchema creates the results table if it does not exist. Called
// once at startup; deployments with managed migrations can skip it.
func (s *PostgresResultStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS audit_results (
			id                   UUID PRIMARY KEY,
			session_id           UUID NOT NULL UNIQUE,
			framework_id         TEXT NOT NULL,
			auditor_id           TEXT NOT NULL DEFAULT '',
			completed_at         TIMESTAMPTZ NOT NULL,
			total_questions      INT NOT NULL,
			compliant_count      INT NOT NULL,
			non_compliant_count  INT NOT NULL,
			not_applicable_count INT NOT NULL,
			score                INT NOT NULL,
			non_conformities     JSONB NOT NULL DEFAULT '[]',
			narrative_summary    TEXT NOT NULL,
			recommendations      JSONB NOT NULL DEFAULT '[]'
		)`)
	if err != nil {
		return fmt.Errorf("ensure audit_results schema: %w", err)
	}
	return nil
}

func (s *PostgresResultStore) SaveResult(ctx context.Context, result *models.AuditResult) error {
	nonConformities, err := json.Marshal(result.NonConformities)
	if err != nil {
		return fmt.Errorf("marshal non-conformities: %w", err)
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO audit_results (
			id, session_id, framework_id, auditor_id, completed_at,
			total_questions, compliant_count, non_compliant_count,
			not_applicable_count, score, non_conformities,
			narrative_summary, recommendations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		result.ID.String(), result.SessionID.String(), result.FrameworkID.String(),
		result.AuditorID.String(), result.CompletedAt,
		result.TotalQuestions, result.CompliantCount, result.NonCompliantCount,
		result.NotApplicableCount, result.Score, nonConformities,
		result.NarrativeSummary, recommendations,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return dErrors.Wrap(err, dErrors.CodeConflict, "result already exists for this session")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "save result")
	}
	return nil
}

func (s *PostgresResultStore) GetResult(ctx context.Context, resultID id.ResultID) (*models.AuditResult, error) {
	return s.get(ctx, "id = $1", resultID.String())
}

func (s *PostgresResultStore) GetResultBySession(ctx context.Context, sessionID id.SessionID) (*models.AuditResult, error) {
	return s.get(ctx, "session_id = $1", sessionID.String())
}

func (s *PostgresResultStore) get(ctx context.Context, where string, arg any) (*models.AuditResult, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, session_id, framework_id, auditor_id, completed_at,
		       total_questions, compliant_count, non_compliant_count,
		       not_applicable_count, score, non_conformities,
		       narrative_summary, recommendations
		FROM audit_results WHERE `+where, arg)

	var (
		result          models.AuditResult
		resultID        string
		sessionID       string
		frameworkID     string
		auditorID       string
		nonConformities []byte
		recommendations []byte
	)
	err := row.Scan(
		&resultID, &sessionID, &frameworkID, &auditorID, &result.CompletedAt,
		&result.TotalQuestions, &result.CompliantCount, &result.NonCompliantCount,
		&result.NotApplicableCount, &result.Score, &nonConformities,
		&result.NarrativeSummary, &recommendations,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "get result")
	}

	if result.ID, err = id.ParseResultID(resultID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "corrupt result id")
	}
	if result.SessionID, err = id.ParseSessionID(sessionID); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "corrupt session id")
	}
	result.FrameworkID = id.FrameworkID(frameworkID)
	result.AuditorID = id.AuditorID(auditorID)

	if err := json.Unmarshal(nonConformities, &result.NonConformities); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "unmarshal non-conformities")
	}
	if err := json.Unmarshal(recommendations, &result.Recommendations); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "unmarshal recommendations")
	}
	return &result, nil
}

// isUniqueViolation checks for Postgres error 23505.
func isUniqueViolation(err error) bool {
	var pgErr interface{ SQLState() string }
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}
