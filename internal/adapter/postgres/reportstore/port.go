// package reportstore contains the PostgreSQL implementation of report persistence
package reportstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codeval-2025.net/internal/core/ports/primary"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/domain"
)

var _ secondary.ReportStore = (*ReportStore)(nil)

// ReportStore implements the ReportStore interface with PostgreSQL
type ReportStore struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewReportStore creates a new PostgreSQL report store
func NewReportStore(db *sqlx.DB, logger primary.Logger) *ReportStore {
	return &ReportStore{
		db:     db,
		logger: logger,
	}
}

// SaveReport saves a finished report to PostgreSQL
func (r *ReportStore) SaveReport(ctx context.Context, fingerprint string, report *domain.SubmissionReport) error {
	verdictsJSON, err := json.Marshal(report.Verdicts)
	if err != nil {
		r.logger.Error("Failed to marshal verdicts", "error", err)
		return fmt.Errorf("failed to marshal verdicts: %w", err)
	}
	qualityJSON, err := json.Marshal(report.Quality)
	if err != nil {
		return fmt.Errorf("failed to marshal quality signals: %w", err)
	}
	suspicionJSON, err := json.Marshal(report.Suspicion)
	if err != nil {
		return fmt.Errorf("failed to marshal suspicion signals: %w", err)
	}

	query := `
		INSERT INTO submission_reports (
			submission_id, fingerprint, status, total_count, passed_count,
			failed_count, total_elapsed_ms, verdicts, quality, suspicion, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (submission_id) DO NOTHING
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		report.SubmissionID,
		fingerprint,
		report.Status,
		report.TotalCount,
		report.PassedCount,
		report.FailedCount,
		report.TotalElapsedMs,
		verdictsJSON,
		qualityJSON,
		suspicionJSON,
		report.CompletedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save report", "submissionId", report.SubmissionID, "error", err)
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// GetReport retrieves a report from PostgreSQL by submission ID
func (r *ReportStore) GetReport(ctx context.Context, reportID uuid.UUID) (*domain.SubmissionReport, error) {
	query := `
		SELECT submission_id, status, total_count, passed_count, failed_count,
		       total_elapsed_ms, verdicts, quality, suspicion, completed_at
		FROM submission_reports
		WHERE submission_id = $1
	`

	var row struct {
		SubmissionID   uuid.UUID `db:"submission_id"`
		Status         string    `db:"status"`
		TotalCount     int       `db:"total_count"`
		PassedCount    int       `db:"passed_count"`
		FailedCount    int       `db:"failed_count"`
		TotalElapsedMs int64     `db:"total_elapsed_ms"`
		Verdicts       []byte    `db:"verdicts"`
		Quality        []byte    `db:"quality"`
		Suspicion      []byte    `db:"suspicion"`
		CompletedAt    sql.NullTime `db:"completed_at"`
	}

	if err := r.db.GetContext(ctx, &row, query, reportID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Failed to get report", "submissionId", reportID, "error", err)
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	report := &domain.SubmissionReport{
		SubmissionID:   row.SubmissionID,
		Status:         domain.ReportStatus(row.Status),
		TotalCount:     row.TotalCount,
		PassedCount:    row.PassedCount,
		FailedCount:    row.FailedCount,
		TotalElapsedMs: row.TotalElapsedMs,
	}
	if row.CompletedAt.Valid {
		report.CompletedAt = row.CompletedAt.Time
	}
	if err := json.Unmarshal(row.Verdicts, &report.Verdicts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verdicts: %w", err)
	}
	if err := json.Unmarshal(row.Quality, &report.Quality); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quality signals: %w", err)
	}
	if err := json.Unmarshal(row.Suspicion, &report.Suspicion); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suspicion signals: %w", err)
	}

	return report, nil
}
