package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// ReportStore persists finished submission reports. Persistence is the
// caller's concern, not the evaluation core's; the store is only wired into
// the HTTP layer.
type ReportStore interface {
	SaveReport(ctx context.Context, fingerprint string, report *domain.SubmissionReport) error
	GetReport(ctx context.Context, reportID uuid.UUID) (*domain.SubmissionReport, error)
}
