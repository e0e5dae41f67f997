package secondary

import (
	"context"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// ReportCache short-circuits re-evaluation of byte-identical submissions.
// A nil report with a nil error means a cache miss.
type ReportCache interface {
	GetReport(ctx context.Context, fingerprint string) (*domain.SubmissionReport, error)
	PutReport(ctx context.Context, fingerprint string, report *domain.SubmissionReport) error
}
