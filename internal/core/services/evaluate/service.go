package evaluate

import (
	"context"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// IEvaluationService defines the interface for evaluating submissions
type IEvaluationService interface {
	// Evaluate runs every test case of the submission in order and returns
	// the assembled report. The only error it can return is failure to set
	// up the evaluation scratch directory; everything else degrades into
	// per-test-case verdicts.
	Evaluate(ctx context.Context, submission *domain.CodeSubmission) (*domain.SubmissionReport, error)
}
