package evaluate

import (
	"context"
	"fmt"
	"os"

	"gitlab.com/codeval-2025.net/internal/core/ports/primary"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/core/services/analysis"
	"gitlab.com/codeval-2025.net/internal/core/services/compare"
	"gitlab.com/codeval-2025.net/internal/domain"
)

var _ IEvaluationService = (*EvaluationService)(nil)

// EvaluationService orchestrates the harness/runner/comparator pipeline.
// It holds no per-request state and is safe to invoke concurrently; each
// evaluation owns a private scratch directory. Test cases within one
// submission run strictly one at a time so a single submission never holds
// more than one child process.
type EvaluationService struct {
	harness     secondary.HarnessBuilder
	runner      secondary.ProcessRunner
	quality     *analysis.QualityScanner
	suspicion   *analysis.SuspicionScanner
	logger      primary.Logger
	scratchRoot string
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(
	harness secondary.HarnessBuilder,
	runner secondary.ProcessRunner,
	quality *analysis.QualityScanner,
	suspicion *analysis.SuspicionScanner,
	logger primary.Logger,
	scratchRoot string,
) *EvaluationService {
	return &EvaluationService{
		harness:     harness,
		runner:      runner,
		quality:     quality,
		suspicion:   suspicion,
		logger:      logger,
		scratchRoot: scratchRoot,
	}
}

// Evaluate runs the per-test-case loop and folds in the analyzer signals.
func (s *EvaluationService) Evaluate(ctx context.Context, submission *domain.CodeSubmission) (*domain.SubmissionReport, error) {
	s.logger.Info("Evaluating submission",
		"submissionId", submission.ID,
		"language", submission.Language,
		"entryPoint", submission.EntryPoint,
		"testCases", len(submission.TestCases))

	scratchDir, err := os.MkdirTemp(s.scratchRoot, "eval-")
	if err != nil {
		s.logger.Error("Failed to create scratch directory", "error", err)
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(scratchDir); err != nil {
			s.logger.Warn("Failed to remove scratch directory", "dir", scratchDir, "error", err)
		}
	}()

	verdicts := make([]domain.TestCaseVerdict, 0, len(submission.TestCases))
	for i, testCase := range submission.TestCases {
		verdict := s.judgeTestCase(ctx, submission, testCase, scratchDir)
		if !verdict.Passed {
			s.logger.Debug("Test case failed",
				"submissionId", submission.ID,
				"index", i,
				"error", verdict.Outcome.ErrorMessage)
		}
		verdicts = append(verdicts, verdict)
	}

	quality := s.quality.Scan(submission.SourceText, submission.Language)
	suspicion := s.suspicion.Scan(submission.SourceText)

	report := domain.NewSubmissionReport(submission.ID, verdicts, quality, suspicion)
	s.logger.Info("Evaluation finished",
		"submissionId", submission.ID,
		"status", report.Status,
		"passed", report.PassedCount,
		"total", report.TotalCount)
	return report, nil
}

// judgeTestCase runs one test case through harness generation, execution and
// comparison. Any stage failure becomes a failed verdict, never an error.
func (s *EvaluationService) judgeTestCase(ctx context.Context, submission *domain.CodeSubmission, testCase domain.TestCase, scratchDir string) domain.TestCaseVerdict {
	harnessSource, err := s.harness.BuildHarnessSource(submission.Language, submission.SourceText, submission.EntryPoint, testCase)
	if err != nil {
		return domain.TestCaseVerdict{
			TestCase: testCase,
			Outcome:  domain.ExecutionOutcome{ErrorMessage: err.Error()},
		}
	}

	outcome := s.runner.Run(ctx, harnessSource, submission.Language, scratchDir, submission.TimeLimit())
	verdict := domain.TestCaseVerdict{
		TestCase: testCase,
		Outcome:  outcome,
	}
	if !outcome.Succeeded {
		return verdict
	}

	verdict.ActualValue = outcome.Value
	verdict.Passed = compare.Equal(outcome.Value, testCase.ExpectedOutput)
	return verdict
}
