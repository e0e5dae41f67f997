package secondary

import (
	"context"
	"time"

	"gitlab.com/codeval-2025.net/internal/domain"
)

// ProcessRunner executes one harness program in an isolated child process.
// It never returns an error: every failure mode degrades into an outcome so
// the orchestrator's per-test-case loop stays uniform.
type ProcessRunner interface {
	Run(ctx context.Context, harnessSource string, language domain.Language, scratchDir string, timeout time.Duration) domain.ExecutionOutcome
}
