package procexec

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codeval-2025.net/internal/core/ports/primary"
	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeval-2025.net/internal/domain"
	"gitlab.com/codeval-2025.net/internal/languages"
)

const timedOutMessage = "timed out"

var _ secondary.ProcessRunner = (*Runner)(nil)

// harnessLine is the single-line stdout protocol between the untrusted
// harness process and the runner.
type harnessLine struct {
	Success       bool        `json:"success"`
	Output        interface{} `json:"output"`
	Error         string      `json:"error"`
	ExecutionTime float64     `json:"executionTime"`
}

// Runner writes a harness to a scratch file, executes it under a wall-clock
// timeout and parses the result line. Every failure mode degrades into an
// ExecutionOutcome; nothing escapes as an error.
type Runner struct {
	registry *languages.Registry
	executor secondary.CommandExecutor
	logger   primary.Logger
}

// NewRunner creates a process runner over the given registry and executor.
func NewRunner(registry *languages.Registry, executor secondary.CommandExecutor, logger primary.Logger) *Runner {
	return &Runner{
		registry: registry,
		executor: executor,
		logger:   logger,
	}
}

// Run executes one harness program and reports what it produced.
func (r *Runner) Run(ctx context.Context, harnessSource string, language domain.Language, scratchDir string, timeout time.Duration) domain.ExecutionOutcome {
	runtime, ok := r.registry.Get(string(language))
	if !ok || !runtime.Runnable {
		return domain.ExecutionOutcome{
			ErrorMessage: fmt.Sprintf("execution for language %q is not implemented", language),
		}
	}

	sourcePath := filepath.Join(scratchDir, uuid.NewString()+runtime.Extension)
	if err := os.WriteFile(sourcePath, []byte(harnessSource), 0o600); err != nil {
		return domain.ExecutionOutcome{
			ErrorMessage: fmt.Sprintf("failed to write harness file: %v", err),
		}
	}
	// The scratch file must go on every exit path, spawn failure included.
	defer func() {
		if err := os.Remove(sourcePath); err != nil && !os.IsNotExist(err) {
			r.logger.Warn("Failed to remove harness file", "path", sourcePath, "error", err)
		}
	}()

	binary, args, err := runtime.BuildCommand(sourcePath)
	if err != nil {
		return domain.ExecutionOutcome{
			ErrorMessage: fmt.Sprintf("failed to build command: %v", err),
		}
	}

	result, err := r.executor.Run(ctx, secondary.CommandSpec{
		Binary:  binary,
		Args:    args,
		Dir:     scratchDir,
		Timeout: timeout,
	})
	if result.TimedOut {
		return domain.ExecutionOutcome{ErrorMessage: timedOutMessage}
	}
	if err != nil {
		r.logger.Error("Failed to spawn harness process", "language", language, "error", err)
		return domain.ExecutionOutcome{ErrorMessage: err.Error()}
	}
	if result.ExitCode != 0 || strings.TrimSpace(result.Stdout) == "" {
		return domain.ExecutionOutcome{ErrorMessage: processFailureMessage(result)}
	}

	return parseHarnessOutput(result.Stdout)
}

// parseHarnessOutput decodes the final stdout line. Earlier lines are
// candidate noise (stray prints) and are ignored as long as the final line
// parses; otherwise the whole stdout is surfaced as a diagnostic.
func parseHarnessOutput(stdout string) domain.ExecutionOutcome {
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])

	var line harnessLine
	if err := json.Unmarshal([]byte(last), &line); err != nil {
		return domain.ExecutionOutcome{
			ErrorMessage: fmt.Sprintf("malformed output: %s", strings.TrimSpace(stdout)),
		}
	}

	outcome := domain.ExecutionOutcome{
		Succeeded: line.Success,
		ElapsedMs: int64(line.ExecutionTime),
	}
	if line.Success {
		outcome.Value = line.Output
	} else {
		outcome.ErrorMessage = line.Error
	}
	return outcome
}

func processFailureMessage(result secondary.CommandResult) string {
	if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
		return stderr
	}
	return fmt.Sprintf("process exited with code %d and produced no output", result.ExitCode)
}
