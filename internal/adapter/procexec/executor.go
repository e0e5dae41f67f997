// Package procexec runs harness programs in isolated child processes.
package procexec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"gitlab.com/codeval-2025.net/internal/core/ports/secondary"
)

var _ secondary.CommandExecutor = (*LocalCommandExecutor)(nil)

// LocalCommandExecutor spawns real interpreter processes on the host.
type LocalCommandExecutor struct{}

// NewLocalCommandExecutor creates the default host-process executor.
func NewLocalCommandExecutor() *LocalCommandExecutor {
	return &LocalCommandExecutor{}
}

// Run executes the command with stdin closed and stdout/stderr captured.
// When the timeout elapses the child is killed, not signalled cooperatively;
// untrusted code may ignore anything softer.
func (e *LocalCommandExecutor) Run(ctx context.Context, spec secondary.CommandSpec) (secondary.CommandResult, error) {
	runCtx := ctx
	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, spec.Binary, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Stdin = nil
	// If the child ignores the kill long enough to wedge Wait, give up on
	// collecting its pipes after a second.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := secondary.CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		TimedOut: errors.Is(runCtx.Err(), context.DeadlineExceeded),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if result.TimedOut {
			return result, nil
		}
		// Spawn failure: binary missing, permission denied.
		return result, err
	}

	return result, nil
}
