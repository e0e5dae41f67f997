package secondary

import (
	"context"
	"time"
)

// CommandSpec describes one child process invocation.
type CommandSpec struct {
	Binary  string
	Args    []string
	Dir     string
	Timeout time.Duration
}

// CommandResult captures what the child process produced.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// CommandExecutor abstracts process spawning so the runner can be tested
// without invoking real interpreters. Implementations must kill the child
// once the spec timeout elapses; the child is untrusted and gets no grace.
type CommandExecutor interface {
	Run(ctx context.Context, spec CommandSpec) (CommandResult, error)
}
