package ffmpeg

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec.
// Stdout and Stderr are discarded unless a writer is set; only the exit
// status decides success.
type ExecCommandRunner struct {
	Stderr io.Writer
	Logger *slog.Logger
}

// Run executes a command and returns any error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
	if r.Logger != nil {
		r.Logger.Debug("running command", "name", name, "args", args)
	}
	return cmd.Run()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}
