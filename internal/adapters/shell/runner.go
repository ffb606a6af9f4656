// Package shell provides the host command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.trai.ch/zerr"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/core/ports"
)

// exitCodeNotRun mirrors the shell convention for a command that could not be executed.
const exitCodeNotRun = 127

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	env []string
}

// NewRunner creates a new Runner.
//
// Commands run with the current process environment plus LC_ALL=C, so that
// tabular output is not localized.
func NewRunner() *Runner {
	return &Runner{
		env: append(os.Environ(), "LC_ALL=C"),
	}
}

// Run executes name with args, capturing stdout and stderr.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (ports.CommandResult, error) {
	//nolint:gosec // the binary and its arguments are assembled by the lock manager
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = r.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was terminated by a signal.
		res.ExitCode = exitErr.ExitCode()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", name)
		}
		return res, nil
	}

	res.ExitCode = exitCodeNotRun
	runErr := zerr.With(fmt.Errorf("%w: %w", domain.ErrCommandFailed, err), "command", name)
	return res, zerr.With(runErr, "exit_code", exitCodeNotRun)
}

// CheckExecutable returns an error unless path exists, is not a directory and
// has at least one execute bit set.
func (r *Runner) CheckExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "cannot stat executable"), "path", path)
	}
	if m := info.Mode(); m.IsDir() || m&0o111 == 0 {
		return zerr.With(zerr.Wrap(os.ErrPermission, "file is not executable"), "path", path)
	}
	return nil
}
