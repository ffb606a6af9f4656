// Package ports defines the core interfaces for the application.
package ports

import "context"

// CommandResult is the captured outcome of one external command.
type CommandResult struct {
	// ExitCode is the process exit status, or -1 when the process was killed by a signal.
	ExitCode int
	// Stdout is everything the command wrote to standard output.
	Stdout string
	// Stderr is everything the command wrote to standard error.
	Stderr string
}

// CommandRunner runs external commands on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args and waits for it to finish.
	//
	// A command that starts and exits non-zero is not an error: the exit code is
	// reported in the result and the caller decides. An error is returned only
	// when the command could not be run at all.
	Run(ctx context.Context, name string, args ...string) (CommandResult, error)

	// CheckExecutable returns an error unless path names an existing,
	// executable regular file.
	CheckExecutable(path string) error
}
