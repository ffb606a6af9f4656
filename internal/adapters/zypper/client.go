// Package zypper implements the lock manager adapter on top of the zypper CLI.
package zypper

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/core/ports"
)

// Sub-commands and global options of the zypper CLI.
const (
	cmdLocks      = "locks"
	cmdAddLock    = "addlock"
	cmdRemoveLock = "removelock"
	optQuiet      = "--quiet"
	flagType      = "-t"
	flagRepo      = "-r"
	flagMessage   = "-m"
)

// Client implements ports.LockManager using the zypper CLI.
type Client struct {
	binary string
	runner ports.CommandRunner
	logger ports.Logger
}

// NewClient creates a new Client invoking the zypper binary at the given path.
func NewClient(binary string, runner ports.CommandRunner, logger ports.Logger) *Client {
	if binary == "" {
		binary = domain.DefaultBinary
	}
	return &Client{
		binary: binary,
		runner: runner,
		logger: logger,
	}
}

// NewFactory returns a ports.LockManagerFactory sharing runner and logger.
func NewFactory(runner ports.CommandRunner, logger ports.Logger) ports.LockManagerFactory {
	return func(binary string) ports.LockManager {
		return NewClient(binary, runner, logger)
	}
}

// Preflight verifies that the zypper binary exists and is executable.
func (c *Client) Preflight() error {
	if err := c.runner.CheckExecutable(c.binary); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrToolNotFound, err), "path", c.binary)
	}
	return nil
}

// Locks queries the current lock list.
func (c *Client) Locks(ctx context.Context) (domain.LockList, error) {
	out, err := c.run(ctx, cmdLocks)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockQueryFailed.Error())
	}
	return ParseLocks(out), nil
}

// AddLocks locks patterns with the given options.
func (c *Client) AddLocks(ctx context.Context, patterns []string, opts domain.LockOptions) (string, error) {
	args := AddLockArgs(patterns, opts)
	c.logger.Info("zypper " + strings.Join(args, " "))

	out, err := c.run(ctx, args...)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrLockUpdateFailed.Error())
	}
	return out, nil
}

// RemoveLocks unlocks patterns, which may be names or 1-based positions of the lock list.
func (c *Client) RemoveLocks(ctx context.Context, patterns []string, opts domain.LockOptions) (string, error) {
	args := RemoveLockArgs(patterns, opts)
	c.logger.Info("zypper " + strings.Join(args, " "))

	out, err := c.run(ctx, args...)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrLockUpdateFailed.Error())
	}
	return out, nil
}

// AddLockArgs builds the argument vector for `zypper addlock`.
func AddLockArgs(patterns []string, opts domain.LockOptions) []string {
	args := []string{optQuiet, cmdAddLock}
	args = appendFilters(args, opts)
	if opts.Message != "" {
		args = append(args, flagMessage, opts.Message)
	}
	return append(args, patterns...)
}

// RemoveLockArgs builds the argument vector for `zypper removelock`.
// zypper does not accept a message when removing locks, so opts.Message is ignored.
func RemoveLockArgs(patterns []string, opts domain.LockOptions) []string {
	args := []string{optQuiet, cmdRemoveLock}
	args = appendFilters(args, opts)
	return append(args, patterns...)
}

func appendFilters(args []string, opts domain.LockOptions) []string {
	if opts.Type != domain.PackageTypeNone {
		args = append(args, flagType, opts.Type.String())
	}
	if opts.Repo != "" {
		args = append(args, flagRepo, opts.Repo)
	}
	return args
}

// run invokes zypper and turns a non-zero exit into ErrCommandFailed.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		return "", zerr.With(err, "args", strings.Join(args, " "))
	}
	if res.ExitCode != 0 {
		stderr := strings.TrimSpace(res.Stderr)
		cmdErr := fmt.Errorf("%w: exit status %d", domain.ErrCommandFailed, res.ExitCode)
		if stderr != "" {
			cmdErr = fmt.Errorf("%w: %s", cmdErr, stderr)
		}
		cmdErr = zerr.With(cmdErr, "command", c.binary+" "+strings.Join(args, " "))
		return "", zerr.With(cmdErr, "exit_code", res.ExitCode)
	}
	return res.Stdout, nil
}
