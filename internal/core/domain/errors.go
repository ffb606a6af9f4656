package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when the zypper binary is missing or not executable.
	ErrToolNotFound = zerr.New("lock tool not found or not executable")

	// ErrCommandFailed is returned when a zypper invocation exits non-zero or cannot be started.
	ErrCommandFailed = zerr.New("lock tool command failed")

	// ErrLockQueryFailed is returned when the current lock list cannot be read.
	ErrLockQueryFailed = zerr.New("failed to query lock list")

	// ErrLockUpdateFailed is returned when adding or removing locks fails.
	ErrLockUpdateFailed = zerr.New("failed to update lock list")

	// ErrInvalidState is returned when a requested state is not one of present, absent, list or purge.
	ErrInvalidState = zerr.New("invalid state, expected one of 'present', 'absent', 'list', 'purge'")

	// ErrInvalidPackageType is returned when a package type filter is not supported by zypper.
	ErrInvalidPackageType = zerr.New(
		"invalid package type, expected one of 'package', 'patch', 'pattern', 'product', 'srcpackage'",
	)

	// ErrEmptyPattern is returned when a requested lock name is blank.
	ErrEmptyPattern = zerr.New("lock pattern must not be empty")

	// ErrConfigReadFailed is returned when the request file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read request file")

	// ErrConfigParseFailed is returned when the request file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse request file")

	// ErrUnknownOutputFormat is returned when a result is rendered in an unsupported format.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected 'json', 'compact', 'yaml' or 'text'")

	// ErrRenderFailed is returned when a result cannot be encoded.
	ErrRenderFailed = zerr.New("failed to render result")

	// ErrReconcileFailed is returned when a reconciliation aborts.
	ErrReconcileFailed = zerr.New("lock reconciliation failed")

	// ErrModuleFailed is returned after a module run has already reported its failure on stdout.
	ErrModuleFailed = zerr.New("module run failed")
)
