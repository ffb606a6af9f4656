package ports

import (
	"context"

	"go.trai.ch/zlock/internal/core/domain"
)

// LockManager reads and edits the package manager's lock list.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_manager.go -destination=mocks/mock_lock_manager.go -package=mocks
type LockManager interface {
	// Preflight verifies the underlying tool can be invoked.
	Preflight() error

	// Locks queries the current lock list.
	Locks(ctx context.Context) (domain.LockList, error)

	// AddLocks locks patterns and returns the tool's output.
	AddLocks(ctx context.Context, patterns []string, opts domain.LockOptions) (string, error)

	// RemoveLocks unlocks patterns, which may be names or 1-based list positions,
	// and returns the tool's output.
	RemoveLocks(ctx context.Context, patterns []string, opts domain.LockOptions) (string, error)
}

// LockManagerFactory builds a LockManager for the given tool binary.
type LockManagerFactory func(binary string) LockManager
