// Package reconciler implements idempotent lock list reconciliation.
package reconciler

import (
	"context"
	"strings"

	"go.trai.ch/zerr"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/core/ports"
)

// Reconciler moves the package manager's lock list towards a requested state.
//
// A reconciliation runs QUERY_INITIAL, an optional MUTATE and QUERY_FINAL in
// sequence. It performs at most one mutating call and never retries.
type Reconciler struct {
	newManager ports.LockManagerFactory
	logger     ports.Logger
}

// New creates a Reconciler building its lock manager through factory.
func New(factory ports.LockManagerFactory, logger ports.Logger) *Reconciler {
	return &Reconciler{
		newManager: factory,
		logger:     logger,
	}
}

// Reconcile applies req and reports the before and after lock lists.
func (r *Reconciler) Reconcile(ctx context.Context, req domain.Request) (*domain.Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	manager := r.newManager(req.Binary)
	if err := manager.Preflight(); err != nil {
		return nil, err
	}

	initial, err := manager.Locks(ctx)
	if err != nil {
		return nil, err
	}

	result := domain.NewResult(initial)
	if !req.State.Mutates() {
		return result, nil
	}

	plan := NewPlan(req.State, req.Names, initial)
	result.PatternsToAdd = plan.ToAdd
	result.PatternsToDelete = plan.ToRemove
	result.Changed = !plan.Empty()

	if req.DryRun {
		if result.Changed {
			r.logger.Info("dry run, lock list left untouched: " + describe(plan))
		}
		return result, nil
	}

	if !plan.Empty() {
		msg, err := r.apply(ctx, manager, req, plan)
		if err != nil {
			return nil, err
		}
		result.Msg = msg
	}

	final, err := manager.Locks(ctx)
	if err != nil {
		return nil, err
	}
	result.SetFinal(final)

	return result, nil
}

func (r *Reconciler) apply(
	ctx context.Context,
	manager ports.LockManager,
	req domain.Request,
	plan Plan,
) (string, error) {
	if len(plan.ToAdd) > 0 {
		out, err := manager.AddLocks(ctx, plan.ToAdd, req.Options)
		if err != nil {
			return "", zerr.With(err, "state", req.State.String())
		}
		return out, nil
	}

	out, err := manager.RemoveLocks(ctx, plan.RemoveArgs, req.Options)
	if err != nil {
		return "", zerr.With(err, "state", req.State.String())
	}
	return out, nil
}

func describe(p Plan) string {
	parts := make([]string, 0, 2)
	if len(p.ToAdd) > 0 {
		parts = append(parts, "would lock "+strings.Join(p.ToAdd, " "))
	}
	if len(p.ToRemove) > 0 {
		parts = append(parts, "would unlock "+strings.Join(p.ToRemove, " "))
	}
	return strings.Join(parts, ", ")
}
