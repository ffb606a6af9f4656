package reconciler

import "go.trai.ch/zlock/internal/core/domain"

// Plan is the set of changes needed to move the lock list to the desired state.
type Plan struct {
	// ToAdd holds the patterns to lock, in request order.
	ToAdd []string
	// ToRemove holds the patterns to unlock, in request order, or for a purge
	// every current entry in list order.
	ToRemove []string
	// RemoveArgs is what gets passed to the remove call. It equals ToRemove
	// except for a purge, where it holds list positions from last to first.
	RemoveArgs []string
}

// Empty reports whether the plan requires no mutation.
func (p Plan) Empty() bool {
	return len(p.ToAdd) == 0 && len(p.ToRemove) == 0
}

// NewPlan computes the add and remove batches for state.
//
// Duplicates in desired pass through unchanged; zypper treats repeated names
// idempotently.
func NewPlan(state domain.State, desired []string, current domain.LockList) Plan {
	p := Plan{
		ToAdd:      []string{},
		ToRemove:   []string{},
		RemoveArgs: []string{},
	}

	switch state {
	case domain.StatePresent:
		for _, name := range desired {
			if !current.Contains(name) {
				p.ToAdd = append(p.ToAdd, name)
			}
		}
	case domain.StateAbsent:
		for _, name := range desired {
			if current.Contains(name) {
				p.ToRemove = append(p.ToRemove, name)
			}
		}
		p.RemoveArgs = append(p.RemoveArgs, p.ToRemove...)
	case domain.StatePurge:
		// Names can be ambiguous across repositories and types; positions are not.
		p.ToRemove = append(p.ToRemove, current...)
		p.RemoveArgs = current.Indices()
	case domain.StateList:
	}

	return p
}
