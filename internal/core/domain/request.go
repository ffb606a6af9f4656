package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultBinary is the zypper executable used when none is configured.
const DefaultBinary = "/usr/bin/zypper"

// LockOptions are the optional modifiers attached to an add or remove call.
// Empty fields omit the corresponding command-line flag.
type LockOptions struct {
	// Type restricts the lock to a package kind (-t).
	Type PackageType
	// Repo restricts the lock to a repository alias, name, number or URI (-r).
	Repo string
	// Message annotates the lock (-m). Only used when adding.
	Message string
}

// Request describes one reconciliation.
type Request struct {
	// Names is the desired set of lock patterns, in the order given by the caller.
	Names []string
	// State selects what to do with Names.
	State State
	// Options are passed through as zypper flags.
	Options LockOptions
	// DryRun computes the batches without calling a mutating command.
	DryRun bool
	// Binary is the zypper executable path.
	Binary string
}

// Normalize fills defaults in place.
func (r *Request) Normalize() {
	if r.State == "" {
		r.State = DefaultState
	}
	if r.Binary == "" {
		r.Binary = DefaultBinary
	}
	if r.Names == nil {
		r.Names = []string{}
	}
}

// Validate checks the request for values zypper would reject and replaces
// State and Options.Type with their canonical spelling.
func (r *Request) Validate() error {
	state, err := ParseState(string(r.State))
	if err != nil {
		return err
	}
	pkgType, err := ParsePackageType(string(r.Options.Type))
	if err != nil {
		return err
	}
	r.State = state
	r.Options.Type = pkgType

	for i, name := range r.Names {
		if strings.TrimSpace(name) == "" {
			return zerr.With(ErrEmptyPattern, "index", i)
		}
	}
	return nil
}
