package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// State is the desired condition of the requested lock patterns.
type State string

const (
	// StatePresent adds the requested patterns to the lock list.
	StatePresent State = "present"
	// StateAbsent removes the requested patterns from the lock list.
	StateAbsent State = "absent"
	// StateList only reports the current lock list.
	StateList State = "list"
	// StatePurge removes every entry from the lock list.
	StatePurge State = "purge"
)

// DefaultState is used when a request does not name a state.
const DefaultState = StatePresent

// ParseState converts a user supplied string to a State.
// An empty string yields DefaultState.
func ParseState(s string) (State, error) {
	switch State(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultState, nil
	case StatePresent:
		return StatePresent, nil
	case StateAbsent:
		return StateAbsent, nil
	case StateList:
		return StateList, nil
	case StatePurge:
		return StatePurge, nil
	default:
		return "", zerr.With(ErrInvalidState, "state", s)
	}
}

// Mutates reports whether the state can change the lock list.
func (s State) Mutates() bool {
	return s != StateList
}

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// PackageType restricts a lock to one zypper package kind.
// The zero value means no restriction and omits the -t flag.
type PackageType string

// Package types understood by zypper's -t option.
const (
	PackageTypeNone       PackageType = ""
	PackageTypePackage    PackageType = "package"
	PackageTypePatch      PackageType = "patch"
	PackageTypePattern    PackageType = "pattern"
	PackageTypeProduct    PackageType = "product"
	PackageTypeSrcPackage PackageType = "srcpackage"
)

// ParsePackageType converts a user supplied string to a PackageType.
func ParsePackageType(s string) (PackageType, error) {
	switch t := PackageType(strings.ToLower(strings.TrimSpace(s))); t {
	case PackageTypeNone,
		PackageTypePackage,
		PackageTypePatch,
		PackageTypePattern,
		PackageTypeProduct,
		PackageTypeSrcPackage:
		return t, nil
	default:
		return "", zerr.With(ErrInvalidPackageType, "pkgtype", s)
	}
}

// String returns the package type name.
func (t PackageType) String() string {
	return string(t)
}
