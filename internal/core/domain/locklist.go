package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// LockList is an ordered snapshot of the package manager's lock list.
// Entries are package names, patterns or other specs exactly as reported by zypper.
//
// A LockList is never edited after it is read; every change goes through the
// package manager and is observed by querying again.
type LockList []string

// NewLockList returns a non-nil copy of entries.
func NewLockList(entries ...string) LockList {
	l := make(LockList, len(entries))
	copy(l, entries)
	return l
}

// Contains reports whether name is an entry of the list.
func (l LockList) Contains(name string) bool {
	return slices.Contains(l, name)
}

// Clone returns an independent copy of the list. The copy is never nil.
func (l LockList) Clone() LockList {
	return NewLockList(l...)
}

// Len returns the number of entries.
func (l LockList) Len() int {
	return len(l)
}

// Indices returns the 1-based positions of every entry, highest first.
// Removing positions in this order keeps the remaining positions valid.
func (l LockList) Indices() []string {
	out := make([]string, 0, len(l))
	for i := len(l); i >= 1; i-- {
		out = append(out, strconv.Itoa(i))
	}
	return out
}

// Digest returns a hex encoded xxhash64 fingerprint of the ordered entries.
func (l LockList) Digest() string {
	d := xxhash.New()
	for _, entry := range l {
		_, _ = d.WriteString(entry)
		_, _ = d.WriteString("\n")
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

// String renders the list as a comma separated sequence.
func (l LockList) String() string {
	return strings.Join(l, ", ")
}
