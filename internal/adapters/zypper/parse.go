package zypper

import (
	"regexp"
	"strings"

	"go.trai.ch/zlock/internal/core/domain"
)

// lockLineRE matches one row of `zypper locks`, e.g. "3 | zsh | package | (any)".
// The token after the first column separator is the lock entry.
var lockLineRE = regexp.MustCompile(`^\s*\d+\s+\|\s*([^|\s]+)`)

// ParseLocks extracts the lock entries from the output of `zypper locks`.
// Header, separator and informational lines are ignored.
func ParseLocks(output string) domain.LockList {
	locks := domain.NewLockList()

	for line := range strings.Lines(output) {
		m := lockLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		locks = append(locks, m[1])
	}
	return locks
}
