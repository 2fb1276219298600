// Package age decides whether a file qualifies as old enough to relocate.
package age

import "time"

// Predicate selects files whose enabled timestamps all fall strictly
// before Cutoff. A disabled check is not evaluated at all. With every
// check disabled there is no criterion left to fail, so every file is
// selected; callers disabling all three are asking for an
// unconditional sweep.
type Predicate struct {
	Cutoff     time.Time
	CheckAtime bool
	CheckMtime bool
	CheckCtime bool
}

// Old reports whether the file described by the three timestamps is
// selected under the predicate's enabled checks.
func (p Predicate) Old(atime, mtime, ctime time.Time) bool {
	if p.CheckAtime && !atime.Before(p.Cutoff) {
		return false
	}
	if p.CheckMtime && !mtime.Before(p.Cutoff) {
		return false
	}
	if p.CheckCtime && !ctime.Before(p.Cutoff) {
		return false
	}
	return true
}
