//go:build linear_unchecked

package linear

// Unchecked policy: no drop check is armed, unconsumed wrappers are
// released silently. Double consumption still panics; that check is the
// exactly-once lower bound and is kept in every build mode.
const (
	enforced   = false
	PolicyName = "unchecked"
)
