//go:build !linear_unchecked

package linear

// Checked policy: unconsumed drops are detected and reported.
const (
	enforced   = true
	PolicyName = "checked"
)
