//go:build linear_peek

package linear

// Peek returns the payload without consuming the wrapper. It exists only
// under the linear_peek build tag because it breaks the linear model: the
// returned value aliases the payload and can be read without any
// consumption obligation. With this tag enabled the package's contract is
// only as strong as the caller's restraint. Debugging aid only.
func Peek[T any](l Linear[T]) T {
	if l.s == nil {
		panic("linear: use of zero Linear")
	}
	if l.s.consumed.Load() != 0 {
		panic("linear: value already consumed")
	}
	return l.s.payload
}
