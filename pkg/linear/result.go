package linear

// Result is a success-or-failure value carried inside a wrapper so that
// railway operations (MapOk, ThenOk, UnwrapOk) can short-circuit on the
// failure track. The failure side is always a Go error.
type Result[T any] struct {
	value T
	err   error
}

// Ok builds a success Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err builds a failure Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the Result is on the success track.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Value returns the success value, or the zero value on the failure track.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on the success track.
func (r Result[T]) Err() error {
	return r.err
}

// MapOk consumes the wrapper and applies f to the success value, yielding
// a fresh wrapper. On the failure track f is not invoked and the failure
// is relayed untouched.
func MapOk[T, U any](l Linear[Result[T]], f func(T) U) Linear[Result[U]] {
	r := l.take()
	if r.err != nil {
		return newLinear(Err[U](r.err), 2)
	}
	return newLinear(Ok(f(r.value)), 2)
}

// ThenOk consumes the wrapper and chains an error-returning transition on
// the success track, converting a returned error to the failure track.
// On the failure track f is not invoked.
func ThenOk[T, U any](l Linear[Result[T]], f func(T) (U, error)) Linear[Result[U]] {
	r := l.take()
	if r.err != nil {
		return newLinear(Err[U](r.err), 2)
	}
	u, err := f(r.value)
	if err != nil {
		return newLinear(Err[U](err), 2)
	}
	return newLinear(Ok(u), 2)
}

// UnwrapOk consumes the wrapper and returns the success value as a plain,
// no-longer-linear value. On the failure track it panics with an
// *UnwrapFailure carrying the original error. Reserve it for boundaries
// where failure is already known to be unrecoverable.
func UnwrapOk[T any](l Linear[Result[T]]) T {
	r := l.take()
	if r.err != nil {
		panic(&UnwrapFailure{Err: r.err})
	}
	return r.value
}
