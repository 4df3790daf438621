package linear

// Option is a present-or-absent value carried inside a wrapper, the
// absence-track counterpart of Result.
type Option[T any] struct {
	value T
	some  bool
}

// Some builds a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None builds an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// Value returns the present value, or the zero value when absent.
func (o Option[T]) Value() T {
	return o.value
}

// MapSome consumes the wrapper and applies f to the present value,
// yielding a fresh wrapper. Absence is relayed untouched and f is not
// invoked.
func MapSome[T, U any](l Linear[Option[T]], f func(T) U) Linear[Option[U]] {
	o := l.take()
	if !o.some {
		return newLinear(None[U](), 2)
	}
	return newLinear(Some(f(o.value)), 2)
}

// UnwrapSome consumes the wrapper and returns the present value as a
// plain, no-longer-linear value. When absent it panics with an
// *UnwrapFailure carrying ErrAbsent.
func UnwrapSome[T any](l Linear[Option[T]]) T {
	o := l.take()
	if !o.some {
		panic(&UnwrapFailure{Err: ErrAbsent})
	}
	return o.value
}
