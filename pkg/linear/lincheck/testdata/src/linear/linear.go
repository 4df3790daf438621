// Package linear is a minimal stand-in for the real wrapper package,
// just enough surface for the analyzer tests to type-check against.
package linear

type Linear[T any] struct{ _ []T }

func New[T any](v T) Linear[T] { return Linear[T]{} }

func Map[T, U any](l Linear[T], f func(T) U) Linear[U] { return Linear[U]{} }

func Splice[T any](l Linear[T]) (Linear[T], Linear[T]) {
	return Linear[T]{}, Linear[T]{}
}

func (l Linear[T]) IntoInner() T {
	var zero T
	return zero
}

func (l Linear[T]) Destroy() {}
