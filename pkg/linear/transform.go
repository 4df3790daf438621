package linear

// Transformation operations are package-level functions because Go
// methods cannot introduce new type parameters. Each one consumes its
// source wrapper(s) and returns a fresh unconsumed wrapper.

// Map consumes the wrapper and applies f to the payload, yielding a fresh
// wrapper around the result. f is invoked exactly once and must not
// retain the payload beyond its return.
func Map[T, U any](l Linear[T], f func(T) U) Linear[U] {
	return newLinear(f(l.take()), 2)
}

// TryMap consumes the wrapper and applies an error-returning transition,
// lifting the (value, error) pair onto the Result railway so that later
// MapOk/ThenOk steps can short-circuit.
func TryMap[T, U any](l Linear[T], f func(T) (U, error)) Linear[Result[U]] {
	u, err := f(l.take())
	if err != nil {
		return newLinear(Err[U](err), 2)
	}
	return newLinear(Ok(u), 2)
}

// Splice consumes the wrapper and forks its consumption obligation into
// two independently tracked wrappers. The payload is copied by value into
// both halves; if it contains shared state (pointers, slices, handles),
// coordinating access between the halves is the caller's concern. Each
// half must be consumed on its own.
func Splice[T any](l Linear[T]) (Linear[T], Linear[T]) {
	v := l.take()
	return newLinear(v, 2), newLinear(v, 2)
}

// Pair holds the two payloads joined by Merge.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Merge consumes two wrappers and joins their obligations into a single
// wrapper holding both payloads, recombining diverged flows before a
// final terminal operation.
func Merge[T, U any](a Linear[T], b Linear[U]) Linear[Pair[T, U]] {
	return newLinear(Pair[T, U]{First: a.take(), Second: b.take()}, 2)
}
