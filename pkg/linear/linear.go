package linear

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Linear wraps a value that must be consumed exactly once. Copies of a
// Linear share the same tracking state, so consuming any copy consumes
// them all; the single-use guarantee is carried by the shared state
// rather than by move semantics.
//
// The zero Linear is invalid; every operation on it panics.
type Linear[T any] struct {
	s *state[T]
}

type state[T any] struct {
	payload   T
	consumed  atomic.Uint32
	id        uuid.UUID
	createdAt time.Time
	origin    string
	typeName  string
	cleanup   runtime.Cleanup
}

// New wraps a value and starts linear tracking. Under the checked policy
// the wrapper is armed with a drop check: if it becomes unreachable before
// a terminal operation runs, a *LinearityViolation is reported.
func New[T any](payload T) Linear[T] {
	return newLinear(payload, 2)
}

// newLinear builds a wrapper on behalf of a public operation. skip is the
// runtime.Caller frame count from newLinear to that operation's caller,
// so the recorded origin points at user code.
func newLinear[T any](payload T, skip int) Linear[T] {
	s := &state[T]{
		payload:   payload,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		origin:    callerOrigin(skip + 1),
		typeName:  fmt.Sprintf("%T", payload),
	}
	if enforced {
		s.cleanup = runtime.AddCleanup(s, reportLeak, &LinearityViolation{
			ID:        s.id,
			TypeName:  s.typeName,
			Origin:    s.origin,
			CreatedAt: s.createdAt,
		})
	}
	emit(Event{
		Kind:     EventCreated,
		ID:       s.id,
		TypeName: s.typeName,
		Origin:   s.origin,
		At:       s.createdAt,
	})
	return Linear[T]{s: s}
}

// reportLeak runs on the runtime cleanup goroutine when an unconsumed
// wrapper becomes unreachable. It must not reference the state itself.
func reportLeak(v *LinearityViolation) {
	emit(Event{
		Kind:     EventViolated,
		ID:       v.ID,
		TypeName: v.TypeName,
		Origin:   v.Origin,
		At:       time.Now().UTC(),
	})
	reportViolation(v)
}

// IntoInner consumes the wrapper and returns the payload, ending linear
// tracking. This is the primary terminal operation.
func (l Linear[T]) IntoInner() T {
	return l.take()
}

// Destroy consumes the wrapper and discards the payload. Use it when
// releasing the payload is itself the desired terminal action. The payload
// is released to the garbage collector as-is; if it holds external
// resources, close them first and Destroy the wrapper after.
func (l Linear[T]) Destroy() {
	_ = l.take()
}

// take marks the wrapper consumed and extracts the payload. Exactly one
// take succeeds per wrapper across all copies.
func (l Linear[T]) take() T {
	if l.s == nil {
		panic("linear: use of zero Linear")
	}
	if !l.s.consumed.CompareAndSwap(0, 1) {
		panic("linear: value already consumed")
	}
	payload := l.s.payload
	var zero T
	l.s.payload = zero
	emit(Event{
		Kind:     EventConsumed,
		ID:       l.s.id,
		TypeName: l.s.typeName,
		Origin:   l.s.origin,
		At:       time.Now().UTC(),
	})
	if enforced {
		l.s.cleanup.Stop()
		// Stop only removes the cleanup if the state is still reachable
		// across the call; the field load above is otherwise its last use,
		// and a GC in that window would queue a false violation.
		runtime.KeepAlive(l.s)
	}
	return payload
}

func callerOrigin(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
