package linear

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// LinearityViolation reports a wrapper that was dropped without being
// consumed. Under the checked policy it is passed to the violation
// handler; the default handler panics with it.
type LinearityViolation struct {
	ID        uuid.UUID
	TypeName  string
	Origin    string
	CreatedAt time.Time
}

func (v *LinearityViolation) Error() string {
	return fmt.Sprintf("linear: %s value created at %s (id %s) was dropped without being consumed",
		v.TypeName, v.Origin, v.ID)
}

// ErrAbsent is the failure carried by an UnwrapFailure when UnwrapSome is
// called on a None value.
var ErrAbsent = errors.New("linear: absent value")

// UnwrapFailure is the panic value raised by UnwrapOk and UnwrapSome when
// the wrapped railway value is Err or None. It carries the original
// failure for diagnostics.
type UnwrapFailure struct {
	Err error
}

func (f *UnwrapFailure) Error() string {
	return "linear: unwrap of failed value: " + f.Err.Error()
}

func (f *UnwrapFailure) Unwrap() error {
	return f.Err
}

// violationHandler is the report sink for linearity violations. nil means
// the default behavior: panic on the calling (cleanup) goroutine.
var violationHandler atomic.Pointer[func(*LinearityViolation)]

// SetViolationHandler replaces the violation report sink and returns the
// previous one. Passing nil restores the default, which panics with the
// violation. The handler only changes how violations are reported; the
// policy that decides whether they are detected at all is fixed at build
// time.
func SetViolationHandler(fn func(*LinearityViolation)) func(*LinearityViolation) {
	var prev *func(*LinearityViolation)
	if fn == nil {
		prev = violationHandler.Swap(nil)
	} else {
		prev = violationHandler.Swap(&fn)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

func reportViolation(v *LinearityViolation) {
	if h := violationHandler.Load(); h != nil {
		(*h)(v)
		return
	}
	panic(v)
}
