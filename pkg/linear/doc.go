// Package linear provides Linear[T], a wrapper for values that must be
// consumed exactly once. Discarding an unconsumed linear value is a logic
// bug, and under the default checked policy it is detected at drop time
// and reported as a fatal LinearityViolation.
//
// A wrapper is created with New, moved through zero or more transformation
// operations, and finished with exactly one terminal operation:
//
//   - New: wrap a value and start linear tracking
//   - Map/TryMap: transform the payload, consuming the source wrapper
//   - MapOk/MapSome/ThenOk: railway variants that short-circuit on Err/None
//   - IntoInner/Destroy: terminal operations that end linear tracking
//   - UnwrapOk/UnwrapSome: terminal operations that exit both the linear
//     discipline and the Result/Option railway (fatal on Err/None)
//   - Splice/Merge: fork one obligation into two, or join two into one
//
// Every transformation consumes its source and returns a fresh unconsumed
// wrapper, so the consumption obligation travels with the newest value in
// the chain. Consuming the same wrapper twice panics.
//
// # Enforcement
//
// Go has no destructors, so the must-consume invariant is checked with a
// runtime cleanup attached at construction: when an unconsumed wrapper
// becomes unreachable, the cleanup reports a *LinearityViolation. The
// default report panics on the cleanup goroutine, which terminates the
// process. This is a debugging aid, not a soundness guarantee — detection
// happens at garbage collection time, not at scope exit, and a wrapper
// that stays reachable forever is never detected. SetViolationHandler
// replaces the report sink for tests and for trackers such as
// [github.com/dzmitry-lahoda-forks/linear-type/pkg/linear/trace].
//
// # Build-mode policy
//
// The policy is fixed at compile time through build tags:
//
//   - default: checked — unconsumed drops are reported
//   - linear_unchecked: no drop checking; unconsumed wrappers are released
//     silently. An opt-out for validated, performance-sensitive builds.
//   - linear_peek: enables Peek, which reads the payload without consuming
//     it. Peek breaks the linear discipline (aliased, uncontrolled reads)
//     and exists only for debugging. It is not compiled in by default.
//
// A third mode rejects violations at build time instead of run time: the
// lincheck analyzer (pkg/linear/lincheck, cmd/lincheck) reports linear
// values that are provably dropped, and can be wired into CI via
// go vet -vettool so that a violating build fails. The analysis is
// best-effort and has false negatives.
//
// The wrapper has single-owner semantics. It may be moved between
// goroutines, but two goroutines must not operate on the same wrapper
// concurrently.
package linear
