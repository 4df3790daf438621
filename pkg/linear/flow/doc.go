// Package flow moves linear values through channel pipelines with a
// bounded worker pool. Each wrapper is owned by exactly one goroutine at
// a time — ownership transfers with the channel send — so the single-owner
// rule of the linear discipline is preserved across goroutines.
//
// Key operations:
//   - Source: emit wrappers for a slice of values
//   - Run: fan wrappers across workers, applying a transform to each
//   - Collect: consume every remaining wrapper via IntoInner
//   - Drain: destroy every remaining wrapper (cancellation path)
//
// Cancellation honors the must-consume invariant: when the context is
// canceled, in-flight wrappers are destroyed rather than dropped, so a
// canceled pipeline never raises a LinearityViolation.
package flow
