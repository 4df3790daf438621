// Package lincheck implements a go/analysis analyzer that rejects, at
// build time, code paths that provably drop a linear value without
// consuming it. Wired into CI through go vet -vettool (see cmd/lincheck),
// it turns a LinearityViolation from a runtime failure into a failed
// build.
//
// The analysis is local and best-effort:
//
//   - a call producing a Linear value used as a bare statement is
//     reported (the value is discarded immediately);
//   - a linear value assigned to the blank identifier is reported.
//
// A local that is assigned a Linear value and never used again does not
// need a diagnostic here: the compiler's declared-and-not-used error
// already rejects it.
//
// A wrapper that escapes into a struct, channel, or long-lived variable
// is not followed; such drops are only caught by the runtime check.
// False negatives are accepted — this is not a sound linearity proof.
package lincheck
