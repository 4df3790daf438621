// Package trace provides a lifecycle tracker for linear wrappers.
//
// A Tracker subscribes to the wrapper lifecycle events of
// [github.com/dzmitry-lahoda-forks/linear-type/pkg/linear] and
//
//   - logs every creation, consumption and violation through zap,
//   - keeps the set of live (created, not yet consumed) wrappers, and
//   - reports outstanding obligations via Check, for use as an
//     end-of-test or shutdown gate.
//
// Key operations:
//   - New: create a Tracker (WithLogger to attach a zap logger)
//   - Install/Remove: subscribe to / unsubscribe from lifecycle events
//   - Live: number of wrappers currently unconsumed
//   - Check: error enumerating live wrappers and observed violations
package trace
