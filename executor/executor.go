// Package executor drains stored task queues under a per-execution weight
// quota.
//
// The package separates two seams on purpose: the Executor interface is the
// container contract a host stores and mutates, while the scheduling
// strategy lives inside Execute.  Alternative strategies (multi-pass with
// retries of skipped tasks, priority, fairness) implement Executor against
// the same queue operations without touching the host plumbing.  Only the
// single-pass strategy ships with drainly.
package executor

import "github.com/viant/drainly/weight"

// Executor is a storage-resident task container.  It owns exactly one
// ordered queue plus a static binding to a quota provider; it holds no
// resources that require finalization.
type Executor[T any] interface {
	// Execute drains tasks according to the implementation's strategy,
	// consuming at most the provider's quota, and returns the weight
	// actually consumed.  The returned weight accounts for the work the
	// tasks performed but not for any storage operations the host needed
	// to fetch or persist the executor; those remain the caller's charge.
	Execute() weight.Weight

	// AddTask appends task to the tail of the queue.
	AddTask(task T)

	// Remove deletes the first task equal to task; absent tasks are a
	// silent no-op.  The relative order of remaining tasks is preserved.
	Remove(task T)

	// Clear empties the queue without executing anything.
	Clear()

	// Count returns the current queue length.
	Count() int

	// Tasks returns a snapshot copy of the queue.
	Tasks() []T
}
