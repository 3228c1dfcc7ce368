package executor

import (
	"github.com/viant/drainly/codec"
	"github.com/viant/drainly/quota"
	"github.com/viant/drainly/task"
	"github.com/viant/drainly/weight"
)

// SinglePassExecutor walks its queue once per Execute, offering each task
// the remaining budget in insertion order.
//
// This strategy suits homogeneous tasks.  When an intermediate all-or-none
// task declines the leftover, later tasks that would have fit still only see
// what remains; re-trying earlier tasks after the pass is the job of a
// multi-pass strategy, not of this one.
type SinglePassExecutor[T task.Task[T], PT task.Ptr[T]] struct {
	tasks    []T
	provider quota.Provider
	sink     Sink
}

// NewSinglePass returns an empty executor bound to provider.
func NewSinglePass[T task.Task[T], PT task.Ptr[T]](provider quota.Provider) *SinglePassExecutor[T, PT] {
	return &SinglePassExecutor[T, PT]{provider: provider}
}

// SetSink installs a pass-record sink; nil restores the discarding default.
func (e *SinglePassExecutor[T, PT]) SetSink(sink Sink) {
	e.sink = sink
}

// Execute implements Executor: it reads the quota once, runs a single pass
// and replaces the queue with the survivors.
func (e *SinglePassExecutor[T, PT]) Execute() weight.Weight {
	maxWeight := e.provider.Get()
	next, consumed := singlePass(e.tasks, maxWeight, e.sink)
	e.tasks = next
	return consumed
}

// AddTask appends task to the tail of the queue.
func (e *SinglePassExecutor[T, PT]) AddTask(task T) {
	e.tasks = append(e.tasks, task)
}

// Remove deletes the first task equal to task, if any.
func (e *SinglePassExecutor[T, PT]) Remove(task T) {
	for i := range e.tasks {
		if e.tasks[i].Equal(task) {
			e.tasks = append(e.tasks[:i], e.tasks[i+1:]...)
			return
		}
	}
}

// Clear empties the queue without executing anything.
func (e *SinglePassExecutor[T, PT]) Clear() {
	e.tasks = nil
}

// Count returns the current queue length.
func (e *SinglePassExecutor[T, PT]) Count() int {
	return len(e.tasks)
}

// Tasks returns a snapshot copy of the queue.
func (e *SinglePassExecutor[T, PT]) Tasks() []T {
	out := make([]T, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Equal reports whether both executors hold equal queues.
func (e *SinglePassExecutor[T, PT]) Equal(other *SinglePassExecutor[T, PT]) bool {
	if len(e.tasks) != len(other.tasks) {
		return false
	}
	for i := range e.tasks {
		if !e.tasks[i].Equal(other.tasks[i]) {
			return false
		}
	}
	return true
}

// EncodeTo writes the compact task count followed by each task's encoding.
// The executor adds no header, version byte or trailer of its own: its bytes
// are exactly the queue's, which is what LengthPrefixedEncoding declares and
// what the storage append and length-probe fast paths rely on.
func (e *SinglePassExecutor[T, PT]) EncodeTo(enc *codec.Encoder) {
	enc.Uvarint(uint64(len(e.tasks)))
	for i := range e.tasks {
		e.tasks[i].EncodeTo(enc)
	}
}

// DecodeFrom replaces the queue with the one read from dec.
func (e *SinglePassExecutor[T, PT]) DecodeFrom(dec *codec.Decoder) error {
	count, err := dec.Uvarint()
	if err != nil {
		return err
	}
	var tasks []T
	for i := uint64(0); i < count; i++ {
		var t T
		if err := PT(&t).DecodeFrom(dec); err != nil {
			return err
		}
		tasks = append(tasks, t)
	}
	e.tasks = tasks
	return nil
}

// LengthPrefixedEncoding marks the executor's encoding as a compact count
// followed by element encodings, enabling the storage shims.
func (e *SinglePassExecutor[T, PT]) LengthPrefixedEncoding() {}

// singlePass offers each task the remaining budget once, in insertion order,
// returning the surviving queue and the consumed weight.
//
// Tasks reached after the budget hits zero are carried over untouched, as is
// the whole queue when it is empty or maxWeight is zero.  The reported
// weight is computed from the budget (maxWeight minus leftover) rather than
// summed across tasks.
//
// Budget flows to earlier tasks first.  An early all-or-none task that does
// not fit in the leftover keeps later, smaller tasks from seeing the full
// budget; the pass never reorders or re-offers to compensate.
func singlePass[T task.Task[T]](tasks []T, maxWeight weight.Weight, sink Sink) ([]T, weight.Weight) {
	if len(tasks) == 0 || maxWeight.IsZero() {
		return tasks, 0
	}

	leftover := maxWeight
	next := make([]T, 0, len(tasks))
	for _, t := range tasks {
		if leftover.IsZero() {
			next = append(next, t)
			continue
		}
		survivor, consumed := t.Advance(leftover)
		leftover = leftover.Sub(consumed)
		if survivor != nil {
			next = append(next, *survivor)
		}
	}

	consumed := maxWeight.Sub(leftover)
	if sink != nil {
		sink(newRecord(tasks, next, consumed))
	}
	return next, consumed
}
