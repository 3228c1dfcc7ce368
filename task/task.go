// Package task defines the contract between the executor and the units of
// deferred work it drains.
package task

import (
	"github.com/viant/drainly/codec"
	"github.com/viant/drainly/weight"
)

// Task is a serializable, comparable unit of deferred work.  This contract
// makes no assumption about *when* a task runs; it can be drained as
// mandatory work at the start of a host turn or in an idle slot.
//
// Advance consumes the receiver by value and runs the task under max.  It
// must not consume more than max under any circumstance; consuming less is
// allowed.  A nil survivor means the task is complete and must not be kept
// in the queue anymore; a non-nil survivor carries all state the task wants
// to retain for a later turn.
//
// It is critically important to return a non-zero consumed weight only when
// the task actually made externally observable progress.  The executor
// treats positive consumption as evidence that the slot was productive, and
// a host may grant such a task further slots for numerous iterations.
//
// The Go zero value of T serves as the container's default task; it is never
// exercised by scheduling.
type Task[T any] interface {
	// Advance runs the task under max and reports the survivor, if any,
	// along with the exact weight consumed.
	Advance(max weight.Weight) (survivor *T, consumed weight.Weight)

	// Equal reports value equality with other; Remove relies on it.
	Equal(other T) bool

	// EncodeTo appends the task's compact encoding to enc.  The encoding
	// must round-trip through Ptr.DecodeFrom and be self-delimiting, since
	// task encodings are stored back to back.
	EncodeTo(enc *codec.Encoder)
}

// Ptr constrains the pointer form of a task so containers can decode
// elements in place.
type Ptr[T any] interface {
	*T

	// DecodeFrom reads one task encoding from dec.
	DecodeFrom(dec *codec.Decoder) error
}
