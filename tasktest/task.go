// Package tasktest provides the reference task the drainly test suite runs
// against.  It parameterizes the behavioral matrix any production task should
// be measured against: greedy versus all-or-none consumption, optionally with
// fractional half-step progress.  The package is exported so hosts can reuse
// the matrix when testing their own executors or strategies.
package tasktest

import (
	"github.com/viant/drainly/codec"
	"github.com/viant/drainly/weight"
)

// Task is the reference task.
type Task struct {
	// Weight is the remaining work.
	Weight weight.Weight

	// Half counts the fractional steps left.  While non-zero, each Advance
	// targets half of the remaining weight and decrements the counter; once
	// zero, Advance targets the full remaining weight.
	Half uint8

	// Greedy selects the consumption mode.  A greedy task consumes up to
	// the offered cap even when the cap is smaller than its target.  A
	// non-greedy task consumes its whole current target or nothing at all.
	Greedy bool
}

// Advance implements the task contract.
func (t Task) Advance(max weight.Weight) (*Task, weight.Weight) {
	target := t.Weight
	if t.Half > 0 {
		t.Half--
		target = t.Weight / 2
	}
	return t.consume(target, max)
}

// consume deducts up to target from the remaining weight, capped at max, and
// decides whether the task survives.
func (t Task) consume(target, max weight.Weight) (*Task, weight.Weight) {
	var consumed weight.Weight
	switch {
	case target <= max:
		// the cap fits the whole current target
		consumed = target
	case t.Greedy:
		// partial progress up to the cap
		consumed = max
	default:
		// all-or-none and the cap is not enough
		consumed = 0
	}

	t.Weight = t.Weight.Sub(consumed)
	if t.Weight.IsZero() {
		return nil, consumed
	}
	return &t, consumed
}

// Equal reports value equality.
func (t Task) Equal(other Task) bool {
	return t == other
}

// EncodeTo appends the task's compact encoding.
func (t Task) EncodeTo(enc *codec.Encoder) {
	enc.Uvarint(uint64(t.Weight))
	enc.Byte(t.Half)
	enc.Bool(t.Greedy)
}

// DecodeFrom reads one task encoding.
func (t *Task) DecodeFrom(dec *codec.Decoder) error {
	w, err := dec.Uvarint()
	if err != nil {
		return err
	}
	half, err := dec.Byte()
	if err != nil {
		return err
	}
	greedy, err := dec.Bool()
	if err != nil {
		return err
	}
	t.Weight = weight.Weight(w)
	t.Half = half
	t.Greedy = greedy
	return nil
}

// Builder constructs reference tasks fluently.
type Builder struct {
	half   uint8
	greedy bool
}

// NewBuilder returns a builder producing greedy, full-step tasks.
func NewBuilder() *Builder {
	return &Builder{greedy: true}
}

// Half sets the fractional-step counter.
func (b *Builder) Half(half uint8) *Builder {
	b.half = half
	return b
}

// Greedy sets the consumption mode.
func (b *Builder) Greedy(greedy bool) *Builder {
	b.greedy = greedy
	return b
}

// Build returns a task with the given remaining weight.
func (b *Builder) Build(w weight.Weight) Task {
	return Task{Weight: w, Half: b.half, Greedy: b.greedy}
}
