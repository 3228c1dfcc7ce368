// Package quota supplies the per-execution weight cap.
package quota

import "github.com/viant/drainly/weight"

// Provider yields the maximum weight a single Execute call may consume.
// Get is called exactly once per execution, so a provider backed by mutable
// host state is sampled atomically per invocation; the cap may differ
// between invocations.
type Provider interface {
	Get() weight.Weight
}

// Fixed is a constant cap.
type Fixed weight.Weight

// Get implements Provider.
func (f Fixed) Get() weight.Weight {
	return weight.Weight(f)
}

// Func adapts a function to a Provider.
type Func func() weight.Weight

// Get implements Provider.
func (f Func) Get() weight.Weight {
	return f()
}
