package drainly

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/viant/drainly/config"
	"github.com/viant/drainly/executor"
	"github.com/viant/drainly/quota"
	"github.com/viant/drainly/storage"
	"github.com/viant/drainly/task"
	"github.com/viant/drainly/tracing"
	"github.com/viant/drainly/weight"
)

// Service hosts stored executors keyed by queue name.  It owns no state
// besides its bindings: every operation loads from the store, mutates and
// persists back, so a service can be recreated freely between host turns.
type Service[T task.Task[T], PT task.Ptr[T]] struct {
	store    storage.Store
	provider quota.Provider
	costs    config.Costs
	sink     executor.Sink
	tracing  bool
}

// New returns a service draining queues in store under provider's quota.
func New[T task.Task[T], PT task.Ptr[T]](store storage.Store, provider quota.Provider, opts ...Option) *Service[T, PT] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Service[T, PT]{
		store:    store,
		provider: provider,
		costs:    o.costs,
		sink:     o.sink,
		tracing:  o.tracing,
	}
}

// Add appends t to the stored queue under key without decoding the queue:
// only the count prefix is rewritten.
func (s *Service[T, PT]) Add(ctx context.Context, key string, t T) error {
	return s.value(key).Append(ctx, t)
}

// Len probes the stored queue length under key without decoding any task.
func (s *Service[T, PT]) Len(ctx context.Context, key string) (int, error) {
	return s.value(key).Len(ctx)
}

// Run loads the executor under key, drains it once and persists the
// survivors.  The returned weight is the pass consumption plus the
// configured read and write costs of the enclosing mutate.
func (s *Service[T, PT]) Run(ctx context.Context, key string) (weight.Weight, error) {
	var span *tracing.Span
	if s.tracing {
		ctx, span = tracing.StartSpan(ctx, "drainly.Run")
	}

	e := s.executor()
	var consumed weight.Weight
	err := s.value(key).Mutate(ctx, e, func(pe *executor.SinglePassExecutor[T, PT]) {
		consumed = pe.Execute()
	})
	if err != nil {
		tracing.EndSpan(span, err)
		return 0, err
	}

	total := consumed.Add(weight.Weight(s.costs.Read)).Add(weight.Weight(s.costs.Write))
	if span != nil {
		span.WithAttributes(map[string]string{
			"drainly.invocation": uuid.New().String(),
			"drainly.key":        key,
			"drainly.consumed":   strconv.FormatUint(uint64(total), 10),
			"drainly.remaining":  strconv.Itoa(e.Count()),
		})
		tracing.EndSpan(span, nil)
	}
	return total, nil
}

// Remove deletes the first stored task equal to t under key.
func (s *Service[T, PT]) Remove(ctx context.Context, key string, t T) error {
	e := s.executor()
	return s.value(key).Mutate(ctx, e, func(pe *executor.SinglePassExecutor[T, PT]) {
		pe.Remove(t)
	})
}

// Clear empties the stored queue under key without executing anything.
func (s *Service[T, PT]) Clear(ctx context.Context, key string) error {
	e := s.executor()
	return s.value(key).Mutate(ctx, e, func(pe *executor.SinglePassExecutor[T, PT]) {
		pe.Clear()
	})
}

// Tasks returns a snapshot of the stored queue under key.
func (s *Service[T, PT]) Tasks(ctx context.Context, key string) ([]T, error) {
	e := s.executor()
	if err := s.value(key).Load(ctx, e); err != nil {
		return nil, err
	}
	return e.Tasks(), nil
}

// Delete removes the stored queue under key entirely.
func (s *Service[T, PT]) Delete(ctx context.Context, key string) error {
	return s.value(key).Delete(ctx)
}

func (s *Service[T, PT]) executor() *executor.SinglePassExecutor[T, PT] {
	e := executor.NewSinglePass[T, PT](s.provider)
	e.SetSink(s.sink)
	return e
}

func (s *Service[T, PT]) value(key string) *storage.Value[executor.SinglePassExecutor[T, PT], *executor.SinglePassExecutor[T, PT]] {
	return storage.NewValue[executor.SinglePassExecutor[T, PT]](s.store, key)
}
