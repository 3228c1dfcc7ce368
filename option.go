package drainly

import (
	"github.com/viant/drainly/config"
	"github.com/viant/drainly/executor"
)

// Option customizes a Service.
type Option func(o *options)

type options struct {
	costs   config.Costs
	sink    executor.Sink
	tracing bool
}

// WithCosts sets the storage weight charged around each Run: one read on
// load and one write on persist.
func WithCosts(costs config.Costs) Option {
	return func(o *options) { o.costs = costs }
}

// WithConfig applies the costs of cfg; the quota provider is passed to New
// separately, typically cfg.Provider().
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.costs = cfg.Costs }
}

// WithSink installs a pass-record sink on every executor the service runs.
func WithSink(sink executor.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// WithTracing wraps each Run in an OpenTelemetry span.  The global provider
// still has to be initialised via the tracing package for spans to be
// exported.
func WithTracing() Option {
	return func(o *options) { o.tracing = true }
}
