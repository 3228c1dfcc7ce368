package event

import (
	"context"

	"github.com/viant/drainly/executor"
	"github.com/viant/drainly/messaging"
)

// Publisher sends events to a queue and consumes them back, acknowledging on
// delivery.
type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

// NewPublisher returns a publisher backed by queue.
func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

// Publish sends event to the underlying queue.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	return p.queue.Publish(ctx, event)
}

// Consume retrieves and acknowledges the next event.
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

// Sink adapts publisher into an executor.Sink.  Publish failures (e.g. a
// full buffer) drop the record: diagnostics must never affect execution.
func Sink(publisher *Publisher[executor.Record]) executor.Sink {
	return func(record executor.Record) {
		_ = publisher.Publish(context.Background(), New(record.Channel, record))
	}
}
