// Package memory provides a deterministic in-process queue.  Unlike broker
// backed implementations it never spawns goroutines or sleeps: a nacked
// message is requeued synchronously, so queue behaviour is reproducible
// within a deterministic host turn.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/viant/drainly/messaging"
)

// ErrFull is returned by Publish when the buffer has no room left.  Callers
// publishing diagnostics are expected to drop on ErrFull rather than block.
var ErrFull = errors.New("memory queue: full")

// Config for the memory queue.
type Config struct {
	// Buffer bounds the number of undelivered messages.
	Buffer int

	// MaxRetries bounds how many times a message is requeued after Nack;
	// beyond it the message is dropped.
	MaxRetries int
}

// DefaultConfig returns a standard configuration.
func DefaultConfig() Config {
	return Config{Buffer: 128, MaxRetries: 3}
}

// Message implements messaging.Message for the in-memory queue.
type Message[T any] struct {
	id        string
	payload   T
	queue     *Queue[T]
	retries   int
	mu        sync.Mutex
	processed bool
}

// T returns the message payload.
func (m *Message[T]) T() *T {
	return &m.payload
}

// Ack acknowledges the message as processed successfully.
func (m *Message[T]) Ack() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return errors.New("message already processed")
	}
	m.processed = true
	return nil
}

// Nack requeues the message synchronously while retries remain; afterwards
// the message is dropped.
func (m *Message[T]) Nack(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.processed {
		return errors.New("message already processed")
	}
	m.processed = true

	if m.retries >= m.queue.config.MaxRetries {
		return nil
	}
	requeued := &Message[T]{
		id:      m.id,
		payload: m.payload,
		queue:   m.queue,
		retries: m.retries + 1,
	}
	select {
	case m.queue.messages <- requeued:
		return nil
	default:
		return ErrFull
	}
}

// Queue implements an in-memory messaging.Queue.
type Queue[T any] struct {
	messages chan *Message[T]
	config   Config
}

// Ensure Queue implements messaging.Queue
var _ messaging.Queue[any] = (*Queue[any])(nil)

// NewQueue creates a new in-memory queue.
func NewQueue[T any](config Config) *Queue[T] {
	if config.Buffer <= 0 {
		config.Buffer = DefaultConfig().Buffer
	}
	return &Queue[T]{
		messages: make(chan *Message[T], config.Buffer),
		config:   config,
	}
}

// Publish adds a new item to the queue without blocking; a full buffer
// yields ErrFull.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	msg := &Message[T]{
		id:      uuid.New().String(),
		payload: *t,
		queue:   q,
	}
	select {
	case q.messages <- msg:
		return nil
	default:
		return ErrFull
	}
}

// Consume retrieves a single item from the queue, waiting until one is
// available or ctx is done.
func (q *Queue[T]) Consume(ctx context.Context) (messaging.Message[T], error) {
	select {
	case msg := <-q.messages:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the current number of buffered messages.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}
