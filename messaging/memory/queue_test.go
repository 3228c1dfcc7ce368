package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishConsumeAck(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue[string](DefaultConfig())

	payload := "hello"
	assert.NoError(t, queue.Publish(ctx, &payload))
	assert.Equal(t, 1, queue.Size())

	msg, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "hello", *msg.T())
	assert.NoError(t, msg.Ack())

	// double processing is rejected
	assert.Error(t, msg.Ack())
}

func TestNackRequeuesUntilRetriesExhausted(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue[int](Config{Buffer: 4, MaxRetries: 2})

	payload := 42
	assert.NoError(t, queue.Publish(ctx, &payload))

	for i := 0; i < 2; i++ {
		msg, err := queue.Consume(ctx)
		assert.NoError(t, err)
		assert.NoError(t, msg.Nack(assert.AnError))
		assert.Equal(t, 1, queue.Size())
	}

	// retries exhausted: the message is dropped
	msg, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, msg.Nack(assert.AnError))
	assert.Equal(t, 0, queue.Size())
}

func TestPublishFullBuffer(t *testing.T) {
	ctx := context.Background()
	queue := NewQueue[int](Config{Buffer: 1})

	one, two := 1, 2
	assert.NoError(t, queue.Publish(ctx, &one))
	assert.ErrorIs(t, queue.Publish(ctx, &two), ErrFull)
}
