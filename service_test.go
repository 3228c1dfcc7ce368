package drainly_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/drainly"
	"github.com/viant/drainly/config"
	"github.com/viant/drainly/event"
	"github.com/viant/drainly/executor"
	"github.com/viant/drainly/messaging/memory"
	"github.com/viant/drainly/quota"
	memstore "github.com/viant/drainly/storage/memory"
	"github.com/viant/drainly/tasktest"
	"github.com/viant/drainly/weight"
)

func TestServiceDrainsStoredQueue(t *testing.T) {
	ctx := context.Background()
	srv := drainly.New[tasktest.Task](memstore.New(), quota.Fixed(7))

	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))
	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))
	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))

	n, err := srv.Len(ctx, "jobs")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	expected := []weight.Weight{7, 7, 7, 7, 2, 0}
	for _, want := range expected {
		consumed, err := srv.Run(ctx, "jobs")
		assert.NoError(t, err)
		assert.Equal(t, want, consumed)
	}

	n, err = srv.Len(ctx, "jobs")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestServiceChargesStorageCosts(t *testing.T) {
	ctx := context.Background()
	srv := drainly.New[tasktest.Task](memstore.New(), quota.Fixed(7),
		drainly.WithCosts(config.Costs{Read: 2, Write: 3}))

	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))

	// 7 for the pass plus 2 + 3 for the enclosing mutate
	consumed, err := srv.Run(ctx, "jobs")
	assert.NoError(t, err)
	assert.Equal(t, weight.Weight(12), consumed)

	// an empty pass still pays for the storage round trip
	assert.NoError(t, srv.Clear(ctx, "jobs"))
	consumed, err = srv.Run(ctx, "jobs")
	assert.NoError(t, err)
	assert.Equal(t, weight.Weight(5), consumed)
}

func TestServiceQueueOperations(t *testing.T) {
	ctx := context.Background()
	srv := drainly.New[tasktest.Task](memstore.New(), quota.Fixed(10))

	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))
	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(20)))
	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))

	assert.NoError(t, srv.Remove(ctx, "jobs", tasktest.NewBuilder().Build(10)))
	tasks, err := srv.Tasks(ctx, "jobs")
	assert.NoError(t, err)
	assert.Equal(t, []tasktest.Task{
		tasktest.NewBuilder().Build(20),
		tasktest.NewBuilder().Build(10),
	}, tasks)

	assert.NoError(t, srv.Clear(ctx, "jobs"))
	n, err := srv.Len(ctx, "jobs")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.NoError(t, srv.Delete(ctx, "jobs"))
}

func TestServiceKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	srv := drainly.New[tasktest.Task](memstore.New(), quota.Fixed(10))

	assert.NoError(t, srv.Add(ctx, "a", tasktest.NewBuilder().Build(10)))
	assert.NoError(t, srv.Add(ctx, "b", tasktest.NewBuilder().Build(20)))

	consumed, err := srv.Run(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, weight.Weight(10), consumed)

	tasks, err := srv.Tasks(ctx, "b")
	assert.NoError(t, err)
	if assert.Len(t, tasks, 1) {
		assert.Equal(t, weight.Weight(20), tasks[0].Weight)
	}
}

func TestServicePublishesPassRecords(t *testing.T) {
	ctx := context.Background()
	queue := memory.NewQueue[event.Event[executor.Record]](memory.DefaultConfig())
	publisher := event.NewPublisher(queue)

	srv := drainly.New[tasktest.Task](memstore.New(), quota.Fixed(7),
		drainly.WithSink(event.Sink(publisher)))

	received := make(chan *event.Event[executor.Record], 4)
	listener := event.NewListener(publisher, func(e *event.Event[executor.Record]) {
		received <- e
	})
	listener.Start()
	defer listener.Stop()

	assert.NoError(t, srv.Add(ctx, "jobs", tasktest.NewBuilder().Build(10)))
	_, err := srv.Run(ctx, "jobs")
	assert.NoError(t, err)

	select {
	case e := <-received:
		assert.Equal(t, executor.Channel, e.Channel)
		assert.Equal(t, weight.Weight(7), e.Data.Consumed)
		assert.Equal(t, []string{"{10 0 true}"}, e.Data.Prev)
		assert.Equal(t, []string{"{3 0 true}"}, e.Data.Next)
	case <-time.After(time.Second):
		t.Fatal("no pass record delivered")
	}
}
