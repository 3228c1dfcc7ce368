package executor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/drainly/codec"
	"github.com/viant/drainly/quota"
	"github.com/viant/drainly/tasktest"
	"github.com/viant/drainly/weight"
)

func TestQueueOperations(t *testing.T) {
	e := newExecutor(quota.Fixed(10))
	assert.Equal(t, 0, e.Count())

	e.AddTask(tasktest.NewBuilder().Build(10))
	e.AddTask(tasktest.NewBuilder().Build(20))
	e.AddTask(tasktest.NewBuilder().Build(10))
	assert.Equal(t, 3, e.Count())
	assert.Equal(t, []weight.Weight{10, 20, 10}, remainingWeights(e))

	// only the first equal task goes away
	e.Remove(tasktest.NewBuilder().Build(10))
	assert.Equal(t, []weight.Weight{20, 10}, remainingWeights(e))

	// removing an absent task is a silent no-op
	e.Remove(tasktest.NewBuilder().Build(99))
	assert.Equal(t, []weight.Weight{20, 10}, remainingWeights(e))

	e.Clear()
	assert.Equal(t, 0, e.Count())
	assert.Empty(t, e.Tasks())
}

func TestTasksReturnsSnapshot(t *testing.T) {
	e := newExecutor(quota.Fixed(10))
	e.AddTask(tasktest.NewBuilder().Build(10))

	snapshot := e.Tasks()
	snapshot[0] = tasktest.NewBuilder().Build(99)
	assert.Equal(t, []weight.Weight{10}, remainingWeights(e))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	e := newExecutor(quota.Fixed(10))
	e.AddTask(tasktest.NewBuilder().Build(10))
	e.AddTask(tasktest.NewBuilder().Half(2).Greedy(false).Build(20))
	e.AddTask(tasktest.NewBuilder().Build(30))

	enc := codec.NewEncoder()
	e.EncodeTo(enc)

	decoded := newExecutor(quota.Fixed(10))
	assert.NoError(t, decoded.DecodeFrom(codec.NewDecoder(enc.Data())))
	assert.True(t, decoded.Equal(e))
	assert.Equal(t, e.Tasks(), decoded.Tasks())
}

func TestEncodeEmptyExecutor(t *testing.T) {
	e := newExecutor(quota.Fixed(10))
	enc := codec.NewEncoder()
	e.EncodeTo(enc)
	// just the zero count, nothing else
	assert.Equal(t, []byte{0}, enc.Data())

	decoded := newExecutor(quota.Fixed(10))
	assert.NoError(t, decoded.DecodeFrom(codec.NewDecoder(enc.Data())))
	assert.Equal(t, 0, decoded.Count())
}

func TestDecodeCorruptInput(t *testing.T) {
	decoded := newExecutor(quota.Fixed(10))

	// count says two tasks but bytes hold none
	assert.Error(t, decoded.DecodeFrom(codec.NewDecoder([]byte{2})))

	// truncated varint count
	err := decoded.DecodeFrom(codec.NewDecoder([]byte{0x80}))
	assert.ErrorIs(t, err, codec.ErrUnexpectedEOF)
}

func TestExecutorEqual(t *testing.T) {
	a := newExecutor(quota.Fixed(10))
	b := newExecutor(quota.Fixed(99))
	assert.True(t, a.Equal(b))

	a.AddTask(tasktest.NewBuilder().Build(10))
	assert.False(t, a.Equal(b))

	b.AddTask(tasktest.NewBuilder().Build(10))
	assert.True(t, a.Equal(b))

	b.Remove(tasktest.NewBuilder().Build(10))
	b.AddTask(tasktest.NewBuilder().Build(11))
	assert.False(t, a.Equal(b))
}
