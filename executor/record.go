package executor

import (
	"fmt"

	"github.com/viant/drainly/weight"
)

// Channel identifies the debug stream pass records are emitted on.
const Channel = "runtime::task_executor"

// Record captures one single pass that performed work: the value-printed
// queue before and after, and the weight consumed.  Records are diagnostics
// only; emitting them never changes the queue or the reported weight.
type Record struct {
	Channel  string        `json:"channel"`
	Prev     []string      `json:"prev"`
	Next     []string      `json:"next"`
	Consumed weight.Weight `json:"consumed"`
}

// Sink receives pass records.  A nil sink drops them.
type Sink func(record Record)

func newRecord[T any](prev, next []T, consumed weight.Weight) Record {
	return Record{
		Channel:  Channel,
		Prev:     printTasks(prev),
		Next:     printTasks(next),
		Consumed: consumed,
	}
}

func printTasks[T any](tasks []T) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = fmt.Sprintf("%v", t)
	}
	return out
}
