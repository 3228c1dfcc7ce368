// Package event carries executor diagnostics to host-installed listeners.
// The executor itself only knows the Sink function type; this package routes
// sinks through a messaging queue so hosts can observe passes without
// touching the execution path.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Event wraps one diagnostic payload.
type Event[T any] struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data"`
}

// New returns an event for channel carrying data.
func New[T any](channel string, data T) *Event[T] {
	return &Event[T]{
		ID:        uuid.New().String(),
		Channel:   channel,
		CreatedAt: time.Now(),
		Data:      data,
	}
}
