// Package pubsub is an in-process publish-subscribe bus with named, typed topics.
package pubsub

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Sink receives every event published on a topic it is attached to, e.g. to
// mirror events to another process.
type Sink interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Handler consumes events of type T.
type Handler[T any] func(ctx context.Context, event T)

type subscription[T any] struct {
	id int
	fn Handler[T]
}

// Topic is a named channel carrying events of type T. Subscribers are called
// synchronously in registration order.
type Topic[T any] struct {
	name string

	mu    sync.RWMutex
	subs  []subscription[T]
	sinks []Sink
	next  int
}

// NewTopic creates a topic with the given name.
func NewTopic[T any](name string) *Topic[T] {
	return &Topic[T]{name: name}
}

func (t *Topic[T]) Name() string {
	return t.name
}

// Subscribe registers fn and returns a func that removes it.
func (t *Topic[T]) Subscribe(fn Handler[T]) func() {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.next
	t.next++
	t.subs = append(t.subs, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			for i, s := range t.subs {
				if s.id == id {
					t.subs = append(t.subs[:i:i], t.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// AttachSink adds a sink that receives every published event.
func (t *Topic[T]) AttachSink(s Sink) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sinks = append(t.sinks, s)
}

// Publish delivers event to subscribers, then to sinks. Subscribers always
// run; sink failures are joined into the returned error.
func (t *Topic[T]) Publish(ctx context.Context, event T) error {
	t.mu.RLock()
	subs := append([]subscription[T](nil), t.subs...)
	sinks := append([]Sink(nil), t.sinks...)
	t.mu.RUnlock()

	for _, s := range subs {
		s.fn(ctx, event)
	}

	var errs []error
	for _, s := range sinks {
		if err := s.Publish(ctx, t.name, event); err != nil {
			errs = append(errs, fmt.Errorf("sink %s: %w", t.name, err))
		}
	}
	return errors.Join(errs...)
}
