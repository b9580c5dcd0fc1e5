package websocket

import (
	"context"

	"notification-client/internal/model"
)

// Manager owns the push-channel connection of one session.
type Manager interface {
	// Start moves Idle to Connecting and keeps the connection alive in the
	// background until Close.
	Start(ctx context.Context) error
	// Close unsubscribes, releases the transport and cancels any pending
	// reconnect. Safe to call more than once, and before Start.
	Close(ctx context.Context) error
	State() State
	// OnStateChange registers a listener called on every transition, in
	// registration order.
	OnStateChange(fn StateListener)
}

// Handler receives decoded push messages. Calls are made from the
// connection's read loop, one at a time.
type Handler interface {
	HandleAlert(ctx context.Context, a model.Alert)
	HandleToast(ctx context.Context, a model.Alert)
}
