package coordinator

import (
	"context"

	"notification-client/internal/alert"
	"notification-client/internal/friend"
	"notification-client/internal/toast"
	ws "notification-client/internal/websocket"
)

// Coordinator runs the alert feed of one session.
type Coordinator interface {
	// Start loads the first page and opens the push channel.
	Start(ctx context.Context) error
	// Stop closes the push channel and clears all session state. Safe to call
	// more than once.
	Stop(ctx context.Context) error

	UserID() string
	Feed() alert.Store
	Reads() alert.ReadSync
	Toasts() toast.Dispatcher
	Friends() friend.Relay
	Connection() ws.Manager
}
