package alert

import (
	"context"

	"notification-client/internal/model"
)

// Repository is the alerts REST API.
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]model.Alert, error)
	MarkRead(ctx context.Context, ids []int64) error
}

// Store is the authoritative, newest-first list of the session's alerts.
// It is the only writer of the sequence; every mutation goes through it.
type Store interface {
	// Initialize fetches page 0 and replaces the sequence.
	Initialize(ctx context.Context) error
	// LoadMore fetches the next page and appends it. It does nothing when the
	// feed is exhausted or a load is already in flight.
	LoadMore(ctx context.Context) error
	// RecordIncoming prepends a live alert. It reports false when the id is
	// already present; the existing entry is kept.
	RecordIncoming(ctx context.Context, a model.Alert) bool
	ApplyReadState(ids []int64)
	// ApplyProcessedAction records action once; later calls are ignored.
	ApplyProcessedAction(id int64, action model.ProcessedAction) bool
	Reset()
	Snapshot() Snapshot
	// Subscribe registers an observer called after every effective mutation,
	// in registration order. Observers must not mutate the store synchronously.
	Subscribe(fn Observer) (unsubscribe func())
}

// ReadSync keeps the unread set and acknowledges read alerts upstream.
type ReadSync interface {
	ReadAlerts(ctx context.Context, ids []int64) error
	// SetVisible reports the feed view visibility. An open to closed transition
	// with unread alerts acknowledges all of them.
	SetVisible(ctx context.Context, visible bool) error
	Unread() []int64
}
