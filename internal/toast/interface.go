package toast

import (
	"context"

	"notification-client/internal/model"
)

// Dispatcher holds at most one toast. A new toast replaces the current one.
type Dispatcher interface {
	Show(ctx context.Context, a model.Alert) Toast
	// Dismiss clears the slot if it still holds the toast with the given seq.
	Dismiss(seq uint64) bool
	Clear()
	Current() (Toast, bool)
	// OnChange registers a listener receiving the new slot content (nil when cleared).
	OnChange(fn Listener)
}
