package toast

import (
	"time"

	"notification-client/internal/model"
)

// Toast is an ephemeral notification occupying the single slot.
type Toast struct {
	Seq     uint64      `json:"seq"`
	Alert   model.Alert `json:"alert"`
	ShownAt time.Time   `json:"shownAt"`
}

type Listener func(*Toast)

// Options configures a Dispatcher. A zero TTL leaves dismissal to the caller.
type Options struct {
	TTL time.Duration
}
