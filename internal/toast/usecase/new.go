package usecase

import (
	"notification-client/internal/toast"
	"notification-client/pkg/log"
)

// New creates a single-slot toast dispatcher.
func New(logger log.Logger, opts toast.Options) toast.Dispatcher {
	return &implDispatcher{
		logger: logger,
		ttl:    opts.TTL,
	}
}
