package usecase

import (
	"notification-client/internal/alert"
	"notification-client/internal/model"
	"notification-client/pkg/log"
)

// NewStore creates an empty Feed Store backed by repo.
func NewStore(logger log.Logger, repo alert.Repository) alert.Store {
	return &implStore{
		logger:   logger,
		repo:     repo,
		pageSize: alert.PageSize,
		present:  make(map[int64]struct{}),
		hasMore:  true,
	}
}

// NewReadSync creates a Read-State Synchronizer observing store.
func NewReadSync(logger log.Logger, repo alert.Repository, store alert.Store) alert.ReadSync {
	rs := &implReadSync{
		logger: logger,
		repo:   repo,
		store:  store,
		unread: store.Snapshot().UnreadIDs(),
	}
	store.Subscribe(rs.onChange)
	return rs
}

func cloneAlerts(in []model.Alert) []model.Alert {
	out := make([]model.Alert, len(in))
	copy(out, in)
	return out
}
