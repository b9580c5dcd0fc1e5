package usecase

import (
	"context"
	"fmt"
	"sync"

	"notification-client/internal/alert"
	"notification-client/pkg/log"
)

type implReadSync struct {
	logger log.Logger
	repo   alert.Repository
	store  alert.Store

	mu      sync.Mutex
	unread  []int64
	visible bool
}

func (r *implReadSync) onChange(snap alert.Snapshot) {
	unread := snap.UnreadIDs()
	r.mu.Lock()
	r.unread = unread
	r.mu.Unlock()
}

func (r *implReadSync) Unread() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int64, len(r.unread))
	copy(out, r.unread)
	return out
}

func (r *implReadSync) ReadAlerts(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.repo.MarkRead(ctx, ids); err != nil {
		r.logger.Errorf(ctx, "internal.alert.usecase.ReadAlerts: %d alerts: %v", len(ids), err)
		return fmt.Errorf("%w: %w", alert.ErrReadFailed, err)
	}
	r.store.ApplyReadState(ids)
	r.logger.Debugf(ctx, "internal.alert.usecase.ReadAlerts: acknowledged %d alerts", len(ids))
	return nil
}

func (r *implReadSync) SetVisible(ctx context.Context, visible bool) error {
	r.mu.Lock()
	closing := r.visible && !visible
	r.visible = visible
	ids := make([]int64, len(r.unread))
	copy(ids, r.unread)
	r.mu.Unlock()

	if !closing || len(ids) == 0 {
		return nil
	}
	return r.ReadAlerts(ctx, ids)
}
