package usecase

import (
	"context"
	"fmt"
	"sync"

	"notification-client/internal/alert"
	"notification-client/internal/model"
	"notification-client/pkg/log"
)

type observerEntry struct {
	id int
	fn alert.Observer
}

type implStore struct {
	logger   log.Logger
	repo     alert.Repository
	pageSize int

	// mu guards the feed state.
	mu      sync.Mutex
	alerts  []model.Alert
	present map[int64]struct{}
	hasMore bool
	page    int
	loading bool
	// epoch changes on Reset; fetches started in an older epoch are dropped.
	epoch uint64
	// pushes counts RecordIncoming insertions.
	pushes uint64

	// notifyMu serializes observer delivery in mutation order.
	notifyMu  sync.Mutex
	obsMu     sync.Mutex
	observers []observerEntry
	nextObs   int
}

// mutate applies fn under the state lock and, if fn reports a change,
// notifies observers with the resulting snapshot.
func (s *implStore) mutate(fn func() bool) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	changed := fn()
	var snap alert.Snapshot
	if changed {
		snap = s.snapshotLocked()
	}
	s.mu.Unlock()

	if changed {
		s.notify(snap)
	}
	return changed
}

func (s *implStore) notify(snap alert.Snapshot) {
	s.obsMu.Lock()
	observers := make([]observerEntry, len(s.observers))
	copy(observers, s.observers)
	s.obsMu.Unlock()

	for _, o := range observers {
		o.fn(snap)
	}
}

func (s *implStore) snapshotLocked() alert.Snapshot {
	return alert.Snapshot{
		Alerts:  cloneAlerts(s.alerts),
		HasMore: s.hasMore,
		Page:    s.page,
	}
}

func (s *implStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	epoch, pushes := s.epoch, s.pushes
	s.mu.Unlock()

	alerts, err := s.repo.List(ctx, alert.ListOptions{Page: 0, Size: s.pageSize})
	if err != nil {
		s.logger.Errorf(ctx, "internal.alert.usecase.Initialize: %v", err)
		return fmt.Errorf("%w: %w", alert.ErrFetchFailed, err)
	}

	stale := false
	s.mutate(func() bool {
		if s.epoch != epoch {
			stale = true
			return false
		}
		// Live alerts recorded while the page was in flight sit at the front.
		// Keep the ones the page does not already contain.
		live := int(s.pushes - pushes)
		if live > len(s.alerts) {
			live = len(s.alerts)
		}
		kept := s.alerts[:live]

		s.alerts = make([]model.Alert, 0, len(kept)+len(alerts))
		s.present = make(map[int64]struct{}, len(kept)+len(alerts))
		page := make(map[int64]struct{}, len(alerts))
		for _, a := range alerts {
			page[a.ID] = struct{}{}
		}
		for _, a := range kept {
			if _, dup := page[a.ID]; !dup {
				s.appendLocked(a)
			}
		}
		for _, a := range alerts {
			s.appendLocked(a)
		}
		s.hasMore = len(alerts) == s.pageSize
		s.page = 0
		return true
	})
	if stale {
		s.logger.Debugf(ctx, "internal.alert.usecase.Initialize: result discarded after reset")
		return alert.ErrStaleResult
	}
	return nil
}

func (s *implStore) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMore || s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	next, epoch := s.page+1, s.epoch
	s.mu.Unlock()

	alerts, err := s.repo.List(ctx, alert.ListOptions{Page: next, Size: s.pageSize})

	stale := false
	s.mutate(func() bool {
		if s.epoch != epoch {
			stale = true
			return false
		}
		s.loading = false
		if err != nil {
			return false
		}
		for _, a := range alerts {
			s.appendLocked(a)
		}
		s.page = next
		s.hasMore = len(alerts) == s.pageSize
		return true
	})

	switch {
	case stale:
		s.logger.Debugf(ctx, "internal.alert.usecase.LoadMore: page %d discarded after reset", next)
		return alert.ErrStaleResult
	case err != nil:
		s.logger.Errorf(ctx, "internal.alert.usecase.LoadMore: page %d: %v", next, err)
		return fmt.Errorf("%w: %w", alert.ErrFetchFailed, err)
	}
	return nil
}

// appendLocked adds a to the tail unless its id is present.
func (s *implStore) appendLocked(a model.Alert) bool {
	if _, ok := s.present[a.ID]; ok {
		return false
	}
	s.present[a.ID] = struct{}{}
	s.alerts = append(s.alerts, a)
	return true
}

func (s *implStore) RecordIncoming(ctx context.Context, a model.Alert) bool {
	inserted := s.mutate(func() bool {
		if _, ok := s.present[a.ID]; ok {
			return false
		}
		s.present[a.ID] = struct{}{}
		s.alerts = append([]model.Alert{a}, s.alerts...)
		s.pushes++
		return true
	})
	if !inserted {
		s.logger.Debugf(ctx, "internal.alert.usecase.RecordIncoming: duplicate alert %d ignored", a.ID)
	}
	return inserted
}

func (s *implStore) ApplyReadState(ids []int64) {
	if len(ids) == 0 {
		return
	}
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	s.mutate(func() bool {
		changed := false
		for i := range s.alerts {
			if _, ok := want[s.alerts[i].ID]; ok && !s.alerts[i].IsRead {
				s.alerts[i].IsRead = true
				changed = true
			}
		}
		return changed
	})
}

func (s *implStore) ApplyProcessedAction(id int64, action model.ProcessedAction) bool {
	if action == model.ProcessedNone {
		return false
	}
	return s.mutate(func() bool {
		for i := range s.alerts {
			if s.alerts[i].ID != id {
				continue
			}
			if s.alerts[i].Processed() {
				return false
			}
			s.alerts[i].ProcessedAction = action
			return true
		}
		return false
	})
}

func (s *implStore) Reset() {
	s.mutate(func() bool {
		s.alerts = nil
		s.present = make(map[int64]struct{})
		s.hasMore = true
		s.page = 0
		s.loading = false
		s.epoch++
		return true
	})
}

func (s *implStore) Snapshot() alert.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *implStore) Subscribe(fn alert.Observer) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, observerEntry{id: id, fn: fn})

	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
