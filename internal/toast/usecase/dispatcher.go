package usecase

import (
	"context"
	"sync"
	"time"

	"notification-client/internal/model"
	"notification-client/internal/toast"
	"notification-client/pkg/log"
)

type implDispatcher struct {
	logger log.Logger
	ttl    time.Duration

	mu      sync.Mutex
	seq     uint64
	current *toast.Toast
	timer   *time.Timer

	listenersMu sync.Mutex
	listeners   []toast.Listener
}

func (d *implDispatcher) Show(ctx context.Context, a model.Alert) toast.Toast {
	d.mu.Lock()
	d.seq++
	t := toast.Toast{Seq: d.seq, Alert: a, ShownAt: time.Now()}
	d.current = &t
	d.stopTimerLocked()
	if d.ttl > 0 {
		seq := t.Seq
		d.timer = time.AfterFunc(d.ttl, func() { d.Dismiss(seq) })
	}
	d.mu.Unlock()

	d.logger.Debugf(ctx, "internal.toast.usecase.Show: toast %d for alert %d", t.Seq, a.ID)
	d.emit(&t)
	return t
}

func (d *implDispatcher) Dismiss(seq uint64) bool {
	d.mu.Lock()
	if d.current == nil || d.current.Seq != seq {
		d.mu.Unlock()
		return false
	}
	d.current = nil
	d.stopTimerLocked()
	d.mu.Unlock()

	d.emit(nil)
	return true
}

func (d *implDispatcher) Clear() {
	d.mu.Lock()
	had := d.current != nil
	d.current = nil
	d.stopTimerLocked()
	d.mu.Unlock()

	if had {
		d.emit(nil)
	}
}

func (d *implDispatcher) Current() (toast.Toast, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return toast.Toast{}, false
	}
	return *d.current, true
}

func (d *implDispatcher) OnChange(fn toast.Listener) {
	d.listenersMu.Lock()
	defer d.listenersMu.Unlock()
	d.listeners = append(d.listeners, fn)
}

func (d *implDispatcher) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *implDispatcher) emit(t *toast.Toast) {
	d.listenersMu.Lock()
	listeners := append([]toast.Listener(nil), d.listeners...)
	d.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(t)
	}
}
