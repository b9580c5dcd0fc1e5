package usecase

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	ws "notification-client/internal/websocket"
)

func (m *implManager) State() ws.State {
	return m.state.get()
}

func (m *implManager) OnStateChange(fn ws.StateListener) {
	m.state.listen(fn)
}

func (m *implManager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.state.get() == ws.StateClosed {
		m.mu.Unlock()
		return ws.ErrClosed
	}
	if m.cancel != nil {
		m.mu.Unlock()
		return ws.ErrAlreadyStarted
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	m.cancel, m.done = cancel, done
	m.mu.Unlock()

	m.state.set(ws.StateConnecting)
	go m.run(runCtx, done)
	return nil
}

func (m *implManager) Close(ctx context.Context) error {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.mu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			m.state.set(ws.StateClosed)
			return ctx.Err()
		}
	}
	if m.state.set(ws.StateClosed) {
		m.logger.Infof(ctx, "internal.websocket.usecase.Close: push channel closed for user %s", m.cfg.UserID)
	}
	return nil
}

// run keeps one connection alive until ctx is cancelled, waiting
// ReconnectDelay between attempts.
func (m *implManager) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	retry := backoff.WithContext(backoff.NewConstantBackOff(m.cfg.ReconnectDelay), ctx)
	for {
		m.state.set(ws.StateConnecting)
		err := m.connectAndServe(ctx)
		if ctx.Err() != nil {
			return
		}

		if m.state.get() == ws.StateConnected {
			m.metrics.disconnects.Inc()
		}
		m.state.set(ws.StateDisconnected)

		wait := retry.NextBackOff()
		if wait == backoff.Stop {
			return
		}
		m.logger.Warnf(ctx, "internal.websocket.usecase.run: push channel lost, retrying in %s: %v", wait, err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
