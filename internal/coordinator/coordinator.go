package coordinator

import (
	"context"

	"notification-client/internal/alert"
	"notification-client/internal/friend"
	"notification-client/internal/model"
	"notification-client/internal/toast"
	ws "notification-client/internal/websocket"
	"notification-client/pkg/log"
)

func (c *implCoordinator) UserID() string           { return c.userID }
func (c *implCoordinator) Feed() alert.Store        { return c.feed }
func (c *implCoordinator) Reads() alert.ReadSync    { return c.reads }
func (c *implCoordinator) Toasts() toast.Dispatcher { return c.toasts }
func (c *implCoordinator) Friends() friend.Relay    { return c.friends }
func (c *implCoordinator) Connection() ws.Manager   { return c.conn }

// Start loads the first page, then opens the push channel. A failed load is
// logged and the feed stays empty; the connection is opened regardless.
func (c *implCoordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	stopped := c.stopped
	c.mu.Unlock()
	if stopped {
		return ErrStopped
	}

	ctx = log.WithUser(ctx, c.logger, c.userID)
	if err := c.feed.Initialize(ctx); err != nil {
		c.logger.Warnf(ctx, "internal.coordinator.Start: initial load failed: %v", err)
	}
	return c.conn.Start(ctx)
}

func (c *implCoordinator) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	c.mu.Unlock()

	err := c.conn.Close(ctx)
	c.feed.Reset()
	c.toasts.Clear()
	c.logger.Infof(ctx, "internal.coordinator.Stop: feed torn down for user %s", c.userID)
	return err
}

// HandleAlert records a pushed alert in the feed.
func (c *implCoordinator) HandleAlert(ctx context.Context, a model.Alert) {
	if !c.feed.RecordIncoming(ctx, a) {
		c.logger.Debugf(ctx, "internal.coordinator.HandleAlert: duplicate alert %d ignored", a.ID)
	}
}

// HandleToast shows a pushed toast.
func (c *implCoordinator) HandleToast(ctx context.Context, a model.Alert) {
	c.toasts.Show(ctx, a)
}
