package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"notification-client/internal/model"
	ws "notification-client/internal/websocket"
	"notification-client/pkg/stomp"
)

// connection is one transport lifetime between dial and teardown.
type connection struct {
	conn      *websocket.Conn
	writeWait time.Duration
	writeMu   sync.Mutex

	// Written once by subscribe, read-only afterwards.
	subs  map[string]ws.Kind
	dests map[string]ws.Kind
}

func (c *connection) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// shutdown unsubscribes and disconnects. Errors are irrelevant at this point.
func (c *connection) shutdown() {
	for id := range c.subs {
		_ = c.write(stomp.NewFrame(stomp.CommandUnsubscribe, stomp.HeaderID, id).Encode())
	}
	_ = c.write(stomp.NewFrame(stomp.CommandDisconnect).Encode())

	c.writeMu.Lock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(c.writeWait))
	c.writeMu.Unlock()
	c.conn.Close()
}

func (m *implManager) connectAndServe(ctx context.Context) error {
	m.metrics.attempts.Inc()

	dialCtx, cancel := context.WithTimeout(ctx, m.cfg.HandshakeTimeout)
	defer cancel()

	conn, _, err := m.dialer.DialContext(dialCtx, m.cfg.URL, m.cfg.Header)
	if err != nil {
		return fmt.Errorf("dial %s: %w", m.cfg.URL, err)
	}
	defer conn.Close()
	if m.cfg.MaxMessageSize > 0 {
		conn.SetReadLimit(m.cfg.MaxMessageSize)
	}

	c := &connection{conn: conn, writeWait: m.cfg.WriteWait}
	send, recv, err := m.handshake(dialCtx, c)
	if err != nil {
		return err
	}
	if err := m.subscribe(c); err != nil {
		return err
	}

	m.state.set(ws.StateConnected)
	m.logger.Infof(ctx, "internal.websocket.usecase.connectAndServe: connected as user %s (heart-beat out=%s in=%s)",
		m.cfg.UserID, send, recv)

	return m.serve(ctx, c, send, recv)
}

func (m *implManager) handshake(ctx context.Context, c *connection) (send, recv time.Duration, err error) {
	offer := stomp.HeartBeat{Send: m.cfg.HeartbeatOutgoing, Receive: m.cfg.HeartbeatIncoming}
	connect := stomp.NewFrame(stomp.CommandConnect,
		stomp.HeaderAcceptVersion, stomp.SupportedVersions,
		stomp.HeaderHost, m.host,
		stomp.HeaderHeartBeat, offer.String(),
	)
	if err := c.write(connect.Encode()); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ws.ErrHandshakeFailed, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetReadDeadline(deadline)
	}
	defer c.conn.SetReadDeadline(time.Time{})
	// Unblock the CONNECTED wait when the session is torn down mid-handshake.
	stop := context.AfterFunc(ctx, func() { c.conn.SetReadDeadline(time.Now()) })
	defer stop()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, 0, fmt.Errorf("%w: %w", ws.ErrHandshakeFailed, ctxErr)
			}
			return 0, 0, fmt.Errorf("%w: %w", ws.ErrHandshakeFailed, err)
		}
		frames, err := stomp.Decode(data)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ws.ErrHandshakeFailed, err)
		}
		if len(frames) == 0 {
			continue
		}

		f := frames[0]
		switch f.Command {
		case stomp.CommandConnected:
			server, err := stomp.ParseHeartBeat(f.Header(stomp.HeaderHeartBeat))
			if err != nil {
				return 0, 0, fmt.Errorf("%w: %w", ws.ErrHandshakeFailed, err)
			}
			send, recv = stomp.Negotiate(offer, server)
			return send, recv, nil
		case stomp.CommandError:
			return 0, 0, fmt.Errorf("%w: %w: %s", ws.ErrHandshakeFailed, ws.ErrServerError, f.Header(stomp.HeaderMessage))
		default:
			return 0, 0, fmt.Errorf("%w: unexpected %s frame", ws.ErrHandshakeFailed, f.Command)
		}
	}
}

func (m *implManager) subscribe(c *connection) error {
	channels := []struct {
		destination string
		kind        ws.Kind
	}{
		{ws.AlertDestination(m.cfg.UserID), ws.KindAlert},
		{ws.ToastDestination(m.cfg.UserID), ws.KindToast},
	}

	c.subs = make(map[string]ws.Kind, len(channels))
	c.dests = make(map[string]ws.Kind, len(channels))
	for _, ch := range channels {
		id := "sub-" + uuid.NewString()
		frame := stomp.NewFrame(stomp.CommandSubscribe,
			stomp.HeaderID, id,
			stomp.HeaderDestination, ch.destination,
			stomp.HeaderAck, stomp.AckAuto,
		)
		if err := c.write(frame.Encode()); err != nil {
			return fmt.Errorf("subscribe %s: %w", ch.destination, err)
		}
		c.subs[id] = ch.kind
		c.dests[ch.destination] = ch.kind
	}
	return nil
}

// serve runs the heart-beat writer while the read loop runs in its own
// goroutine. It returns when either side fails or ctx is cancelled.
func (m *implManager) serve(ctx context.Context, c *connection, send, recv time.Duration) error {
	readErr := make(chan error, 1)
	go func() { readErr <- m.readLoop(ctx, c, recv) }()

	var beat <-chan time.Time
	if send > 0 {
		ticker := time.NewTicker(send)
		defer ticker.Stop()
		beat = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			<-readErr
			return ctx.Err()
		case err := <-readErr:
			return err
		case <-beat:
			if err := c.write([]byte{'\n'}); err != nil {
				return fmt.Errorf("heart-beat: %w", err)
			}
		}
	}
}

func (m *implManager) readLoop(ctx context.Context, c *connection, recv time.Duration) error {
	for {
		if recv > 0 {
			// Allow one missed beat before declaring the broker gone.
			c.conn.SetReadDeadline(time.Now().Add(2 * recv))
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				return fmt.Errorf("%w: %w", ws.ErrHeartbeatTimeout, err)
			}
			return fmt.Errorf("read: %w", err)
		}

		frames, err := stomp.Decode(data)
		if err != nil {
			m.metrics.decodeFailures.Inc()
			m.logger.Warnf(ctx, "internal.websocket.usecase.readLoop: malformed frame dropped: %v", err)
		}
		for _, f := range frames {
			switch f.Command {
			case stomp.CommandMessage:
				m.dispatch(ctx, c, f)
			case stomp.CommandError:
				return fmt.Errorf("%w: %s", ws.ErrServerError, f.Header(stomp.HeaderMessage))
			default:
				m.logger.Debugf(ctx, "internal.websocket.usecase.readLoop: ignoring %s frame", f.Command)
			}
		}
	}
}

func (m *implManager) dispatch(ctx context.Context, c *connection, f stomp.Frame) {
	kind, ok := c.subs[f.Header(stomp.HeaderSubscription)]
	if !ok {
		kind, ok = c.dests[f.Header(stomp.HeaderDestination)]
	}
	if !ok {
		m.logger.Warnf(ctx, "internal.websocket.usecase.dispatch: message for unknown destination %q dropped",
			f.Header(stomp.HeaderDestination))
		return
	}

	var a model.Alert
	if err := json.Unmarshal(f.Body, &a); err != nil {
		m.metrics.decodeFailures.Inc()
		m.logger.Warnf(ctx, "internal.websocket.usecase.dispatch: undecodable %s payload dropped: %v", kind, err)
		return
	}
	m.metrics.messages.WithLabelValues(string(kind)).Inc()

	switch kind {
	case ws.KindAlert:
		a.IsRead = false
		m.handler.HandleAlert(ctx, a)
	case ws.KindToast:
		m.handler.HandleToast(ctx, a)
	}
}
