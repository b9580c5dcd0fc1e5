package usecase

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"

	ws "notification-client/internal/websocket"
	"notification-client/pkg/log"
)

type implManager struct {
	cfg     ws.Config
	host    string
	handler ws.Handler
	logger  log.Logger
	metrics *Metrics
	dialer  *websocket.Dialer
	state   *stateMachine

	mu     sync.Mutex
	cancel func()
	done   chan struct{}
}

// New creates a Manager in the Idle state. A nil metrics gets unregistered
// collectors.
func New(logger log.Logger, cfg ws.Config, handler ws.Handler, metrics *Metrics) (ws.Manager, error) {
	if cfg.URL == "" {
		return nil, ws.ErrMissingURL
	}
	if cfg.UserID == "" {
		return nil, ws.ErrMissingUserID
	}
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid broker URL: %w", err)
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	applyDefaults(&cfg)

	return &implManager{
		cfg:     cfg,
		host:    u.Host,
		handler: handler,
		logger:  logger,
		metrics: metrics,
		dialer: &websocket.Dialer{
			Jar:              cfg.Jar,
			HandshakeTimeout: cfg.HandshakeTimeout,
		},
		state: newStateMachine(metrics.observeState),
	}, nil
}

func applyDefaults(cfg *ws.Config) {
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = ws.DefaultReconnectDelay
	}
	if cfg.HeartbeatOutgoing <= 0 {
		cfg.HeartbeatOutgoing = ws.DefaultHeartbeat
	}
	if cfg.HeartbeatIncoming <= 0 {
		cfg.HeartbeatIncoming = ws.DefaultHeartbeat
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = ws.DefaultHandshakeTimeout
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = ws.DefaultWriteWait
	}
}
