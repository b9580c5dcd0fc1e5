package coordinator

import (
	"fmt"
	"sync"

	"notification-client/internal/alert"
	alertRest "notification-client/internal/alert/repository/rest"
	alertUC "notification-client/internal/alert/usecase"
	"notification-client/internal/friend"
	friendRest "notification-client/internal/friend/repository/rest"
	friendUC "notification-client/internal/friend/usecase"
	"notification-client/internal/session"
	"notification-client/internal/toast"
	toastUC "notification-client/internal/toast/usecase"
	ws "notification-client/internal/websocket"
	wsUC "notification-client/internal/websocket/usecase"
	"notification-client/pkg/log"
)

type implCoordinator struct {
	logger  log.Logger
	userID  string
	feed    alert.Store
	reads   alert.ReadSync
	toasts  toast.Dispatcher
	friends friend.Relay
	conn    ws.Manager

	mu      sync.Mutex
	stopped bool
}

// New wires the feed components to s. Nothing talks to the network until Start.
func New(s *session.Session, deps Deps) (Coordinator, error) {
	if s == nil {
		return nil, ErrNilSession
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	alertRepo := alertRest.New(logger, s.Client)
	feed := alertUC.NewStore(logger, alertRepo)

	c := &implCoordinator{
		logger:  logger,
		userID:  s.UserID,
		feed:    feed,
		reads:   alertUC.NewReadSync(logger, alertRepo, feed),
		toasts:  toastUC.New(logger, deps.Toast),
		friends: friendUC.New(logger, friendRest.New(s.Client), feed, deps.Labels),
	}
	for _, sink := range deps.Sinks {
		c.friends.Processed().AttachSink(sink)
	}

	push := deps.Push
	push.UserID = s.UserID
	push.Jar = s.Jar

	connect := deps.Connect
	if connect == nil {
		connect = func(cfg ws.Config, h ws.Handler) (ws.Manager, error) {
			return wsUC.New(logger, cfg, h, deps.Metrics)
		}
	}
	conn, err := connect(push, c)
	if err != nil {
		return nil, fmt.Errorf("push connection: %w", err)
	}
	c.conn = conn
	return c, nil
}
