package coordinator

import (
	"notification-client/internal/friend"
	"notification-client/internal/toast"
	ws "notification-client/internal/websocket"
	wsUC "notification-client/internal/websocket/usecase"
	"notification-client/pkg/log"
	"notification-client/pkg/pubsub"
)

// ConnectionFactory builds the push connection for handler. It receives the
// push config already bound to the session.
type ConnectionFactory func(cfg ws.Config, handler ws.Handler) (ws.Manager, error)

// Deps are the session-independent parts of a Coordinator.
type Deps struct {
	Logger log.Logger
	// Push carries broker URL and timings. UserID and Jar come from the session.
	Push    ws.Config
	Metrics *wsUC.Metrics
	Toast   toast.Options
	Labels  friend.Labels
	// Sinks mirror FriendRequestProcessed events out of process.
	Sinks []pubsub.Sink
	// Connect overrides how the push connection is built.
	Connect ConnectionFactory
}
